// Copyright 2026 go-dynarray Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sort

import (
	"math/rand"
	"testing"

	"github.com/ajroetker/go-dynarray/dynarray"
)

func generateInts(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = rand.Intn(10000) - 5000
	}
	return data
}

func BenchmarkQuickSort_100(b *testing.B) {
	benchmarkQuickSort(b, 100)
}

func BenchmarkQuickSort_1000(b *testing.B) {
	benchmarkQuickSort(b, 1000)
}

func BenchmarkQuickSort_10000(b *testing.B) {
	benchmarkQuickSort(b, 10000)
}

func benchmarkQuickSort(b *testing.B, n int) {
	// Generate reference data
	ref := generateInts(n)
	a, err := dynarray.NewWithCapacity[int](n)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a.Clear()
		for _, v := range ref {
			a.Append(v)
		}
		b.StartTimer()
		if err := QuickSort[int](a); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkArraySort_10000(b *testing.B) {
	ref := generateInts(10000)
	a, err := dynarray.NewWithCapacity[int](len(ref))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		a.Clear()
		for _, v := range ref {
			a.Append(v)
		}
		b.StartTimer()
		if err := a.Sort(); err != nil {
			b.Fatal(err)
		}
	}
}
