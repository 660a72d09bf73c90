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

import "github.com/ajroetker/go-dynarray/dynarray"

// IsSorted reports whether seq is in the natural order of E. Like
// QuickSort, it only resolves the order when seq has two or more elements.
func IsSorted[E any](seq dynarray.Sequence[E]) (bool, error) {
	if seq.Size() < 2 {
		return true, nil
	}
	cmp, err := dynarray.NaturalOrder[E]()
	if err != nil {
		return false, err
	}
	return IsSortedFunc(seq, cmp)
}

// IsSortedFunc reports whether seq is in the order defined by cmp, that is
// whether cmp(seq[i], seq[i+1]) <= 0 for every adjacent pair.
func IsSortedFunc[E any](seq dynarray.Sequence[E], cmp func(a, b E) int) (bool, error) {
	if cmp == nil {
		return false, ErrComparatorRequired
	}
	n := seq.Size()
	if n < 2 {
		return true, nil
	}
	prev, err := seq.Get(0)
	if err != nil {
		return false, err
	}
	for i := 1; i < n; i++ {
		cur, err := seq.Get(i)
		if err != nil {
			return false, err
		}
		if cmp(prev, cur) > 0 {
			return false, nil
		}
		prev = cur
	}
	return true, nil
}
