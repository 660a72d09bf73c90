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
	"github.com/pkg/errors"

	"github.com/ajroetker/go-dynarray/dynarray"
)

// ErrComparatorRequired is returned by QuickSortFunc when cmp is nil.
var ErrComparatorRequired = errors.WithMessage(dynarray.ErrInvalidArgument, "comparator required")

// QuickSort sorts seq in the natural order of E, as defined by
// dynarray.NaturalOrder. It returns dynarray.ErrNotComparable when E has
// no natural order and seq holds at least two elements; shorter sequences
// never need a comparison and always succeed.
func QuickSort[E any](seq dynarray.Sequence[E]) error {
	n := seq.Size()
	if n < 2 {
		return nil
	}
	cmp, err := dynarray.NaturalOrder[E]()
	if err != nil {
		return err
	}
	return quickSort(seq, 0, n-1, cmp)
}

// QuickSortFunc sorts seq in the order defined by cmp, which returns a
// negative number when a < b, a positive number when a > b and zero
// otherwise.
//
// Errors returned by the sequence's Get or Set stop the sort and are
// returned as is; seq may then be partially reordered.
func QuickSortFunc[E any](seq dynarray.Sequence[E], cmp func(a, b E) int) error {
	if cmp == nil {
		return ErrComparatorRequired
	}
	return quickSort(seq, 0, seq.Size()-1, cmp)
}

// quickSort sorts the closed range [left, right].
func quickSort[E any](seq dynarray.Sequence[E], left, right int, cmp func(a, b E) int) error {
	if left >= right {
		return nil
	}
	p, err := partition(seq, left, right, cmp)
	if err != nil {
		return err
	}
	if err := quickSort(seq, left, p-1, cmp); err != nil {
		return err
	}
	return quickSort(seq, p+1, right, cmp)
}

// partition performs a Lomuto partition of [left, right] around the
// element at right and returns the pivot's final index.
func partition[E any](seq dynarray.Sequence[E], left, right int, cmp func(a, b E) int) (int, error) {
	pivot, err := seq.Get(right)
	if err != nil {
		return 0, err
	}
	i := left - 1
	for j := left; j < right; j++ {
		e, err := seq.Get(j)
		if err != nil {
			return 0, err
		}
		if cmp(e, pivot) <= 0 {
			i++
			if err := swap(seq, i, j); err != nil {
				return 0, err
			}
		}
	}
	if err := swap(seq, i+1, right); err != nil {
		return 0, err
	}
	return i + 1, nil
}

func swap[E any](seq dynarray.Sequence[E], i, j int) error {
	if i == j {
		return nil
	}
	ei, err := seq.Get(i)
	if err != nil {
		return err
	}
	ej, err := seq.Set(j, ei)
	if err != nil {
		return err
	}
	_, err = seq.Set(i, ej)
	return err
}
