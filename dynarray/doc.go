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

// Package dynarray provides Array, a growable, index-addressable sequence
// backed by a single contiguous buffer.
//
// # Growth
//
// When an Append or InsertAt finds the buffer full, a new buffer of
// max(old+1, old*3/2) slots is allocated and the live elements are copied
// over. Clear keeps the buffer; only growth replaces it.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-dynarray/dynarray"
//
//	a := dynarray.New[int]()
//	a.Append(3)
//	a.Append(1)
//	a.Append(2)
//	if err := a.Sort(); err != nil {
//	    return err
//	}
//	fmt.Println(a) // [1, 2, 3]
//
// # Sorting
//
// Sort and SortFunc use a stable merge-style sort over the live range.
// Sort relies on the element type's natural order: a Compare method
// (see Comparable) or an underlying integer, float or string kind. For
// other element types Sort returns ErrNotComparable, but only once a
// comparison is actually needed, so empty and single-element arrays
// always sort successfully.
//
// A Lomuto quicksort that works through the Sequence interface lives in
// the contrib/sort subpackage.
//
// # Concurrency
//
// An Array is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package dynarray
