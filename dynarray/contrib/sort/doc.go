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

// Package sort provides an in-place quicksort over any dynarray.Sequence.
//
// The sort only uses Size, Get and Set, so it works for dynarray.Array and
// for any other type with indexed access.
//
// # Algorithm
//
// QuickSort and QuickSortFunc use Lomuto partitioning with the rightmost
// element of each range as pivot:
//   - Scan the range left to right, moving every element <= pivot to the
//     front of the range
//   - Swap the pivot into place just after them
//   - Recurse on the two sides
//
// The sort is not stable. Already sorted and reverse sorted input hit the
// O(n²) worst case, and recursion depth grows linearly with it, so very
// large adversarial inputs can exhaust the stack.
//
// # Example Usage
//
//	import (
//	    "github.com/ajroetker/go-dynarray/dynarray"
//	    "github.com/ajroetker/go-dynarray/dynarray/contrib/sort"
//	)
//
//	func Descending(a *dynarray.Array[int]) error {
//	    return sort.QuickSortFunc(a, dynarray.Reverse(cmp.Compare[int]))
//	}
package sort
