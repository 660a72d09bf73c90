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

package dynarray

// Sequence is the minimal indexed view needed to reorder elements in
// place. Get and Set must accept every index in [0, Size()).
type Sequence[E any] interface {
	Size() int
	Get(index int) (E, error)
	Set(index int, e E) (E, error)
}

var _ Sequence[int] = (*Array[int])(nil)
