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

import "github.com/pkg/errors"

// Errors returned by Array and the sort helpers. Returned errors wrap one
// of these with call-site context; match them with errors.Is.
var (
	// ErrIndexOutOfRange is returned for an index outside the valid range
	// of Get, Set, RemoveAt or InsertAt.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidArgument is returned for a negative initial capacity or a
	// missing comparator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperation is the class of errors raised when an operation
	// cannot be applied to the element type.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotComparable is returned when a natural-order sort is requested
	// for an element type that has no natural order.
	ErrNotComparable = errors.WithMessage(ErrInvalidOperation, "not comparable")
)

func indexError(index, limit int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "index %d out of range [0, %d)", index, limit)
}
