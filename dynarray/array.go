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

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// DefaultCapacity is the buffer size used by New.
const DefaultCapacity = 10

// Array is a growable sequence of elements stored in a contiguous buffer.
//
// Slots [0, Size()) hold live elements; the remaining slots of the buffer
// always hold the zero value of E, so removed elements are not retained.
//
// The zero value is an empty Array with no capacity, ready to use.
type Array[E any] struct {
	buf    []E
	length int
}

// New returns an empty Array with DefaultCapacity slots.
func New[E any]() *Array[E] {
	return &Array[E]{buf: make([]E, DefaultCapacity)}
}

// NewWithCapacity returns an empty Array with the given number of slots.
// A capacity of zero is allowed; the first Append grows the buffer.
func NewWithCapacity[E any](capacity int) (*Array[E], error) {
	if capacity < 0 {
		return nil, errors.Wrapf(ErrInvalidArgument, "illegal capacity %d", capacity)
	}
	return &Array[E]{buf: make([]E, capacity)}, nil
}

// Size returns the number of elements in the array.
func (a *Array[E]) Size() int {
	return a.length
}

// Cap returns the number of slots in the current buffer.
func (a *Array[E]) Cap() int {
	return len(a.buf)
}

// Append adds e after the last element, growing the buffer if it is full.
func (a *Array[E]) Append(e E) {
	a.ensureCapacity()
	a.buf[a.length] = e
	a.length++
}

// InsertAt inserts e so that it becomes the element at index, shifting the
// elements at [index, Size()) one slot to the right. An index equal to
// Size() appends.
func (a *Array[E]) InsertAt(index int, e E) error {
	if index < 0 || index > a.length {
		return indexError(index, a.length+1)
	}
	a.ensureCapacity()
	copy(a.buf[index+1:a.length+1], a.buf[index:a.length])
	a.buf[index] = e
	a.length++
	return nil
}

// Get returns the element at index.
func (a *Array[E]) Get(index int) (E, error) {
	if err := a.checkIndex(index); err != nil {
		var zero E
		return zero, err
	}
	return a.buf[index], nil
}

// Set replaces the element at index with e and returns the element it
// replaced.
func (a *Array[E]) Set(index int, e E) (E, error) {
	if err := a.checkIndex(index); err != nil {
		var zero E
		return zero, err
	}
	old := a.buf[index]
	a.buf[index] = e
	return old, nil
}

// RemoveAt removes and returns the element at index, shifting the
// elements after it one slot to the left.
func (a *Array[E]) RemoveAt(index int) (E, error) {
	var zero E
	if err := a.checkIndex(index); err != nil {
		return zero, err
	}
	removed := a.buf[index]
	copy(a.buf[index:], a.buf[index+1:a.length])
	a.length--
	a.buf[a.length] = zero
	return removed, nil
}

// Clear removes all elements. The buffer is kept at its current capacity.
func (a *Array[E]) Clear() {
	clear(a.buf[:a.length])
	a.length = 0
}

// Sort sorts the elements in their natural order. See SortFunc.
func (a *Array[E]) Sort() error {
	return a.SortFunc(nil)
}

// SortFunc sorts the elements in the order defined by cmp, which must
// return a negative number when a < b, a positive number when a > b and
// zero otherwise. The sort is stable.
//
// If cmp is nil the natural order of E is used, and ErrNotComparable is
// returned when E has none. That check happens only when the array holds
// at least two elements.
func (a *Array[E]) SortFunc(cmp func(a, b E) int) error {
	if a.length < 2 {
		return nil
	}
	if cmp == nil {
		natural, err := NaturalOrder[E]()
		if err != nil {
			return err
		}
		cmp = natural
	}
	slices.SortStableFunc(a.buf[:a.length], cmp)
	return nil
}

// Clone returns a shallow copy of the array: a new buffer of the same
// capacity holding the same element values. Pointers and reference-like
// elements are shared with the original; the arrays themselves are
// independent.
func (a *Array[E]) Clone() *Array[E] {
	buf := make([]E, len(a.buf))
	copy(buf, a.buf[:a.length])
	return &Array[E]{buf: buf, length: a.length}
}

// Values returns a copy of the live elements.
func (a *Array[E]) Values() []E {
	return slices.Clone(a.buf[:a.length])
}

// String renders the array as "[e0, e1, ..., en-1]", or "[]" when empty.
// Elements are formatted with %v.
func (a *Array[E]) String() string {
	if a.length == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range a.buf[:a.length] {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, e)
	}
	b.WriteByte(']')
	return b.String()
}

func (a *Array[E]) checkIndex(index int) error {
	if index < 0 || index >= a.length {
		return indexError(index, a.length)
	}
	return nil
}

// ensureCapacity makes room for one more element.
func (a *Array[E]) ensureCapacity() {
	if a.length < len(a.buf) {
		return
	}
	buf := make([]E, grow(len(a.buf)))
	copy(buf, a.buf[:a.length])
	a.buf = buf
}

// grow returns the buffer size that follows capacity. It is always
// strictly larger than capacity, including for 0 and 1.
func grow(capacity int) int {
	return max(capacity+1, capacity+capacity>>1)
}
