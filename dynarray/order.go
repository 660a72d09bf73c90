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
	"cmp"
	"reflect"

	"github.com/pkg/errors"
)

// Comparable is implemented by element types that define their own
// natural order. Compare returns a negative number, zero or a positive
// number when the receiver is less than, equal to or greater than other.
type Comparable[E any] interface {
	Compare(other E) int
}

// NaturalOrder returns the comparison function for E's natural order.
//
// A Compare method (Comparable[E]) takes precedence. When E is itself an
// interface type, nil elements order before all others; nil pointers are
// passed to Compare as is. Otherwise any type
// whose underlying kind is an integer, float or string is ordered the
// way the built-in operators order it. Every other type, including
// interface types, yields ErrNotComparable.
func NaturalOrder[E any]() (func(a, b E) int, error) {
	// Common element types skip reflection.
	switch any(*new(E)).(type) {
	case int:
		return any(cmp.Compare[int]).(func(a, b E) int), nil
	case int64:
		return any(cmp.Compare[int64]).(func(a, b E) int), nil
	case float64:
		return any(cmp.Compare[float64]).(func(a, b E) int), nil
	case string:
		return any(cmp.Compare[string]).(func(a, b E) int), nil
	}

	t := reflect.TypeOf((*E)(nil)).Elem()
	if t.Implements(reflect.TypeOf((*Comparable[E])(nil)).Elem()) {
		return func(a, b E) int {
			x, y := any(a), any(b)
			switch {
			case x == nil && y == nil:
				return 0
			case x == nil:
				return -1
			case y == nil:
				return 1
			}
			return x.(Comparable[E]).Compare(b)
		}, nil
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}, nil
	case reflect.Float32, reflect.Float64:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}, nil
	case reflect.String:
		return func(a, b E) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}, nil
	}
	return nil, errors.Wrapf(ErrNotComparable, "type %s", t)
}

// Reverse returns a comparison function that inverts cmp.
func Reverse[E any](cmp func(a, b E) int) func(a, b E) int {
	return func(a, b E) int {
		return cmp(b, a)
	}
}
