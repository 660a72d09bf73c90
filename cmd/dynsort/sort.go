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

package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"

	"github.com/ajroetker/go-dynarray/dynarray"
	"github.com/ajroetker/go-dynarray/dynarray/contrib/sort"
)

const (
	algoMerge = "merge"
	algoQuick = "quick"
)

type options struct {
	algo     string
	reverse  bool
	strings  bool
	capacity int
	check    bool
	verbose  bool
}

func (o *options) validate() error {
	switch o.algo {
	case algoMerge, algoQuick:
	default:
		return errors.Wrapf(dynarray.ErrInvalidArgument, "unknown algorithm %q", o.algo)
	}
	return nil
}

// sortValues loads values into a new array, sorts it with the configured
// algorithm and writes its textual form to out.
func sortValues[E constraints.Ordered](out io.Writer, log *logrus.Entry, opts *options, values []E) error {
	a, err := dynarray.NewWithCapacity[E](opts.capacity)
	if err != nil {
		return err
	}
	for _, v := range values {
		before := a.Cap()
		a.Append(v)
		if a.Cap() != before {
			log.WithFields(logrus.Fields{
				"size":     a.Size(),
				"from_cap": before,
				"to_cap":   a.Cap(),
			}).Debug("grew buffer")
		}
	}

	order, err := dynarray.NaturalOrder[E]()
	if err != nil {
		return err
	}
	if opts.reverse {
		order = dynarray.Reverse(order)
	}

	log.WithFields(logrus.Fields{
		"size":    a.Size(),
		"reverse": opts.reverse,
	}).Debug("sorting")
	switch {
	case opts.algo == algoQuick && !opts.reverse:
		err = sort.QuickSort[E](a)
	case opts.algo == algoQuick:
		err = sort.QuickSortFunc[E](a, order)
	default:
		err = a.SortFunc(order)
	}
	if err != nil {
		return errors.Wrapf(err, "%s sort", opts.algo)
	}

	if opts.check {
		ok, err := sort.IsSortedFunc[E](a, order)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Errorf("%s sort produced unordered output %s", opts.algo, a)
		}
		log.Debug("verified order")
	}

	_, err = fmt.Fprintln(out, a)
	return err
}
