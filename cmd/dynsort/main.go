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

// Command dynsort loads values into a dynarray.Array, sorts them and prints
// the array's textual form.
//
// Usage:
//
//	dynsort 3 1 2                       # [1, 2, 3]
//	dynsort --algo quick --reverse 3 1 2
//	echo "pear apple fig" | dynsort --strings
//
// Values come from the positional arguments, or from stdin (split on
// whitespace) when there are none. Values are parsed as integers unless
// --strings is given.
package main

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-dynarray/dynarray"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:          "dynsort [values...]",
		Short:        "Sort values with a dynamic array",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.algo, "algo", algoMerge, "Sort algorithm ("+algoMerge+" or "+algoQuick+")")
	flags.BoolVar(&opts.reverse, "reverse", false, "Sort in descending order")
	flags.BoolVar(&opts.strings, "strings", false, "Treat values as strings instead of integers")
	flags.IntVar(&opts.capacity, "capacity", dynarray.DefaultCapacity, "Initial array capacity")
	flags.BoolVar(&opts.check, "check", false, "Verify the result is ordered before printing")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log array growth and sort steps")
	return cmd
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	if err := opts.validate(); err != nil {
		return err
	}

	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	if opts.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	log := logrus.NewEntry(logger).WithField("algo", opts.algo)

	if len(args) == 0 {
		var err error
		if args, err = readFields(cmd.InOrStdin()); err != nil {
			return errors.Wrap(err, "reading values")
		}
	}
	log.WithField("count", len(args)).Debug("read values")

	if opts.strings {
		return sortValues(cmd.OutOrStdout(), log, opts, args)
	}
	ints := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return errors.Wrapf(err, "parsing %q (use --strings for non-integer values)", arg)
		}
		ints = append(ints, n)
	}
	return sortValues(cmd.OutOrStdout(), log, opts, ints)
}

func readFields(r io.Reader) ([]string, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		fields = append(fields, scanner.Text())
	}
	return fields, scanner.Err()
}
