// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/drills/fib"
	"github.com/katalvlaran/drills/piglatin"
	"github.com/katalvlaran/drills/shuffle"
	"github.com/katalvlaran/drills/stats"
	"github.com/katalvlaran/drills/twosum"
	"github.com/katalvlaran/drills/words"
)

func newTwoSumCmd(a *app) *cobra.Command {
	var (
		target int
		method string
	)
	cmd := &cobra.Command{
		Use:   "twosum --target T [numbers...]",
		Short: "Print the first index pair whose values sum to the target",
		Example: `  drills twosum --target 9 2 7 11 15
  drills twosum --target 6 --method indexed 3 2 4
  drills twosum --target 0 -- -3 4 3 90    # negative numbers go after --`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, ok := twosum.ParseMethod(method)
			if !ok {
				return fmt.Errorf("unknown method %q (want brute or indexed)", method)
			}
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			a.logger.Debug("two-sum search",
				zap.Ints("nums", nums),
				zap.Int("target", target),
				zap.Stringer("method", m))

			result := []int{}
			if p, found := twosum.Search(nums, target, m); found {
				result = p.Slice()
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)

			return nil
		},
	}
	cmd.Flags().IntVarP(&target, "target", "t", 0, "target sum")
	cmd.Flags().StringVarP(&method, "method", "m", "brute", "search strategy: brute or indexed")

	return cmd
}

func newFibCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fib N",
		Short: "Print fib(N) with fib(0) = fib(1) = 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}
			v, err := fib.Fib(n)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)

			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats numbers...",
		Short: "Print the median, mode and value counts of a list",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nums, err := parseInts(args)
			if err != nil {
				return err
			}
			s, err := stats.Summarize(nums)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "median = %g\n", s.Median)
			fmt.Fprintf(out, "mode = %d\n", s.Mode)
			fmt.Fprintf(out, "counts = %v\n", s.Counts)

			return nil
		},
	}
}

func newPigLatinCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "piglatin text...",
		Short: "Convert text to pig latin",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), piglatin.Convert(strings.Join(args, " ")))

			return nil
		},
	}
}

func newShuffleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shuffle items...",
		Short: "Shuffle the given items (Fisher–Yates)",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := a.resolveSeed()
			a.logger.Debug("shuffling", zap.Int("items", len(args)), zap.Int64("seed", seed))
			items := shuffle.Slice(append([]string(nil), args...), shuffle.WithSeed(seed))
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(items, " "))

			return nil
		},
	}
}

func newFirstWordCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "firstword",
		Short: "Read one line from stdin and print its first word",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := words.ReadFirstWord(cmd.InOrStdin())
			if errors.Is(err, words.ErrNoInput) {
				a.logger.Warn("no input on stdin")
			} else if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "result = %s!\n", w)

			return nil
		},
	}
}
