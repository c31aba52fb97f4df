// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/drills/emoji"
)

func newEmojiCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emoji",
		Short: "Encode and list emojis",
	}
	cmd.AddCommand(newEmojiEncodeCmd(a), newEmojiListCmd(a))

	return cmd
}

func newEmojiEncodeCmd(a *app) *cobra.Command {
	var (
		output  string
		quiet   bool
		nRepeat int
	)
	cmd := &cobra.Command{
		Use:     "encode text...",
		Short:   "Encode :alias: shortcodes in text 😃",
		Example: "  drills emoji encode -n 3 :wave:",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nRepeat < 1 {
				return fmt.Errorf("n-repeat must be at least 1, got %d", nRepeat)
			}
			db, err := emoji.Load()
			if err != nil {
				return err
			}
			encoded := strings.Repeat(db.Encode(strings.Join(args, " ")), nRepeat)

			if output != "" {
				if err := os.WriteFile(output, []byte(encoded+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write output: %w", err)
				}
			}
			if !quiet {
				fmt.Fprintln(cmd.OutOrStdout(), encoded)
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "optional output filename")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "don't print the result to stdout")
	cmd.Flags().IntVarP(&nRepeat, "n-repeat", "n", 1, "repeat n times")

	return cmd
}

func newEmojiListCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List emojis with names",
		Long:  "List emojis with names, optionally filtered by category:\n  " + strings.Join(emoji.CategoryKeys(), ", "),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := emoji.Load()
			if err != nil {
				return err
			}
			entries, err := db.List(category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintln(out, e.String())
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&category, "category", "c", "", "filter the emojis by category")

	return cmd
}
