// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/drills/internal/config"
	"github.com/katalvlaran/drills/internal/logging"
)

// app carries state shared by all subcommands.
type app struct {
	cfgPath string
	verbose bool
	seed    int64

	cfg    *config.Config
	logger *zap.Logger // preset in tests; otherwise built from cfg
	now    func() time.Time
}

func newRootCmd(a *app) *cobra.Command {
	if a.now == nil {
		a.now = time.Now
	}

	root := &cobra.Command{
		Use:           "drills",
		Short:         "Small Go exercises: two-sum, median/mode, pig latin, shuffle and more",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			if a.logger == nil {
				a.logger, err = logging.New(cfg.Log, a.verbose)
				if err != nil {
					return err
				}
			}
			a.logger.Debug("config loaded", zap.String("path", a.cfgPath))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "drills.yaml", "path to the YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "shuffle seed (0 uses config, then the clock)")

	root.AddCommand(
		newHelloCmd(a),
		newTwoSumCmd(a),
		newFibCmd(a),
		newStatsCmd(a),
		newPigLatinCmd(a),
		newShuffleCmd(a),
		newFirstWordCmd(a),
		newShapesCmd(a),
		newBedCmd(a),
		newShakeCmd(a),
		newCarParkCmd(a),
		newNoteCmd(a),
		newCheckoutCmd(a),
		newEmojiCmd(a),
	)

	return root
}

// resolveSeed picks the flag, then config, then the clock.
func (a *app) resolveSeed() int64 {
	if a.seed != 0 {
		return a.seed
	}
	if a.cfg != nil && a.cfg.Shuffle.Seed != 0 {
		return a.cfg.Shuffle.Seed
	}

	return a.now().UnixNano()
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q: %w", s, err)
		}
		out = append(out, v)
	}

	return out, nil
}
