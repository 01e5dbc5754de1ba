// The 2021 command runs Maisem's Advent of Code 2021 solutions.
//
// Inputs are read from <input-dir>/2021/<day>.input. The part to run defaults
// to the "part" environment variable.
package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/maisem/aoc2021"
	"github.com/spf13/cobra"
)

//go:embed solve.go
var source []byte

func main() {
	cfg, err := aoc.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg aoc.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aoc2021",
		Short:        "Run Advent of Code 2021 solutions",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log, err := aoc.NewLogger(cfg.Debug)
			if err != nil {
				return err
			}
			defer log.Sync()
			return aoc.NewRunner(cfg, cmd.OutOrStdout(), log).Run(2021, source, &solver{})
		},
	}
	f := cmd.Flags()
	f.IntVar(&cfg.Day, "day", cfg.Day, "day to run; -1 runs every day")
	f.Var(&cfg.Part, "part", "part to run: part1 or part2")
	f.BoolVar(&cfg.All, "all", cfg.All, "run both parts")
	f.StringVar(&cfg.InputDir, "input-dir", cfg.InputDir, "directory holding <year>/<day>.input files")
	f.BoolVar(&cfg.OnlySample, "sample", cfg.OnlySample, "only run samples")
	f.BoolVar(&cfg.SkipSample, "skip-sample", cfg.SkipSample, "skip samples")
	f.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	return cmd
}
