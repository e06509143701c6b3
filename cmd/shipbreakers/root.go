package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/ship-breakers/internal/config"
	"github.com/appengine-ltd/ship-breakers/internal/game"
)

type rootOptions struct {
	configDir string
	seed      int64
	verbose   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "shipbreakers",
		Short:         "Salvage expedition engine",
		Long:          "Ship Breakers runs salvage expeditions against derelict wrecks:\ncrew management, hazard resolution, and autonomous salvage scheduling.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configDir, "config", "", "directory with YAML tuning overrides")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "random seed (same seed replays the same expedition)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(
		newSimulateCmd(opts),
		newRecruitsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

func (o *rootOptions) logger() *slog.Logger {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// newState loads tuning and builds a fresh game state with the sample ship.
// A nil sink leaves events unobserved.
func (o *rootOptions) newState(sink game.EventSink) (*game.GameState, error) {
	bundle, err := config.Load(o.configDir)
	if err != nil {
		return nil, err
	}
	return game.NewGameState(game.StateConfig{
		Constants:     bundle.Constants,
		Traits:        bundle.Traits,
		Settings:      bundle.Thresholds,
		Seed:          o.seed,
		Sink:          sink,
		Credits:       500,
		Fuel:          200,
		CargoCapacity: 10,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Ship Breakers %s (%s) %s\n", version, commit, date)
		},
	}
}
