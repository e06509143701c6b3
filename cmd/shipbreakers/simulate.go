package main

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/appengine-ltd/ship-breakers/internal/game"
	"github.com/appengine-ltd/ship-breakers/internal/metrics"
	"github.com/appengine-ltd/ship-breakers/internal/parser"
	"github.com/appengine-ltd/ship-breakers/internal/sim"
)

type simulateOptions struct {
	crew        int
	wreck       int
	maxHazard   int
	priorities  string
	stopInjury  bool
	minStamina  int
	minSanity   int
	speed       string
	metricsAddr string
}

func newSimulateCmd(root *rootOptions) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one full expedition headlessly",
		Long: "Simulate rolls a crew, flies to a wreck, runs the autonomous salvage\n" +
			"scheduler under the given rules, and prints the expedition report.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSimulate(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.crew, "crew", 3, "crew members to generate")
	cmd.Flags().IntVar(&opts.wreck, "wreck", 1, "wreck tier to target (1-3)")
	cmd.Flags().IntVar(&opts.maxHazard, "max-hazard", 3, "skip rooms above this hazard level (1-5)")
	cmd.Flags().StringVar(&opts.priorities, "priorities", "any", "comma separated room categories to salvage first")
	cmd.Flags().BoolVar(&opts.stopInjury, "stop-on-injury", true, "stop when a crew member is badly hurt")
	cmd.Flags().IntVar(&opts.minStamina, "min-stamina", 20, "bench crew below this stamina")
	cmd.Flags().IntVar(&opts.minSanity, "min-sanity", 20, "bench crew below this sanity")
	cmd.Flags().StringVar(&opts.speed, "speed", "instant", "pacing: instant, normal, fast")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	return cmd
}

func runSimulate(cmd *cobra.Command, root *rootOptions, opts *simulateOptions) error {
	log := root.logger()

	var sink game.EventSink
	if opts.metricsAddr != "" {
		reg := prometheus.NewRegistry()
		sink = metrics.NewSink(reg)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go func() {
			if serveErr := http.ListenAndServe(opts.metricsAddr, mux); serveErr != nil {
				log.Error("metrics server stopped", "error", serveErr)
			}
		}()
		log.Info("serving metrics", "addr", opts.metricsAddr)
	}

	state, err := root.newState(sink)
	if err != nil {
		return err
	}

	priorities, err := parser.RoomCategories().MatchAll(opts.priorities)
	if err != nil {
		return fmt.Errorf("--priorities: %w", err)
	}

	speed, err := parseSpeed(opts.speed)
	if err != nil {
		return err
	}

	state.Wrecks = sim.SampleWrecks()
	state.Roster = sim.SampleRoster(state, opts.crew)
	var seeded []string
	for _, member := range state.Roster {
		state.Relationships = game.InitializeRelationships(state.Relationships, state.Constants, member.ID, seeded)
		seeded = append(seeded, member.ID)
	}

	if opts.wreck < 1 || opts.wreck > len(state.Wrecks) {
		return fmt.Errorf("--wreck must be 1-%d, got %d", len(state.Wrecks), opts.wreck)
	}
	wreckID := state.Wrecks[opts.wreck-1].ID

	rules := game.AutoSalvageRules{
		MaxHazardLevel:   opts.maxHazard,
		PriorityRooms:    priorities,
		StopOnInjury:     opts.stopInjury,
		StopOnLowStamina: opts.minStamina,
		StopOnLowSanity:  opts.minSanity,
	}

	driver := sim.NewDriver(state, log)
	report, err := driver.RunExpedition(cmd.Context(), wreckID, rules, speed)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Expedition to %s\n", report.WreckName)
	fmt.Fprintf(out, "  Stop reason:    %s\n", report.StopReason)
	fmt.Fprintf(out, "  Rooms salvaged: %d\n", report.RoomsSalvaged)
	fmt.Fprintf(out, "  Loot collected: %d\n", report.LootCollected)
	fmt.Fprintf(out, "  Credits earned: %d\n", report.CreditsEarned)
	fmt.Fprintf(out, "  Injuries:       %d\n", report.Injuries)
	fmt.Fprintf(out, "  Crew lost:      %d\n", report.CrewLost)
	fmt.Fprintf(out, "  Fuel spent:     %d\n", report.FuelSpent)
	fmt.Fprintf(out, "  Days elapsed:   %d\n", report.DaysElapsed)
	return nil
}

func parseSpeed(raw string) (game.Speed, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "instant", "":
		return game.SpeedInstant, nil
	case "normal":
		return game.SpeedNormal, nil
	case "fast":
		return game.SpeedFast, nil
	default:
		return 0, fmt.Errorf("--speed must be instant, normal, or fast, got %q", raw)
	}
}
