package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/appengine-ltd/ship-breakers/internal/game"
	"github.com/appengine-ltd/ship-breakers/internal/parser"
)

func newRecruitsCmd(root *rootOptions) *cobra.Command {
	var (
		count  int
		sortBy string
	)

	cmd := &cobra.Command{
		Use:   "recruits",
		Short: "Roll a hiring pool and print the candidates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := root.newState(nil)
			if err != nil {
				return err
			}

			skill := game.SkillType("")
			if sortBy != "" {
				canonical, err := parser.Skills().Match(sortBy)
				if err != nil {
					return fmt.Errorf("--sort: %w", err)
				}
				skill = game.SkillType(canonical)
			}

			recruits := state.GenerateRecruits(count)
			if skill != "" {
				sort.SliceStable(recruits, func(i, j int) bool {
					return recruits[i].Skills.Level(skill) > recruits[j].Skills.Level(skill)
				})
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBACKGROUND\tTEC\tCOM\tSAL\tPIL\tTRAITS\tCOST")
			for _, r := range recruits {
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%s\t%d\n",
					r.Name, r.Background,
					r.Skills.Technical, r.Skills.Combat, r.Skills.Salvage, r.Skills.Piloting,
					traitList(r.Traits), r.HireCost)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "candidates to roll")
	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by skill (technical, combat, salvage, piloting)")
	return cmd
}

func traitList(ids []game.TraitID) string {
	if len(ids) == 0 {
		return "-"
	}
	out := ""
	for i, id := range ids {
		if i > 0 {
			out += ", "
		}
		out += string(id)
	}
	return out
}
