package main

import (
	"flag"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/paths"
)

func newPathsCmd(rf *rootFlags, klogFlags *flag.FlagSet) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paths FILE",
		Short: "Print every start→end route, one per line",
		Long: `Print every distinct route from start to end as comma-separated cave names.

When more than one policy is selected, each group of routes is preceded by a
"# <policy>" line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, rf, klogFlags)
			if err != nil {
				return err
			}
			g, err := loadGraph(cfg, args[0])
			if err != nil {
				return err
			}
			policies, err := cfg.Policies()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, p := range policies {
				if len(policies) > 1 {
					fmt.Fprintf(out, "# %s\n", p)
				}
				_, err := paths.Count(g, p,
					paths.WithContext(cmd.Context()),
					paths.WithWorkers(cfg.Workers),
					paths.WithOnPath(func(path []cave.NodeID) error {
						_, err := fmt.Fprintln(out, paths.FormatPath(g, path))
						return err
					}))
				if err != nil {
					return err
				}
			}

			return nil
		},
	}
	cmd.Flags().String("policy", "", `"single-visit", "one-extra-visit" or "both" (default from config)`)

	return cmd
}
