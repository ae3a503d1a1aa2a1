package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavepaths/bfs"
	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/paths"
)

// errBigBig reports input that breaks the termination precondition.
var errBigBig = errors.New("inspect: big caves joined directly; route counts are unbounded")

func newInspectCmd(rf *rootFlags, klogFlags *flag.FlagSet) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print graph statistics and check the input is countable",
		Long: `Print cave and passage statistics, the adjacency stride, whether end can be
reached from start (with a fewest-passage route), the caves grouped by
distance from start, and any passages joining two big caves.

Exits non-zero when two big caves are joined directly: such a map has
infinitely many routes.`,
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

			big := 0
			for id := cave.NodeID(0); int(id) < g.Len(); id++ {
				if g.IsBig(id) {
					big++
				}
			}
			res, err := bfs.BFS(g, g.Start(), bfs.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "caves:       %d (%d big, %d small)\n", g.Len(), big, g.Len()-big)
			fmt.Fprintf(out, "passages:    %d\n", len(g.Edges()))
			fmt.Fprintf(out, "stride:      %d\n", g.Stride())
			fmt.Fprintf(out, "fingerprint: %016x\n", g.Fingerprint())
			if route, err := res.PathTo(g.End()); err == nil {
				fmt.Fprintf(out, "reachable:   yes (%d passages min)\n", res.Depth[g.End()])
				fmt.Fprintf(out, "shortest:    %s\n", paths.FormatPath(g, route))
			} else {
				fmt.Fprintln(out, "reachable:   no")
			}
			for d, layer := range res.Layers() {
				fmt.Fprintf(out, "layer %-5d  %s\n", d, paths.FormatPath(g, layer))
			}

			bb := g.BigBigEdges()
			if len(bb) == 0 {
				fmt.Fprintln(out, "big-big:     none")
				return nil
			}
			names := make([]string, len(bb))
			for i, e := range bb {
				names[i] = e.String()
			}
			fmt.Fprintf(out, "big-big:     %s\n", strings.Join(names, " "))

			return fmt.Errorf("%w: %s", errBigBig, strings.Join(names, ", "))
		},
	}
}
