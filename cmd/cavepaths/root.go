package main

import (
	"context"
	"flag"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavepaths/cave"
	"github.com/katalvlaran/cavepaths/config"
	"github.com/katalvlaran/cavepaths/edgelist"
	"github.com/katalvlaran/cavepaths/paths"
	"github.com/katalvlaran/cavepaths/store"
)

// appFs is the filesystem every input and config file is read from.
// Tests swap in an afero.MemMapFs.
var appFs afero.Fs = afero.NewOsFs()

// rootFlags are the persistent flags shared by every subcommand.
type rootFlags struct {
	configFile string
	cacheDir   string
	workers    int
	start      string
	end        string
}

// newRootCmd builds the command tree. klogFlags, when non-nil, is mounted on
// the persistent flag set so -v and friends work on every subcommand.
func newRootCmd(klogFlags *flag.FlagSet) *cobra.Command {
	rf := &rootFlags{}
	root := &cobra.Command{
		Use:   "cavepaths",
		Short: "Count routes through a cave system",
		Long: `Reads an undirected cave map, one "<name>-<name>" edge per line, and counts
the distinct routes from "start" to "end".

Caves named entirely in uppercase are big and may be revisited freely.
All other caves are small:
  single-visit     small caves at most once per route
  one-extra-visit  one small cave (never start or end) may be visited twice`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&rf.configFile, "config", "", "YAML run configuration")
	pf.StringVar(&rf.cacheDir, "cache-dir", "", "persist counts under this directory")
	pf.IntVar(&rf.workers, "workers", 1, "first-level search parallelism")
	pf.StringVar(&rf.start, "start", cave.StartName, "name of the start cave")
	pf.StringVar(&rf.end, "end", cave.EndName, "name of the end cave")
	if klogFlags != nil {
		pf.AddGoFlagSet(klogFlags)
	}

	root.AddCommand(
		newCountCmd(rf, klogFlags),
		newPathsCmd(rf, klogFlags),
		newInspectCmd(rf, klogFlags),
	)

	return root
}

// resolveConfig layers defaults, the config file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, rf *rootFlags, klogFlags *flag.FlagSet) (config.Config, error) {
	cfg := config.Default()
	if rf.configFile != "" {
		var err error
		if cfg, err = config.Load(appFs, rf.configFile); err != nil {
			return config.Config{}, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("cache-dir") {
		cfg.CacheDir = rf.cacheDir
	}
	if flags.Changed("workers") {
		cfg.Workers = rf.workers
	}
	if flags.Changed("start") {
		cfg.Start = rf.start
	}
	if flags.Changed("end") {
		cfg.End = rf.end
	}
	if flags.Changed("policy") {
		cfg.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("metrics-addr") {
		cfg.MetricsAddr, _ = flags.GetString("metrics-addr")
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	// -v on the command line wins over the file.
	if klogFlags != nil && cfg.Verbosity > 0 && !flags.Changed("v") {
		_ = klogFlags.Set("v", strconv.Itoa(cfg.Verbosity))
	}

	return cfg, nil
}

// loadGraph reads and builds the cave system at path.
func loadGraph(cfg config.Config, path string) (*cave.Graph, error) {
	edges, err := edgelist.Load(appFs, path)
	if err != nil {
		return nil, err
	}
	g, err := cave.Build(edges, cave.WithStartName(cfg.Start), cave.WithEndName(cfg.End))
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	klog.V(1).Infof("loaded %s: %d caves, %d passages", path, g.Len(), len(edges))

	return g, nil
}

// counter runs counts for one configuration, consulting the cache when one
// is configured.
type counter struct {
	cfg   config.Config
	cache *store.Store
}

func newCounter(cfg config.Config) (*counter, error) {
	c := &counter{cfg: cfg}
	if cfg.CacheDir != "" {
		s, err := store.Open(store.Options{Dir: cfg.CacheDir})
		if err != nil {
			return nil, err
		}
		c.cache = s
	}

	return c, nil
}

func (c *counter) Close() error {
	if c.cache == nil {
		return nil
	}

	return c.cache.Close()
}

// count returns the number of paths through g under p.
func (c *counter) count(ctx context.Context, g *cave.Graph, p paths.Policy) (int64, error) {
	fp := g.Fingerprint()
	if c.cache != nil {
		n, ok, err := c.cache.Get(fp, p)
		if err != nil {
			return 0, err
		}
		if ok {
			klog.V(1).Infof("%s: cache hit %016x → %s", p, fp, humanize.Comma(n))
			return n, nil
		}
	}

	n, err := paths.Count(g, p, paths.WithContext(ctx), paths.WithWorkers(c.cfg.Workers))
	if err != nil {
		return 0, errors.Wrapf(err, "count %s", p)
	}
	if c.cache != nil {
		if err := c.cache.Put(fp, p, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}
