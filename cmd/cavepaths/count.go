package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cavepaths/config"
)

func newCountCmd(rf *rootFlags, klogFlags *flag.FlagSet) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "count FILE",
		Short: "Print the number of start→end routes",
		Long: `Print the number of distinct routes from start to end.

With --policy both (the default) the single-visit count is printed first and
the one-extra-visit count second, one per line.

Examples:
  cavepaths count caves.txt
  cavepaths count --policy extra --workers 8 caves.txt
  cavepaths count --watch --metrics-addr :9090 caves.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, rf, klogFlags)
			if err != nil {
				return err
			}
			c, err := newCounter(cfg)
			if err != nil {
				return err
			}
			defer c.Close()

			if !watch {
				return runCount(cmd.Context(), cmd.OutOrStdout(), c, args[0])
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchCount(ctx, cmd.OutOrStdout(), c, args[0])
		},
	}
	cmd.Flags().String("policy", config.PolicyBoth, `"single-visit", "one-extra-visit" or "both"`)
	cmd.Flags().BoolVar(&watch, "watch", false, "re-count whenever FILE changes")
	cmd.Flags().String("metrics-addr", "", "serve prometheus metrics on this address while watching")

	return cmd
}

// runCount prints one count per selected policy.
func runCount(ctx context.Context, out io.Writer, c *counter, path string) error {
	g, err := loadGraph(c.cfg, path)
	if err != nil {
		return err
	}
	policies, err := c.cfg.Policies()
	if err != nil {
		return err
	}
	for _, p := range policies {
		n, err := c.count(ctx, g, p)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, n)
	}

	return nil
}

// watchCount counts once, then again after every change to path, until ctx
// is done. Load and count errors are logged, not fatal: the next save may
// fix the file.
func watchCount(ctx context.Context, out io.Writer, c *counter, path string) error {
	if c.cfg.MetricsAddr != "" {
		srv := &http.Server{Addr: c.cfg.MetricsAddr, Handler: metricsMux(), ReadHeaderTimeout: 5 * time.Second}
		go func() {
			klog.Infof("serving metrics on %s/metrics", c.cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				klog.Errorf("metrics server: %v", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "watch")
	}
	defer w.Close()

	// Watch the directory: editors often replace the file instead of writing it.
	target := filepath.Clean(path)
	if err := w.Add(filepath.Dir(target)); err != nil {
		return errors.Wrapf(err, "watch %s", path)
	}

	recount := func() {
		if err := runCount(ctx, out, c, path); err != nil {
			klog.Errorf("%v", err)
		}
	}
	recount()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			klog.V(1).Infof("%s changed (%s)", path, ev.Op)
			recount()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Warningf("watch: %v", err)
		}
	}
}

func metricsMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	return mux
}
