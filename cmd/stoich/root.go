package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/stoich/internal/cache"
	"github.com/katalvlaran/stoich/internal/config"
	"github.com/katalvlaran/stoich/internal/logging"
	"github.com/katalvlaran/stoich/internal/metrics"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "stoich",
		Short: "Balance chemical equations with exact rational arithmetic",
		Long: `stoich finds the smallest positive integer coefficients that conserve every
element of a reaction such as "C3H8 + O2 -> CO2 + H2O".

Formulas are flat: element symbols with optional counts, no parentheses.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Path to a YAML configuration file")
	pf.String("log-level", "info", "Log level: debug, info, warn, error")
	pf.String("redis-addr", "", "Redis address for the result cache (disabled when empty)")
	pf.Int("redis-db", 0, "Redis database number")
	pf.Duration("redis-ttl", 24*time.Hour, "Expiry of cached results (0 keeps them forever)")

	root.AddCommand(
		newBalanceCmd(),
		newReplCmd(),
		newBatchCmd(),
		newExplainCmd(),
		newServeCmd(),
		newMCPCmd(),
		newVersionCmd(),
	)

	return root
}

// app bundles the resolved configuration and the shared components of a run.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	svc     *service.Service
	closers []func() error
}

// setup resolves configuration from cmd's flags and wires logger, metrics,
// cache and service. Callers must defer a.close().
func setup(ctx context.Context, cmd *cobra.Command) (*app, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, cmd.Flags())
	if err != nil {
		return nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.NewWithWriter(cmd.ErrOrStderr(), level)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &app{cfg: cfg, logger: logger, metrics: metrics.New(reg)}
	opts := []service.Option{
		service.WithLogger(logger),
		service.WithMetrics(a.metrics),
		service.WithVerify(cfg.Verify),
	}

	if cfg.Redis.Addr != "" {
		store, err := cache.New(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
			cache.WithPrefix(cfg.Redis.Prefix),
			cache.WithTTL(cfg.Redis.TTL),
		)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, store.Close)
		opts = append(opts, service.WithCache(store))
		logger.Debug("result cache enabled", "addr", cfg.Redis.Addr)
	}
	a.svc = service.New(opts...)

	return a, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("close failed", "error", err)
		}
	}
}

// isTerminal reports whether f is an interactive terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of w when it is a terminal, else def.
func terminalWidth(w io.Writer, def int) int {
	f, ok := w.(*os.File)
	if !ok {
		return def
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return def
	}

	return width
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "stoich %s\n", version)
		},
	}
}
