// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/ising/config"
	"github.com/katalvlaran/ising/ising"
)

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	ring       int
	coupling   float64
	maxSpins   int
	workers    int
	logLevel   string
	json       bool
	metrics    bool
}

// session is what a subcommand needs after the persistent flags are resolved.
type session struct {
	runID    string
	run      *config.Run
	model    *ising.Model
	averager *ising.Averager
	logger   *slog.Logger
	registry *prometheus.Registry
	out      io.Writer
	json     bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:           "ising",
		Short:         "Exact Ising-model thermodynamics by full enumeration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.configPath, "config", "c", "", "YAML run description")
	pf.IntVar(&f.ring, "ring", 6, "ring size when no --config is given")
	pf.Float64Var(&f.coupling, "coupling", 2, "uniform ring coupling J when no --config is given")
	pf.IntVar(&f.maxSpins, "max-spins", 0, "enumeration capacity (overrides max_spins)")
	pf.IntVar(&f.workers, "workers", 0, "enumeration workers per average (overrides workers)")
	pf.StringVar(&f.logLevel, "log-level", "warn", "debug, info, warn or error")
	pf.BoolVar(&f.json, "json", false, "print JSON instead of a table")
	pf.BoolVar(&f.metrics, "metrics", false, "log collected metrics on exit")

	root.AddCommand(newAverageCmd(f), newSweepCmd(f))

	return root
}

// open resolves the persistent flags into a ready session.
func (f *rootFlags) open(cmd *cobra.Command) (*session, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(f.logLevel)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}
	runID := uuid.NewString()
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})).
		With("run_id", runID)

	var run *config.Run
	if f.configPath != "" {
		r, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		run = r
	} else {
		run = config.Ring(f.ring, f.coupling)
	}
	if cmd.Flags().Changed("max-spins") {
		run.MaxSpins = f.maxSpins
	}
	if cmd.Flags().Changed("workers") {
		run.Workers = f.workers
	}

	m, err := run.Model()
	if err != nil {
		return nil, err
	}
	clusters, err := run.Clusters()
	if err != nil {
		return nil, err
	}

	opts := []ising.Option{ising.WithLogger(logger)}
	var reg *prometheus.Registry
	if f.metrics {
		reg = prometheus.NewRegistry()
		opts = append(opts, ising.WithMetrics(ising.NewMetrics(reg)))
	}
	logger.Info("model loaded", "spins", m.Size(), "couplings", len(m.Couplings()), "clusters", len(clusters))

	return &session{
		runID:    runID,
		run:      run,
		model:    m,
		averager: run.Averager(opts...),
		logger:   logger,
		registry: reg,
		out:      cmd.OutOrStdout(),
		json:     f.json,
	}, nil
}

// close logs every collected sample when --metrics is set.
func (s *session) close() {
	if s.registry == nil {
		return
	}
	families, err := s.registry.Gather()
	if err != nil {
		s.logger.Error("gather metrics", "err", err)
		return
	}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			attrs := []any{"name", mf.GetName()}
			for _, lp := range metric.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				h := metric.GetHistogram()
				attrs = append(attrs, "count", h.GetSampleCount(), "sum", h.GetSampleSum())
			}
			s.logger.Warn("metric", attrs...)
		}
	}
}
