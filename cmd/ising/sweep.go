// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ising/ising"
)

func newSweepCmd(f *rootFlags) *cobra.Command {
	var (
		temperatures  []float64
		sweepWorkers  int
		collectErrors bool
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate a list of temperatures and report the C and χ peaks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			temps := temperatures
			if len(temps) == 0 {
				if temps, err = s.run.Temperatures.Values(); err != nil {
					return err
				}
			}
			opts := s.run.SweepOptions()
			if cmd.Flags().Changed("sweep-workers") {
				if sweepWorkers < 1 {
					return fmt.Errorf("--sweep-workers must be ≥ 1, got %d", sweepWorkers)
				}
				opts = append(opts, ising.WithSweepWorkers(sweepWorkers))
			}
			if collectErrors {
				opts = append(opts, ising.WithCollectErrors())
			}

			res, sweepErr := s.averager.Sweep(cmd.Context(), s.model, temps, opts...)
			if res == nil {
				return sweepErr
			}
			points := make([]pointReport, len(res.Points))
			for i, p := range res.Points {
				points[i] = fromSample(p.Sample, p.Err)
			}
			if err := s.write(newReport(s, points, res)); err != nil {
				return errors.Join(sweepErr, err)
			}

			return sweepErr
		},
	}
	fl := cmd.Flags()
	fl.Float64SliceVarP(&temperatures, "temperatures", "T", nil, "explicit temperatures (overrides the run description)")
	fl.IntVar(&sweepWorkers, "sweep-workers", 1, "temperatures evaluated concurrently")
	fl.BoolVar(&collectErrors, "collect-errors", false, "keep going past failing temperatures")

	return cmd
}
