// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/ising/ising"
)

type pointReport struct {
	Temperature    float64 `json:"temperature"`
	Energy         float64 `json:"energy"`
	Magnetization  float64 `json:"magnetization"`
	HeatCapacity   float64 `json:"heat_capacity"`
	Susceptibility float64 `json:"susceptibility"`
	LogZ           float64 `json:"log_z"`
	Error          string  `json:"error,omitempty"`
}

type report struct {
	RunID              string        `json:"run_id"`
	Spins              int           `json:"spins"`
	Couplings          int           `json:"couplings"`
	Points             []pointReport `json:"points"`
	PeakHeatCapacity   *float64      `json:"peak_heat_capacity,omitempty"`
	PeakSusceptibility *float64      `json:"peak_susceptibility,omitempty"`
}

func fromSample(s ising.Sample, err error) pointReport {
	if err != nil {
		return pointReport{Temperature: s.Temperature, Error: err.Error()}
	}

	return pointReport{
		Temperature:    s.Temperature,
		Energy:         s.Energy,
		Magnetization:  s.Magnetization,
		HeatCapacity:   s.HeatCapacity,
		Susceptibility: s.Susceptibility,
		LogZ:           s.LogZ,
	}
}

func newReport(s *session, points []pointReport, res *ising.SweepResult) report {
	r := report{
		RunID:     s.runID,
		Spins:     s.model.Size(),
		Couplings: len(s.model.Couplings()),
		Points:    points,
	}
	if res == nil {
		return r
	}
	if t, ok := res.PeakHeatCapacity(); ok {
		r.PeakHeatCapacity = &t
	}
	if t, ok := res.PeakSusceptibility(); ok {
		r.PeakSusceptibility = &t
	}

	return r
}

func (s *session) write(r report) error {
	if s.json {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}

	fmt.Fprintf(s.out, "run %s: %d spins, %d couplings\n", r.RunID, r.Spins, r.Couplings)
	tw := tabwriter.NewWriter(s.out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "T\tE\tM\tC\tχ\t")
	for _, p := range r.Points {
		if p.Error != "" {
			fmt.Fprintf(tw, "%.4g\terror: %s\t\t\t\t\n", p.Temperature, p.Error)
			continue
		}
		fmt.Fprintf(tw, "%.4g\t%.8f\t%.8f\t%.8f\t%.8f\t\n",
			p.Temperature, p.Energy, p.Magnetization, p.HeatCapacity, p.Susceptibility)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if r.PeakHeatCapacity != nil {
		fmt.Fprintf(s.out, "peak C at T=%g\n", *r.PeakHeatCapacity)
	}
	if r.PeakSusceptibility != nil {
		fmt.Fprintf(s.out, "peak χ at T=%g\n", *r.PeakSusceptibility)
	}

	return nil
}
