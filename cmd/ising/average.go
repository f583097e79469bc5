// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
)

func newAverageCmd(f *rootFlags) *cobra.Command {
	var temperature float64
	cmd := &cobra.Command{
		Use:   "average",
		Short: "Compute ⟨E⟩, ⟨M⟩, C and χ at one temperature",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := f.open(cmd)
			if err != nil {
				return err
			}
			defer s.close()

			sample, err := s.averager.AverageContext(cmd.Context(), s.model, temperature)
			if err != nil {
				return err
			}

			return s.write(newReport(s, []pointReport{fromSample(sample, nil)}, nil))
		},
	}
	cmd.Flags().Float64VarP(&temperature, "temperature", "t", 1, "temperature in units of J (k_B = 1)")

	return cmd
}
