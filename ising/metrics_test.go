package ising_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/ising/ising"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	a := ising.NewAverager(
		ising.WithMaxSpins(6),
		ising.WithMetrics(ising.NewMetrics(reg)),
	)

	_, err := a.Average(ringModel(t, 5, 1), 1)
	require.NoError(t, err)
	_, err = a.Average(ringModel(t, 6, 1), 2)
	require.NoError(t, err)
	_, err = a.Average(ringModel(t, 7, 1), 1)
	require.Error(t, err)
	_, err = a.Sweep(context.Background(), ringModel(t, 3, 1), []float64{-1, 1}, ising.WithCollectErrors())
	require.Error(t, err)

	expected := `
# HELP ising_averages_total Thermodynamic averages computed, by result.
# TYPE ising_averages_total counter
ising_averages_total{result="bad_temperature"} 1
ising_averages_total{result="capacity"} 1
ising_averages_total{result="ok"} 3
# HELP ising_configurations_total Spin configurations evaluated by successful averages.
# TYPE ising_configurations_total counter
ising_configurations_total 104
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"ising_averages_total", "ising_configurations_total"))
	assert.Equal(t, 1, testutil.CollectAndCount(reg, "ising_average_duration_seconds"))
}

// TestMetrics_Nil checks that a nil registerer and nil metrics are usable.
func TestMetrics_Nil(t *testing.T) {
	m := ising.NewMetrics(nil)
	_, err := ising.NewAverager(ising.WithMetrics(m)).Average(ringModel(t, 3, 1), 1)
	assert.NoError(t, err)

	_, err = ising.NewAverager(ising.WithMetrics(nil)).Average(ringModel(t, 3, 1), 1)
	assert.NoError(t, err)
}
