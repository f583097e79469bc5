package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/config"
	"github.com/katalvlaran/ising/ising"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())

	return out.String(), errOut.String(), err
}

func TestAverage_JSON(t *testing.T) {
	out, _, err := execute(t, "average", "--ring", "6", "--coupling", "2", "--temperature", "1", "--json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	_, err = uuid.Parse(r.RunID)
	assert.NoError(t, err)
	assert.Equal(t, 6, r.Spins)
	require.Len(t, r.Points, 1)
	assert.InDelta(t, -11.95991923, r.Points[0].Energy, 1e-8)
	assert.InDelta(t, 0.0, r.Points[0].Magnetization, 1e-12)
	assert.InDelta(t, 0.31925472, r.Points[0].HeatCapacity, 1e-8)
	assert.InDelta(t, 0.01202961, r.Points[0].Susceptibility, 1e-8)
	assert.Nil(t, r.PeakHeatCapacity)
}

func TestAverage_Table(t *testing.T) {
	out, _, err := execute(t, "average", "-t", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "6 spins, 6 couplings")
	assert.Contains(t, out, "-11.95991923")
}

func TestSweep_DefaultGridPeaks(t *testing.T) {
	out, _, err := execute(t, "sweep", "--sweep-workers", "4", "--workers", "2", "--json")
	require.NoError(t, err)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Points, config.DefaultSweepCount)
	for i := 1; i < len(r.Points); i++ {
		assert.Less(t, r.Points[i-1].Temperature, r.Points[i].Temperature, "input order kept")
	}
	require.NotNil(t, r.PeakHeatCapacity)
	require.NotNil(t, r.PeakSusceptibility)
	assert.InDelta(t, 2.2, *r.PeakHeatCapacity, 1e-9)
	assert.InDelta(t, 4.3, *r.PeakSusceptibility, 1e-9)
}

func TestSweep_CollectErrors(t *testing.T) {
	out, _, err := execute(t, "sweep", "-T", "1,-1,2", "--collect-errors", "--json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ising.ErrBadTemperature)

	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	require.Len(t, r.Points, 3)
	assert.Empty(t, r.Points[0].Error)
	assert.NotEmpty(t, r.Points[1].Error)
	assert.Empty(t, r.Points[2].Error)
}

func TestSweep_FailFast(t *testing.T) {
	out, _, err := execute(t, "sweep", "-T", "1,0")
	assert.ErrorIs(t, err, ising.ErrBadTemperature)
	assert.Empty(t, out)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	doc := `
spins: [a, b]
edges: [{from: a, to: b, weight: -1}]
temperatures: {list: [0.5, 1.0]}
max_spins: 2
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "sweep", "--config", path, "--json")
	require.NoError(t, err)
	var r report
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, 2, r.Spins)
	require.Len(t, r.Points, 2)
	assert.Equal(t, 0.5, r.Points[0].Temperature)

	_, _, err = execute(t, "average", "--config", path, "--max-spins", "1")
	assert.ErrorIs(t, err, ising.ErrCapacityExceeded)
}

func TestLogsAndMetrics(t *testing.T) {
	_, stderr, err := execute(t, "average", "--log-level", "debug", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, stderr, "msg=\"model loaded\"")
	assert.Contains(t, stderr, "msg=average")
	assert.Contains(t, stderr, "name=ising_configurations_total")
	assert.Contains(t, stderr, "run_id=")
	assert.Contains(t, stderr, "clusters=1")
}

func TestErrors(t *testing.T) {
	_, _, err := execute(t, "average", "--log-level", "loud")
	assert.Error(t, err)

	_, _, err = execute(t, "average", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "average", "--ring", "2")
	assert.Error(t, err)

	_, _, err = execute(t, "sweep", "--sweep-workers", "0")
	assert.Error(t, err)
}
