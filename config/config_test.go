package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ising/config"
	"github.com/katalvlaran/ising/ising"
)

const ringYAML = `
lattice:
  kind: cycle
  size: 6
  coupling: 2.0
temperatures:
  list: [1.0]
workers: 2
`

func TestParse_Ring(t *testing.T) {
	r, err := config.Parse([]byte(ringYAML))
	require.NoError(t, err)

	m, err := r.Model()
	require.NoError(t, err)
	assert.Equal(t, 6, m.Size())
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5"}, m.Labels())
	assert.Len(t, m.Couplings(), 6)

	temps, err := r.Temperatures.Values()
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, temps)

	s, err := r.Averager().Average(m, temps[0])
	require.NoError(t, err)
	assert.InDelta(t, -11.95991923, s.Energy, 1e-8)
	assert.InDelta(t, 0.31925472, s.HeatCapacity, 1e-8)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"Empty", ``, config.ErrInvalid},
		{"UnknownKey", "lattice: {kind: cycle, size: 4, coupling: 1}\ntemperature: 1\n", config.ErrInvalid},
		{"BadKind", "lattice: {kind: hexagon, size: 4, coupling: 1}\n", config.ErrInvalid},
		{"BadProbability", "lattice: {kind: random_sparse, size: 4, probability: 1.5, coupling: 1}\n", config.ErrInvalid},
		{"MaxSpinsTooLarge", "lattice: {kind: cycle, size: 4, coupling: 1}\nmax_spins: 64\n", config.ErrInvalid},
		{"DuplicateSpin", "spins: [a, a]\n", config.ErrInvalid},
		{"Neither", "workers: 2\n", config.ErrSystemChoice},
		{"Both", "lattice: {kind: cycle, size: 4, coupling: 1}\nspins: [a]\n", config.ErrSystemChoice},
		{"EdgesWithLattice", "lattice: {kind: cycle, size: 4, coupling: 1}\nedges: [{from: a, to: b, weight: 1}]\n", config.ErrSystemChoice},
		{"MissingCoupling", "lattice: {kind: cycle, size: 4}\n", ising.ErrWeightRequired},
		{"UniformInverted", "lattice: {kind: cycle, size: 4, distribution: uniform, min: 2, max: 1}\n", config.ErrInvalid},
		{"ExponentialZeroRate", "lattice: {kind: cycle, size: 4, distribution: exponential}\n", config.ErrInvalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ValidatorDetail(t *testing.T) {
	_, err := config.Parse([]byte("lattice: {kind: hexagon, size: 4, coupling: 1}\n"))
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "Kind", verrs[0].Field())
	assert.Equal(t, "oneof", verrs[0].Tag())
}

func TestModel_Explicit(t *testing.T) {
	doc := `
spins: [a, b, c]
edges:
  - {from: a, to: b, weight: 1.0}
  - {from: a, to: b, weight: 0.5}
  - {from: b, to: c, weight: -1.0}
`
	r, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	m, err := r.Model()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, m.Labels())
	assert.Len(t, m.Couplings(), 3)

	// All spins up: 1.0 + 0.5 - 1.0.
	up, err := ising.NewBitString(7, 3)
	require.NoError(t, err)
	e, err := ising.Energy(up, m)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, e, 1e-12)
}

func TestModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"MissingWeight", "spins: [a, b]\nedges: [{from: a, to: b}]\n", ising.ErrWeightRequired},
		{"UnknownEndpoint", "spins: [a, b]\nedges: [{from: a, to: z, weight: 1}]\n", config.ErrUnknownSpin},
		{"UnknownVacancy", "lattice: {kind: cycle, size: 4, coupling: 1}\nvacancies: [\"9\"]\n", config.ErrUnknownSpin},
		{"SelfLoop", "spins: [a]\nedges: [{from: a, to: a, weight: 1}]\n", nil},
		{"TooSmallCycle", "lattice: {kind: cycle, size: 2, coupling: 1}\n", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := config.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = r.Model()
			require.Error(t, err)
			if tc.want != nil {
				assert.ErrorIs(t, err, tc.want)
			}
		})
	}
}

func TestModel_Vacancies(t *testing.T) {
	r, err := config.Parse([]byte("lattice: {kind: cycle, size: 6, coupling: 1}\nvacancies: [\"3\"]\n"))
	require.NoError(t, err)
	m, err := r.Model()
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "4", "5"}, m.Labels())
	assert.Len(t, m.Couplings(), 4, "removing one ring site leaves an open chain")
}

func TestModel_PaddedIDsKeepConstructionOrder(t *testing.T) {
	r := config.Ring(12, 1)
	m, err := r.Model()
	require.NoError(t, err)
	labels := m.Labels()
	assert.Equal(t, "00", labels[0])
	assert.Equal(t, "02", labels[2])
	assert.Equal(t, "11", labels[11])
}

func TestModel_GridLabelsRowMajor(t *testing.T) {
	r, err := config.Parse([]byte("lattice: {kind: grid, rows: 11, cols: 2, coupling: 1}\n"))
	require.NoError(t, err)
	m, err := r.Model()
	require.NoError(t, err)
	labels := m.Labels()
	require.Len(t, labels, 22)
	assert.Equal(t, "00,0", labels[0])
	assert.Equal(t, "01,0", labels[2])
	assert.Equal(t, "02,0", labels[4])
	assert.Equal(t, "10,1", labels[21])
}

func TestModel_SeededDeterminism(t *testing.T) {
	doc := "lattice: {kind: torus, rows: 3, cols: 3, distribution: bimodal, coupling: 1, seed: 7}\n"
	a, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	b, err := config.Parse([]byte(doc))
	require.NoError(t, err)

	ma, err := a.Model()
	require.NoError(t, err)
	mb, err := b.Model()
	require.NoError(t, err)

	assert.Equal(t, 9, ma.Size())
	assert.Len(t, ma.Couplings(), 18)
	assert.Equal(t, ma.Couplings(), mb.Couplings())
	for _, c := range ma.Couplings() {
		assert.Contains(t, []float64{-1, 1}, c.Weight)
	}
}

func TestModel_Distributions(t *testing.T) {
	for _, doc := range []string{
		"lattice: {kind: complete, size: 5, distribution: uniform, min: -1, max: 1, seed: 3}\n",
		"lattice: {kind: path, size: 5, distribution: normal, mean: 0, stddev: 1, seed: 3}\n",
		"lattice: {kind: star, size: 5, distribution: exponential, rate: 2, seed: 3}\n",
		"lattice: {kind: wheel, size: 5, coupling: -1}\n",
		"lattice: {kind: grid, rows: 2, cols: 3, coupling: 1}\n",
		"lattice: {kind: random_sparse, size: 8, probability: 0.5, coupling: 1, seed: 1}\n",
		"lattice: {kind: random_regular, size: 8, degree: 3, coupling: 1, seed: 1}\n",
	} {
		r, err := config.Parse([]byte(doc))
		require.NoError(t, err, doc)
		m, err := r.Model()
		require.NoError(t, err, doc)
		assert.Positive(t, m.Size(), doc)
	}
}

func TestTemperatures_Values(t *testing.T) {
	def, err := config.Temperatures{}.Values()
	require.NoError(t, err)
	require.Len(t, def, config.DefaultSweepCount)
	assert.InDelta(t, 0.1, def[0], 1e-12)
	assert.InDelta(t, 9.9, def[len(def)-1], 1e-12)

	lin, err := config.Temperatures{Start: 1, Stop: 2, Count: 3}.Values()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{1, 1.5, 2}, lin, 1e-12)

	step, err := config.Temperatures{Step: 0.5, Count: 2}.Values()
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.5, 1}, step, 1e-12)

	_, err = config.Temperatures{Start: 1, Stop: 2}.Values()
	assert.ErrorIs(t, err, ising.ErrNoTemperatures)
}

func TestRun_AveragerAndSweepOptions(t *testing.T) {
	r, err := config.Parse([]byte("lattice: {kind: cycle, size: 6, coupling: 1}\nmax_spins: 4\nsweep_workers: 2\ncollect_errors: true\n"))
	require.NoError(t, err)
	assert.Equal(t, 4, r.Averager().MaxSpins())
	assert.Len(t, r.SweepOptions(), 2)

	m, err := r.Model()
	require.NoError(t, err)
	_, err = r.Averager().Average(m, 1)
	assert.ErrorIs(t, err, ising.ErrCapacityExceeded)

	assert.Equal(t, 10, r.Averager(ising.WithMaxSpins(10)).MaxSpins())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ring.yaml")
	require.NoError(t, os.WriteFile(path, []byte(ringYAML), 0o644))

	r, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Workers)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRun_Clusters(t *testing.T) {
	doc := `
spins: [a, b, c, d]
edges:
  - {from: a, to: b, weight: 1}
  - {from: c, to: d, weight: 0}
`
	r, err := config.Parse([]byte(doc))
	require.NoError(t, err)
	cs, err := r.Clusters()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d"}}, cs)

	cs, err = config.Ring(6, 1).Clusters()
	require.NoError(t, err)
	assert.Len(t, cs, 1)
}
