package builder_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/ising/builder"
	"github.com/katalvlaran/ising/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bondKey identifies an undirected edge by its sorted endpoints.
type bondKey struct{ U, V string }

func key(u, v string) bondKey {
	if u > v {
		u, v = v, u
	}
	return bondKey{u, v}
}

// bonds returns the weight of every edge in g keyed by endpoints.
func bonds(g *core.Graph) map[bondKey]float64 {
	m := make(map[bondKey]float64)
	for _, e := range g.Edges() {
		m[key(e.From, e.To)] += e.Weight
	}
	return m
}

func weighted() []core.GraphOption { return []core.GraphOption{core.WithWeighted()} }

// TestConstructors_Topology checks vertex/edge counts and sample bonds.
func TestConstructors_Topology(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
		has   [][2]string
	}{
		{"Cycle(5)", builder.Cycle(5), 5, 5, [][2]string{{"0", "1"}, {"4", "0"}}},
		{"Path(4)", builder.Path(4), 4, 3, [][2]string{{"0", "1"}, {"2", "3"}}},
		{"Star(4)", builder.Star(4), 4, 3, [][2]string{{"Center", "1"}, {"Center", "3"}}},
		{"Wheel(5)", builder.Wheel(5), 5, 8, [][2]string{{"0", "1"}, {"3", "0"}, {"Center", "2"}}},
		{"Complete(4)", builder.Complete(4), 4, 6, [][2]string{{"0", "3"}, {"1", "2"}}},
		{"Complete(1)", builder.Complete(1), 1, 0, nil},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7, [][2]string{{"0,0", "0,1"}, {"0,2", "1,2"}}},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0, nil},
		{"Grid(11,2)", builder.Grid(11, 2), 22, 31, [][2]string{{"00,0", "00,1"}, {"09,1", "10,1"}}},
		{"Torus(3,4)", builder.Torus(3, 4), 12, 24, [][2]string{{"0,3", "0,0"}, {"2,1", "0,1"}}},
		{"RandomSparse_p0", builder.RandomSparse(5, 0), 5, 0, nil},
		{"RandomSparse_p1", builder.RandomSparse(5, 1), 5, 10, [][2]string{{"0", "4"}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(weighted(), nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())

			b := bonds(g)
			for _, p := range tc.has {
				w, ok := b[key(p[0], p[1])]
				assert.True(t, ok, "missing bond %s–%s", p[0], p[1])
				assert.Equal(t, builder.DefaultEdgeWeight, w)
			}
		})
	}
}

func TestTorus_Regular(t *testing.T) {
	g, err := builder.BuildGraph(weighted(), nil, builder.Torus(4, 5))
	require.NoError(t, err)
	for _, id := range g.Vertices() {
		d, err := g.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 4, d, id)
	}
}

// TestGrid_PaddedIDsSortRowMajor checks that sorted lattice IDs follow
// row-major construction order once an index needs two digits.
func TestGrid_PaddedIDsSortRowMajor(t *testing.T) {
	g, err := builder.BuildGraph(weighted(), nil, builder.Grid(11, 12))
	require.NoError(t, err)

	ids := g.Vertices()
	sort.Strings(ids)
	require.Len(t, ids, 11*12)
	for i, id := range ids {
		assert.Equal(t, fmt.Sprintf("%02d,%02d", i/12, i%12), id)
	}
}

func TestConstructors_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Torus(2,3)", builder.Torus(2, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,..)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(p<0)", builder.RandomSparse(3, -0.1), builder.ErrInvalidProbability},
		{"RandomSparse(p>1)", builder.RandomSparse(3, 1.1), builder.ErrInvalidProbability},
		{"RandomSparse(no rng)", builder.RandomSparse(3, 0.5), builder.ErrNeedRandSource},
		{"RandomRegular(odd)", builder.RandomRegular(5, 3), builder.ErrTooFewVertices},
		{"RandomRegular(d≥n)", builder.RandomRegular(4, 4), builder.ErrTooFewVertices},
		{"RandomRegular(no rng)", builder.RandomRegular(4, 2), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := builder.BuildGraph(weighted(), nil, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestUnweighted_ZeroCouplings checks that unweighted graphs carry weight 0.
func TestUnweighted_ZeroCouplings(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(3)}, builder.Cycle(4))
	require.NoError(t, err)
	for _, e := range g.Edges() {
		assert.Zero(t, e.Weight)
	}
}

func TestRandom_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(42), builder.WithNormalWeight(0, 1)}

	a, err := builder.BuildGraph(weighted(), opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	opts = []builder.BuilderOption{builder.WithSeed(42), builder.WithNormalWeight(0, 1)}
	b, err := builder.BuildGraph(weighted(), opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	assert.Equal(t, bonds(a), bonds(b))

	r, err := builder.BuildGraph(weighted(), []builder.BuilderOption{builder.WithSeed(7)}, builder.RandomRegular(10, 3))
	require.NoError(t, err)
	assert.Equal(t, 15, r.EdgeCount())
	for _, id := range r.Vertices() {
		d, err := r.Degree(id)
		require.NoError(t, err)
		assert.Equal(t, 3, d, id)
	}

	z, err := builder.BuildGraph(weighted(), []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(6, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, z.VertexCount())
	assert.Zero(t, z.EdgeCount())
}

// TestWeights_Sequence checks that couplings are drawn in emission order.
func TestWeights_Sequence(t *testing.T) {
	next := 0.0
	fn := builder.WeightFn(func(_ *rand.Rand) float64 {
		next++
		return next
	})
	g, err := builder.BuildGraph(weighted(), []builder.BuilderOption{builder.WithWeightFn(fn)}, builder.Path(4))
	require.NoError(t, err)
	b := bonds(g)
	assert.Equal(t, 1.0, b[key("0", "1")])
	assert.Equal(t, 2.0, b[key("1", "2")])
	assert.Equal(t, 3.0, b[key("2", "3")])
}

func TestApply_Overlay(t *testing.T) {
	g := core.NewGraph(core.WithWeighted(), core.WithMultiEdges())
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithConstantWeight(-1)}, builder.Cycle(4)))
	require.NoError(t, builder.Apply(g, []builder.BuilderOption{builder.WithConstantWeight(0.5)}, builder.Complete(4)))

	b := bonds(g)
	assert.Equal(t, 10, g.EdgeCount())
	assert.Equal(t, -0.5, b[key("0", "1")])
	assert.Equal(t, 0.5, b[key("0", "2")])

	assert.ErrorIs(t, builder.Apply(nil, nil, builder.Cycle(3)), builder.ErrConstructFailed)
}

func TestIDSchemes_Applied(t *testing.T) {
	g, err := builder.BuildGraph(weighted(), []builder.BuilderOption{builder.WithPaddedIDs(2)}, builder.Cycle(11))
	require.NoError(t, err)
	ids := g.Vertices()
	require.Len(t, ids, 11)
	for i, id := range ids {
		assert.Equal(t, fmt.Sprintf("%02d", i), id)
	}
}
