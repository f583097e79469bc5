// Package builder constructs the lattices Ising models are usually studied on
// as weighted core.Graph values, one edge per coupling J_ij.
//
// A Constructor mutates a graph under a resolved builder configuration;
// BuildGraph creates the graph and applies constructors in order:
//
//	g, err := builder.BuildGraph(
//		[]core.GraphOption{core.WithWeighted()},
//		[]builder.BuilderOption{builder.WithConstantWeight(2)},
//		builder.Cycle(6),
//	)
//
// Topologies:
//   - Cycle(n)         – ring C_n, the periodic one-dimensional chain (n ≥ 3).
//   - Path(n)          – open chain P_n (n ≥ 2).
//   - Star(n), Wheel(n) – hub "Center" plus n-1 leaves, or plus a rim cycle.
//   - Complete(n)      – K_n, the mean-field (Sherrington–Kirkpatrick) geometry.
//   - Grid(r, c)       – open square lattice with IDs "r,c".
//   - Torus(r, c)      – square lattice with periodic boundaries (r, c ≥ 3).
//   - RandomSparse(n, p), RandomRegular(n, d) – random graphs; need WithSeed/WithRand.
//
// Couplings (WeightFn):
//   - DefaultWeightFn / ConstantWeightFn – uniform J (sign selects ferro or antiferro).
//   - UniformWeightFn, NormalWeightFn    – continuous disorder.
//   - BimodalWeightFn                    – ±J spin glass (Edwards–Anderson).
//   - ExponentialWeightFn                – positive, heavy-tailed bonds.
//
// Unweighted graphs receive weight 0 on every edge; the ising package rejects
// them because their edges carry no coupling.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Option constructors (WithX) panic on meaningless input;
// constructors themselves never panic.
package builder
