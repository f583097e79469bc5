package builder_test

import (
	"fmt"

	"github.com/katalvlaran/ising/builder"
	"github.com/katalvlaran/ising/core"
)

// ExampleBuildGraph builds the antiferromagnetic six-site ring.
func ExampleBuildGraph() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Cycle(6),
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.VertexCount(), g.EdgeCount(), g.Stats().TotalWeight)
	// Output:
	// 6 6 12
}

// ExampleTorus builds a 3×3 periodic square lattice with ±J couplings.
func ExampleTorus() {
	g, _ := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{builder.WithSeed(1), builder.WithBimodalWeight(1)},
		builder.Torus(3, 3),
	)
	d, _ := g.Degree("1,1")
	fmt.Println(g.VertexCount(), g.EdgeCount(), d)
	// Output:
	// 9 18 4
}
