package builder_test

import (
	"fmt"

	"github.com/ErikRauer/3DHypergraphGenerator/builder"
)

// ExampleHypergraphGenerator_Generate builds a small seeded batch.
func ExampleHypergraphGenerator_Generate() {
	gen, err := builder.NewRandomHypergraphGenerator(
		builder.WithSeed(42),
		builder.WithHyperarcProbabilities(0.5, 0.5),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	graphs, err := gen.Generate(2, 5, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, h := range graphs {
		// every arc is a hyperarc when the mix has no regular arcs
		fmt.Println(h.NumVertices(), h.NumArcs(), h.NumHyperArcs())
	}

	// Output:
	// 5 3 3
	// 5 3 3
}

// ExampleHypergraphGenerator_Generate_rejected shows the soft-reject path.
func ExampleHypergraphGenerator_Generate_rejected() {
	gen, _ := builder.NewRandomHypergraphGenerator(builder.WithSeed(1))
	graphs, err := gen.Generate(3, 2, 5)
	fmt.Println(len(graphs), err != nil)

	// Output:
	// 0 true
}
