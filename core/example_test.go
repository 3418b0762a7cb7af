// SPDX-License-Identifier: MIT
package core_test

import (
	"fmt"

	"github.com/katalvlaran/grough/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an undirected graph with int vertices and int weights:
	g := core.NewGraph[int, int]()

	// 2) Add edges (auto-adds vertices 1, 2, 3):
	g.AddEdge(1, 2, 5)
	g.AddEdge(2, 3, 4)
	g.AddEdge(3, 1, 3)

	// 3) Inspect vertices and edges:
	fmt.Println("Vertices:", g.VertexList())
	fmt.Println("Edge 2-1 exists?", g.HasEdge(2, 1))
	w, _ := g.Weight(3, 1)
	fmt.Println("Weight 3-1:", w)

	// 4) Remove a vertex and its edges:
	g.RemoveVertex(2)
	fmt.Println("After removing 2:", g.VertexList(), "size", g.Size())

	// Output:
	// Vertices: [1 2 3]
	// Edge 2-1 exists? true
	// Weight 3-1: 3
	// After removing 2: [1 3] size 1
}

// ExampleGraph_Edges shows canonical edge enumeration.
func ExampleGraph_Edges() {
	g := core.NewGraph[string, float64]()
	g.AddEdge("B", "A", 1.5)
	g.AddEdge("C", "A", 0.5)

	for e := range g.Edges() {
		fmt.Printf("%s-%s %.1f\n", e.From, e.To, e.Weight)
	}

	// Output:
	// A-B 1.5
	// A-C 0.5
}
