// Package ucs_test provides runnable examples demonstrating the search API.
// Each example is runnable via "go test -run Example", showing both code and
// expected output.
package ucs_test

import (
	"fmt"
	"strings"

	"github.com/dmkhr/cityway/core"
	"github.com/dmkhr/cityway/ucs"
)

// ExampleFindPath demonstrates that the cheapest route is not necessarily
// the direct edge.
func ExampleFindPath() {
	// 1) Build a triangle: the direct A—C edge costs 10, the detour 8.
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	// 2) Search A→C.
	res, err := ucs.FindPath(g, "A", "C")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Format the route the way the interactive tool does.
	fmt.Println("Way:", strings.Join(res.Path, " --> "))
	fmt.Println("Best way cost:", res.Cost)
	// Output:
	// Way: A --> B --> C
	// Best way cost: 8
}

// ExampleFindPath_noWay shows the negative outcome for a disconnected pair:
// a result, not an error.
func ExampleFindPath_noWay() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("C", "D", 1)

	res, err := ucs.FindPath(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if !res.Found {
		fmt.Println("No way found from A to D")
	}
	// Output: No way found from A to D
}

// ExampleAllPairs runs one search per unordered pair of known nodes.
func ExampleAllPairs() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 5)
	g.AddEdge("B", "C", 3)
	g.AddEdge("A", "C", 10)

	results, _ := ucs.AllPairs(g)
	for _, p := range results {
		fmt.Printf("%s to %s: cost %d via %s\n",
			p.Start, p.Goal, p.Cost, strings.Join(p.Path, " --> "))
	}
	// Output:
	// A to B: cost 5 via A --> B
	// A to C: cost 8 via A --> B --> C
	// B to C: cost 3 via B --> C
}
