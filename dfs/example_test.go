package dfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/aoc2024/dfs"
)

// ExampleWalk demonstrates a depth-first traversal (post-order) on a diamond-shaped graph.
// Graph structure:
//
//	  A
//	 / \
//	B   C
//	 \ /
//	  D
//	 / \
//	E   F
//
// Starting at "A", expected post-order: E F D B C A
func ExampleWalk() {
	edges := map[string][]string{
		"A": {"B", "C"},
		"B": {"D"},
		"C": {"D"},
		"D": {"E", "F"},
	}
	res, err := dfs.Walk("A", func(v string) []string { return edges[v] })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(res.Order, " "))

	// Output:
	// E F D B C A
}

// ExampleTopologicalSort orders build steps so that each step follows its
// prerequisites.
func ExampleTopologicalSort() {
	edges := map[string][]string{
		"fetch":   {"compile"},
		"compile": {"test", "package"},
		"test":    {"package"},
	}
	order, err := dfs.TopologicalSort(
		[]string{"package", "test", "compile", "fetch"},
		func(v string) []string { return edges[v] },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(order, " → "))

	// Output:
	// fetch → compile → test → package
}
