// Package search_test provides runnable examples for the search engine.
package search_test

import (
	"fmt"

	"github.com/katalvlaran/pathseek/search"
)

// ExampleSearch_uniformCost finds the cheapest route through a small weighted
// digraph using no heuristic.
func ExampleSearch_uniformCost() {
	edges := map[string][]search.Edge[string, int]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 4}},
		"B": {{To: "C", Cost: 2}, {To: "D", Cost: 5}},
		"C": {{To: "D", Cost: 1}},
	}
	successors := search.FromEdges(func(s string) []search.Edge[string, int] { return edges[s] })
	isD := func(s string) bool { return s == "D" }

	res, err := search.Search("A", successors, isD)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Path, res.Cost)
	// Output: [A B C D] 4
}

// ExampleSearch_aStar walks a number line with steps of +1 and +3,
// guided by an admissible heuristic.
func ExampleSearch_aStar() {
	successors := search.FromEdges(func(n int) []search.Edge[int, int] {
		return []search.Edge[int, int]{{To: n + 1, Cost: 1}, {To: n + 3, Cost: 1}}
	})
	target := 10
	h := func(n int) int {
		if n >= target {
			return 0
		}
		return (target - n + 2) / 3
	}

	res, err := search.Search(0, successors, func(n int) bool { return n == target },
		search.WithHeuristic(h))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Cost, len(res.Path))
	// Output: 4 5
}

// ExampleSearch_noPath shows that an unreachable goal is a normal outcome.
func ExampleSearch_noPath() {
	successors := search.FromEdges(func(s string) []search.Edge[string, int] {
		if s == "A" {
			return []search.Edge[string, int]{{To: "B", Cost: 1}}
		}
		return nil
	})
	res, err := search.Search("A", successors, func(s string) bool { return s == "Z" })
	fmt.Println(res.Found, res.Status, err)
	// Output: false exhausted <nil>
}

// ExampleSearcher_Step drives the search one pop at a time.
func ExampleSearcher_Step() {
	successors := search.FromEdges(func(n int) []search.Edge[int, int] {
		return []search.Edge[int, int]{{To: n + 1, Cost: 1}}
	})
	s, err := search.NewSearcher(0, successors, func(n int) bool { return n == 2 })
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for !s.Status().Terminal() {
		st, _ := s.Step()
		fmt.Println(st)
	}
	fmt.Println(s.Result().Path)
	// Output:
	// running
	// running
	// running
	// succeeded
	// [0 1 2]
}
