// Package pathseek is a small, dependency-light toolkit for best-first
// shortest-path search: one generic engine, plus the graph shapes it is most
// often pointed at.
//
// What is in the box?
//
//   - A generic A* / uniform-cost engine over any comparable state type
//   - A lazily decreased priority queue with deterministic tie-breaking
//   - A cost ledger that doubles as the path-reconstruction table
//   - A thread-safe weighted graph and a Dijkstra front-end on top of it
//   - Implicit 4- and 8-connected grids with admissible heuristics
//
// Under the hood, everything is organized under a few subpackages:
//
//	search/    — Frontier, Ledger, Searcher (step-wise) and Search (one-shot)
//	core/      — Graph, Edge and thread-safe primitives
//	dijkstra/  — single-source distances and point-to-point shortest paths
//	gridgraph/ — GridGraph, Cell, Manhattan/Chebyshev/Octile heuristics
//	cmd/pathseek — demo CLI running the built-in maze and digraph scenarios
//
// Quick ASCII example (weighted digraph, start A, goal D):
//
//	A ──1──▶ B
//	│       ╱│
//	4     2  5
//	▼   ╱    ▼
//	C ──1──▶ D
//
// Cheapest route: A→B→C→D with cost 4.
//
//	go get github.com/katalvlaran/pathseek
package pathseek
