// Package search provides a generic best-first search engine over implicit
// graphs: A* when a heuristic is supplied, uniform-cost search (Dijkstra)
// when it is not.
//
// Overview:
//
//   - The graph is never materialized. The caller supplies a Successors
//     function yielding (state, step cost) pairs on demand, a GoalTest, and
//     optionally a Heuristic.
//   - States are any comparable Go type; costs are any integer or float kind.
//   - The engine returns the minimum-cost path from the start state to the
//     first goal state popped, or Found=false when no goal is reachable.
//
// Components:
//
//   - Frontier: min-heap ordered by (priority, cost, tie-break, insertion order).
//   - Ledger:   state → (best cost from start, predecessor); costs only decrease.
//   - Searcher: the expansion loop, exposed step by step; Search runs it to completion.
//
// Notes on implementation choices:
//
//   - Decrease-key is lazy: an improvement pushes a new entry and the older
//     one is discarded as stale when popped.
//   - The goal predicate is evaluated on pop, never on push. A start state that
//     already satisfies it yields the one-element path [start] at cost 0.
//   - A zero heuristic is just another heuristic; nothing special-cases it.
//   - Step costs and heuristic estimates are checked for negativity where
//     they are used, and violations abort the run with a sentinel error.
//
// Complexity:
//
//   - Time:  O((V + E) log E), V = states recorded, E = edges generated.
//   - Space: O(V + E); the frontier may hold one entry per improving edge.
//
// Error handling (sentinel errors):
//
//   - ErrNilSuccessors, ErrNilGoal:         missing capabilities.
//   - ErrNegativeCost, ErrNegativeHeuristic: contract violations by the caller.
//   - ErrExpansionLimit, ErrFrontierLimit:  resource caps set by options.
//   - ErrCanceled:                          the context passed via WithContext was done.
//
// An unreachable goal is not an error: Search returns Found=false and a nil error.
//
// Thread safety:
//
//   - Each call to Search (or NewSearcher) owns a fresh Frontier and Ledger.
//     Concurrent searches are safe as long as the caller's functions are.
//   - A single Searcher must not be stepped from multiple goroutines.
//
// Example:
//
//	res, err := search.Search(start, successors, isGoal,
//	    search.WithHeuristic(manhattan),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found {
//	    fmt.Println(res.Path, res.Cost)
//	}
package search
