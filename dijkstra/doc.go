// Package dijkstra provides uniform-cost shortest paths on weighted
// *core.Graph values with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum distance from a single source vertex to
//     all vertices, optionally with the predecessor map.
//   - ShortestPath computes the minimum-cost path between two vertices and
//     stops as soon as the target is settled.
//   - Both delegate to the search package with a zero heuristic; the frontier
//     uses lazy decrease-key and discards stale entries on pop.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - ReturnPath: if enabled, Dijkstra returns a “predecessor” map.
//   - MaxDistance: stops exploration beyond a specified distance.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - WithContext / WithLogger: cancellation and debug logging of the underlying search.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E); O(E) worst-case heap entries under lazy decrease-key.
//
// API reference:
//
//	func Dijkstra(g *core.Graph, opts ...Option) (dist map[string]int64, prev map[string]string, err error)
//	func ShortestPath(g *core.Graph, opts ...Option) (search.Result[string, int64], error)
//
// Thread safety:
//
//   - core.Graph is internally locked, but mutating it during a run changes
//     what the search sees. Synchronize externally if you need stable answers.
//
// Example:
//
//	res, err := dijkstra.ShortestPath(g, dijkstra.Source("A"), dijkstra.Target("D"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost)
package dijkstra
