// Package dijkstra computes uniform-cost shortest paths on a *core.Graph by
// running the generic search engine with a zero heuristic.
//
// Notes on implementation choices:
//
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”
//     by filtering it out of the neighbor sequence.
//   - We stop exploring once the cheapest frontier entry exceeds MaxDistance.
//     With a zero heuristic entries pop in non-decreasing cost order, so every
//     vertex within the cap is already settled at that point.
//   - Negative weights cannot enter a core.Graph; the engine still checks each
//     step cost at the point of use.
package dijkstra

import (
	"errors"
	"iter"
	"math"

	"github.com/katalvlaran/pathseek/core"
	"github.com/katalvlaran/pathseek/search"
)

// errBeyondMax stops the search once the settled distance exceeds MaxDistance.
var errBeyondMax = errors.New("dijkstra: beyond MaxDistance")

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to every vertex of the weighted graph g.
//
// Returns:
//
//   - dist: map from vertex ID to minimum distance (math.MaxInt64 if unreachable
//     or beyond MaxDistance).
//   - prev: predecessor map if ReturnPath=true (nil otherwise). prev[v] == u
//     means the shortest path to v ends with the edge u→v. For the source and
//     for unreachable v, prev[v] == "".
//   - err:  error if inputs are invalid or the search was aborted.
//
// Preconditions and validation (in order):
//  1. Source string must be non-empty (ErrEmptySource).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must be weighted (ErrUnweightedGraph).
//  4. g must contain Source (ErrVertexNotFound).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := validate(g, cfg); err != nil {
		return nil, nil, err
	}
	if !g.HasVertex(cfg.Source) {
		return nil, nil, ErrVertexNotFound
	}

	// A goal that never matches drains every vertex within reach.
	never := func(string) bool { return false }
	s, err := search.NewSearcher(cfg.Source, successors(g, cfg), never, searchOptions(cfg)...)
	if err != nil {
		return nil, nil, err
	}
	for !s.Status().Terminal() {
		if _, err = s.Step(); err != nil && !errors.Is(err, errBeyondMax) {
			return nil, nil, err
		}
	}

	vertices := g.Vertices()
	dist := make(map[string]int64, len(vertices))
	var prev map[string]string
	if cfg.ReturnPath {
		prev = make(map[string]string, len(vertices))
	}
	for _, v := range vertices {
		dist[v] = math.MaxInt64
		if prev != nil {
			prev[v] = ""
		}
	}

	ledger := s.Ledger()
	for v, d := range ledger.All() {
		if d > cfg.MaxDistance {
			continue
		}
		dist[v] = d
		if prev != nil {
			if u, ok := ledger.Predecessor(v); ok {
				prev[v] = u
			}
		}
	}

	return dist, prev, nil
}

// ShortestPath returns the minimum-cost path from Options.Source to
// Options.Target in the weighted graph g.
//
// An absent source or target, a disconnected target, or a target beyond
// MaxDistance all yield Found=false with a nil error.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Target must be non-empty (ErrEmptyTarget).
//  3. g must be non-nil (ErrNilGraph).
//  4. g must be weighted (ErrUnweightedGraph).
func ShortestPath(g *core.Graph, opts ...Option) (search.Result[string, int64], error) {
	cfg := DefaultOptions("")
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Source == "" {
		return search.Result[string, int64]{}, ErrEmptySource
	}
	if cfg.Target == "" {
		return search.Result[string, int64]{}, ErrEmptyTarget
	}
	if err := validate(g, cfg); err != nil {
		return search.Result[string, int64]{}, err
	}

	// An absent endpoint has no path, even when Source == Target.
	if !g.HasVertex(cfg.Source) || !g.HasVertex(cfg.Target) {
		return search.Result[string, int64]{Status: search.Exhausted}, nil
	}

	target := cfg.Target
	res, err := search.Search(cfg.Source, successors(g, cfg),
		func(id string) bool { return id == target },
		searchOptions(cfg)...)
	if errors.Is(err, errBeyondMax) {
		// Nothing within the cap reached the target: report it as exhausted.
		return search.Result[string, int64]{Status: search.Exhausted, Stats: res.Stats}, nil
	}

	return res, err
}

// validate performs the checks shared by Dijkstra and ShortestPath.
func validate(g *core.Graph, cfg Options) error {
	if cfg.Source == "" {
		return ErrEmptySource
	}
	if g == nil {
		return ErrNilGraph
	}
	if !g.Weighted() {
		return ErrUnweightedGraph
	}

	return nil
}

// successors adapts g's neighbor sequence, dropping impassable edges.
func successors(g *core.Graph, cfg Options) search.Successors[string, int64] {
	threshold := cfg.InfEdgeThreshold
	return func(id string) iter.Seq2[string, int64] {
		return func(yield func(string, int64) bool) {
			for to, w := range g.Neighbors(id) {
				if w >= threshold {
					continue
				}
				if !yield(to, w) {
					return
				}
			}
		}
	}
}

// searchOptions translates Options into engine options.
func searchOptions(cfg Options) []search.Option[string, int64] {
	maxDist := cfg.MaxDistance
	out := []search.Option[string, int64]{
		search.WithContext[string, int64](cfg.Ctx),
		search.WithLogger[string, int64](cfg.Logger),
	}
	if maxDist < math.MaxInt64 {
		out = append(out, search.WithOnPop(func(_ string, d int64) error {
			if d > maxDist {
				return errBeyondMax
			}
			return nil
		}))
	}

	return out
}
