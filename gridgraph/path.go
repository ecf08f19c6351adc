package gridgraph

import (
	"strings"

	"github.com/katalvlaran/pathseek/search"
)

// ShortestPath finds a minimum-cost path from one cell to another with A*,
// guided by HeuristicTo(to). Extra search options are applied after the
// defaults, so WithHeuristic overrides the grid heuristic (pass
// search.ZeroHeuristic for plain uniform-cost search).
//
// Out-of-bounds or wall endpoints, and disconnected cells, yield Found=false
// with a nil error.
//
// Complexity: O(W·H·log(W·H)) worst case.
func (gg *GridGraph) ShortestPath(from, to Cell, opts ...search.Option[Cell, int]) (search.Result[Cell, int], error) {
	// A wall or off-grid cell is not a state, even when from == to.
	if !gg.Passable(from) || !gg.Passable(to) {
		return search.Result[Cell, int]{Status: search.Exhausted}, nil
	}
	all := make([]search.Option[Cell, int], 0, len(opts)+1)
	all = append(all, search.WithHeuristic(gg.HeuristicTo(to)))
	all = append(all, opts...)

	return search.Search(from, gg.Successors(), func(c Cell) bool { return c == to }, all...)
}

// Render draws the grid as text: '#' for walls, '.' for free cells and '*'
// for cells on path. Rows are separated by newlines.
func (gg *GridGraph) Render(path []Cell) string {
	onPath := make([]bool, gg.Width*gg.Height)
	for _, c := range path {
		if gg.InBounds(c) {
			onPath[gg.Index(c)] = true
		}
	}

	var sb strings.Builder
	sb.Grow((gg.Width + 1) * gg.Height)
	for r := 0; r < gg.Height; r++ {
		for col := 0; col < gg.Width; col++ {
			c := Cell{Row: r, Col: col}
			switch {
			case onPath[gg.Index(c)]:
				sb.WriteByte('*')
			case !gg.Passable(c):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
