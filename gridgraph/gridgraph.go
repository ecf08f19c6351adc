// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as an implicit graph for the search engine. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Configurable orthogonal and diagonal move costs
//   - Admissible grid heuristics (Manhattan, Chebyshev, Octile)
//   - A* shortest paths between two cells
//
// Cells with value < WallThreshold are passable; cells with value ≥ WallThreshold are walls.
// Diagonal moves never cut corners: both orthogonally adjacent cells must be passable.
package gridgraph

import (
	"iter"

	"github.com/katalvlaran/pathseek/search"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[row][col]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrBadMoveCost if move costs are not positive or DiagonalCost is outside
// [OrthogonalCost, 2·OrthogonalCost] (which would break Octile admissibility).
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	if opts.OrthogonalCost <= 0 {
		return nil, ErrBadMoveCost
	}
	if opts.Conn == Conn8 && (opts.DiagonalCost < opts.OrthogonalCost || opts.DiagonalCost > 2*opts.OrthogonalCost) {
		return nil, ErrBadMoveCost
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	// Precompute neighbor offsets based on connectivity, orthogonal first.
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 1}, {1, 1}, {1, -1}, {-1, -1}}
	} else {
		offsets = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		WallThreshold:   opts.WallThreshold,
		OrthogonalCost:  opts.OrthogonalCost,
		DiagonalCost:    opts.DiagonalCost,
		neighborOffsets: offsets,
	}, nil
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < gg.Height && c.Col >= 0 && c.Col < gg.Width
}

// Passable reports whether c is inside the grid and not a wall.
// Complexity: O(1).
func (gg *GridGraph) Passable(c Cell) bool {
	return gg.InBounds(c) && gg.CellValues[c.Row][c.Col] < gg.WallThreshold
}

// NeighborOffsets returns the precomputed (dRow, dCol) offsets.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors yields every passable cell reachable from c in one move with its
// move cost. Walls and out-of-bounds cells yield nothing.
func (gg *GridGraph) Neighbors(c Cell) iter.Seq2[Cell, int] {
	return func(yield func(Cell, int) bool) {
		if !gg.Passable(c) {
			return
		}
		for _, d := range gg.neighborOffsets {
			next := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !gg.Passable(next) {
				continue
			}
			cost := gg.OrthogonalCost
			if d[0] != 0 && d[1] != 0 {
				// No corner cutting.
				if !gg.Passable(Cell{Row: c.Row + d[0], Col: c.Col}) ||
					!gg.Passable(Cell{Row: c.Row, Col: c.Col + d[1]}) {
					continue
				}
				cost = gg.DiagonalCost
			}
			if !yield(next, cost) {
				return
			}
		}
	}
}

// Successors returns gg.Neighbors typed for the search engine.
func (gg *GridGraph) Successors() search.Successors[Cell, int] {
	return gg.Neighbors
}

// Index maps c to a row‑major index: Row*Width + Col.
// Complexity: O(1).
func (gg *GridGraph) Index(c Cell) int {
	return c.Row*gg.Width + c.Col
}

// Coordinate converts a row‑major index back to a Cell.
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{Row: idx / gg.Width, Col: idx % gg.Width}
}
