// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/pathseek.
package gridgraph

import "fmt"

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

// Cell identifies a grid position by row and column. It is the search state.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Less orders cells row-major; usable as a search tie-break.
func (c Cell) Less(o Cell) bool {
	if c.Row != o.Row {
		return c.Row < o.Row
	}
	return c.Col < o.Col
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// WallThreshold is the minimum cell value considered a wall.
	WallThreshold int
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// OrthogonalCost is the cost of a N/E/S/W move.
	OrthogonalCost int
	// DiagonalCost is the cost of a diagonal move (Conn8 only).
	DiagonalCost int
}

// DefaultGridOptions returns a GridOptions with default settings:
// WallThreshold=1 (values ≥1 are walls), Conn=Conn4, unit move costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		WallThreshold:  1,
		Conn:           Conn4,
		OrthogonalCost: 1,
		DiagonalCost:   1,
	}
}

// GridGraph treats a 2D integer grid as an implicit graph. It is immutable once built.
// Width and Height define dimensions; CellValues[row][col] holds the original input value.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	Conn            Connectivity
	WallThreshold   int
	OrthogonalCost  int
	DiagonalCost    int
	neighborOffsets [][2]int
}
