package gridgraph

import "github.com/katalvlaran/pathseek/search"

// Manhattan returns |Δrow| + |Δcol|, the exact 4-connected distance on an open grid.
func Manhattan(a, b Cell) int {
	return absInt(a.Row-b.Row) + absInt(a.Col-b.Col)
}

// Chebyshev returns max(|Δrow|, |Δcol|), the exact 8-connected distance with
// unit diagonal cost on an open grid.
func Chebyshev(a, b Cell) int {
	return max(absInt(a.Row-b.Row), absInt(a.Col-b.Col))
}

// Octile returns the exact 8-connected distance on an open grid with
// orthogonal cost ortho and diagonal cost diag:
// ortho·(dx+dy) + (diag − 2·ortho)·min(dx, dy).
func Octile(a, b Cell, ortho, diag int) int {
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	return ortho*(dr+dc) + (diag-2*ortho)*min(dr, dc)
}

// HeuristicTo returns the tightest admissible heuristic toward target for the
// grid's connectivity and move costs:
//
//   - Conn4: OrthogonalCost × Manhattan.
//   - Conn8: Octile with the grid's move costs (Chebyshev when they are equal).
func (gg *GridGraph) HeuristicTo(target Cell) search.Heuristic[Cell, int] {
	if gg.Conn == Conn8 {
		ortho, diag := gg.OrthogonalCost, gg.DiagonalCost
		return func(c Cell) int { return Octile(c, target, ortho, diag) }
	}
	ortho := gg.OrthogonalCost
	return func(c Cell) int { return ortho * Manhattan(c, target) }
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
