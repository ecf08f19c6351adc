package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathseek/gridgraph"
	"github.com/katalvlaran/pathseek/search"
)

// referenceMaze is the 5×5 maze with walls in row 1 (cols 1–3),
// row 3 (cols 0–1) and at (4,3).
func referenceMaze() [][]int {
	return [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 0, 0, 0},
		{0, 0, 0, 1, 0},
	}
}

func mustGrid(t *testing.T, values [][]int, opts gridgraph.GridOptions) *gridgraph.GridGraph {
	t.Helper()
	gg, err := gridgraph.NewGridGraph(values, opts)
	require.NoError(t, err)
	return gg
}

type step struct {
	to   gridgraph.Cell
	cost int
}

func neighbors(gg *gridgraph.GridGraph, c gridgraph.Cell) []step {
	var out []step
	for n, w := range gg.Neighbors(c) {
		out = append(out, step{n, w})
	}
	return out
}

func TestNewGridGraph_Errors(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	_, err := gridgraph.NewGridGraph(nil, opts)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.NewGridGraph([][]int{{}}, opts)
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)
	_, err = gridgraph.NewGridGraph([][]int{{0, 0}, {0}}, opts)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	bad := opts
	bad.OrthogonalCost = 0
	_, err = gridgraph.NewGridGraph([][]int{{0}}, bad)
	assert.ErrorIs(t, err, gridgraph.ErrBadMoveCost)

	bad = opts
	bad.Conn = gridgraph.Conn8
	bad.DiagonalCost = 3
	_, err = gridgraph.NewGridGraph([][]int{{0}}, bad)
	assert.ErrorIs(t, err, gridgraph.ErrBadMoveCost)
}

func TestNewGridGraph_DeepCopy(t *testing.T) {
	values := referenceMaze()
	gg := mustGrid(t, values, gridgraph.DefaultGridOptions())
	values[0][0] = 1
	assert.True(t, gg.Passable(gridgraph.Cell{Row: 0, Col: 0}))
	assert.Equal(t, 5, gg.Width)
	assert.Equal(t, 5, gg.Height)
}

func TestPassableAndIndex(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	assert.False(t, gg.Passable(gridgraph.Cell{Row: 1, Col: 1}), "wall")
	assert.False(t, gg.Passable(gridgraph.Cell{Row: -1, Col: 0}), "out of bounds")
	assert.True(t, gg.Passable(gridgraph.Cell{Row: 4, Col: 4}))

	c := gridgraph.Cell{Row: 3, Col: 2}
	assert.Equal(t, 17, gg.Index(c))
	assert.Equal(t, c, gg.Coordinate(17))
}

func TestNeighbors_Conn4(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	assert.Equal(t, []step{
		{gridgraph.Cell{Row: 0, Col: 1}, 1},
		{gridgraph.Cell{Row: 1, Col: 0}, 1},
	}, neighbors(gg, gridgraph.Cell{Row: 0, Col: 0}))
	assert.Nil(t, neighbors(gg, gridgraph.Cell{Row: 1, Col: 1}), "walls have no neighbors")
	assert.Nil(t, neighbors(gg, gridgraph.Cell{Row: 9, Col: 9}))
}

func TestNeighbors_Conn8NoCornerCutting(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	opts.OrthogonalCost, opts.DiagonalCost = 10, 14
	gg := mustGrid(t, referenceMaze(), opts)

	// From (2,2): (3,3) is reachable diagonally; (1,1) and (1,3) are walls;
	// (3,1) is a wall.
	got := neighbors(gg, gridgraph.Cell{Row: 2, Col: 2})
	assert.Equal(t, []step{
		{gridgraph.Cell{Row: 2, Col: 3}, 10},
		{gridgraph.Cell{Row: 3, Col: 2}, 10},
		{gridgraph.Cell{Row: 2, Col: 1}, 10},
		{gridgraph.Cell{Row: 3, Col: 3}, 14},
	}, got)

	// From (2,0): (3,1) is a wall, and (1,1) is a wall, so no diagonals.
	got = neighbors(gg, gridgraph.Cell{Row: 2, Col: 0})
	assert.Equal(t, []step{
		{gridgraph.Cell{Row: 1, Col: 0}, 10},
		{gridgraph.Cell{Row: 2, Col: 1}, 10},
	}, got)
}

func TestHeuristics(t *testing.T) {
	a, b := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 3, Col: 5}
	assert.Equal(t, 8, gridgraph.Manhattan(a, b))
	assert.Equal(t, 5, gridgraph.Chebyshev(a, b))
	assert.Equal(t, 5, gridgraph.Octile(a, b, 1, 1))
	assert.Equal(t, 3*14+2*10, gridgraph.Octile(a, b, 10, 14))
	assert.Equal(t, 8, gridgraph.Octile(a, b, 1, 2), "diagonal at 2× degenerates to Manhattan")
}

func TestShortestPath_ReferenceMaze(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	from, to := gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4}

	res, err := gg.ShortestPath(from, to)
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Len(t, res.Path, 9)
	assert.Equal(t, 8, res.Cost)
	assert.Equal(t, from, res.Path[0])
	assert.Equal(t, to, res.Path[8])
	for _, c := range res.Path {
		assert.True(t, gg.Passable(c), "path crosses wall at %v", c)
	}
	assert.Equal(t, []gridgraph.Cell{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 0, Col: 3}, {Row: 0, Col: 4},
		{Row: 1, Col: 4}, {Row: 2, Col: 4}, {Row: 3, Col: 4}, {Row: 4, Col: 4},
	}, res.Path)
	assert.Equal(t, 17, res.Stats.Expanded)

	ucs, err := gg.ShortestPath(from, to, search.WithHeuristic(search.ZeroHeuristic[gridgraph.Cell, int]()))
	require.NoError(t, err)
	assert.Equal(t, res.Cost, ucs.Cost)
	assert.Equal(t, 18, ucs.Stats.Expanded)
}

func TestShortestPath_Conn8(t *testing.T) {
	opts := gridgraph.DefaultGridOptions()
	opts.Conn = gridgraph.Conn8
	gg := mustGrid(t, referenceMaze(), opts)

	res, err := gg.ShortestPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4})
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, 7, res.Cost)
	assert.Len(t, res.Path, 8)
}

func TestShortestPath_NoPath(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	for name, pair := range map[string][2]gridgraph.Cell{
		"wall start":               {{Row: 1, Col: 1}, {Row: 4, Col: 4}},
		"wall target":              {{Row: 0, Col: 0}, {Row: 4, Col: 3}},
		"off-grid start":           {{Row: -1, Col: 0}, {Row: 4, Col: 4}},
		"off-grid target":          {{Row: 0, Col: 0}, {Row: 0, Col: 5}},
		"wall start == target":     {{Row: 1, Col: 1}, {Row: 1, Col: 1}},
		"off-grid start == target": {{Row: 7, Col: -2}, {Row: 7, Col: -2}},
	} {
		t.Run(name, func(t *testing.T) {
			res, err := gg.ShortestPath(pair[0], pair[1])
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.Equal(t, search.Exhausted, res.Status)
		})
	}
}

func TestShortestPath_Disconnected(t *testing.T) {
	gg := mustGrid(t, [][]int{
		{0, 1, 0},
		{0, 1, 0},
	}, gridgraph.DefaultGridOptions())
	res, err := gg.ShortestPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 1, Col: 2})
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 2, res.Stats.Expanded)
}

func TestShortestPath_TrivialPath(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	c := gridgraph.Cell{Row: 2, Col: 2}
	res, err := gg.ShortestPath(c, c)
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{c}, res.Path)
	assert.Equal(t, 0, res.Cost)
}

func TestRender(t *testing.T) {
	gg := mustGrid(t, referenceMaze(), gridgraph.DefaultGridOptions())
	res, err := gg.ShortestPath(gridgraph.Cell{Row: 0, Col: 0}, gridgraph.Cell{Row: 4, Col: 4})
	require.NoError(t, err)
	want := "" +
		"*****\n" +
		".###*\n" +
		"....*\n" +
		"##..*\n" +
		"...#*\n"
	assert.Equal(t, want, gg.Render(res.Path))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "(2,3)", gridgraph.Cell{Row: 2, Col: 3}.String())
	assert.Equal(t, "conn4", gridgraph.Conn4.String())
	assert.Equal(t, "conn8", gridgraph.Conn8.String())
	assert.True(t, gridgraph.Cell{Row: 1, Col: 9}.Less(gridgraph.Cell{Row: 2, Col: 0}))
	assert.False(t, gridgraph.Cell{Row: 2, Col: 1}.Less(gridgraph.Cell{Row: 2, Col: 0}))
}
