package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input 2D slice is empty.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadMoveCost indicates move costs that are not positive, or a diagonal
	// cost outside [orthogonal, 2·orthogonal].
	ErrBadMoveCost = errors.New("gridgraph: invalid move cost")
)
