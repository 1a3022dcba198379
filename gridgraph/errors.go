package gridgraph

import "errors"

var (
	// ErrUnsupportedMode indicates a boundary mode other than Bounded or Toroidal.
	ErrUnsupportedMode = errors.New("gridgraph: unsupported boundary mode")
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("gridgraph: width and height must be positive")
	// ErrUnsupportedRepresentation indicates an unknown topology kind passed to New.
	ErrUnsupportedRepresentation = errors.New("gridgraph: unsupported representation")
	// ErrCellNotFound indicates a cell outside the grid or removed from it.
	ErrCellNotFound = errors.New("gridgraph: cell not found")
	// ErrNegativeCost indicates a cost that is negative, NaN or infinite.
	ErrNegativeCost = errors.New("gridgraph: cost must be finite and non-negative")
)
