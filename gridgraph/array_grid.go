package gridgraph

import "github.com/katalvlaran/gridpath/core"

// ArrayGrid is the dense representation: a fixed Width×Height cell set with
// attributes in a flat row-major table. Cells are never removed; block a
// cell by raising its cost instead.
type ArrayGrid struct {
	lattice
	attrs *attrTable
}

var _ Topology = (*ArrayGrid)(nil)

// NewArrayGrid constructs an ArrayGrid with every cell at DefaultAttributes.
// Returns ErrBadDimensions or ErrUnsupportedMode on invalid shape.
// Complexity: O(W×H) time and memory.
func NewArrayGrid(width, height int, mode Mode) (*ArrayGrid, error) {
	l, err := newLattice(width, height, mode)
	if err != nil {
		return nil, err
	}

	return &ArrayGrid{lattice: l, attrs: newAttrTable(width * height)}, nil
}

// Contains reports whether c lies inside the grid.
func (ag *ArrayGrid) Contains(c Cell) bool {
	return ag.InBounds(c.X, c.Y)
}

// Neighbors returns the Moore neighbors of pos. On a torus every cell has 8
// entries, repeated where a side shorter than 3 folds offsets together.
// Complexity: O(1).
func (ag *ArrayGrid) Neighbors(pos Cell) ([]Cell, error) {
	if !ag.Contains(pos) {
		return nil, cellNotFound(pos)
	}

	return ag.moore(pos), nil
}

// GetCost returns the entry cost of next.
func (ag *ArrayGrid) GetCost(current, next Cell) (float64, error) {
	if !ag.Contains(current) {
		return 0, cellNotFound(current)
	}
	if !ag.Contains(next) {
		return 0, cellNotFound(next)
	}

	return ag.attrs.get(ag.Index(next)).Cost, nil
}

// SetCost sets the entry cost of next.
func (ag *ArrayGrid) SetCost(current, next Cell, value float64) error {
	if !ag.Contains(current) {
		return cellNotFound(current)
	}
	if !ag.Contains(next) {
		return cellNotFound(next)
	}
	if err := validateCost(value); err != nil {
		return err
	}
	ag.attrs.update(ag.Index(next), func(a *Attributes) { a.Cost = value })

	return nil
}

// GetSight returns the sight attribute of c.
func (ag *ArrayGrid) GetSight(c Cell) (float64, error) {
	if !ag.Contains(c) {
		return 0, cellNotFound(c)
	}

	return ag.attrs.get(ag.Index(c)).Sight, nil
}

// SetSight sets the sight attribute of c.
func (ag *ArrayGrid) SetSight(c Cell, value float64) error {
	if !ag.Contains(c) {
		return cellNotFound(c)
	}
	ag.attrs.update(ag.Index(c), func(a *Attributes) { a.Sight = value })

	return nil
}

// GetVision returns the vision attribute of c.
func (ag *ArrayGrid) GetVision(c Cell) (float64, error) {
	if !ag.Contains(c) {
		return 0, cellNotFound(c)
	}

	return ag.attrs.get(ag.Index(c)).Vision, nil
}

// SetVision sets the vision attribute of c.
func (ag *ArrayGrid) SetVision(c Cell, value float64) error {
	if !ag.Contains(c) {
		return cellNotFound(c)
	}
	ag.attrs.update(ag.Index(c), func(a *Attributes) { a.Vision = value })

	return nil
}

// ToCoreGraph converts the ArrayGrid into an undirected *core.Graph keyed by
// Cell. Attributes are not copied; the graph carries adjacency only.
// Complexity: O(W×H×8) time, Memory: O(W×H + E).
func (ag *ArrayGrid) ToCoreGraph() (*core.Graph[Cell], error) {
	return ag.toCoreGraph()
}
