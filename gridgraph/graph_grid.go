package gridgraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridpath/core"
)

// GraphGrid is the graph-backed representation. Cells are vertices and
// adjacencies are edges of a *core.Graph, so either can be removed after
// construction. Attributes live in a row-major table beside the graph.
type GraphGrid struct {
	lattice
	g     *core.Graph[Cell]
	attrs *attrTable
}

var _ Topology = (*GraphGrid)(nil)

// NewGraphGrid constructs a GraphGrid holding the full lattice.
// Returns ErrBadDimensions or ErrUnsupportedMode on invalid shape.
// Complexity: O(W×H×8) time, Memory: O(W×H + E).
func NewGraphGrid(width, height int, mode Mode) (*GraphGrid, error) {
	l, err := newLattice(width, height, mode)
	if err != nil {
		return nil, err
	}
	g, err := l.toCoreGraph()
	if err != nil {
		return nil, err
	}

	return &GraphGrid{lattice: l, g: g, attrs: newAttrTable(width * height)}, nil
}

// Contains reports whether c is a live (in range, not removed) cell.
func (gg *GraphGrid) Contains(c Cell) bool {
	return gg.g.HasVertex(c)
}

// HasCell is an alias of Contains.
func (gg *GraphGrid) HasCell(c Cell) bool {
	return gg.Contains(c)
}

// CellCount returns the number of live cells.
func (gg *GraphGrid) CellCount() int {
	return gg.g.VertexCount()
}

// LinkCount returns the number of live adjacencies.
func (gg *GraphGrid) LinkCount() int {
	return gg.g.EdgeCount()
}

// Graph exposes the underlying graph. Treat it as read-only; mutate through
// RemoveCell and RemoveLink.
func (gg *GraphGrid) Graph() *core.Graph[Cell] {
	return gg.g
}

// Neighbors returns the Moore neighbors of pos whose link still exists, in
// offset order. Computed on every call from the offsets and the live edges.
// Complexity: O(1).
func (gg *GraphGrid) Neighbors(pos Cell) ([]Cell, error) {
	if !gg.Contains(pos) {
		return nil, cellNotFound(pos)
	}

	out := make([]Cell, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		n, ok := gg.step(pos, d)
		if ok && gg.g.HasEdge(pos, n) {
			out = append(out, n)
		}
	}

	return out, nil
}

// RemoveCell deletes pos and every link touching it.
// Returns ErrCellNotFound if pos is out of range or already removed.
func (gg *GraphGrid) RemoveCell(pos Cell) error {
	if err := gg.g.RemoveVertex(pos); err != nil {
		if errors.Is(err, core.ErrVertexNotFound) {
			return fmt.Errorf("%w: %v: %w", ErrCellNotFound, pos, err)
		}

		return err
	}

	return nil
}

// RemoveLink deletes the adjacency between a and b, leaving both cells.
// Returns ErrCellNotFound for a missing cell and core.ErrEdgeNotFound if the
// cells are not linked.
func (gg *GraphGrid) RemoveLink(a, b Cell) error {
	if !gg.Contains(a) {
		return cellNotFound(a)
	}
	if !gg.Contains(b) {
		return cellNotFound(b)
	}
	if err := gg.g.RemoveEdgeBetween(a, b); err != nil {
		return fmt.Errorf("gridgraph: link %v-%v: %w", a, b, err)
	}

	return nil
}

// GetCost returns the entry cost of next.
func (gg *GraphGrid) GetCost(current, next Cell) (float64, error) {
	if !gg.Contains(current) {
		return 0, cellNotFound(current)
	}
	if !gg.Contains(next) {
		return 0, cellNotFound(next)
	}

	return gg.attrs.get(gg.Index(next)).Cost, nil
}

// SetCost sets the entry cost of next.
func (gg *GraphGrid) SetCost(current, next Cell, value float64) error {
	if !gg.Contains(current) {
		return cellNotFound(current)
	}
	if !gg.Contains(next) {
		return cellNotFound(next)
	}
	if err := validateCost(value); err != nil {
		return err
	}
	gg.attrs.update(gg.Index(next), func(a *Attributes) { a.Cost = value })

	return nil
}

// GetSight returns the sight attribute of c.
func (gg *GraphGrid) GetSight(c Cell) (float64, error) {
	if !gg.Contains(c) {
		return 0, cellNotFound(c)
	}

	return gg.attrs.get(gg.Index(c)).Sight, nil
}

// SetSight sets the sight attribute of c.
func (gg *GraphGrid) SetSight(c Cell, value float64) error {
	if !gg.Contains(c) {
		return cellNotFound(c)
	}
	gg.attrs.update(gg.Index(c), func(a *Attributes) { a.Sight = value })

	return nil
}

// GetVision returns the vision attribute of c.
func (gg *GraphGrid) GetVision(c Cell) (float64, error) {
	if !gg.Contains(c) {
		return 0, cellNotFound(c)
	}

	return gg.attrs.get(gg.Index(c)).Vision, nil
}

// SetVision sets the vision attribute of c.
func (gg *GraphGrid) SetVision(c Cell, value float64) error {
	if !gg.Contains(c) {
		return cellNotFound(c)
	}
	gg.attrs.update(gg.Index(c), func(a *Attributes) { a.Vision = value })

	return nil
}
