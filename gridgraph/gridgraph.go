// Package gridgraph provides a rectangular lattice of cells with Moore
// (8-direction) adjacency, bounded or toroidal edges, and per-cell
// attributes. It supports:
//
//   - A graph-backed representation with removable cells (GraphGrid)
//   - A dense array-backed representation (ArrayGrid)
//   - Conversion to a *core.Graph
//   - Identification of connected components and reachable sets
package gridgraph

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/gridpath/core"
)

// New constructs a Topology of the given kind (KindGraph or KindArray).
// Returns ErrUnsupportedRepresentation for any other kind.
func New(kind string, width, height int, mode Mode) (Topology, error) {
	switch kind {
	case KindGraph:
		return NewGraphGrid(width, height, mode)
	case KindArray:
		return NewArrayGrid(width, height, mode)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRepresentation, kind)
	}
}

// lattice holds the immutable shape shared by both representations.
type lattice struct {
	width, height int
	mode          Mode
}

func newLattice(width, height int, mode Mode) (lattice, error) {
	if width <= 0 || height <= 0 {
		return lattice{}, fmt.Errorf("%w: %dx%d", ErrBadDimensions, width, height)
	}
	if !mode.valid() {
		return lattice{}, fmt.Errorf("%w: %v", ErrUnsupportedMode, mode)
	}

	return lattice{width: width, height: height, mode: mode}, nil
}

// Width returns the number of columns.
func (l lattice) Width() int { return l.width }

// Height returns the number of rows.
func (l lattice) Height() int { return l.height }

// Mode returns the boundary mode fixed at construction.
func (l lattice) Mode() Mode { return l.mode }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (l lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.width && y >= 0 && y < l.height
}

// Index maps c to a row-major index: y*Width + x.
// Complexity: O(1).
func (l lattice) Index(c Cell) int {
	return c.Y*l.width + c.X
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (l lattice) Coordinate(idx int) Cell {
	return Cell{X: idx % l.width, Y: idx / l.width}
}

// Wrap folds (x,y) onto the torus, each axis modulo its own size.
func (l lattice) Wrap(x, y int) Cell {
	return Cell{X: mod(x, l.width), Y: mod(y, l.height)}
}

// step applies offset d to c under the boundary mode.
// ok is false when a bounded grid has no cell there.
func (l lattice) step(c Cell, d [2]int) (n Cell, ok bool) {
	x, y := c.X+d[0], c.Y+d[1]
	if l.mode == Toroidal {
		return l.Wrap(x, y), true
	}
	if !l.InBounds(x, y) {
		return Cell{}, false
	}

	return Cell{X: x, Y: y}, true
}

// moore returns the lattice neighbors of c, ignoring removals.
func (l lattice) moore(c Cell) []Cell {
	out := make([]Cell, 0, len(mooreOffsets))
	for _, d := range mooreOffsets {
		if n, ok := l.step(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// toCoreGraph builds an undirected *core.Graph with one vertex per cell
// (row-major order) and one edge per adjacent pair.
// Complexity: O(W×H×8) time, Memory: O(W×H + E).
func (l lattice) toCoreGraph() (*core.Graph[Cell], error) {
	opts := []core.GraphOption{core.WithDirected(false)}
	if l.mode == Toroidal {
		// a side of length 1 wraps a cell onto itself
		opts = append(opts, core.WithLoops())
	}
	g := core.NewGraph[Cell](opts...)

	total := l.width * l.height
	for i := 0; i < total; i++ {
		g.AddVertex(l.Coordinate(i))
	}
	for i := 0; i < total; i++ {
		c := l.Coordinate(i)
		for _, n := range l.moore(c) {
			if g.HasEdge(c, n) {
				continue // mirrored or repeated on a small torus
			}
			if _, err := g.AddEdge(c, n); err != nil {
				return nil, fmt.Errorf("gridgraph: link %v-%v: %w", c, n, err)
			}
		}
	}

	return g, nil
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}

// attrTable is the per-cell attribute arena, indexed row-major.
type attrTable struct {
	mu    sync.RWMutex
	cells []Attributes
}

func newAttrTable(n int) *attrTable {
	cells := make([]Attributes, n)
	def := DefaultAttributes()
	for i := range cells {
		cells[i] = def
	}

	return &attrTable{cells: cells}
}

func (t *attrTable) get(i int) Attributes {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.cells[i]
}

func (t *attrTable) update(i int, fn func(a *Attributes)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(&t.cells[i])
}

func validateCost(v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %v", ErrNegativeCost, v)
	}

	return nil
}

func cellNotFound(c Cell) error {
	return fmt.Errorf("%w: %v", ErrCellNotFound, c)
}
