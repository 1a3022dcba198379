package gridgraph

import (
	"fmt"
	"strings"
)

// Representation kinds accepted by New.
const (
	KindGraph = "graph"
	KindArray = "array"
)

// Mode selects how neighbor offsets behave at the grid edge.
type Mode int

const (
	// Bounded drops offsets that fall outside the grid.
	Bounded Mode = iota
	// Toroidal wraps offsets around each axis independently.
	Toroidal
)

// String returns the canonical configuration name of m.
func (m Mode) String() string {
	switch m {
	case Bounded:
		return "bounded"
	case Toroidal:
		return "toroidal"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

func (m Mode) valid() bool {
	return m == Bounded || m == Toroidal
}

// ParseMode maps a configuration name to a Mode.
// "boundless" is accepted as a synonym for "toroidal".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bounded":
		return Bounded, nil
	case "toroidal", "boundless":
		return Toroidal, nil
	default:
		return Bounded, fmt.Errorf("%w: %q", ErrUnsupportedMode, s)
	}
}

// Cell is a lattice coordinate. Cells compare by value.
type Cell struct {
	X, Y int
}

// String renders c as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Attributes holds the per-cell values. Only Cost participates in search.
type Attributes struct {
	Cost   float64 // entry cost paid when stepping onto the cell
	Sight  float64
	Vision float64
}

// DefaultAttributes returns Cost=1, Sight=1, Vision=0.
func DefaultAttributes() Attributes {
	return Attributes{Cost: 1, Sight: 1, Vision: 0}
}

// Topology is the neighbor/cost contract consumed by path search.
//
// Both GraphGrid and ArrayGrid implement it and agree on every answer for
// equal configurations.
type Topology interface {
	Width() int
	Height() int
	Mode() Mode

	// Contains reports whether c is a live cell of the grid.
	Contains(c Cell) bool

	// Neighbors returns the cells adjacent to pos in Moore offset order.
	Neighbors(pos Cell) ([]Cell, error)

	// GetCost returns the cost of stepping from current onto next.
	// Only next determines the value.
	GetCost(current, next Cell) (float64, error)
	SetCost(current, next Cell, value float64) error

	GetSight(c Cell) (float64, error)
	SetSight(c Cell, value float64) error
	GetVision(c Cell) (float64, error)
	SetVision(c Cell, value float64) error
}

// mooreOffsets lists the 8 neighbor displacements row by row:
// top row left to right, then left and right, then bottom row.
var mooreOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// MooreOffsets returns a copy of the neighbor displacement order.
func MooreOffsets() [][2]int {
	out := make([][2]int, len(mooreOffsets))
	copy(out, mooreOffsets[:])

	return out
}
