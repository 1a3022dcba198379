package config

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/internal/logger"
)

var heuristics = map[string]astar.Heuristic{
	"manhattan": astar.Manhattan,
	"chebyshev": astar.Chebyshev,
	"zero":      astar.Zero,
}

// HeuristicByName resolves a heuristic name; "" means manhattan.
func HeuristicByName(name string) (astar.Heuristic, error) {
	if name == "" {
		return astar.Manhattan, nil
	}
	h, ok := heuristics[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrInvalidConfig, name)
	}

	return h, nil
}

// Validate checks the scenario against its own grid. The algorithm name is
// left to the path finder, which reports it per query.
func (s *Scenario) Validate() error {
	g := s.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidConfig, g.Width, g.Height)
	}
	if _, err := gridgraph.ParseMode(g.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if g.Representation != gridgraph.KindGraph && g.Representation != gridgraph.KindArray {
		return fmt.Errorf("%w: representation %q", ErrInvalidConfig, g.Representation)
	}
	if _, err := HeuristicByName(s.Search.Heuristic); err != nil {
		return err
	}
	if s.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d", ErrInvalidConfig, s.Search.MaxExpansions)
	}

	inGrid := func(p Point) bool {
		return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
	}
	for i, c := range s.Cells {
		if !inGrid(c.Point) {
			return fmt.Errorf("%w: cells[%d] (%d,%d) outside grid", ErrInvalidConfig, i, c.X, c.Y)
		}
		if c.Cost != nil && (*c.Cost < 0 || math.IsNaN(*c.Cost) || math.IsInf(*c.Cost, 0)) {
			return fmt.Errorf("%w: cells[%d] cost %v", ErrInvalidConfig, i, *c.Cost)
		}
	}
	if len(s.Removed) > 0 && g.Representation != gridgraph.KindGraph {
		return fmt.Errorf("%w: removed cells need the graph representation", ErrInvalidConfig)
	}
	for i, p := range s.Removed {
		if !inGrid(p) {
			return fmt.Errorf("%w: removed[%d] (%d,%d) outside grid", ErrInvalidConfig, i, p.X, p.Y)
		}
	}
	if _, err := logger.ParseLevel(s.Logging.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Build validates the scenario and constructs its topology and path finder.
// log may be nil.
func (s *Scenario) Build(log *zap.Logger) (gridgraph.Topology, *astar.PathFinder, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	mode, _ := gridgraph.ParseMode(s.Grid.Mode)
	topo, err := gridgraph.New(s.Grid.Representation, s.Grid.Width, s.Grid.Height, mode)
	if err != nil {
		return nil, nil, err
	}

	for _, c := range s.Cells {
		pos := c.Cell()
		if c.Cost != nil {
			if err := topo.SetCost(pos, pos, *c.Cost); err != nil {
				return nil, nil, err
			}
		}
		if c.Sight != nil {
			if err := topo.SetSight(pos, *c.Sight); err != nil {
				return nil, nil, err
			}
		}
		if c.Vision != nil {
			if err := topo.SetVision(pos, *c.Vision); err != nil {
				return nil, nil, err
			}
		}
	}
	if gg, ok := topo.(*gridgraph.GraphGrid); ok {
		for _, p := range s.Removed {
			if err := gg.RemoveCell(p.Cell()); err != nil {
				return nil, nil, fmt.Errorf("%w: removed %v: %w", ErrInvalidConfig, p.Cell(), err)
			}
		}
	}

	h, _ := HeuristicByName(s.Search.Heuristic)
	pf, err := astar.New(topo, s.Search.Algorithm,
		astar.WithHeuristic(h),
		astar.WithMaxExpansions(s.Search.MaxExpansions),
		astar.WithLogger(log),
	)
	if err != nil {
		return nil, nil, err
	}

	return topo, pf, nil
}

// Cell converts p to a grid cell.
func (p Point) Cell() gridgraph.Cell {
	return gridgraph.Cell{X: p.X, Y: p.Y}
}
