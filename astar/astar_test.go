package astar_test

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/gridgraph"
)

type cell = gridgraph.Cell

var kinds = []string{gridgraph.KindGraph, gridgraph.KindArray}

func newGrid(t testing.TB, kind string, w, h int, mode gridgraph.Mode) gridgraph.Topology {
	t.Helper()
	g, err := gridgraph.New(kind, w, h, mode)
	require.NoError(t, err)

	return g
}

func newFinder(t testing.TB, topo gridgraph.Topology, opts ...astar.Option) *astar.PathFinder {
	t.Helper()
	pf, err := astar.New(topo, astar.AStar, opts...)
	require.NoError(t, err)

	return pf
}

// requireValidPath checks endpoints, adjacency of consecutive cells, and
// returns the summed entry cost.
func requireValidPath(t *testing.T, topo gridgraph.Topology, path []cell, start, goal cell) float64 {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.Equal(t, goal, path[len(path)-1])

	var total float64
	for i := 1; i < len(path); i++ {
		nbs, err := topo.Neighbors(path[i-1])
		require.NoError(t, err)
		require.Contains(t, nbs, path[i], "step %d: %v→%v is not a link", i, path[i-1], path[i])
		c, err := topo.GetCost(path[i-1], path[i])
		require.NoError(t, err)
		total += c
	}

	return total
}

func chebyshev(a, b cell, w, h int, mode gridgraph.Mode) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if mode == gridgraph.Toroidal {
		dx = min(dx, w-dx)
		dy = min(dy, h-dy)
	}

	return max(dx, dy)
}

//----------------------------------------------------------------------------//
// Construction and input validation
//----------------------------------------------------------------------------//

func TestNew_NilTopology(t *testing.T) {
	_, err := astar.New(nil, astar.AStar)
	require.ErrorIs(t, err, astar.ErrNilTopology)
}

// TestUnsupportedAlgorithm: construction succeeds, every call fails.
func TestUnsupportedAlgorithm(t *testing.T) {
	g := newGrid(t, gridgraph.KindArray, 3, 3, gridgraph.Bounded)
	pf, err := astar.New(g, "dijkstra")
	require.NoError(t, err)
	assert.Equal(t, "dijkstra", pf.Algorithm())

	_, err = pf.GetPath(cell{X: 0, Y: 0}, cell{X: 2, Y: 2})
	require.ErrorIs(t, err, astar.ErrUnsupportedAlgorithm)
	_, err = pf.GetPath(cell{X: 0, Y: 0}, cell{X: 0, Y: 0})
	require.ErrorIs(t, err, astar.ErrUnsupportedAlgorithm)
}

func TestOptionPanics(t *testing.T) {
	require.Panics(t, func() { astar.WithMaxExpansions(-1)(&astar.Options{}) })
	require.Panics(t, func() { astar.WithHeuristic(nil)(&astar.Options{}) })
}

// TestNotFoundVsNoPath: a missing endpoint is not the same failure as an
// unreachable goal.
func TestNotFoundVsNoPath(t *testing.T) {
	g, err := gridgraph.NewGraphGrid(3, 1, gridgraph.Bounded)
	require.NoError(t, err)
	pf := newFinder(t, g)

	_, err = pf.GetPath(cell{X: -1, Y: 0}, cell{X: 2, Y: 0})
	require.ErrorIs(t, err, gridgraph.ErrCellNotFound)
	require.False(t, errors.Is(err, astar.ErrNoPath))

	_, err = pf.GetPath(cell{X: 0, Y: 0}, cell{X: 3, Y: 0})
	require.ErrorIs(t, err, gridgraph.ErrCellNotFound)

	require.NoError(t, g.RemoveCell(cell{X: 1, Y: 0}))
	_, err = pf.GetPath(cell{X: 0, Y: 0}, cell{X: 2, Y: 0})
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.False(t, errors.Is(err, gridgraph.ErrCellNotFound))

	_, err = pf.GetPath(cell{X: 0, Y: 0}, cell{X: 1, Y: 0})
	require.ErrorIs(t, err, gridgraph.ErrCellNotFound, "removed goal is not found, not unreachable")
}

//----------------------------------------------------------------------------//
// Path properties
//----------------------------------------------------------------------------//

func TestGetPath_SameCell(t *testing.T) {
	for _, kind := range kinds {
		pf := newFinder(t, newGrid(t, kind, 4, 4, gridgraph.Toroidal))
		c := cell{X: 2, Y: 3}

		res, err := pf.Search(c, c)
		require.NoError(t, err, kind)
		assert.Equal(t, []cell{c}, res.Path, kind)
		assert.Zero(t, res.Cost, kind)
	}
}

// TestGetPath_Hole: 3×3 bounded with the center removed.
func TestGetPath_Hole(t *testing.T) {
	g, err := gridgraph.NewGraphGrid(3, 3, gridgraph.Bounded)
	require.NoError(t, err)
	require.NoError(t, g.RemoveCell(cell{X: 1, Y: 1}))

	res, err := newFinder(t, g).Search(cell{X: 0, Y: 0}, cell{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Len(t, res.Path, 4)
	assert.Equal(t, 3.0, res.Cost)
	assert.Equal(t, []cell{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}}, res.Path)
	assert.Equal(t, 3.0, requireValidPath(t, g, res.Path, cell{X: 0, Y: 0}, cell{X: 2, Y: 2}))
}

// TestGetPath_ChebyshevSteps: on open unit-cost grids the number of steps
// equals the king-move distance, for every start/goal pair.
func TestGetPath_ChebyshevSteps(t *testing.T) {
	shapes := [][2]int{{5, 4}, {3, 3}, {2, 6}}
	for _, kind := range kinds {
		for _, mode := range []gridgraph.Mode{gridgraph.Bounded, gridgraph.Toroidal} {
			for _, s := range shapes {
				w, h := s[0], s[1]
				t.Run(fmt.Sprintf("%s/%v/%dx%d", kind, mode, w, h), func(t *testing.T) {
					g := newGrid(t, kind, w, h, mode)
					pf := newFinder(t, g)
					for i := 0; i < w*h; i++ {
						for j := 0; j < w*h; j++ {
							a := cell{X: i % w, Y: i / w}
							b := cell{X: j % w, Y: j / w}
							path, err := pf.GetPath(a, b)
							require.NoError(t, err)
							want := chebyshev(a, b, w, h, mode)
							require.Len(t, path, want+1, "%v→%v", a, b)
							requireValidPath(t, g, path, a, b)
						}
					}
				})
			}
		}
	}
}

func TestGetPath_CutCell(t *testing.T) {
	g, err := gridgraph.NewGraphGrid(5, 3, gridgraph.Bounded)
	require.NoError(t, err)
	pf := newFinder(t, g)
	a, b := cell{X: 0, Y: 1}, cell{X: 4, Y: 1}

	// Unrelated removal keeps the optimal cost.
	before, err := pf.Search(a, b)
	require.NoError(t, err)
	require.NoError(t, g.RemoveCell(cell{X: 0, Y: 0}))
	after, err := pf.Search(a, b)
	require.NoError(t, err)
	assert.Equal(t, before.Cost, after.Cost)

	// Removing the whole middle column disconnects the sides.
	for y := 0; y < 3; y++ {
		require.NoError(t, g.RemoveCell(cell{X: 2, Y: y}))
	}
	_, err = pf.GetPath(a, b)
	require.ErrorIs(t, err, astar.ErrNoPath)
}

// TestGetPath_RemoveLink: cutting links, not cells, also blocks the route.
func TestGetPath_RemoveLink(t *testing.T) {
	g, err := gridgraph.NewGraphGrid(2, 1, gridgraph.Bounded)
	require.NoError(t, err)
	require.NoError(t, g.RemoveLink(cell{X: 0, Y: 0}, cell{X: 1, Y: 0}))

	_, err = newFinder(t, g).GetPath(cell{X: 0, Y: 0}, cell{X: 1, Y: 0})
	require.ErrorIs(t, err, astar.ErrNoPath)
}

func TestGetPath_RaisedCost(t *testing.T) {
	for _, kind := range kinds {
		t.Run(kind, func(t *testing.T) {
			g := newGrid(t, kind, 3, 3, gridgraph.Bounded)
			pf := newFinder(t, g)
			a, b := cell{X: 0, Y: 1}, cell{X: 2, Y: 1}

			path, err := pf.GetPath(a, b)
			require.NoError(t, err)
			require.Equal(t, []cell{a, {X: 1, Y: 1}, b}, path)

			require.NoError(t, g.SetCost(a, cell{X: 1, Y: 1}, 10))
			res, err := pf.Search(a, b)
			require.NoError(t, err)
			assert.Equal(t, []cell{a, {X: 1, Y: 0}, b}, res.Path)
			assert.Equal(t, 2.0, res.Cost)
		})
	}
}

// TestGetPath_RaisedCostNoDetour: in a corridor the only route pays the price.
func TestGetPath_RaisedCostNoDetour(t *testing.T) {
	for _, kind := range kinds {
		g := newGrid(t, kind, 3, 1, gridgraph.Bounded)
		require.NoError(t, g.SetCost(cell{}, cell{X: 1, Y: 0}, 10))

		res, err := newFinder(t, g).Search(cell{X: 0, Y: 0}, cell{X: 2, Y: 0})
		require.NoError(t, err, kind)
		assert.Equal(t, 11.0, res.Cost, kind)
		assert.Len(t, res.Path, 3, kind)
	}
}

func TestMaxExpansions(t *testing.T) {
	g := newGrid(t, gridgraph.KindArray, 5, 5, gridgraph.Bounded)
	a, b := cell{X: 0, Y: 0}, cell{X: 4, Y: 4}

	res, err := newFinder(t, g).Search(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, res.Expanded)

	_, err = newFinder(t, g, astar.WithMaxExpansions(4)).GetPath(a, b)
	require.NoError(t, err)

	_, err = newFinder(t, g, astar.WithMaxExpansions(3)).GetPath(a, b)
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.ErrorIs(t, err, astar.ErrBudgetExhausted)
}

// negativeGrid reports a negative cost for every step.
type negativeGrid struct {
	*gridgraph.ArrayGrid
}

func (negativeGrid) GetCost(_, _ cell) (float64, error) { return -1, nil }

func TestNegativeCost(t *testing.T) {
	ag, err := gridgraph.NewArrayGrid(3, 3, gridgraph.Bounded)
	require.NoError(t, err)

	_, err = newFinder(t, negativeGrid{ag}).GetPath(cell{X: 0, Y: 0}, cell{X: 2, Y: 2})
	require.ErrorIs(t, err, astar.ErrNegativeCost)
}

//----------------------------------------------------------------------------//
// Randomized cost fields
//----------------------------------------------------------------------------//

// randomField builds a w×h grid with integer costs in [1,5]; on graph grids
// about 15% of cells are removed.
func randomField(t *testing.T, rng *rand.Rand, kind string, w, h int, mode gridgraph.Mode) gridgraph.Topology {
	t.Helper()
	g := newGrid(t, kind, w, h, mode)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := cell{X: x, Y: y}
			require.NoError(t, g.SetCost(c, c, float64(1+rng.Intn(5))))
		}
	}
	if gg, ok := g.(*gridgraph.GraphGrid); ok {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Float64() < 0.15 {
					require.NoError(t, gg.RemoveCell(cell{X: x, Y: y}))
				}
			}
		}
	}

	return g
}

func liveCells(g gridgraph.Topology) []cell {
	var out []cell
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if c := (cell{X: x, Y: y}); g.Contains(c) {
				out = append(out, c)
			}
		}
	}

	return out
}

// TestAdmissibleMatchesUniformCost compares Chebyshev A* with a zero
// heuristic (uniform-cost search). Both must agree on reachability and cost.
func TestAdmissibleMatchesUniformCost(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 120; trial++ {
		kind := kinds[trial%2]
		mode := gridgraph.Bounded
		if trial%3 == 0 {
			mode = gridgraph.Toroidal
		}
		g := randomField(t, rng, kind, 8, 6, mode)
		cells := liveCells(g)
		if len(cells) == 0 {
			continue
		}
		a := cells[rng.Intn(len(cells))]
		b := cells[rng.Intn(len(cells))]

		informed, errA := newFinder(t, g, astar.WithHeuristic(astar.Chebyshev)).Search(a, b)
		uniform, errZ := newFinder(t, g, astar.WithHeuristic(astar.Zero)).Search(a, b)
		if errZ != nil {
			require.ErrorIs(t, errZ, astar.ErrNoPath)
			require.ErrorIs(t, errA, astar.ErrNoPath, "trial %d", trial)
			continue
		}
		require.NoError(t, errA, "trial %d", trial)
		require.Equal(t, uniform.Cost, informed.Cost, "trial %d %v→%v", trial, a, b)
		require.Equal(t, informed.Cost, requireValidPath(t, g, informed.Path, a, b))
		require.LessOrEqual(t, informed.Expanded, uniform.Expanded, "trial %d", trial)

		// The default heuristic may be suboptimal but must return a real path.
		res, err := newFinder(t, g).Search(a, b)
		require.NoError(t, err)
		require.Equal(t, res.Cost, requireValidPath(t, g, res.Path, a, b))
		require.GreaterOrEqual(t, res.Cost, uniform.Cost)
	}
}

func TestDeterminism(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, kind := range kinds {
		g := randomField(t, rng, kind, 12, 12, gridgraph.Bounded)
		cells := liveCells(g)
		a, b := cells[0], cells[len(cells)-1]
		pf := newFinder(t, g)

		first, err1 := pf.Search(a, b)
		for i := 0; i < 5; i++ {
			again, err := pf.Search(a, b)
			require.Equal(t, err1, err, kind)
			require.Equal(t, first, again, kind)
		}
	}
}

//----------------------------------------------------------------------------//
// Logging
//----------------------------------------------------------------------------//

func TestWithLogger(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	g := newGrid(t, gridgraph.KindArray, 4, 4, gridgraph.Bounded)
	pf := newFinder(t, g, astar.WithLogger(zap.New(zc)))

	_, err := pf.GetPath(cell{X: 0, Y: 0}, cell{X: 3, Y: 2})
	require.NoError(t, err)

	entries := logs.FilterMessage("astar: search finished").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "(3,2)", fields["goal"])
	assert.Equal(t, int64(4), fields["length"])
	assert.Equal(t, 3.0, fields["cost"])
}
