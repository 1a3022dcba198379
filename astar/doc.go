// Package astar implements best-first A* path search over a
// gridgraph.Topology.
//
// A PathFinder asks the topology only two questions: which cells neighbor a
// cell (Neighbors) and what it costs to step onto one (GetCost). It never
// mutates the topology.
//
// Algorithm:
//
//  1. g(start) = 0; start is pushed at priority 0.
//  2. Pop the entry with the lowest f = g + h(cell, goal). Equal f values
//     pop in insertion order, so results are deterministic.
//  3. An entry whose g is greater than the recorded g(cell) is stale and skipped.
//  4. If the popped cell is the goal, rebuild the path from predecessors.
//  5. Otherwise, for each neighbor n: if g(cur)+cost(cur,n) beats g(n) (or
//     n has no score), record it and push n at that g plus h(n).
//  6. An empty frontier means ErrNoPath.
//
// There is no closed set: a cell reached again more cheaply is re-expanded.
// This keeps the default Manhattan heuristic usable even though it is not
// consistent under diagonal moves.
//
// Complexity:
//
//   - Time:  O(N log N) heap operations for N = cells (more with re-expansions).
//   - Space: O(N) for g, predecessors and the lazy frontier.
//
// Options:
//
//   - WithHeuristic(h):       Manhattan (default), Chebyshev, Zero, or custom.
//   - WithMaxExpansions(n):   abort after n expansions (ErrNoPath + ErrBudgetExhausted).
//   - WithLogger(l):          zap logger for per-search debug summaries.
//
// Errors (sentinel):
//
//   - ErrNilTopology          New received a nil topology.
//   - ErrUnsupportedAlgorithm algorithm name other than AStar; reported per call.
//   - gridgraph.ErrCellNotFound start or goal out of range or removed.
//   - ErrNoPath               goal unreachable; match with errors.Is.
//   - ErrNegativeCost         topology produced a negative or NaN cost.
//
// Example usage:
//
//	grid, _ := gridgraph.NewArrayGrid(10, 10, gridgraph.Bounded)
//	pf, _ := astar.New(grid, astar.AStar)
//	path, err := pf.GetPath(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 9, Y: 4})
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
package astar
