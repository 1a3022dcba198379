package astar

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/heap"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// PathFinder computes minimum-cost paths over a gridgraph.Topology.
// It keeps no state between calls; each search allocates its own frontier
// and score maps.
type PathFinder struct {
	topo      gridgraph.Topology
	algorithm string
	options   Options
}

// New binds a PathFinder to t. The algorithm name is stored as given and
// checked on every search, so an unsupported name fails at call time.
//
// Errors: ErrNilTopology.
func New(t gridgraph.Topology, algorithm string, opts ...Option) (*PathFinder, error) {
	if t == nil {
		return nil, ErrNilTopology
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathFinder{topo: t, algorithm: algorithm, options: cfg}, nil
}

// Algorithm returns the algorithm name given to New.
func (pf *PathFinder) Algorithm() string { return pf.algorithm }

// GetPath returns the cells from start to goal inclusive.
//
// Errors:
//   - ErrUnsupportedAlgorithm if the PathFinder was built with an unknown name.
//   - gridgraph.ErrCellNotFound if start or goal is not a live cell.
//   - ErrNoPath if goal is unreachable (or the expansion budget ran out).
func (pf *PathFinder) GetPath(start, goal gridgraph.Cell) ([]gridgraph.Cell, error) {
	res, err := pf.Search(start, goal)
	if err != nil {
		return nil, err
	}

	return res.Path, nil
}

// Search is GetPath with the path cost and expansion count.
//
// Complexity:
//
//   - Time:  O(N log N) for N = cells, with re-expansions under an inconsistent heuristic.
//   - Space: O(N) for scores, predecessors and frontier.
func (pf *PathFinder) Search(start, goal gridgraph.Cell) (Result, error) {
	if pf.algorithm != AStar {
		return Result{}, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, pf.algorithm)
	}
	if !pf.topo.Contains(start) {
		return Result{}, fmt.Errorf("astar: start %v: %w", start, gridgraph.ErrCellNotFound)
	}
	if !pf.topo.Contains(goal) {
		return Result{}, fmt.Errorf("astar: goal %v: %w", goal, gridgraph.ErrCellNotFound)
	}
	if start == goal {
		return Result{Path: []gridgraph.Cell{start}}, nil
	}

	r := newRunner(pf.topo, pf.options, start, goal)
	res, err := r.process()

	log := pf.options.Logger
	if err != nil {
		log.Debug("astar: search failed",
			zap.Stringer("start", start),
			zap.Stringer("goal", goal),
			zap.Int("expanded", r.expanded),
			zap.Error(err),
		)

		return Result{}, err
	}
	log.Debug("astar: search finished",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("expanded", res.Expanded),
		zap.Int("length", len(res.Path)),
		zap.Float64("cost", res.Cost),
	)

	return res, nil
}

// entry is a frontier record. g is the score at push time; seq breaks ties
// on f in insertion order.
type entry struct {
	cell gridgraph.Cell
	f, g float64
	seq  uint64
}

func entryLess(a, b entry) bool {
	if a.f != b.f {
		return a.f < b.f
	}

	return a.seq < b.seq
}

// runner holds the mutable state for a single search.
type runner struct {
	topo        gridgraph.Topology
	h           Heuristic
	maxExpand   int
	start, goal gridgraph.Cell

	g        map[gridgraph.Cell]float64        // best known cost from start
	prev     map[gridgraph.Cell]gridgraph.Cell // predecessor on that path
	pq       *heap.Heap[entry]
	seq      uint64
	expanded int
}

func newRunner(t gridgraph.Topology, cfg Options, start, goal gridgraph.Cell) *runner {
	r := &runner{
		topo:      t,
		h:         cfg.Heuristic,
		maxExpand: cfg.MaxExpansions,
		start:     start,
		goal:      goal,
		g:         make(map[gridgraph.Cell]float64),
		prev:      make(map[gridgraph.Cell]gridgraph.Cell),
		pq:        heap.New[entry](entryLess),
	}
	// Seed the start at priority 0; it is the only entry, so h(start) is irrelevant.
	r.g[start] = 0
	r.push(start, 0, 0)

	return r
}

func (r *runner) push(c gridgraph.Cell, g, f float64) {
	r.pq.Push(entry{cell: c, f: f, g: g, seq: r.seq})
	r.seq++
}

// process pops the lowest-f entry until the goal is popped or the frontier
// is empty. Entries whose g exceeds the recorded score are stale and skipped.
// Cells may be expanded more than once; there is no closed set.
func (r *runner) process() (Result, error) {
	for r.pq.Size() > 0 {
		e, _ := r.pq.Pop()
		if e.g > r.g[e.cell] {
			continue
		}
		if e.cell == r.goal {
			return Result{Path: r.path(), Cost: r.g[r.goal], Expanded: r.expanded}, nil
		}
		if r.maxExpand > 0 && r.expanded >= r.maxExpand {
			return Result{}, fmt.Errorf("%w: %w after %d expansions", ErrNoPath, ErrBudgetExhausted, r.expanded)
		}
		r.expanded++
		if err := r.relax(e.cell); err != nil {
			return Result{}, err
		}
	}

	return Result{}, fmt.Errorf("%w: %v to %v", ErrNoPath, r.start, r.goal)
}

// relax pushes every neighbor of u whose score improves through u.
func (r *runner) relax(u gridgraph.Cell) error {
	nbs, err := r.topo.Neighbors(u)
	if err != nil {
		return fmt.Errorf("astar: neighbors of %v: %w", u, err)
	}
	gu := r.g[u]
	for _, v := range nbs {
		w, err := r.topo.GetCost(u, v)
		if err != nil {
			return fmt.Errorf("astar: cost %v→%v: %w", u, v, err)
		}
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%w: %v→%v cost=%v", ErrNegativeCost, u, v, w)
		}
		ng := gu + w
		if old, seen := r.g[v]; seen && ng >= old {
			continue
		}
		r.g[v] = ng
		r.prev[v] = u
		r.push(v, ng, ng+r.estimate(v))
	}

	return nil
}

// estimate applies the heuristic to the axis distances from c to the goal,
// taking the shorter way around on a torus.
func (r *runner) estimate(c gridgraph.Cell) float64 {
	dx, dy := abs(c.X-r.goal.X), abs(c.Y-r.goal.Y)
	if r.topo.Mode() == gridgraph.Toroidal {
		dx = min(dx, r.topo.Width()-dx)
		dy = min(dy, r.topo.Height()-dy)
	}

	return r.h(dx, dy)
}

// path walks predecessors back from the goal and reverses.
func (r *runner) path() []gridgraph.Cell {
	out := []gridgraph.Cell{r.goal}
	for at := r.goal; at != r.start; {
		at = r.prev[at]
		out = append(out, at)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
