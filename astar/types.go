package astar

import (
	"errors"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// AStar is the only algorithm name PathFinder currently runs.
const AStar = "a-star"

// Sentinel errors returned by the astar implementation.
var (
	// ErrNilTopology indicates that New received a nil topology.
	ErrNilTopology = errors.New("astar: topology is nil")

	// ErrUnsupportedAlgorithm indicates an algorithm name other than AStar.
	// It is reported by GetPath/Search, not by New.
	ErrUnsupportedAlgorithm = errors.New("astar: unsupported algorithm")

	// ErrNoPath indicates the goal cannot be reached from the start.
	ErrNoPath = errors.New("astar: no path")

	// ErrBudgetExhausted indicates the expansion budget ran out before the
	// goal was reached. It is always reported together with ErrNoPath.
	ErrBudgetExhausted = errors.New("astar: expansion budget exhausted")

	// ErrNegativeCost indicates the topology returned a negative or NaN step cost.
	ErrNegativeCost = errors.New("astar: negative step cost encountered")

	// ErrBadMaxExpansions indicates WithMaxExpansions received a negative value.
	ErrBadMaxExpansions = errors.New("astar: MaxExpansions must be non-negative")

	// ErrNilHeuristic indicates WithHeuristic received nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")
)

// Heuristic estimates the remaining cost from the per-axis distances dx, dy
// (both ≥ 0) between a cell and the goal. On toroidal grids the distances are
// already taken the short way around.
type Heuristic func(dx, dy int) float64

// Manhattan returns dx + dy. It is the default. With diagonal moves it can
// overestimate, so paths are not guaranteed minimal on every cost field.
func Manhattan(dx, dy int) float64 { return float64(dx + dy) }

// Chebyshev returns max(dx, dy), the number of king moves to the goal.
// Admissible and consistent whenever every cell cost is ≥ 1.
func Chebyshev(dx, dy int) float64 { return float64(max(dx, dy)) }

// Zero always returns 0, turning the search into uniform-cost (Dijkstra).
func Zero(_, _ int) float64 { return 0 }

// Result is the outcome of a successful Search.
type Result struct {
	Path     []gridgraph.Cell // start..goal inclusive
	Cost     float64          // sum of entry costs, start excluded
	Expanded int              // cells expanded before the goal was popped
}

// Options configures a PathFinder.
//
// Heuristic     – remaining-cost estimate; default Manhattan.
// MaxExpansions – abort after this many expansions; 0 means unlimited.
// Logger        – receives one debug record per search; default no-op.
type Options struct {
	Heuristic     Heuristic
	MaxExpansions int
	Logger        *zap.Logger
}

// Option represents a functional option for configuring a PathFinder.
type Option func(*Options)

// WithHeuristic replaces the heuristic. Panics on nil.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			panic(ErrNilHeuristic.Error())
		}
		o.Heuristic = h
	}
}

// WithMaxExpansions caps the number of expanded cells per search.
// An exhausted budget is reported as ErrNoPath wrapping ErrBudgetExhausted.
// Negative values panic with ErrBadMaxExpansions; 0 disables the cap.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for search summaries. nil keeps the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns Manhattan, no expansion cap and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Manhattan,
		MaxExpansions: 0,
		Logger:        zap.NewNop(),
	}
}
