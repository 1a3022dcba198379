// Package gridpath is a spatial-grid model and an A* path finder for
// game-world navigation.
//
// The repository is organized into small packages:
//
//	core/      : generic, thread-safe Graph[K] with removable vertices and edges
//	gridgraph/ : Cell, Moore adjacency (bounded or toroidal), per-cell
//	             Cost/Sight/Vision; graph-backed and array-backed Topology
//	astar/     : PathFinder: best-first search on f = g + h with
//	             deterministic tie-breaking and a pluggable heuristic
//	cmd/gridpath : loads a YAML scenario and prints the path for its query
//
// Quick ASCII example (3×3 bounded, center removed, (0,0) → (2,2)):
//
//	S * .
//	. # *
//	. . G
//
// A path of four cells with cost 3.
//
//	go get github.com/katalvlaran/gridpath
package gridpath
