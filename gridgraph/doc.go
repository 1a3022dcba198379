// Package gridgraph treats a rectangular lattice of cells as a graph,
// the spatial model consumed by the astar path finder.
//
// What:
//
//   - Cell{X,Y} coordinates with Moore (8-direction) adjacency.
//   - Bounded grids drop off-grid offsets; Toroidal grids wrap each axis.
//   - Per-cell Attributes: Cost (entry cost used by search), Sight, Vision.
//   - GraphGrid stores the lattice in a *core.Graph so cells and links can
//     be removed; ArrayGrid keeps a fixed dense table and never removes.
//   - ConnectedComponents and Reachable flood-fill over any Topology.
//
// Why:
//
//   - Game maps: walls as removed cells, terrain as costs.
//   - Wrapping worlds: toroidal maps without edge special cases.
//   - Topology analysis: partitioning after removals.
//
// Neighbor order:
//
//	(-1,-1) (0,-1) (1,-1)
//	(-1, 0)        (1, 0)
//	(-1, 1) (0, 1) (1, 1)
//
// Neighbors enumerates offsets row by row as drawn above. A bounded corner
// has 3 neighbors, an edge cell 5, an interior cell 8. A toroidal cell always
// has 8 entries; when a side is shorter than 3, wrapped offsets land on the
// same cell and the entry repeats.
//
// Costs:
//
//	GetCost(current, next) returns the cost of next. current must be a live
//	cell but does not change the value.
//
// Complexity:
//
//   - NewGraphGrid:        O(W×H×8), Memory: O(W×H + E).
//   - NewArrayGrid:        O(W×H),   Memory: O(W×H).
//   - Neighbors:           O(1).
//   - ConnectedComponents: O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrBadDimensions: width or height not positive.
//   - ErrUnsupportedMode: mode other than Bounded/Toroidal.
//   - ErrUnsupportedRepresentation: New called with an unknown kind.
//   - ErrCellNotFound: cell out of range or removed.
//   - ErrNegativeCost: cost negative, NaN or infinite.
package gridgraph
