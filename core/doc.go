// Package core provides a thread-safe, in-memory Graph whose vertices and
// edges are first-class, removable elements.
//
// The Graph G = (V,E) is generic over its vertex identifier: any comparable
// type works, so a grid can key vertices by coordinate value instead of a
// formatted string.
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - Constant-time edge operations via nested maps:
//     adjacency[from][to] = edgeID
//   - Collision-free atomic Edge.ID generation ("e1", "e2", …)
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//	Vertices() enumerates in insertion order; Edges(), Neighbors() and
//	NeighborIDs() enumerate in edge creation order. No API exposes Go map
//	iteration order.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id K)                       // O(1)
//	HasVertex(id K) bool                  // O(1)
//	RemoveVertex(id K) error              // O(E)
//
//	// Edge lifecycle
//	AddEdge(from, to K) (string, error)   // O(1)
//	RemoveEdge(edgeID string) error       // O(1)
//	RemoveEdgeBetween(from, to K) error   // O(1)
//	HasEdge(from, to K) bool              // O(1)
//
//	// Queries
//	Neighbors(id K) ([]*Edge[K], error)   // O(d log d)
//	NeighborIDs(id K) ([]K, error)        // O(d log d)
//	Degree(id K) (int, error)             // O(1)
//	Stats() GraphStats                    // O(E)
//
// Errors:
//
//	ErrVertexNotFound, ErrEdgeNotFound, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
//
// Endpoints are never auto-created by AddEdge, so once a vertex is removed no
// edge can silently resurrect it.
package core
