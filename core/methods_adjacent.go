// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs) and adjacency helpers.
// Determinism:
//   - Neighbors() and NeighborIDs() order by edge creation sequence.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.
//   - Helpers are called only under muEdgeAdj write lock by mutating code.

package core

// Neighbors returns all edges leaving id (for undirected graphs, all incident
// edges), ordered by edge creation sequence.
//
// Implementation:
//   - Stage 1: Acquire muVert then muEdgeAdj read locks for a consistent snapshot.
//   - Stage 2: Validate vertex existence (ErrVertexNotFound).
//   - Stage 3: Collect edges from adjacency[id] and sort by sequence.
//
// Notes:
//   - Returned *Edge pointers refer to live catalog entries; treat as read-only.
//
// Complexity: O(d log d), where d is the number of incident edges.
func (g *Graph[K]) Neighbors(id K) ([]*Edge[K], error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]*Edge[K], 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the vertices adjacent to id, ordered by the creation
// sequence of the joining edge.
// Complexity: O(d log d).
func (g *Graph[K]) NeighborIDs(id K) ([]K, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]K, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.Other(id))
	}

	return ids, nil
}

// ensureAdjacency guarantees that adjacency[id] is initialized.
// Must be called ONLY under muEdgeAdj write lock.
func ensureAdjacency[K comparable](g *Graph[K], id K) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[K]string)
	}
}

// removeAdjacency unlinks e from its endpoint buckets.
//
// Removal policy:
//   - Always remove from e.From -> e.To.
//   - If the edge is undirected and not a self-loop, also remove e.To -> e.From.
//
// Must be called ONLY under muEdgeAdj write lock, paired with deleting e from
// the edge catalog.
func removeAdjacency[K comparable](g *Graph[K], e *Edge[K]) {
	if m := g.adjacency[e.From]; m != nil {
		delete(m, e.To)
	}
	if !e.Directed && e.From != e.To {
		if m := g.adjacency[e.To]; m != nil {
			delete(m, e.From)
		}
	}
}
