// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() returns IDs in insertion order.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (to keep adjacency invariants consistent).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Under muVert write lock, check presence; if missing, register it
//     with the next insertion sequence number.
//   - Stage 2: Under muEdgeAdj write lock, bootstrap the adjacency bucket.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddVertex(id K) {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return // no-op for existing vertex
	}
	g.nextVertexSeq++
	g.vertices[id] = g.nextVertexSeq

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph[K]) HasVertex(id K) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// RemoveVertex deletes a vertex and all incident edges (directed and undirected).
//
// Implementation:
//   - Stage 1: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 2: Verify vertex presence (ErrVertexNotFound).
//   - Stage 3: Unlink every edge incident to id, in either direction.
//   - Stage 4: Delete the vertex record and its adjacency bucket.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(E) for scanning the edge catalog, Space O(1) extra.
func (g *Graph[K]) RemoveVertex(id K) error {
	g.muVert.Lock()
	defer g.muVert.Unlock()

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	// Directed in-edges live only in their source bucket, so scan the catalog.
	for eid, e := range g.edges {
		if e.From == id || e.To == id {
			removeAdjacency(g, e)
			delete(g.edges, eid)
		}
	}

	delete(g.vertices, id)
	delete(g.adjacency, id)

	return nil
}

// Vertices returns all vertex IDs in insertion order.
// Complexity: O(V log V), Space O(V).
func (g *Graph[K]) Vertices() []K {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]K, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return g.vertices[ids[i]] < g.vertices[ids[j]] })

	return ids
}

// VertexCount returns the current number of vertices in the graph.
// Complexity: O(1).
func (g *Graph[K]) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges leaving id (for undirected graphs, the
// number of incident edges). A self-loop counts once.
//
// Errors:
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(1).
func (g *Graph[K]) Degree(id K) (int, error) {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}
