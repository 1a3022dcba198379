// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/RemoveEdgeBetween/HasEdge/
//       GetEdge/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge between existing vertices and returns its ID.
//
// Steps:
//  1. Validate loops.
//  2. Lock muVert (read) and muEdgeAdj (write); both endpoints must exist.
//  3. Reject a second edge between the same endpoints.
//  4. Generate eid atomically and store the edge.
//  5. Link adjacency[from][to]; if undirected, mirror adjacency[to][from].
//
// Endpoints are NOT auto-created: a removed vertex must stay removed.
//
// Errors: ErrLoopNotAllowed, ErrVertexNotFound, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph[K]) AddEdge(from, to K) (string, error) {
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return "", ErrVertexNotFound
	}
	if _, ok := g.vertices[to]; !ok {
		return "", ErrVertexNotFound
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, dup := g.adjacency[from][to]; dup {
		return "", ErrMultiEdgeNotAllowed
	}

	n := atomic.AddUint64(&g.nextEdgeID, 1)
	e := &Edge[K]{ID: formatEdgeID(n), From: from, To: to, Directed: g.directed, seq: n}

	g.edges[e.ID] = e
	ensureAdjacency(g, from)
	g.adjacency[from][to] = e.ID

	if !e.Directed && from != to {
		ensureAdjacency(g, to)
		g.adjacency[to][from] = e.ID
	}

	return e.ID, nil
}

// RemoveEdge deletes one edge (and its mirror) by ID.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(1).
func (g *Graph[K]) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// RemoveEdgeBetween deletes the edge from→to (for undirected graphs, the
// edge joining the two vertices in either orientation).
// Returns ErrEdgeNotFound if the vertices are not adjacent.
// Complexity: O(1).
func (g *Graph[K]) RemoveEdgeBetween(from, to K) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	eid, ok := g.adjacency[from][to]
	if !ok {
		return ErrEdgeNotFound
	}
	e := g.edges[eid]
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether an edge from→to exists.
// Undirected edges are mirrored, so HasEdge works both ways.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
// Complexity: O(1).
func (g *Graph[K]) GetEdge(eid string) (*Edge[K], error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	e, ok := g.edges[eid]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E).
func (g *Graph[K]) Edges() []*Edge[K] {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge[K], 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// formatEdgeID renders sequence n as "e<n>" without fmt allocations.
func formatEdgeID(n uint64) string {
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// sortEdges orders edges by creation sequence. Lexical ID order would put
// "e10" before "e2".
func sortEdges[K comparable](es []*Edge[K]) {
	sort.Slice(es, func(i, j int) bool { return es[i].seq < es[j].seq })
}
