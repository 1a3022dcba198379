// Package core defines the central Graph and Edge types,
// and provides thread-safe primitives for building, querying and editing graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be mutated across
// goroutines with minimal contention.
//
// This file declares Edge, Graph, GraphOption, sentinel errors, and the
// NewGraph constructor.
//
// Errors:
//
//	ErrVertexNotFound      - requested vertex does not exist.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrLoopNotAllowed      - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed - attempt to add a parallel edge.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a second edge between the same endpoints.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge represents a connection between two vertices.
//
// Each Edge has a unique ID ("e1", "e2", ...), endpoints From→To and a Directed
// flag copied from the Graph default at creation time.
type Edge[K comparable] struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is the source vertex ID.
	From K

	// To is the destination vertex ID.
	To K

	// Directed indicates this edge is one-way (true) or bidirectional (false).
	Directed bool

	// seq is the creation sequence number backing ID; used for ordering.
	seq uint64
}

// Other returns the endpoint of e opposite to id.
// For a self-loop both endpoints are id.
func (e *Edge[K]) Other(id K) K {
	if e.From == id {
		return e.To
	}

	return e.From
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(o *graphConfig)

// graphConfig carries construction-time policy flags; it is copied into the
// Graph and never changes afterwards.
type graphConfig struct {
	directed   bool
	allowLoops bool
}

// WithDirected sets the orientation of all new edges
// (true = directed, false = undirected).
func WithDirected(directed bool) GraphOption {
	return func(o *graphConfig) { o.directed = directed }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() GraphOption {
	return func(o *graphConfig) { o.allowLoops = true }
}

// Graph is the core in-memory graph data structure, generic over the vertex
// identifier type K.
//
// It supports directed vs. undirected edges and optional self-loops.
// Parallel edges are never stored: between two endpoints there is at most one
// edge in each orientation.
// muVert protects the vertex catalog; muEdgeAdj protects edges and adjacency.
// Lock order is always muVert -> muEdgeAdj.
type Graph[K comparable] struct {
	muVert    sync.RWMutex // guards vertices, nextVertexSeq
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	// Configuration flags
	directed   bool
	allowLoops bool

	// Storage
	nextVertexSeq uint64              // insertion counter for deterministic Vertices()
	nextEdgeID    uint64              // atomic edge ID generator
	vertices      map[K]uint64        // vertex ID → insertion sequence
	edges         map[string]*Edge[K] // edge ID → Edge

	// adjacency[from][to] = edge ID
	adjacency map[K]map[K]string
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected with no self-loops.
// Complexity: O(1)
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		vertices:   make(map[K]uint64),
		edges:      make(map[string]*Edge[K]),
		adjacency:  make(map[K]map[K]string),
	}
}
