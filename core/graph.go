package core

import (
	"iter"
	"slices"
	"strconv"
)

// AddVertex inserts a vertex. Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID if id is empty.
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.vertices[id] = struct{}{}

	return nil
}

// HasVertex reports whether id is a vertex of g.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge connects from and to, creating missing endpoints, and returns the new edge ID.
//
// Validation (in order):
//  1. from and to must be non-empty (ErrEmptyVertexID).
//  2. weight must be zero on unweighted graphs and never negative (ErrBadWeight).
//  3. from != to unless WithLoops (ErrLoopNotAllowed).
//  4. no existing from→to edge unless WithMultiEdges (ErrMultiEdgeNotAllowed).
//
// Complexity: O(deg(from)) for the multi-edge check, O(1) otherwise.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || (!g.weighted && weight != 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.allowMulti {
		for _, e := range g.adjacency[from] {
			if e.To == to || (!e.Directed && e.From == to) {
				return "", ErrMultiEdgeNotAllowed
			}
		}
	}

	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
	g.nextEdgeID++
	e := &Edge{
		ID:       "e" + strconv.FormatUint(g.nextEdgeID, 10),
		From:     from,
		To:       to,
		Weight:   weight,
		Directed: g.directed,
	}
	g.edges = append(g.edges, e)
	g.adjacency[from] = append(g.adjacency[from], e)
	// Mirror undirected
	if !e.Directed && from != to {
		g.adjacency[to] = append(g.adjacency[to], e)
	}

	return e.ID, nil
}

// Neighbors yields (neighbor ID, edge weight) for every edge leaving id, in
// insertion order. Undirected edges are traversable from both endpoints.
// An unknown id yields nothing.
//
// The adjacency is snapshotted under the read lock before the first yield,
// so the consumer may call back into g.
func (g *Graph) Neighbors(id string) iter.Seq2[string, int64] {
	return func(yield func(string, int64) bool) {
		g.mu.RLock()
		out := slices.Clone(g.adjacency[id])
		g.mu.RUnlock()

		for _, e := range out {
			next := e.To
			if e.To == id && e.From != id { // mirrored undirected edge
				next = e.From
			}
			if !yield(next, e.Weight) {
				return
			}
		}
	}
}

// Vertices returns all vertex IDs in ascending order.
// Complexity: O(V log V)
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	return ids
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	for i, e := range g.edges {
		out[i] = *e
	}

	return out
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns the number of edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weighted reports whether the graph accepts non-zero weights.
func (g *Graph) Weighted() bool { return g.weighted }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
