package meshmodel

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/mesherr"
)

// Mesh is the entity store component: three arenas — vertices, edges,
// facets — kept mutually consistent. Removal defers to the waste
// discipline from Store rather than an immediate swap-delete, since
// handles taken during one generation pass must stay valid across the
// whole pass, not just within a single step.
type Mesh struct {
	Vertices *Store[Vertex]
	Edges    *Store[Edge]
	Facets   *Store[Facet]
}

// NewMesh returns an empty Mesh.
func NewMesh() *Mesh {
	return &Mesh{
		Vertices: NewStore[Vertex](),
		Edges:    NewStore[Edge](),
		Facets:   NewStore[Facet](),
	}
}

// AddVertex appends a new vertex at xy with the given hints and
// returns its handle. A vertex's position never changes after this
// call.
func (m *Mesh) AddVertex(xy mgl64.Vec2, sizeHint, rangeHint float64) Handle {
	return m.Vertices.Append(NewVertex(xy, sizeHint, rangeHint))
}

// AddEdge appends a new edge from v1 to v2 with the given marker,
// computes its cached geometric fields from the vertices' current
// positions, wires it into both vertices' adjacency lists, and
// returns its handle. marker must be >= 0; a negative marker is a
// caller bug and returns InvalidOperation without touching the mesh.
func (m *Mesh) AddEdge(v1, v2 Handle, marker int) (Handle, error) {
	if marker < 0 {
		return Invalid, mesherr.NewInvalidOperation("edge marker must be >= 0")
	}
	p1 := m.Vertices.MustGet(v1)
	p2 := m.Vertices.MustGet(v2)
	h := m.Edges.Append(makeEdge(v1, v2, p1.XY, p2.XY, marker))
	p1.addEdge(h)
	p2.addEdge(h)
	return h, nil
}

// RemoveEdge detaches e from its endpoints' adjacency lists and
// erases it (deferred to the next ClearWaste).
func (m *Mesh) RemoveEdge(e Handle) {
	edge, ok := m.Edges.Get(e)
	if !ok {
		return
	}
	if v1, ok := m.Vertices.Get(edge.V1); ok {
		v1.removeEdge(e)
	}
	if v2, ok := m.Vertices.Get(edge.V2); ok {
		v2.removeEdge(e)
	}
	m.Edges.Erase(e)
}

// AddFacet appends f, wires it into each of its vertices' Facets
// adjacency lists, and returns its handle.
func (m *Mesh) AddFacet(f Facet) Handle {
	h := m.Facets.Append(f)
	stored := m.Facets.MustGet(h)
	n := stored.NumVertices()
	for i := 0; i < n; i++ {
		if v, ok := m.Vertices.Get(stored.Vertices[i]); ok {
			v.addFacet(h)
		}
	}
	return h
}

// RemoveFacet detaches f from its vertices' adjacency lists and
// erases it.
func (m *Mesh) RemoveFacet(f Handle) {
	facet, ok := m.Facets.Get(f)
	if !ok {
		return
	}
	n := facet.NumVertices()
	for i := 0; i < n; i++ {
		if v, ok := m.Vertices.Get(facet.Vertices[i]); ok {
			v.removeFacet(f)
		}
	}
	m.Facets.Erase(f)
}

// LinkFacetToEdge records that facet f sits on one side of edge e,
// choosing Left or Right so that a later query can tell a fully
// interior edge (both sides set) from a boundary/front edge (one side
// set).
func (m *Mesh) LinkFacetToEdge(e, f Handle) {
	edge, ok := m.Edges.Get(e)
	if !ok {
		return
	}
	if edge.Left.IsNone() {
		edge.Left = Ref(f)
		return
	}
	edge.Right = Ref(f)
}

// NBoundaryEdges counts currently-live edges with a positive marker.
func (m *Mesh) NBoundaryEdges() int {
	n := 0
	m.Edges.All(func(_ Handle, e *Edge) {
		if e.IsBoundary() {
			n++
		}
	})
	return n
}

// ClearWaste drains the waste bucket of every arena in the mesh.
func (m *Mesh) ClearWaste() {
	m.Vertices.ClearWaste()
	m.Edges.ClearWaste()
	m.Facets.ClearWaste()
}

// FindEdge returns the handle of a live edge between v1 and v2 in
// either order, scanning v1's (typically short) incidence list, and
// whether one was found.
func (m *Mesh) FindEdge(v1, v2 Handle) (Handle, bool) {
	vert, ok := m.Vertices.Get(v1)
	if !ok {
		return Invalid, false
	}
	for _, eh := range vert.Edges {
		if e, ok := m.Edges.Get(eh); ok && e.SameEndpoints(v1, v2) {
			return eh, true
		}
	}
	return Invalid, false
}
