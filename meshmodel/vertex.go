package meshmodel

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a point in the mesh. Its position is fixed at creation
// time — nothing in this package mutates XY after Append.
//
// SizeHint/RangeHint carry the optional per-vertex size-field hint: a
// negative SizeHint or RangeHint means "no local hint", with -1.0 as
// the standard default for both.
type Vertex struct {
	XY        mgl64.Vec2
	SizeHint  float64
	RangeHint float64

	// Edges and Facets record incident entities. They are adjacency
	// multisets; duplicates are possible (e.g. a
	// degenerate edge pair) and callers that need a set should
	// dedupe themselves.
	Edges  []Handle
	Facets []Handle
}

// NewVertex constructs a Vertex with the given position and hints. A
// hint < 0 means "no hint supplied".
func NewVertex(xy mgl64.Vec2, sizeHint, rangeHint float64) Vertex {
	return Vertex{XY: xy, SizeHint: sizeHint, RangeHint: rangeHint}
}

// HasSizeHint reports whether this vertex carries a local size hint.
func (v *Vertex) HasSizeHint() bool {
	return v.SizeHint >= 0 && v.RangeHint >= 0
}

// addEdge records e as incident to this vertex.
func (v *Vertex) addEdge(e Handle) {
	v.Edges = append(v.Edges, e)
}

// removeEdge drops the first occurrence of e from the incidence list.
func (v *Vertex) removeEdge(e Handle) {
	for i, h := range v.Edges {
		if h == e {
			v.Edges = append(v.Edges[:i], v.Edges[i+1:]...)
			return
		}
	}
}

// addFacet records f as incident to this vertex.
func (v *Vertex) addFacet(f Handle) {
	v.Facets = append(v.Facets, f)
}

// removeFacet drops the first occurrence of f from the incidence list.
func (v *Vertex) removeFacet(f Handle) {
	for i, h := range v.Facets {
		if h == f {
			v.Facets = append(v.Facets[:i], v.Facets[i+1:]...)
			return
		}
	}
}
