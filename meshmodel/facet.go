package meshmodel

// FacetKind distinguishes the concrete cell types a Facet can hold.
type FacetKind int

const (
	Triangle FacetKind = iota
	Quad
)

// FacetRef is a tagged reference to a facet: either a live Handle or
// "no facet". Accessors return a (Handle, bool) pair instead of
// comparing against a dummy sentinel object.
type FacetRef struct {
	h  Handle
	ok bool
}

// NoFacet is the "no neighboring facet" value.
var NoFacet = FacetRef{h: Invalid, ok: false}

// Ref wraps a concrete Handle as a present FacetRef.
func Ref(h Handle) FacetRef { return FacetRef{h: h, ok: true} }

// Get returns the underlying handle and whether it is present.
func (r FacetRef) Get() (Handle, bool) { return r.h, r.ok }

// IsNone reports whether r carries no facet.
func (r FacetRef) IsNone() bool { return !r.ok }

// Facet is a 2D mesh cell: a Triangle (3 vertices) or a Quad (4
// vertices), CCW-wound. Neighbors holds one FacetRef per edge slot,
// aligned with Vertices[i] -> Vertices[i+1 mod n].
type Facet struct {
	Kind      FacetKind
	Vertices  [4]Handle // only [:NumVertices()] are meaningful
	Neighbors [4]FacetRef
	Color     int
}

// NewTriangle constructs a CCW triangle facet over the given vertex
// handles, with all neighbor slots initially empty.
func NewTriangle(v1, v2, v3 Handle, color int) Facet {
	f := Facet{Kind: Triangle, Color: color}
	f.Vertices[0], f.Vertices[1], f.Vertices[2] = v1, v2, v3
	f.Neighbors[0], f.Neighbors[1], f.Neighbors[2] = NoFacet, NoFacet, NoFacet
	return f
}

// NewQuad constructs a CCW quad facet over the given vertex handles.
func NewQuad(v1, v2, v3, v4 Handle, color int) Facet {
	f := Facet{Kind: Quad, Color: color}
	f.Vertices[0], f.Vertices[1], f.Vertices[2], f.Vertices[3] = v1, v2, v3, v4
	for i := range f.Neighbors {
		f.Neighbors[i] = NoFacet
	}
	return f
}

// NumVertices returns 3 for a Triangle and 4 for a Quad.
func (f *Facet) NumVertices() int {
	if f.Kind == Quad {
		return 4
	}
	return 3
}

// VertexIndex returns the slot index of v within the facet's vertex
// cycle, or -1 if v is not one of its vertices.
func (f *Facet) VertexIndex(v Handle) int {
	n := f.NumVertices()
	for i := 0; i < n; i++ {
		if f.Vertices[i] == v {
			return i
		}
	}
	return -1
}

// EdgeIndex returns the slot index of the facet edge (v1,v2) — the
// position i such that {Vertices[i], Vertices[i+1 mod n]} == {v1,v2}
// in either order — or -1 if no such edge exists.
func (f *Facet) EdgeIndex(v1, v2 Handle) int {
	n := f.NumVertices()
	for i := 0; i < n; i++ {
		a, b := f.Vertices[i], f.Vertices[(i+1)%n]
		if (a == v1 && b == v2) || (a == v2 && b == v1) {
			return i
		}
	}
	return -1
}

// SetNeighbor assigns the neighbor facet across edge slot i.
func (f *Facet) SetNeighbor(i int, ref FacetRef) {
	f.Neighbors[i] = ref
}
