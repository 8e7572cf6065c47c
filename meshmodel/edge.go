package meshmodel

import "github.com/go-gl/mathgl/mgl64"

// Edge is an ordered pair of vertices giving orientation. Midpoint,
// normal and length are computed once at creation from the
// (immutable) endpoint positions and cached, because every downstream
// consumer (front priority ordering, size field evaluation, candidate
// placement) re-reads them repeatedly.
type Edge struct {
	V1, V2 Handle
	Marker int

	Midpoint mgl64.Vec2
	Normal   mgl64.Vec2
	Length   float64

	Left  FacetRef
	Right FacetRef
}

// makeEdge computes the cached geometric fields for an edge running
// from xy1 to xy2. The normal is the left-hand perpendicular (see
// geom.LeftNormal): callers are responsible for orienting V1->V2 so
// that unmeshed area lies on the left.
func makeEdge(v1, v2 Handle, xy1, xy2 mgl64.Vec2, marker int) Edge {
	return Edge{
		V1:       v1,
		V2:       v2,
		Marker:   marker,
		Midpoint: xy1.Add(xy2).Mul(0.5),
		Normal:   leftNormal(xy1, xy2),
		Length:   xy2.Sub(xy1).Len(),
		Left:     NoFacet,
		Right:    NoFacet,
	}
}

// leftNormal repeats geom.LeftNormal's formula locally, so this
// package does not import geom for its cached-field math. Unlike
// geom.LeftNormal, it returns the zero vector only for an exactly
// zero-length edge rather than for any length below geom.Epsilon.
func leftNormal(a, b mgl64.Vec2) mgl64.Vec2 {
	d := b.Sub(a)
	n := mgl64.Vec2{-d.Y(), d.X()}
	l := n.Len()
	if l == 0 {
		return mgl64.Vec2{0, 0}
	}
	return n.Mul(1.0 / l)
}

// HasEndpoint reports whether v is one of this edge's endpoints.
func (e *Edge) HasEndpoint(v Handle) bool {
	return e.V1 == v || e.V2 == v
}

// Other returns the endpoint of e that is not v. Behavior is
// undefined if v is not an endpoint of e.
func (e *Edge) Other(v Handle) Handle {
	if e.V1 == v {
		return e.V2
	}
	return e.V1
}

// SameEndpoints reports whether e connects the same two vertices as
// (v1, v2), regardless of order.
func (e *Edge) SameEndpoints(v1, v2 Handle) bool {
	return (e.V1 == v1 && e.V2 == v2) || (e.V1 == v2 && e.V2 == v1)
}

// IsBoundary reports whether e carries a boundary marker (> 0).
func (e *Edge) IsBoundary() bool {
	return e.Marker > 0
}
