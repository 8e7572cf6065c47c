package frontupdate

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/meshmodel"
)

// validate runs the full candidate acceptance pipeline against the
// proposed triangle (v1, v2, candidate-at-pos). candVertex is only
// meaningful when !isNew.
func (e *Engine) validate(baseEdge, v1, v2 meshmodel.Handle, p1, p2 mgl64.Vec2, candVertex meshmodel.Handle, pos mgl64.Vec2, isNew bool) (string, bool) {
	edge := e.mesh.Edges.MustGet(baseEdge)

	// 2.a: CCW with a non-degenerate area.
	area2 := geom.SignedArea2(p1, p2, pos)
	if area2 <= aMinFactor*edge.Length*edge.Length {
		return "candidate triangle is not CCW or is degenerate", false
	}

	// 2.b: angle quality bounds.
	a1 := geom.InteriorAngle(p2, p1, pos)
	a2 := geom.InteriorAngle(p1, pos, p2)
	a3 := geom.InteriorAngle(pos, p2, p1)
	smallest := min3(a1, a2, a3)
	largest := max3(a1, a2, a3)
	if smallest < e.cfg.MinCellQuality {
		return "candidate triangle has too sharp an angle", false
	}
	if largest > e.cfg.MaxCellAngle {
		return "candidate triangle has too wide an angle", false
	}

	// 2.c: the two new edges must not cross any other front edge. Each
	// new edge shares an endpoint with the front by construction (v1
	// or v2, and c); a front edge incident to that shared endpoint is
	// expected to touch there, not a true crossing.
	if e.intersectsFront(baseEdge, v1, candVertex, p1, pos) || e.intersectsFront(baseEdge, v2, candVertex, p2, pos) {
		return "candidate triangle edge crosses the front", false
	}

	// 2.d: containment. A reused vertex is already a valid mesh point
	// (it may legitimately sit on the domain boundary); a brand new
	// vertex must not coincide with the boundary it's being placed
	// next to.
	if isNew {
		if !e.domain.StrictlyInside(pos) {
			return "proposed vertex is not strictly inside the domain", false
		}
	} else if !e.domain.Contains(pos) {
		return "candidate vertex is outside the domain", false
	}

	// 2.e: no overlap with an already-committed facet.
	if e.overlapsExistingFacet(v1, v2, candVertex, p1, p2, pos, isNew) {
		return "candidate triangle overlaps an existing facet", false
	}

	return "", true
}

// intersectsFront reports whether segment (from, to) crosses any
// front edge other than baseEdge or one incident to pivot or
// candVertex — the segment's own two endpoints, which it is expected
// to touch any front edge at, not cross.
func (e *Engine) intersectsFront(baseEdge, pivot, candVertex meshmodel.Handle, from, to mgl64.Vec2) bool {
	for _, fh := range e.front.Edges() {
		if fh == baseEdge {
			continue
		}
		fe := e.mesh.Edges.MustGet(fh)
		if fe.HasEndpoint(pivot) {
			continue
		}
		if candVertex != meshmodel.Invalid && fe.HasEndpoint(candVertex) {
			continue
		}
		fp1 := e.mesh.Vertices.MustGet(fe.V1).XY
		fp2 := e.mesh.Vertices.MustGet(fe.V2).XY
		if geom.SegmentsIntersect(from, to, fp1, fp2) {
			return true
		}
	}
	return false
}

// overlapsExistingFacet checks the proposed triangle against every
// already-committed facet whose centroid lies near the triangle's own
// centroid, skipping any facet that shares a vertex with the
// candidate (adjacent triangles touching along a shared edge or
// corner is expected, not an overlap).
func (e *Engine) overlapsExistingFacet(v1, v2, candVertex meshmodel.Handle, p1, p2, pos mgl64.Vec2, isNew bool) bool {
	centroid := p1.Add(p2).Add(pos).Mul(1.0 / 3.0)
	searchRadius := p1.Sub(centroid).Len() + p2.Sub(centroid).Len() + pos.Sub(centroid).Len()

	tri := [3]mgl64.Vec2{p1, p2, pos}
	triBox := geom.BoundPoints(tri[:]...)

	for fh := range e.facets.InRadius(centroid, searchRadius) {
		facet := e.mesh.Facets.MustGet(fh)
		if !isNew && facetHasVertex(facet, candVertex) {
			continue
		}
		if facetHasVertex(facet, v1) || facetHasVertex(facet, v2) {
			continue
		}
		other := make([]mgl64.Vec2, facet.NumVertices())
		for i := range other {
			other[i] = e.mesh.Vertices.MustGet(facet.Vertices[i]).XY
		}
		if !triBox.Overlaps(geom.BoundPoints(other...)) {
			continue
		}
		if trianglesOverlap(tri[:], other) {
			return true
		}
	}
	return false
}

func facetHasVertex(f *meshmodel.Facet, v meshmodel.Handle) bool {
	return f.VertexIndex(v) >= 0
}

// trianglesOverlap reports whether polygon a (a candidate triangle)
// overlaps polygon b (an existing committed facet), given that the
// two share no vertex: plain containment and edge-intersection
// checks, sufficient for small, vertex-disjoint 2D polygons without
// needing a general convex-overlap solver.
func trianglesOverlap(a, b []mgl64.Vec2) bool {
	for _, p := range a {
		if geom.InOnPolygon(p, b) == geom.Inside {
			return true
		}
	}
	for _, p := range b {
		if geom.InOnPolygon(p, a) == geom.Inside {
			return true
		}
	}
	for i := 0; i < len(a); i++ {
		a0, a1 := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b0, b1 := b[j], b[(j+1)%len(b)]
			if sharesEndpoint(a0, a1, b0, b1) {
				continue
			}
			if geom.SegmentsIntersect(a0, a1, b0, b1) {
				return true
			}
		}
	}
	return false
}

func sharesEndpoint(a0, a1, b0, b1 mgl64.Vec2) bool {
	return geom.EQ0(a0.Sub(b0).LenSqr()) || geom.EQ0(a0.Sub(b1).LenSqr()) ||
		geom.EQ0(a1.Sub(b0).LenSqr()) || geom.EQ0(a1.Sub(b1).LenSqr())
}

func min3(a, b, c float64) float64 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float64) float64 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
