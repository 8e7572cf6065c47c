package boundary

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/mesherr"
	"github.com/tessellate/meshfront/meshmodel"
)

// Orientation distinguishes a domain's exterior boundary from its
// interior (hole) boundaries; the two require opposite winding so
// that both always keep the meshed region on their left.
type Orientation int

const (
	Exterior Orientation = iota
	Interior
)

// Boundary is one closed, oriented polygonal loop belonging to a
// Domain: either the single exterior loop or one of its holes. A
// Boundary holds no geometry of its own once built — its vertices and
// edges live in the owning Domain's Mesh, and ring() reconstructs the
// polygon from them on demand.
type Boundary struct {
	domain      *Domain
	orientation Orientation
	vertices    []meshmodel.Handle
	edges       []meshmodel.Handle
}

func newBoundary(d *Domain, o Orientation) *Boundary {
	return &Boundary{domain: d, orientation: o}
}

// Orientation reports whether this is the exterior loop or a hole.
func (b *Boundary) Orientation() Orientation { return b.orientation }

// Vertices returns the boundary's vertex handles in loop order.
func (b *Boundary) Vertices() []meshmodel.Handle {
	out := make([]meshmodel.Handle, len(b.vertices))
	copy(out, b.vertices)
	return out
}

// Edges returns the boundary's edge handles in loop order.
func (b *Boundary) Edges() []meshmodel.Handle {
	out := make([]meshmodel.Handle, len(b.edges))
	copy(out, b.edges)
	return out
}

// ring reconstructs the polygon this boundary currently describes, in
// the order its vertices were committed.
func (b *Boundary) ring() []mgl64.Vec2 {
	if len(b.vertices) == 0 {
		return nil
	}
	out := make([]mgl64.Vec2, len(b.vertices))
	for i, h := range b.vertices {
		out[i] = b.domain.Mesh.Vertices.MustGet(h).XY
	}
	return out
}

// VertexProps carries the optional per-vertex size/range hints
// accepted by SetShape; a nil slice leaves every vertex with no hint
// ({-1, -1}, per meshmodel.Vertex.HasSizeHint), and a slice of the
// wrong length is rejected.
type VertexProps struct {
	Size  float64
	Range float64
}

// SetShape validates coords as a simple, non-degenerate polygon,
// corrects its winding to match b's orientation, deduplicates each
// vertex against the rest of the domain, and commits the loop's
// vertices and edges to the owning mesh. markers must all be
// positive; props, if non-nil, must have the same length as coords
// and supplies each vertex's size/range hint.
//
// Validation rejects fewer than three points or a non-positive
// marker up front, then computes the signed area once and walks the
// ring forward for an exterior loop whose area is already positive
// (or a hole whose area is already negative), backward otherwise —
// rather than physically reversing the input slice.
func (b *Boundary) SetShape(coords []mgl64.Vec2, markers []int, props []VertexProps) error {
	if len(coords) < 3 {
		return mesherr.NewInvalidBoundary("a boundary loop requires at least 3 points")
	}
	if len(markers) != len(coords) {
		return mesherr.NewInvalidBoundary("markers must have the same length as coords")
	}
	if props != nil && len(props) != len(coords) {
		return mesherr.NewInvalidBoundary("props must have the same length as coords, or be nil")
	}
	for _, mk := range markers {
		if mk <= 0 {
			return mesherr.NewInvalidBoundary("boundary edge markers must be positive")
		}
	}

	n := len(coords)
	for i := 0; i < n; i++ {
		a0, a1 := coords[i], coords[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (j+1)%n == i {
				continue
			}
			c0, c1 := coords[j], coords[(j+1)%n]
			if geom.SegmentsIntersect(a0, a1, c0, c1) {
				return mesherr.NewInvalidBoundary("boundary loop is self-intersecting")
			}
		}
	}

	area := geom.SignedArea(coords)
	if geom.EQ0(area) {
		return mesherr.NewInvalidBoundary("boundary loop has zero area")
	}

	wantCCW := b.orientation == Exterior
	isCCW := area > 0
	forward := isCCW == wantCCW

	vertices := make([]meshmodel.Handle, n)
	for i := 0; i < n; i++ {
		idx := i
		if !forward {
			idx = (n - i) % n
		}
		sizeHint, rangeHint := -1.0, -1.0
		if props != nil {
			sizeHint, rangeHint = props[idx].Size, props[idx].Range
		}
		vertices[i] = b.domain.dedupVertex(coords[idx], sizeHint, rangeHint)
	}

	edges := make([]meshmodel.Handle, n)
	for i := 0; i < n; i++ {
		v1, v2 := vertices[i], vertices[(i+1)%n]
		idx := i
		if !forward {
			idx = (n - 1 - i + n) % n
		}
		eh, err := b.domain.Mesh.AddEdge(v1, v2, markers[idx])
		if err != nil {
			return err
		}
		edges[i] = eh
	}

	b.vertices = vertices
	b.edges = edges
	return nil
}
