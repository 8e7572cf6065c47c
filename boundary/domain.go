// Package boundary implements oriented boundary loops, vertex
// deduplication against the rest of the domain, and the size-field
// evaluator. The size field applies a smooth decay to each bounded
// per-vertex hint in reach and takes the smallest of the results.
package boundary

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/meshmodel"
	"github.com/tessellate/meshfront/spatial"
)

// DefaultSizeFloor is the absolute lower bound ever placed on the
// size field, regardless of vertexCellSize: it exists only to keep
// SizeFunction away from zero, not to be a realistic element size on
// its own.
const DefaultSizeFloor = 1e-6

// DefaultSizeFloorFactor scales NewDomain's vertexCellSize into the
// domain's initial SizeFloor, so a query point with no hint in reach
// gets a floor on the order of the domain's own expected feature
// size instead of a near-zero constant that would collapse new-vertex
// placement onto the base edge.
const DefaultSizeFloorFactor = 0.5

// Domain owns one exterior Boundary and zero or more interior (hole)
// Boundaries over a shared Mesh, and answers size-field and
// containment queries over their union.
type Domain struct {
	Mesh      *meshmodel.Mesh
	SizeFloor float64

	exterior  *Boundary
	interiors []*Boundary

	vertexIndex *spatial.Index[meshmodel.Handle]
}

// NewDomain returns an empty Domain backed by mesh. vertexCellSize
// should be on the order of the smallest expected feature size; it
// sets the vertex index's cell size and, when positive, the initial
// SizeFloor (vertexCellSize * DefaultSizeFloorFactor).
func NewDomain(mesh *meshmodel.Mesh, vertexCellSize float64) *Domain {
	floor := DefaultSizeFloor
	if vertexCellSize > 0 {
		floor = vertexCellSize * DefaultSizeFloorFactor
	}
	return &Domain{
		Mesh:        mesh,
		SizeFloor:   floor,
		vertexIndex: spatial.NewIndex[meshmodel.Handle](vertexCellSize, 64),
	}
}

// NewExteriorBoundary creates this domain's (single) exterior
// boundary. Calling it twice replaces the previous one; callers
// should only call it once per domain.
func (d *Domain) NewExteriorBoundary() *Boundary {
	b := newBoundary(d, Exterior)
	d.exterior = b
	return b
}

// NewInteriorBoundary creates and registers a new interior (hole)
// boundary.
func (d *Domain) NewInteriorBoundary() *Boundary {
	b := newBoundary(d, Interior)
	d.interiors = append(d.interiors, b)
	return b
}

// Exterior returns the domain's exterior boundary, or nil if none has
// been created yet.
func (d *Domain) Exterior() *Boundary { return d.exterior }

// Interiors returns the domain's interior (hole) boundaries.
func (d *Domain) Interiors() []*Boundary { return d.interiors }

// AllBoundaryEdges returns every edge handle across the exterior and
// all interior boundaries, in the order boundaries were created and
// edges were appended within each — the order strategy.New pushes
// them onto the front before its initial sort.
func (d *Domain) AllBoundaryEdges() []meshmodel.Handle {
	var out []meshmodel.Handle
	if d.exterior != nil {
		out = append(out, d.exterior.edges...)
	}
	for _, b := range d.interiors {
		out = append(out, b.edges...)
	}
	return out
}

// dedupVertex reuses the nearest existing domain vertex when its
// squared distance to xy is below geom.Epsilon, or creates a new one
// and registers it with the vertex index.
func (d *Domain) dedupVertex(xy mgl64.Vec2, sizeHint, rangeHint float64) meshmodel.Handle {
	if nearest, ok := d.vertexIndex.Nearest(xy); ok {
		v := d.Mesh.Vertices.MustGet(nearest)
		if geom.EQ0(v.XY.Sub(xy).LenSqr()) {
			return nearest
		}
	}
	return d.CommitVertex(xy, sizeHint, rangeHint)
}

// CommitVertex appends a new vertex to the domain's mesh and registers
// it with the shared vertex index, without any deduplication check.
// Callers placing a candidate already validated as a new position use
// this directly; boundary construction goes through dedupVertex
// instead.
func (d *Domain) CommitVertex(xy mgl64.Vec2, sizeHint, rangeHint float64) meshmodel.Handle {
	h := d.Mesh.AddVertex(xy, sizeHint, rangeHint)
	d.vertexIndex.Insert(h, xy)
	return h
}

// NearestVertex returns the domain vertex closest to p, or
// (Invalid, false) if the domain has no vertices yet.
func (d *Domain) NearestVertex(p mgl64.Vec2) (meshmodel.Handle, bool) {
	return d.vertexIndex.Nearest(p)
}

// VerticesInRadius lazily yields every domain vertex within r of p.
func (d *Domain) VerticesInRadius(p mgl64.Vec2, r float64) iter.Seq[meshmodel.Handle] {
	return d.vertexIndex.InRadius(p, r)
}

// sizeFieldSearchRadius bounds how far a size-field query looks for
// hint vertices, derived from the largest range hint seen so far. A
// domain with no hints at all gets 0, and SizeFunction then skips the
// index query entirely.
func (d *Domain) sizeFieldSearchRadius() float64 {
	maxRange := 0.0
	d.Mesh.Vertices.All(func(_ meshmodel.Handle, v *meshmodel.Vertex) {
		if v.HasSizeHint() && v.RangeHint > maxRange {
			maxRange = v.RangeHint
		}
	})
	if maxRange <= 0 {
		return 0
	}
	return maxRange
}

// smoothDecay returns a weight in [0,1] that decays smoothly from 1
// at dist=0 to 0 at dist=range (and stays 0 beyond it, or for a
// non-positive range), using a cosine ease so
// the size field stays C1-continuous instead of kinking at the range
// boundary.
func smoothDecay(dist, rng float64) float64 {
	if rng <= 0 {
		return 0
	}
	t := dist / rng
	if t >= 1 {
		return 0
	}
	return 0.5 * (1 + math.Cos(math.Pi*t))
}

// SizeFunction evaluates the domain's size field at p: the smallest
// target edge length among hint vertices within reach of p, each
// scaled by its own smooth decay, floored at SizeFloor.
func (d *Domain) SizeFunction(p mgl64.Vec2) float64 {
	best := math.Inf(1)

	radius := d.sizeFieldSearchRadius()
	if radius > 0 {
		for h := range d.vertexIndex.InRadius(p, radius) {
			v := d.Mesh.Vertices.MustGet(h)
			if !v.HasSizeHint() {
				continue
			}
			dist := v.XY.Sub(p).Len()
			if dist >= v.RangeHint {
				continue
			}
			weight := smoothDecay(dist, v.RangeHint)
			if weight <= 0 {
				continue
			}
			size := math.Max(v.SizeHint, d.SizeFloor) / weight
			if size < best {
				best = size
			}
		}
	}

	if math.IsInf(best, 1) {
		return d.SizeFloor
	}
	return math.Max(best, d.SizeFloor)
}

// exteriorRing returns the exterior boundary's vertices, in order, as
// a plain polygon for point-in-polygon tests.
func (d *Domain) exteriorRing() []mgl64.Vec2 {
	if d.exterior == nil {
		return nil
	}
	return d.exterior.ring()
}

// Contains reports whether p lies in the domain: inside (or on) the
// exterior boundary and not strictly inside any interior (hole)
// boundary.
func (d *Domain) Contains(p mgl64.Vec2) bool {
	ext := d.exteriorRing()
	if len(ext) == 0 {
		return false
	}
	switch geom.InOnPolygon(p, ext) {
	case geom.Outside:
		return false
	}

	for _, hole := range d.interiors {
		ring := hole.ring()
		if len(ring) == 0 {
			continue
		}
		if geom.InOnPolygon(p, ring) == geom.Inside {
			return false
		}
	}
	return true
}

// StrictlyInside reports whether p lies strictly inside the domain:
// inside the exterior boundary (not merely on its edge) and strictly
// outside every interior boundary. Used by candidate validation for a
// brand-new vertex, which must not sit exactly on a boundary edge.
func (d *Domain) StrictlyInside(p mgl64.Vec2) bool {
	ext := d.exteriorRing()
	if len(ext) == 0 {
		return false
	}
	if geom.InOnPolygon(p, ext) != geom.Inside {
		return false
	}
	for _, hole := range d.interiors {
		ring := hole.ring()
		if len(ring) == 0 {
			continue
		}
		if geom.InOnPolygon(p, ring) != geom.Outside {
			return false
		}
	}
	return true
}
