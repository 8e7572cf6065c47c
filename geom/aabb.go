package geom

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box in the plane, used as a cheap
// prefilter before exact predicates: a candidate triangle's box is
// checked for overlap against a nearby facet's box before the more
// expensive segment-intersection and containment tests run.
type AABB struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// BoundPoints returns the AABB enclosing pts. Panics-free on an empty
// slice: returns the zero-value AABB.
func BoundPoints(pts ...mgl64.Vec2) AABB {
	if len(pts) == 0 {
		return AABB{}
	}
	min, max := pts[0], pts[0]
	for _, p := range pts[1:] {
		if p.X() < min.X() {
			min[0] = p.X()
		}
		if p.Y() < min.Y() {
			min[1] = p.Y()
		}
		if p.X() > max.X() {
			max[0] = p.X()
		}
		if p.Y() > max.Y() {
			max[1] = p.Y()
		}
	}
	return AABB{Min: min, Max: max}
}

// ContainsPoint reports whether p lies within the box, inclusive.
func (box AABB) ContainsPoint(p mgl64.Vec2) bool {
	return p.X() >= box.Min.X() && p.X() <= box.Max.X() &&
		p.Y() >= box.Min.Y() && p.Y() <= box.Max.Y()
}

// Overlaps reports whether box and other intersect on both axes.
func (box AABB) Overlaps(other AABB) bool {
	return box.Max.X() >= other.Min.X() && box.Min.X() <= other.Max.X() &&
		box.Max.Y() >= other.Min.Y() && box.Min.Y() <= other.Max.Y()
}

// Expanded returns a copy of box grown by margin on every side.
func (box AABB) Expanded(margin float64) AABB {
	return AABB{
		Min: mgl64.Vec2{box.Min.X() - margin, box.Min.Y() - margin},
		Max: mgl64.Vec2{box.Max.X() + margin, box.Max.Y() + margin},
	}
}
