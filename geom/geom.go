// Package geom provides the scalar geometric predicates used throughout
// meshfront: orientation, segment intersection, point-in-polygon and
// signed area. Every predicate is built from raw mgl64.Vec2 arithmetic
// with a single shared epsilon, so callers never re-check tolerances.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Epsilon is the single tolerance used by every predicate in this
// package. Orientation tests, polygon containment and coincidence
// checks all compare against it instead of carrying their own.
const Epsilon = 1e-9

// Orientation classifies the turn from a->b->c.
type Orientation int

const (
	Collinear Orientation = iota
	Left
	Right
)

// cross2 returns the Z component of (b-a) x (c-a), i.e. twice the
// signed area of triangle (a,b,c).
func cross2(a, b, c mgl64.Vec2) float64 {
	ux, uy := b.X()-a.X(), b.Y()-a.Y()
	vx, vy := c.X()-a.X(), c.Y()-a.Y()
	return ux*vy - uy*vx
}

// OrientationOf returns the sign of cross2(a,b,c) within Epsilon.
// It is consistent by construction: OrientationOf(a,b,c) == Left iff
// OrientationOf(c,b,a) == Right, since cross2(c,b,a) == -cross2(a,b,c).
func OrientationOf(a, b, c mgl64.Vec2) Orientation {
	v := cross2(a, b, c)
	switch {
	case v > Epsilon:
		return Left
	case v < -Epsilon:
		return Right
	default:
		return Collinear
	}
}

// SignedArea2 returns twice the signed area of triangle (a,b,c);
// callers that only need the sign should prefer OrientationOf.
func SignedArea2(a, b, c mgl64.Vec2) float64 {
	return cross2(a, b, c)
}

// onSegment reports whether p, known collinear with (a,b), lies within
// the bounding box of segment a-b.
func onSegment(a, b, p mgl64.Vec2) bool {
	return math.Min(a.X(), b.X())-Epsilon <= p.X() && p.X() <= math.Max(a.X(), b.X())+Epsilon &&
		math.Min(a.Y(), b.Y())-Epsilon <= p.Y() && p.Y() <= math.Max(a.Y(), b.Y())+Epsilon
}

// SegmentsIntersect reports whether segments (a,b) and (c,d) intersect,
// including collinear overlaps. Uses the classical 4-orientation test.
func SegmentsIntersect(a, b, c, d mgl64.Vec2) bool {
	o1 := OrientationOf(a, b, c)
	o2 := OrientationOf(a, b, d)
	o3 := OrientationOf(c, d, a)
	o4 := OrientationOf(c, d, b)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == Collinear && onSegment(a, b, c) {
		return true
	}
	if o2 == Collinear && onSegment(a, b, d) {
		return true
	}
	if o3 == Collinear && onSegment(c, d, a) {
		return true
	}
	if o4 == Collinear && onSegment(c, d, b) {
		return true
	}

	return false
}

// PointPosition is the result of InOnPolygon.
type PointPosition int

const (
	Outside PointPosition = iota
	Inside
	On
)

// InOnPolygon classifies p against the closed polygon poly (given as an
// ordered vertex ring, not repeating the first vertex) using ray
// casting, with explicit on-edge detection.
func InOnPolygon(p mgl64.Vec2, poly []mgl64.Vec2) PointPosition {
	n := len(poly)
	if n < 3 {
		return Outside
	}

	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		if pointOnSegment(a, b, p) {
			return On
		}
	}

	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		crosses := (vi.Y() > p.Y()) != (vj.Y() > p.Y())
		if crosses {
			xAt := vi.X() + (p.Y()-vi.Y())*(vj.X()-vi.X())/(vj.Y()-vi.Y())
			if p.X() < xAt {
				inside = !inside
			}
		}
	}

	if inside {
		return Inside
	}
	return Outside
}

// pointOnSegment reports whether p lies on segment a-b, within Epsilon.
func pointOnSegment(a, b, p mgl64.Vec2) bool {
	if OrientationOf(a, b, p) != Collinear {
		return false
	}
	return onSegment(a, b, p)
}

// SignedArea returns the signed area of the polygon poly via the
// shoelace formula: positive for CCW, negative for CW.
func SignedArea(poly []mgl64.Vec2) float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		sum += a.X()*b.Y() - b.X()*a.Y()
	}
	return 0.5 * sum
}

// IsCCW reports whether poly is wound counter-clockwise.
func IsCCW(poly []mgl64.Vec2) bool {
	return SignedArea(poly) > 0
}

// AngleBetween returns the angle from u to v in [0, 2*pi), measured
// counter-clockwise, via atan2 of the cross and dot products.
func AngleBetween(u, v mgl64.Vec2) float64 {
	cross := u.X()*v.Y() - u.Y()*v.X()
	dot := u.X()*v.X() + u.Y()*v.Y()
	a := math.Atan2(cross, dot)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// InteriorAngle returns the unsigned interior angle at vertex b of the
// path a-b-c, always in [0, pi].
func InteriorAngle(a, b, c mgl64.Vec2) float64 {
	u := a.Sub(b)
	v := c.Sub(b)
	denom := u.Len() * v.Len()
	if denom < Epsilon {
		return 0
	}
	cosTheta := u.Dot(v) / denom
	cosTheta = math.Max(-1.0, math.Min(1.0, cosTheta))
	return math.Acos(cosTheta)
}

// Midpoint returns the midpoint of segment a-b.
func Midpoint(a, b mgl64.Vec2) mgl64.Vec2 {
	return a.Add(b).Mul(0.5)
}

// LeftNormal returns the unit vector perpendicular to (b-a), rotated
// 90 degrees counter-clockwise: if (b-a) points along +X, the result
// points along +Y. Front edges use this so that, given CCW winding
// around unmeshed area, the normal points into the unmeshed region.
func LeftNormal(a, b mgl64.Vec2) mgl64.Vec2 {
	d := b.Sub(a)
	n := mgl64.Vec2{-d.Y(), d.X()}
	l := n.Len()
	if l < Epsilon {
		return mgl64.Vec2{0, 0}
	}
	return n.Mul(1.0 / l)
}

// EQ0 reports whether v is within Epsilon of zero; mirrors the
// original source's EQ0(norm_sqr) coincidence test, used for vertex
// deduplication against squared distances.
func EQ0(v float64) bool {
	return math.Abs(v) < Epsilon
}
