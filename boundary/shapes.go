package boundary

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCircleSegments is the polygon approximation used by
// RegularPolygon and Circle when the caller doesn't care.
const DefaultCircleSegments = 30

// uniformMarker returns a marker slice of length n, every entry set
// to marker.
func uniformMarker(n, marker int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = marker
	}
	return out
}

// SetSquare builds a b.orientation-appropriate square of side length
// s with its lower-left corner at origin, every edge tagged with
// marker.
func (b *Boundary) SetSquare(origin mgl64.Vec2, s float64, marker int) error {
	return b.SetRectangle(origin, s, s, marker)
}

// SetRectangle builds a rectangle of the given width and height with
// its lower-left corner at origin, every edge tagged with marker.
func (b *Boundary) SetRectangle(origin mgl64.Vec2, width, height float64, marker int) error {
	coords := []mgl64.Vec2{
		origin,
		origin.Add(mgl64.Vec2{width, 0}),
		origin.Add(mgl64.Vec2{width, height}),
		origin.Add(mgl64.Vec2{0, height}),
	}
	return b.SetShape(coords, uniformMarker(4, marker), nil)
}

// SetEquilateralTriangle builds an equilateral triangle with side
// length s, its first vertex at origin and its base along +X.
func (b *Boundary) SetEquilateralTriangle(origin mgl64.Vec2, s float64, marker int) error {
	height := s * math.Sqrt(3) / 2
	coords := []mgl64.Vec2{
		origin,
		origin.Add(mgl64.Vec2{s, 0}),
		origin.Add(mgl64.Vec2{s / 2, height}),
	}
	return b.SetShape(coords, uniformMarker(3, marker), nil)
}

// SetRegularPolygon builds a regular n-gon inscribed in a circle of
// the given radius centered at center, every edge tagged with marker.
// n must be >= 3; this is the general case Circle calls with
// DefaultCircleSegments.
func (b *Boundary) SetRegularPolygon(center mgl64.Vec2, radius float64, n int, marker int) error {
	coords := make([]mgl64.Vec2, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		coords[i] = center.Add(mgl64.Vec2{radius * math.Cos(theta), radius * math.Sin(theta)})
	}
	return b.SetShape(coords, uniformMarker(n, marker), nil)
}

// SetCircle builds a DefaultCircleSegments-sided regular polygon
// approximating a circle of the given radius centered at center.
func (b *Boundary) SetCircle(center mgl64.Vec2, radius float64, marker int) error {
	return b.SetRegularPolygon(center, radius, DefaultCircleSegments, marker)
}
