// Command square_with_hole generates a triangulation of a square
// domain with a smaller square hole cut out of its interior,
// exercising boundary.Domain's exterior/interior boundary split
// end to end.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/meshmodel"
	"github.com/tessellate/meshfront/strategy"
)

func uniformProps(n int, size, rng float64) []boundary.VertexProps {
	props := make([]boundary.VertexProps, n)
	for i := range props {
		props[i] = boundary.VertexProps{Size: size, Range: rng}
	}
	return props
}

// SetupDomain builds a 4x4 square with a 1x1 square hole centered
// inside it, each boundary carrying its own marker set.
func SetupDomain() *boundary.Domain {
	mesh := meshmodel.NewMesh()
	domain := boundary.NewDomain(mesh, 0.4)

	exterior := domain.NewExteriorBoundary()
	outer := []mgl64.Vec2{{0, 0}, {4, 0}, {4, 4}, {0, 4}}
	if err := exterior.SetShape(outer, []int{1, 1, 1, 1}, uniformProps(4, 0.4, 1.5)); err != nil {
		panic(err)
	}

	hole := domain.NewInteriorBoundary()
	inner := []mgl64.Vec2{{1.5, 1.5}, {2.5, 1.5}, {2.5, 2.5}, {1.5, 2.5}}
	if err := hole.SetShape(inner, []int{2, 2, 2, 2}, uniformProps(4, 0.3, 1.0)); err != nil {
		panic(err)
	}

	return domain
}

func main() {
	domain := SetupDomain()

	cfg := strategy.DefaultConfig(0.4)
	s := strategy.New(domain, cfg)
	result := s.Run()

	if !result.Success {
		fmt.Printf("generation failed after %d facets: %s\n", result.Failure.NGenerated, result.Failure.Reason)
		return
	}

	fmt.Printf("generated %d facets and %d edges around the hole\n", result.NElems, result.Mesh.Edges.AliveCount())
}
