// Command bounded_mode demonstrates strategy.Config.NElements: it
// stops the advancing front after a fixed number of facets instead of
// running to completion, leaving a partial-but-consistent mesh and a
// non-empty front behind.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/meshmodel"
	"github.com/tessellate/meshfront/strategy"
)

func main() {
	mesh := meshmodel.NewMesh()
	domain := boundary.NewDomain(mesh, 0.3)

	exterior := domain.NewExteriorBoundary()
	coords := []mgl64.Vec2{{0, 0}, {3, 0}, {3, 3}, {0, 3}}
	props := []boundary.VertexProps{
		{Size: 0.3, Range: 2.0},
		{Size: 0.3, Range: 2.0},
		{Size: 0.3, Range: 2.0},
		{Size: 0.3, Range: 2.0},
	}
	if err := exterior.SetShape(coords, []int{1, 1, 1, 1}, props); err != nil {
		panic(err)
	}

	cfg := strategy.DefaultConfig(0.3)
	cfg.NElements = 5
	s := strategy.New(domain, cfg)

	result := s.Run()
	if !result.Success {
		fmt.Printf("generation failed after %d facets: %s\n", result.Failure.NGenerated, result.Failure.Reason)
		return
	}

	fmt.Printf("stopped at %d facets with %d edges still on the front\n", result.NElems, s.Front().Size())
}
