// Command basic_square generates a triangulation of a unit square and
// prints a short summary: build the domain, run the strategy, report
// the result.
package main

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/meshmodel"
	"github.com/tessellate/meshfront/strategy"
)

// SetupDomain builds a unit square boundary with a uniform size hint.
func SetupDomain() *boundary.Domain {
	mesh := meshmodel.NewMesh()
	domain := boundary.NewDomain(mesh, 0.5)

	exterior := domain.NewExteriorBoundary()
	coords := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	markers := []int{1, 1, 1, 1}
	props := []boundary.VertexProps{
		{Size: 0.2, Range: 1.0},
		{Size: 0.2, Range: 1.0},
		{Size: 0.2, Range: 1.0},
		{Size: 0.2, Range: 1.0},
	}
	if err := exterior.SetShape(coords, markers, props); err != nil {
		panic(err)
	}
	return domain
}

func main() {
	domain := SetupDomain()

	cfg := strategy.DefaultConfig(0.2)
	s := strategy.New(domain, cfg)

	s.Events.Subscribe(func(ev strategy.Event) {
		if ev.Type == strategy.ElementCommitted {
			fmt.Printf("facet %d committed (total %d)\n", ev.Facet, ev.NElems)
		}
	})

	result := s.Run()
	if !result.Success {
		fmt.Printf("generation failed after %d facets: %s\n", result.Failure.NGenerated, result.Failure.Reason)
		return
	}

	fmt.Printf("generated %d facets, %d vertices, %d edges\n",
		result.NElems, result.Mesh.Vertices.AliveCount(), result.Mesh.Edges.AliveCount())
}
