package strategy

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/meshmodel"
)

func squareDomain(t *testing.T, size, rng float64) *boundary.Domain {
	t.Helper()
	mesh := meshmodel.NewMesh()
	d := boundary.NewDomain(mesh, size)
	ext := d.NewExteriorBoundary()
	coords := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	props := make([]boundary.VertexProps, 4)
	for i := range props {
		props[i] = boundary.VertexProps{Size: size, Range: rng}
	}
	if err := ext.SetShape(coords, []int{1, 1, 1, 1}, props); err != nil {
		t.Fatalf("SetShape: %v", err)
	}
	return d
}

func TestStrategy_UnitSquareEmptiesFront(t *testing.T) {
	d := squareDomain(t, 0.5, 1.0)
	cfg := DefaultConfig(0.5)
	s := New(d, cfg)

	result := s.Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Failure)
	}
	if s.Front().Size() != 0 {
		t.Errorf("front size after success = %d, want 0", s.Front().Size())
	}
}

func TestStrategy_UnitSquareProducesCCWTrianglesSummingToUnitArea(t *testing.T) {
	d := squareDomain(t, 0.5, 1.0)
	cfg := DefaultConfig(0.5)
	s := New(d, cfg)

	result := s.Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Failure)
	}

	total := 0.0
	result.Mesh.Facets.All(func(_ meshmodel.Handle, f *meshmodel.Facet) {
		p0 := result.Mesh.Vertices.MustGet(f.Vertices[0]).XY
		p1 := result.Mesh.Vertices.MustGet(f.Vertices[1]).XY
		p2 := result.Mesh.Vertices.MustGet(f.Vertices[2]).XY
		area := 0.5 * geom.SignedArea2(p0, p1, p2)
		if area <= 0 {
			t.Errorf("facet %v has non-positive area %v", f, area)
		}
		total += area
	})

	if math.Abs(total-1.0) > 1e-6 {
		t.Errorf("sum of facet areas = %v, want ~1.0", total)
	}
}

func TestStrategy_BoundedModeStopsAtNElements(t *testing.T) {
	d := squareDomain(t, 0.2, 1.0)
	cfg := DefaultConfig(0.2)
	cfg.NElements = 3
	s := New(d, cfg)

	result := s.Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Failure)
	}
	if result.NElems != 3 {
		t.Errorf("NElems = %d, want 3", result.NElems)
	}
}

func TestStrategy_EmitsElementCommittedAndFinishedEvents(t *testing.T) {
	d := squareDomain(t, 0.5, 1.0)
	cfg := DefaultConfig(0.5)
	s := New(d, cfg)

	var committed, finished int
	s.Events.Subscribe(func(ev Event) {
		switch ev.Type {
		case ElementCommitted:
			committed++
		case Finished:
			finished++
		}
	})

	result := s.Run()
	if !result.Success {
		t.Fatalf("Run failed: %v", result.Failure)
	}
	if committed != result.NElems {
		t.Errorf("ElementCommitted events = %d, want %d", committed, result.NElems)
	}
	if finished != 1 {
		t.Errorf("Finished events = %d, want 1", finished)
	}
}

func TestStrategy_EquilateralTriangleSingleCellProducesOneFacet(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := boundary.NewDomain(mesh, 1.0)
	ext := d.NewExteriorBoundary()
	if err := ext.SetEquilateralTriangle(mgl64.Vec2{0, 0}, 1, 1); err != nil {
		t.Fatalf("SetEquilateralTriangle: %v", err)
	}

	mesh.Vertices.All(func(h meshmodel.Handle, v *meshmodel.Vertex) {
		v.SizeHint, v.RangeHint = 2.0, 2.0
	})

	cfg := DefaultConfig(1.0)
	s := New(d, cfg)
	result := s.Run()

	if !result.Success {
		t.Fatalf("Run failed: %v", result.Failure)
	}
	if result.NElems != 1 {
		t.Errorf("NElems = %d, want 1", result.NElems)
	}
}
