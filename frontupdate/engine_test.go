package frontupdate

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/boundary"
	"github.com/tessellate/meshfront/front"
	"github.com/tessellate/meshfront/meshmodel"
)

// setupSquare builds a unit-square domain with its four boundary
// edges seeded onto the front, ready for the decision kernel to
// consume the shortest (here, any) edge as a base.
func setupSquare(t *testing.T) (*meshmodel.Mesh, *boundary.Domain, *front.Front, *Engine) {
	t.Helper()
	mesh := meshmodel.NewMesh()
	d := boundary.NewDomain(mesh, 0.25)
	ext := d.NewExteriorBoundary()
	coords := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	props := []boundary.VertexProps{
		{Size: 0.5, Range: 1.0}, {Size: 0.5, Range: 1.0},
		{Size: 0.5, Range: 1.0}, {Size: 0.5, Range: 1.0},
	}
	if err := ext.SetShape(coords, []int{1, 1, 1, 1}, props); err != nil {
		t.Fatalf("SetShape: %v", err)
	}

	fr := front.New(mesh)
	for _, e := range ext.Edges() {
		fr.Push(e)
	}
	fr.Sort(true)

	cfg := DefaultConfig()
	eng := NewEngine(mesh, d, fr, 0.5, cfg)
	return mesh, d, fr, eng
}

func TestEngine_AdvanceCommitsANewTriangle(t *testing.T) {
	_, _, fr, eng := setupSquare(t)

	base, ok := fr.SetBaseFirst()
	if !ok {
		t.Fatal("expected a base edge")
	}

	result := eng.Advance(base)
	if result.Outcome != Committed {
		t.Fatalf("Advance outcome = %v, want Committed (reason: %s)", result.Outcome, result.Reason)
	}
	if fr.Contains(base) {
		t.Error("base edge should leave the front after commit")
	}
}

func TestEngine_CommittedTriangleIsCCWAndNonDegenerate(t *testing.T) {
	mesh, _, fr, eng := setupSquare(t)

	base, _ := fr.SetBaseFirst()
	result := eng.Advance(base)
	if result.Outcome != Committed {
		t.Fatalf("Advance outcome = %v, reason: %s", result.Outcome, result.Reason)
	}

	facet := mesh.Facets.MustGet(result.Facet)
	p0 := mesh.Vertices.MustGet(facet.Vertices[0]).XY
	p1 := mesh.Vertices.MustGet(facet.Vertices[1]).XY
	p2 := mesh.Vertices.MustGet(facet.Vertices[2]).XY

	area := 0.5 * ((p1.X()-p0.X())*(p2.Y()-p0.Y()) - (p2.X()-p0.X())*(p1.Y()-p0.Y()))
	if area <= 0 {
		t.Errorf("facet area = %v, want > 0 (CCW)", area)
	}
}

func TestEngine_FrontLosesAtMostOneEdgeOnFirstCommit(t *testing.T) {
	_, _, fr, eng := setupSquare(t)

	before := fr.Size()
	base, _ := fr.SetBaseFirst()
	result := eng.Advance(base)
	if result.Outcome != Committed {
		t.Fatalf("Advance outcome = %v, reason: %s", result.Outcome, result.Reason)
	}

	// The base edge leaves the front; each of the other two sides is
	// either pushed as a new edge or closes an existing front edge. On
	// the square's first commit no vertex borders both base endpoints,
	// so at most one side closes an existing edge.
	after := fr.Size()
	if after < before-1 {
		t.Errorf("front size after commit = %d, want >= %d", after, before-1)
	}
}

func TestEngine_RejectsWhenNoCandidateFits(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := boundary.NewDomain(mesh, 0.25)
	ext := d.NewExteriorBoundary()
	// A degenerately thin sliver leaves nowhere valid to place a
	// reasonable candidate within normal search radius once the angle
	// thresholds are tight.
	coords := []mgl64.Vec2{{0, 0}, {1, 0}, {1, 0.001}, {0, 0.001}}
	props := []boundary.VertexProps{
		{Size: 0.05, Range: 0.5}, {Size: 0.05, Range: 0.5},
		{Size: 0.05, Range: 0.5}, {Size: 0.05, Range: 0.5},
	}
	if err := ext.SetShape(coords, []int{1, 1, 1, 1}, props); err != nil {
		t.Fatalf("SetShape: %v", err)
	}
	fr := front.New(mesh)
	for _, e := range ext.Edges() {
		fr.Push(e)
	}
	fr.Sort(true)

	cfg := DefaultConfig()
	cfg.MinCellQuality = 89 * 3.141592653589793 / 180 // impossible: every triangle has an angle <= 60deg
	eng := NewEngine(mesh, d, fr, 0.5, cfg)

	base, _ := fr.SetBaseFirst()
	result := eng.Advance(base)
	if result.Outcome != Rejected {
		t.Fatalf("Advance outcome = %v, want Rejected", result.Outcome)
	}
}
