package meshmodel

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMesh_AddEdge_CachesGeometry(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{2, 0}, -1, -1)

	eh, err := m.AddEdge(v1, v2, 1)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	e := m.Edges.MustGet(eh)

	if e.Length != 2 {
		t.Errorf("Length = %v, want 2", e.Length)
	}
	want := mgl64.Vec2{1, 0}
	if e.Midpoint != want {
		t.Errorf("Midpoint = %v, want %v", e.Midpoint, want)
	}
	// Left-hand normal of a +X edge should point +Y.
	if e.Normal.X() > 1e-9 || e.Normal.Y() <= 0 {
		t.Errorf("Normal = %v, want approx (0,1)", e.Normal)
	}
}

func TestMesh_AddEdge_UpdatesAdjacency(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)

	eh, err := m.AddEdge(v1, v2, 1)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	vert1 := m.Vertices.MustGet(v1)
	if len(vert1.Edges) != 1 || vert1.Edges[0] != eh {
		t.Errorf("v1.Edges = %v, want [%v]", vert1.Edges, eh)
	}
}

func TestMesh_RemoveEdge_DetachesAdjacency(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)
	eh, err := m.AddEdge(v1, v2, 1)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	m.RemoveEdge(eh)

	vert1 := m.Vertices.MustGet(v1)
	if len(vert1.Edges) != 0 {
		t.Errorf("v1.Edges after RemoveEdge = %v, want empty", vert1.Edges)
	}
	if _, ok := m.Edges.Get(eh); ok {
		t.Error("edge still alive after RemoveEdge")
	}
}

func TestMesh_AddFacet_UpdatesVertexAdjacency(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)
	v3 := m.AddVertex(mgl64.Vec2{0, 1}, -1, -1)

	fh := m.AddFacet(NewTriangle(v1, v2, v3, 0))

	for _, v := range []Handle{v1, v2, v3} {
		vert := m.Vertices.MustGet(v)
		if len(vert.Facets) != 1 || vert.Facets[0] != fh {
			t.Errorf("vertex %v Facets = %v, want [%v]", v, vert.Facets, fh)
		}
	}
}

func TestMesh_LinkFacetToEdge(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)
	eh, err := m.AddEdge(v1, v2, 0)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	fh1 := m.AddFacet(NewTriangle(v1, v2, v1, 0))
	fh2 := m.AddFacet(NewTriangle(v2, v1, v2, 0))

	m.LinkFacetToEdge(eh, fh1)
	m.LinkFacetToEdge(eh, fh2)

	e := m.Edges.MustGet(eh)
	left, leftOk := e.Left.Get()
	right, rightOk := e.Right.Get()
	if !leftOk || left != fh1 {
		t.Errorf("Left = %v,%v want %v,true", left, leftOk, fh1)
	}
	if !rightOk || right != fh2 {
		t.Errorf("Right = %v,%v want %v,true", right, rightOk, fh2)
	}
}

func TestMesh_NBoundaryEdges(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)
	v3 := m.AddVertex(mgl64.Vec2{0, 1}, -1, -1)

	m.AddEdge(v1, v2, 1)
	m.AddEdge(v2, v3, 2)
	m.AddEdge(v3, v1, 0)

	if got := m.NBoundaryEdges(); got != 2 {
		t.Errorf("NBoundaryEdges() = %d, want 2", got)
	}
}

func TestMesh_FindEdge(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)
	eh, err := m.AddEdge(v1, v2, 1)
	if err != nil {
		t.Fatalf("AddEdge: %v", err)
	}

	if got, ok := m.FindEdge(v2, v1); !ok || got != eh {
		t.Errorf("FindEdge(v2,v1) = %v,%v want %v,true", got, ok, eh)
	}
	if _, ok := m.FindEdge(v1, Handle(99)); ok {
		t.Error("FindEdge found a nonexistent edge")
	}
}

func TestMesh_AddEdge_RejectsNegativeMarker(t *testing.T) {
	m := NewMesh()
	v1 := m.AddVertex(mgl64.Vec2{0, 0}, -1, -1)
	v2 := m.AddVertex(mgl64.Vec2{1, 0}, -1, -1)

	if _, err := m.AddEdge(v1, v2, -1); err == nil {
		t.Error("AddEdge with negative marker returned nil error")
	}
}

func TestFacet_EdgeIndex(t *testing.T) {
	f := NewTriangle(Handle(0), Handle(1), Handle(2), 0)
	if idx := f.EdgeIndex(Handle(1), Handle(0)); idx != 0 {
		t.Errorf("EdgeIndex(1,0) = %d, want 0", idx)
	}
	if idx := f.EdgeIndex(Handle(2), Handle(0)); idx != 2 {
		t.Errorf("EdgeIndex(2,0) = %d, want 2", idx)
	}
	if idx := f.EdgeIndex(Handle(5), Handle(6)); idx != -1 {
		t.Errorf("EdgeIndex(5,6) = %d, want -1", idx)
	}
}
