package boundary

import (
	"strings"
	"testing"

	"github.com/tessellate/meshfront/mesherr"
	"github.com/tessellate/meshfront/meshmodel"
)

func TestBoundary_LoadCSV_HappyPath(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := NewDomain(mesh, 0.1)
	ext := d.NewExteriorBoundary()

	data := "0,0,1,0.5,1.0\n1,0,1\n1,1,1\n0,1,1\n"
	if err := ext.LoadCSV(strings.NewReader(data)); err != nil {
		t.Fatalf("LoadCSV: %v", err)
	}
	if len(ext.Vertices()) != 4 {
		t.Fatalf("len(Vertices()) = %d, want 4", len(ext.Vertices()))
	}

	v0 := mesh.Vertices.MustGet(ext.Vertices()[0])
	if v0.SizeHint != 0.5 || v0.RangeHint != 1.0 {
		t.Errorf("v0 hints = (%v, %v), want (0.5, 1.0)", v0.SizeHint, v0.RangeHint)
	}
}

func TestBoundary_LoadCSV_MissingMarker(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := NewDomain(mesh, 0.1)
	ext := d.NewExteriorBoundary()

	err := ext.LoadCSV(strings.NewReader("1.0,2.0\n"))
	ib, ok := err.(*mesherr.InvalidBoundary)
	if !ok {
		t.Fatalf("err = %v (%T), want *mesherr.InvalidBoundary", err, err)
	}
	if ib.Line != 1 {
		t.Errorf("Line = %d, want 1", ib.Line)
	}
}

func TestBoundary_LoadCSV_NonPositiveMarker(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := NewDomain(mesh, 0.1)
	ext := d.NewExteriorBoundary()

	data := "0,0,1\n1,0,0\n1,1,1\n"
	err := ext.LoadCSV(strings.NewReader(data))
	ib, ok := err.(*mesherr.InvalidBoundary)
	if !ok {
		t.Fatalf("err = %v (%T), want *mesherr.InvalidBoundary", err, err)
	}
	if ib.Line != 2 {
		t.Errorf("Line = %d, want 2", ib.Line)
	}
}

func TestBoundary_LoadCSV_NonNumericField(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := NewDomain(mesh, 0.1)
	ext := d.NewExteriorBoundary()

	data := "x,0,1\n1,0,1\n1,1,1\n"
	err := ext.LoadCSV(strings.NewReader(data))
	if _, ok := err.(*mesherr.InvalidBoundary); !ok {
		t.Fatalf("err = %v (%T), want *mesherr.InvalidBoundary", err, err)
	}
}

func TestBoundary_LoadCSV_TooFewRows(t *testing.T) {
	mesh := meshmodel.NewMesh()
	d := NewDomain(mesh, 0.1)
	ext := d.NewExteriorBoundary()

	err := ext.LoadCSV(strings.NewReader("0,0,1\n1,0,1\n"))
	if _, ok := err.(*mesherr.InvalidBoundary); !ok {
		t.Fatalf("err = %v (%T), want *mesherr.InvalidBoundary", err, err)
	}
}
