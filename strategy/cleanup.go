package strategy

import (
	"github.com/tessellate/meshfront/geom"
	"github.com/tessellate/meshfront/meshmodel"
)

// degenerateAreaFactor bounds how small a triangle's signed area can
// be (scaled by the square of its longest edge) before
// MergeDegenerateTriangles treats it as a sliver left over from a
// near-collinear commit rather than a legitimate cell.
const degenerateAreaFactor = 1e-8

// RunCleanup runs the three post-meshing passes, each idempotent: a
// second call over their own output is a no-op because the predicate
// each pass acts on (a duplicate edge slot, a degenerate triangle) no
// longer holds afterward. This repository only ever generates
// triangles, so ClearDoubleQuadEdges has nothing to do; it stays as
// an explicit, documented no-op rather than being dropped, so a
// future quad strategy has a place to plug in without changing this
// call site.
func RunCleanup(mesh *meshmodel.Mesh) {
	ClearDoubleQuadEdges(mesh)
	ClearDoubleTriangleEdges(mesh)
	MergeDegenerateTriangles(mesh)
	mesh.ClearWaste()
}

// ClearDoubleQuadEdges would drop edges double-counted between
// adjacent quad cells. No-op: this engine's facets are always
// triangles.
func ClearDoubleQuadEdges(mesh *meshmodel.Mesh) {
	_ = mesh
}

// ClearDoubleTriangleEdges removes zero-length edges: a degenerate
// artifact that can only arise from a near-collinear candidate commit
// slipping past the area floor in frontupdate.validate. A mesh with
// none to begin with is left untouched, making a second pass a no-op.
func ClearDoubleTriangleEdges(mesh *meshmodel.Mesh) {
	var toRemove []meshmodel.Handle
	mesh.Edges.All(func(h meshmodel.Handle, e *meshmodel.Edge) {
		if geom.EQ0(e.Length * e.Length) {
			toRemove = append(toRemove, h)
		}
	})
	for _, h := range toRemove {
		mesh.RemoveEdge(h)
	}
}

// MergeDegenerateTriangles erases triangles whose area is negligible
// relative to their longest edge, detaching them from their edges'
// facet slots so those edges correctly report one fewer neighbor. It
// does not attempt to repair the resulting topology (e.g. re-wiring
// the edge the sliver used to separate into a single edge) — edges
// bordering the erased facet retain their other-side neighbor, if
// any, and lose the erased one; clearNeighborReferences does that,
// since Mesh.RemoveFacet alone leaves edge slots untouched. A mesh
// with no slivers left is unaffected by a repeated call.
func MergeDegenerateTriangles(mesh *meshmodel.Mesh) {
	var toRemove []meshmodel.Handle
	mesh.Facets.All(func(h meshmodel.Handle, f *meshmodel.Facet) {
		if f.Kind != meshmodel.Triangle {
			return
		}
		p0 := mesh.Vertices.MustGet(f.Vertices[0]).XY
		p1 := mesh.Vertices.MustGet(f.Vertices[1]).XY
		p2 := mesh.Vertices.MustGet(f.Vertices[2]).XY

		longest := 0.0
		for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
			a := mesh.Vertices.MustGet(f.Vertices[e[0]]).XY
			b := mesh.Vertices.MustGet(f.Vertices[e[1]]).XY
			if l := a.Sub(b).LenSqr(); l > longest {
				longest = l
			}
		}

		area2 := geom.SignedArea2(p0, p1, p2)
		if area2 > 0 && area2 < degenerateAreaFactor*longest {
			toRemove = append(toRemove, h)
		}
	})
	for _, h := range toRemove {
		clearNeighborReferences(mesh, h)
		mesh.RemoveFacet(h)
	}
}

// clearNeighborReferences drops f from the Left/Right slot of every
// edge it currently occupies, since Mesh.RemoveFacet only detaches
// vertex adjacency, not edge adjacency (edges keep their facet
// references until explicitly cleared, by design — see
// meshmodel.Mesh.LinkFacetToEdge).
func clearNeighborReferences(mesh *meshmodel.Mesh, f meshmodel.Handle) {
	facet := mesh.Facets.MustGet(f)
	n := facet.NumVertices()
	for i := 0; i < n; i++ {
		a, b := facet.Vertices[i], facet.Vertices[(i+1)%n]
		eh, ok := mesh.FindEdge(a, b)
		if !ok {
			continue
		}
		edge := mesh.Edges.MustGet(eh)
		if l, ok := edge.Left.Get(); ok && l == f {
			edge.Left = edge.Right
			edge.Right = meshmodel.NoFacet
		} else if r, ok := edge.Right.Get(); ok && r == f {
			edge.Right = meshmodel.NoFacet
		}
	}
}
