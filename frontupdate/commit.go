package frontupdate

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tessellate/meshfront/meshmodel"
)

// commit materializes the winning candidate as a vertex (if new),
// wires the triangle's two non-base edges into the mesh and front,
// removes the base edge from the front, and registers the new facet
// (with neighbors filled in where known).
func (e *Engine) commit(baseEdge, v1, v2 meshmodel.Handle, candVertex meshmodel.Handle, pos mgl64.Vec2, isNew bool) Result {
	c := candVertex
	if isNew {
		sizeHint := e.domain.SizeFunction(pos)
		c = e.domain.CommitVertex(pos, sizeHint, -1)
	}

	facet := e.mesh.AddFacet(meshmodel.NewTriangle(v1, v2, c, 0))

	// The base edge always gets this triangle as its one remaining
	// neighbor and leaves the front: a boundary edge never had a
	// second side to begin with, and an interior front edge just
	// received it.
	e.mesh.LinkFacetToEdge(baseEdge, facet)
	e.front.Remove(baseEdge)

	// The triangle's other two sides, in front-orientation (unmeshed
	// on the left): reversed v2->c becomes c->v2, and reversed c->v1
	// becomes v1->c, since the triangle (v1,v2,c) is itself CCW with
	// meshed area on the left of v1->v2->c->v1.
	e.resolveSide(c, v2, facet)
	e.resolveSide(v1, c, facet)

	fillNeighbors(e.mesh, facet)
	e.registerFacet(facet)

	return Result{Outcome: Committed, Facet: facet}
}

// resolveSide either closes an existing edge between a and b (giving
// it its second facet neighbor and dropping it from the front) or
// creates a fresh interior edge oriented a->b and pushes it onto the
// front.
func (e *Engine) resolveSide(a, b, facet meshmodel.Handle) {
	if existing, ok := e.mesh.FindEdge(a, b); ok {
		e.mesh.LinkFacetToEdge(existing, facet)
		e.front.Remove(existing)
		return
	}
	h, err := e.mesh.AddEdge(a, b, 0)
	if err != nil {
		panic(err)
	}
	e.mesh.LinkFacetToEdge(h, facet)
	e.front.Push(h)
}

// fillNeighbors sets each of facet's three neighbor slots from the
// edge it now sits on, so its Neighbors array is total immediately
// (no caller ever needs to special-case a just-created facet).
func fillNeighbors(mesh *meshmodel.Mesh, facet meshmodel.Handle) {
	f := mesh.Facets.MustGet(facet)
	n := f.NumVertices()
	for i := 0; i < n; i++ {
		a, b := f.Vertices[i], f.Vertices[(i+1)%n]
		eh, ok := mesh.FindEdge(a, b)
		if !ok {
			continue
		}
		edge := mesh.Edges.MustGet(eh)
		switch {
		case sameFacet(edge.Left, facet):
			if r, ok := edge.Right.Get(); ok {
				f.SetNeighbor(i, meshmodel.Ref(r))
			}
		case sameFacet(edge.Right, facet):
			if l, ok := edge.Left.Get(); ok {
				f.SetNeighbor(i, meshmodel.Ref(l))
			}
		}
	}
}

func sameFacet(ref meshmodel.FacetRef, h meshmodel.Handle) bool {
	v, ok := ref.Get()
	return ok && v == h
}
