// Package front implements the advancing front: the ordered container
// of active edges from which the triangulation strategy repeatedly
// draws a base edge, shortest first, with ties broken deterministically
// so repeated runs over the same input are reproducible.
package front

import (
	"sort"

	"github.com/tessellate/meshfront/meshmodel"
)

// Front holds the current set of active edges plus a cursor
// designating the base edge under consideration.
type Front struct {
	mesh   *meshmodel.Mesh
	edges  []meshmodel.Handle
	pos    map[meshmodel.Handle]int
	cursor int
}

// New returns an empty Front bound to mesh, whose edge lengths it
// reads when sorting.
func New(mesh *meshmodel.Mesh) *Front {
	return &Front{
		mesh: mesh,
		pos:  make(map[meshmodel.Handle]int),
	}
}

// Push appends e to the front. The front is not re-sorted; callers
// that need priority order after a batch of pushes call Sort.
func (f *Front) Push(e meshmodel.Handle) {
	if _, exists := f.pos[e]; exists {
		return
	}
	f.pos[e] = len(f.edges)
	f.edges = append(f.edges, e)
}

// Remove drops e from the front, if present. Removal is swap-to-end
// and truncate, so it is O(1); the cursor is reset to 0 if it no
// longer points inside the shortened front.
func (f *Front) Remove(e meshmodel.Handle) {
	i, exists := f.pos[e]
	if !exists {
		return
	}
	last := len(f.edges) - 1
	f.edges[i] = f.edges[last]
	f.pos[f.edges[i]] = i
	f.edges = f.edges[:last]
	delete(f.pos, e)

	if f.cursor >= last {
		f.cursor = 0
	}
}

// Contains reports whether e is currently on the front.
func (f *Front) Contains(e meshmodel.Handle) bool {
	_, ok := f.pos[e]
	return ok
}

// Size returns the number of active edges.
func (f *Front) Size() int {
	return len(f.edges)
}

// Sort re-orders the front by ascending edge length, breaking ties by
// handle value for reproducibility across runs. full is accepted for
// callers that distinguish a full re-sort from an incremental one,
// but this implementation always performs a full sort.
func (f *Front) Sort(full bool) {
	_ = full
	sort.SliceStable(f.edges, func(i, j int) bool {
		ei := f.mesh.Edges.MustGet(f.edges[i])
		ej := f.mesh.Edges.MustGet(f.edges[j])
		if ei.Length != ej.Length {
			return ei.Length < ej.Length
		}
		return f.edges[i] < f.edges[j]
	})
	for idx, e := range f.edges {
		f.pos[e] = idx
	}
}

// SetBaseFirst points the cursor at the shortest edge (index 0, valid
// immediately after Sort) and returns it, or (Invalid, false) if the
// front is empty.
func (f *Front) SetBaseFirst() (meshmodel.Handle, bool) {
	f.cursor = 0
	return f.current()
}

// SetBaseNext advances the cursor by one, wrapping around, and
// returns the new base edge. Callers are responsible for detecting a
// full wrap by comparing an iteration counter to Size().
func (f *Front) SetBaseNext() (meshmodel.Handle, bool) {
	if len(f.edges) == 0 {
		return meshmodel.Invalid, false
	}
	f.cursor = (f.cursor + 1) % len(f.edges)
	return f.current()
}

// Base returns the edge currently under the cursor.
func (f *Front) Base() (meshmodel.Handle, bool) {
	return f.current()
}

func (f *Front) current() (meshmodel.Handle, bool) {
	if len(f.edges) == 0 {
		return meshmodel.Invalid, false
	}
	if f.cursor >= len(f.edges) {
		f.cursor = 0
	}
	return f.edges[f.cursor], true
}

// Edges returns a snapshot slice of the current front, in its current
// (not necessarily sorted) order.
func (f *Front) Edges() []meshmodel.Handle {
	out := make([]meshmodel.Handle, len(f.edges))
	copy(out, f.edges)
	return out
}

// Clear empties the front without touching the mesh.
func (f *Front) Clear() {
	f.edges = nil
	f.pos = make(map[meshmodel.Handle]int)
	f.cursor = 0
}
