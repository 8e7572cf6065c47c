// Package spatial implements the uniform-grid spatial index: power-of-two cell hashing over a bucket-of-handles layout,
// reduced from 3D to 2D and extended with per-entry removal, since
// the advancing front mutates the index incrementally instead of
// rebuilding it once per physics step.
package spatial

import (
	"iter"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// cellKey identifies a grid cell in 2D cell coordinates.
type cellKey struct {
	X, Y int
}

type entry[ID comparable] struct {
	id  ID
	pos mgl64.Vec2
	seq uint64
}

type cell[ID comparable] struct {
	entries []entry[ID]
}

// Index is a uniform-grid spatial index over 2D positions keyed by an
// arbitrary comparable ID (callers pass meshmodel.Handle). Insert and
// Remove run in expected O(1); Nearest and InRadius are expected
// O(log n) for roughly uniform point distributions, via a grid
// ring-search instead of a tree.
type Index[ID comparable] struct {
	cellSize float64
	cells    []cell[ID]
	mask     int
	pos      map[ID]mgl64.Vec2
	seq      map[ID]uint64
	nextSeq  uint64
}

// NewIndex returns an empty Index with the given cell size. numCells
// is rounded up to the next power of two so hashCell can mask instead
// of mod.
func NewIndex[ID comparable](cellSize float64, numCells int) *Index[ID] {
	numCells = nextPowerOfTwo(numCells)
	return &Index[ID]{
		cellSize: cellSize,
		cells:    make([]cell[ID], numCells),
		mask:     numCells - 1,
		pos:      make(map[ID]mgl64.Vec2),
		seq:      make(map[ID]uint64),
	}
}

func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

func (idx *Index[ID]) worldToCell(p mgl64.Vec2) cellKey {
	return cellKey{
		X: int(math.Floor(p.X() / idx.cellSize)),
		Y: int(math.Floor(p.Y() / idx.cellSize)),
	}
}

func (idx *Index[ID]) hashCell(k cellKey) int {
	h := (k.X * 73856093) ^ (k.Y * 19349663)
	return h & idx.mask
}

// Insert adds id at pos. If id is already present, its position is
// updated (equivalent to Remove then Insert).
func (idx *Index[ID]) Insert(id ID, pos mgl64.Vec2) {
	if _, exists := idx.pos[id]; exists {
		idx.Remove(id)
	}

	key := idx.worldToCell(pos)
	ci := idx.hashCell(key)
	idx.cells[ci].entries = append(idx.cells[ci].entries, entry[ID]{id: id, pos: pos, seq: idx.nextSeq})

	idx.pos[id] = pos
	idx.seq[id] = idx.nextSeq
	idx.nextSeq++
}

// Remove deletes id from the index. A no-op if id is not present.
func (idx *Index[ID]) Remove(id ID) {
	pos, ok := idx.pos[id]
	if !ok {
		return
	}
	key := idx.worldToCell(pos)
	ci := idx.hashCell(key)

	entries := idx.cells[ci].entries
	for i, e := range entries {
		if e.id == id {
			idx.cells[ci].entries = append(entries[:i], entries[i+1:]...)
			break
		}
	}

	delete(idx.pos, id)
	delete(idx.seq, id)
}

// Len returns the number of entries currently indexed.
func (idx *Index[ID]) Len() int {
	return len(idx.pos)
}

// Nearest returns the id closest to p, or the zero value and false if
// the index is empty. Ties are broken by insertion order (lowest
// sequence number wins), so repeated queries over the same index
// state are reproducible.
func (idx *Index[ID]) Nearest(p mgl64.Vec2) (ID, bool) {
	var zero ID
	if len(idx.pos) == 0 {
		return zero, false
	}

	center := idx.worldToCell(p)
	best, bestDist, bestSeq := zero, math.Inf(1), ^uint64(0)
	found := false

	for ring := 0; ; ring++ {
		any := idx.scanRing(center, ring, func(e entry[ID]) {
			d := e.pos.Sub(p).LenSqr()
			if !found || d < bestDist || (d == bestDist && e.seq < bestSeq) {
				best, bestDist, bestSeq = e.id, d, e.seq
				found = true
			}
		})

		// Once we have a candidate, one extra ring guarantees
		// correctness: a closer point could still sit in the next
		// ring out if it's near the current ring's boundary.
		if found && ring > 0 {
			searchRadius := float64(ring-1) * idx.cellSize
			if searchRadius*searchRadius >= bestDist {
				break
			}
		}
		if !any && ring > 64 {
			// Defensive bound: an empty index beyond any plausible
			// extent. Should be unreachable since len(idx.pos) > 0.
			break
		}
		if ring > 4096 {
			break
		}
	}

	return best, found
}

// scanRing visits every cell at Chebyshev distance exactly `ring` from
// center, calling visit for every entry found. It returns whether any
// cell in the ring held entries.
func (idx *Index[ID]) scanRing(center cellKey, ring int, visit func(entry[ID])) bool {
	any := false
	visitCell := func(k cellKey) {
		ci := idx.hashCell(k)
		for _, e := range idx.cells[ci].entries {
			// Guard against hash collisions across distinct cells by
			// re-checking the entry's true cell.
			if idx.worldToCell(e.pos) != k {
				continue
			}
			visit(e)
			any = true
		}
	}

	if ring == 0 {
		visitCell(center)
		return any
	}

	for dx := -ring; dx <= ring; dx++ {
		visitCell(cellKey{center.X + dx, center.Y - ring})
		visitCell(cellKey{center.X + dx, center.Y + ring})
	}
	for dy := -ring + 1; dy <= ring-1; dy++ {
		visitCell(cellKey{center.X - ring, center.Y + dy})
		visitCell(cellKey{center.X + ring, center.Y + dy})
	}
	return any
}

// InRadius returns a lazy sequence of ids within r of p, unordered.
func (idx *Index[ID]) InRadius(p mgl64.Vec2, r float64) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		rCells := int(math.Ceil(r/idx.cellSize)) + 1
		center := idx.worldToCell(p)
		r2 := r * r

		for dx := -rCells; dx <= rCells; dx++ {
			for dy := -rCells; dy <= rCells; dy++ {
				k := cellKey{center.X + dx, center.Y + dy}
				ci := idx.hashCell(k)
				for _, e := range idx.cells[ci].entries {
					if idx.worldToCell(e.pos) != k {
						continue
					}
					if e.pos.Sub(p).LenSqr() <= r2 {
						if !yield(e.id) {
							return
						}
					}
				}
			}
		}
	}
}
