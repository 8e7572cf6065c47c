package spatial

import (
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestIndex_InsertAndNearest(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	idx.Insert(1, mgl64.Vec2{0, 0})
	idx.Insert(2, mgl64.Vec2{5, 5})
	idx.Insert(3, mgl64.Vec2{0.1, 0.1})

	got, ok := idx.Nearest(mgl64.Vec2{0, 0})
	if !ok {
		t.Fatal("Nearest returned not found")
	}
	if got != 1 {
		t.Errorf("Nearest((0,0)) = %d, want 1", got)
	}
}

func TestIndex_NearestEmpty(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	if _, ok := idx.Nearest(mgl64.Vec2{0, 0}); ok {
		t.Error("Nearest on empty index returned ok=true")
	}
}

func TestIndex_NearestAcrossCellBoundary(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	// Place a point just across a cell boundary from the query, and a
	// further point in the same cell as the query, to exercise the
	// ring-search termination condition.
	idx.Insert(1, mgl64.Vec2{0.95, 0})  // same cell as query
	idx.Insert(2, mgl64.Vec2{1.01, 0}) // neighboring cell, closer

	got, ok := idx.Nearest(mgl64.Vec2{0.99, 0})
	if !ok {
		t.Fatal("Nearest returned not found")
	}
	if got != 2 {
		t.Errorf("Nearest = %d, want 2 (closer, across cell boundary)", got)
	}
}

func TestIndex_InRadius(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	idx.Insert(1, mgl64.Vec2{0, 0})
	idx.Insert(2, mgl64.Vec2{0.5, 0})
	idx.Insert(3, mgl64.Vec2{10, 10})

	var found []int
	for id := range idx.InRadius(mgl64.Vec2{0, 0}, 1.0) {
		found = append(found, id)
	}
	sort.Ints(found)

	want := []int{1, 2}
	if len(found) != len(want) {
		t.Fatalf("InRadius = %v, want %v", found, want)
	}
	for i := range want {
		if found[i] != want[i] {
			t.Errorf("InRadius = %v, want %v", found, want)
		}
	}
}

func TestIndex_Remove(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	idx.Insert(1, mgl64.Vec2{0, 0})
	idx.Remove(1)

	if idx.Len() != 0 {
		t.Errorf("Len() after Remove = %d, want 0", idx.Len())
	}
	if _, ok := idx.Nearest(mgl64.Vec2{0, 0}); ok {
		t.Error("Nearest found a removed entry")
	}
}

func TestIndex_InsertUpdatesPosition(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	idx.Insert(1, mgl64.Vec2{0, 0})
	idx.Insert(1, mgl64.Vec2{5, 5})

	if idx.Len() != 1 {
		t.Errorf("Len() = %d, want 1 (re-insert should replace)", idx.Len())
	}
	got, _ := idx.Nearest(mgl64.Vec2{5, 5})
	if got != 1 {
		t.Errorf("Nearest((5,5)) = %d, want 1", got)
	}
}

func TestIndex_NearestTieBreakByInsertionOrder(t *testing.T) {
	idx := NewIndex[int](1.0, 16)
	idx.Insert(1, mgl64.Vec2{1, 0})
	idx.Insert(2, mgl64.Vec2{-1, 0})

	got, _ := idx.Nearest(mgl64.Vec2{0, 0})
	if got != 1 {
		t.Errorf("Nearest tie = %d, want 1 (inserted first)", got)
	}
}
