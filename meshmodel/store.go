// Package meshmodel is the entity store: arena-backed containers for
// vertices, edges and facets, addressed by stable handles instead of
// pointers or interfaces. Erasure is deferred rather than immediate,
// so handles taken during one pass of the advancing-front loop stay
// valid until the caller explicitly drains the waste bucket.
package meshmodel

// Handle addresses a single entry in a Store. The first Append on an
// empty Store returns Handle(0), so Handle's own zero value is not a
// safe "unset" sentinel for callers to rely on — use Invalid for that
// explicitly instead.
type Handle int

// Invalid is a Handle that never identifies a stored entry.
const Invalid Handle = -1

// Store is a stable-handle arena over T. Appended entries keep the
// same Handle for their entire lifetime; Erase defers physical removal
// to ClearWaste so that handles captured earlier in the same pass
// remain valid until the caller chooses to drain them.
type Store[T any] struct {
	items []T
	alive []bool
	waste []Handle
}

// NewStore returns an empty Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{}
}

// Append inserts v and returns its stable handle.
func (s *Store[T]) Append(v T) Handle {
	h := Handle(len(s.items))
	s.items = append(s.items, v)
	s.alive = append(s.alive, true)
	return h
}

// Get returns a pointer to the entry at h and true, or (nil, false) if
// h is out of range or has been erased.
func (s *Store[T]) Get(h Handle) (*T, bool) {
	if h < 0 || int(h) >= len(s.items) || !s.alive[h] {
		return nil, false
	}
	return &s.items[h], true
}

// MustGet is Get without the ok return, for call sites that already
// hold a handle they know is live (e.g. one just returned by Append).
func (s *Store[T]) MustGet(h Handle) *T {
	v, ok := s.Get(h)
	if !ok {
		panic("meshmodel: MustGet on dead or out-of-range handle")
	}
	return v
}

// IsAlive reports whether h currently identifies a live entry.
func (s *Store[T]) IsAlive(h Handle) bool {
	return h >= 0 && int(h) < len(s.items) && s.alive[h]
}

// Erase marks h for deferred removal. The entry remains physically
// present (so any handle obtained before this call that does a Get
// sees it has been erased, but the backing array is untouched) until
// ClearWaste runs.
func (s *Store[T]) Erase(h Handle) {
	if !s.IsAlive(h) {
		return
	}
	s.alive[h] = false
	s.waste = append(s.waste, h)
}

// ClearWaste physically drops erased entries' payloads, releasing any
// references they hold, and empties the waste bucket. It does not
// renumber surviving handles.
func (s *Store[T]) ClearWaste() {
	var zero T
	for _, h := range s.waste {
		s.items[h] = zero
	}
	s.waste = s.waste[:0]
}

// Len returns the number of slots ever appended, alive or not. Callers
// that need only live entries should use All or AliveCount.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// AliveCount returns the number of currently-live entries.
func (s *Store[T]) AliveCount() int {
	n := 0
	for _, a := range s.alive {
		if a {
			n++
		}
	}
	return n
}

// All iterates live entries in insertion order, calling fn(handle, *T)
// for each. fn must not Append to the same store while iterating.
func (s *Store[T]) All(fn func(Handle, *T)) {
	for i := range s.items {
		if s.alive[i] {
			fn(Handle(i), &s.items[i])
		}
	}
}

// Handles returns the handles of all currently-live entries, in
// insertion order.
func (s *Store[T]) Handles() []Handle {
	out := make([]Handle, 0, len(s.items))
	for i, a := range s.alive {
		if a {
			out = append(out, Handle(i))
		}
	}
	return out
}
