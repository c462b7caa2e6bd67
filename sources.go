package viewkit

import (
	"iter"
	"maps"

	"go.llib.dev/viewkit/datastruct"
)

// Slice returns a mutable bidirectional view over the given slice.
//
// The view borrows the slice's backing array: handles are pointers into it,
// and writing through them is visible in the caller's slice. The slice header
// is captured at construction, so elements appended by the caller afterwards
// are not part of the view.
func Slice[T any](s []T) BidiView[*T] {
	return BidiView[*T]{
		View: View[*T]{
			values: func(yield func(*T) bool) {
				for i := range s {
					if !yield(&s[i]) {
						return
					}
				}
			},
			length: func() (int, bool) { return len(s), true },
		},
		backward: func(yield func(*T) bool) {
			for i := len(s) - 1; 0 <= i; i-- {
				if !yield(&s[i]) {
					return
				}
			}
		},
	}
}

// SliceOf returns a mutable bidirectional view that owns its storage,
// built from the given values. The view's lifetime is the storage's lifetime;
// no external collection is aliased.
func SliceOf[T any](vs ...T) BidiView[*T] {
	return Slice(vs)
}

// ValuesOf returns a read-only bidirectional view that owns its storage,
// built from the given values. It is the cheapest way to lift literals into
// the view algebra, and doubles as the inner-collection constructor for Chain.
func ValuesOf[E any](vs ...E) BidiView[E] {
	return BidiView[E]{
		View: View[E]{
			values: func(yield func(E) bool) {
				for i := range vs {
					if !yield(vs[i]) {
						return
					}
				}
			},
			length: func() (int, bool) { return len(vs), true },
		},
		backward: func(yield func(E) bool) {
			for i := len(vs) - 1; 0 <= i; i-- {
				if !yield(vs[i]) {
					return
				}
			}
		},
	}
}

// List returns a mutable bidirectional view borrowing the given linked list.
//
// Unlike Slice, the view observes structural changes to the list between
// traversals, since the list is held by reference.
func List[T any](l *datastruct.LinkedList[T]) BidiView[*T] {
	return BidiView[*T]{
		View: View[*T]{
			values: l.Refs(),
			length: func() (int, bool) { return l.Len(), true },
		},
		backward: l.RefsBackward(),
	}
}

// FromSeq wraps an arbitrary push sequence as a forward-only, read-only view
// of unknown size. It is the boundary adaptor for sources that cannot be
// traversed twice in both directions, and the canonical forward-only
// collection in tests.
func FromSeq[E any](s iter.Seq[E]) View[E] {
	return View[E]{values: s}
}

// MapKeys returns a view over the keys of the given map.
//
// Map views are forward-only (map traversal order is not reversible) and
// read-only by construction: Go map elements are not addressable, so even a
// mutable map binding cannot hand out writable key or value handles.
func MapKeys[K comparable, V any](m map[K]V) View[K] {
	return View[K]{
		values: maps.Keys(m),
		length: func() (int, bool) { return len(m), true },
	}
}

// MapValues returns a view over the values of the given map.
// See MapKeys for the capability and mutability classification of map views.
func MapValues[K comparable, V any](m map[K]V) View[V] {
	return View[V]{
		values: maps.Values(m),
		length: func() (int, bool) { return len(m), true },
	}
}
