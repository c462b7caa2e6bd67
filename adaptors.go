package viewkit

import "fmt"

// Iterate returns an identity pass-through view over the given collection.
//
// Its purpose is type erasure at API boundaries: a method can expose a
// View[E] without revealing which concrete collection backs it. Elements,
// order, mutability and size classification are those of the source.
func Iterate[E any](src Iterable[E]) View[E] {
	return View[E]{
		values: deferred(src.Values),
		length: sizeOf[E](src),
	}
}

// IterateBidi is the capability-preserving twin of Iterate for bidirectional
// sources.
func IterateBidi[E any](src Bidirectional[E]) BidiView[E] {
	return BidiView[E]{
		View:     Iterate[E](src),
		backward: deferred(src.ValuesBackward),
	}
}

// Map returns a view that yields transform(element) for each element of the
// source, in source order.
//
// The transform receives the source's element handle, so over a mutable
// source it may write through its argument. The yielded values are the
// transform's results: they are computed, not references into the source,
// regardless of the source's own mutability.
func Map[A, B any](src Iterable[A], transform func(A) B) View[B] {
	return View[B]{
		values: mapSeq(src.Values, transform),
		length: sizeOf[A](src),
	}
}

// MapBidi is the capability-preserving twin of Map for bidirectional sources.
func MapBidi[A, B any](src Bidirectional[A], transform func(A) B) BidiView[B] {
	return BidiView[B]{
		View:     Map[A, B](src, transform),
		backward: mapSeq(src.ValuesBackward, transform),
	}
}

// Filter returns a view that yields only the elements for which the predicate
// returns true, preserving source order. Runs of rejected elements of any
// length, including the entire source, simply produce no output.
//
// Element handles and mutability pass through unchanged; the size of a
// filtered view is unknowable without running the predicate, so it is not
// reported.
func Filter[E any](src Iterable[E], pred func(E) bool) View[E] {
	return View[E]{values: filterSeq(src.Values, pred)}
}

// FilterBidi is the capability-preserving twin of Filter: the reverse
// traversal skips rejected elements symmetrically.
func FilterBidi[E any](src Bidirectional[E], pred func(E) bool) BidiView[E] {
	return BidiView[E]{
		View:     Filter[E](src, pred),
		backward: filterSeq(src.ValuesBackward, pred),
	}
}

// AsReferences hides one level of indirection over a collection of pointers:
// traversing the view yields the stored pointers as pointee handles, so the
// caller works with the objects instead of the pointers to them.
//
// Every stored pointer must be non-nil for the duration of traversal;
// a nil entry surfaces as a nil handle and faults at its first use.
func AsReferences[T any](src Iterable[**T]) View[*T] {
	return Map[**T, *T](src, func(p **T) *T { return *p })
}

// AsReferencesBidi is the capability-preserving twin of AsReferences.
func AsReferencesBidi[T any](src Bidirectional[**T]) BidiView[*T] {
	return MapBidi[**T, *T](src, func(p **T) *T { return *p })
}

// ReadOnly downgrades a mutable view to a read-only one: the writable *T
// handles of the source become detached element copies, so mutating the
// source through the result does not compile.
//
// It is the explicit read-only-binding operator of the view algebra. Joining
// a mutable view with a read-only one requires freezing the mutable side
// first, which is how "read-only if either source is read-only" is enforced
// at the type level.
func ReadOnly[T any](src Iterable[*T]) View[T] {
	return Map[*T, T](src, func(p *T) T { return *p })
}

// ReadOnlyBidi is the capability-preserving twin of ReadOnly.
func ReadOnlyBidi[T any](src Bidirectional[*T]) BidiView[T] {
	return MapBidi[*T, T](src, func(p *T) T { return *p })
}

// Item is the element type of an enumerated view: the position of an element
// in the source's forward order, paired with the element's handle.
type Item[E any] struct {
	Position int
	Value    E
}

func (i Item[E]) String() string {
	return fmt.Sprintf("%d: %v", i.Position, i.Value)
}

// Enumerate returns a view that yields each element of the source paired with
// its position 0, 1, 2, ... in forward order.
//
// Items are built fresh on every yield from the current position and the
// current source element, never cached across an advance.
func Enumerate[E any](src Iterable[E]) View[Item[E]] {
	return View[Item[E]]{
		values: func(yield func(Item[E]) bool) {
			var position int
			for v := range src.Values() {
				if !yield(Item[E]{Position: position, Value: v}) {
					return
				}
				position++
			}
		},
		length: sizeOf[E](src),
	}
}

// EnumerateBidi is the capability-preserving twin of Enumerate.
//
// Reverse traversal yields positions counting down from size-1 to 0: an
// element keeps the position it has in the source's forward order, whichever
// direction it is visited from. When the source does not know its size, the
// reverse traversal establishes it with one forward counting pass first.
func EnumerateBidi[E any](src Bidirectional[E]) BidiView[Item[E]] {
	return BidiView[Item[E]]{
		View: Enumerate[E](src),
		backward: func(yield func(Item[E]) bool) {
			position := countOf[E](src) - 1
			for v := range src.ValuesBackward() {
				if !yield(Item[E]{Position: position, Value: v}) {
					return
				}
				position--
			}
		},
	}
}

func countOf[E any](src Iterable[E]) int {
	if n, ok := Size[E](src); ok {
		return n
	}
	var n int
	for range src.Values() {
		n++
	}
	return n
}
