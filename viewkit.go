// Package viewkit provides lazy, composable views over ordered collections.
//
// # Summary
//
// A View wraps an existing collection and exposes a new traversal over it
// without copying elements. Views nest: the output of every adaptor is itself
// a collection satisfying the same traversal contract, so a reverse of a map
// of a filter of a join is just ordinary composition.
//
// Three properties of the wrapped collection are carried through every
// adaptor:
//
//   - capability: whether the view supports only forward traversal (View)
//     or also reverse traversal (BidiView)
//   - mutability: whether traversal yields writable handles into the source
//     (element type *T) or plain values (element type T)
//   - ownership: whether the view captured the caller's storage (borrowed)
//     or built its own (owned), decided by which constructor was used
//
// Capability is a compile-time property: constructors that preserve reverse
// traversal take a Bidirectional source, and handing them a forward-only view
// does not compile. Mutability is likewise carried in the element type, so
// writing through a read-only view does not compile either.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package viewkit

import (
	"iter"
	"reflect"
)

// Iterable is the minimal contract a collection must satisfy to be wrapped by
// an adaptor. Values returns a re-usable forward traversal over the element
// handles of the collection; calling it derives a fresh cursor every time.
type Iterable[E any] interface {
	Values() iter.Seq[E]
}

// Bidirectional is an Iterable that also supports reverse traversal.
//
// The classification is structural: any type that exposes both traversal
// directions is bidirectional, no opt-in flag required.
type Bidirectional[E any] interface {
	Iterable[E]
	// ValuesBackward returns the elements of the collection in reverse order.
	ValuesBackward() iter.Seq[E]
}

// Sizer is implemented by collections that know their element count without
// traversing themselves.
type Sizer interface {
	Len() int
}

// View is a lazy forward-only traversal over element handles of type E.
//
// A View holds the means to re-derive its cursors from the wrapped source,
// never a copy of the source's elements. The zero View is valid and empty.
//
// Views are immutable after construction and cheap to copy.
type View[E any] struct {
	values iter.Seq[E]
	length func() (int, bool)
}

// Values implements Iterable.
func (v View[E]) Values() iter.Seq[E] {
	if v.values == nil {
		return func(yield func(E) bool) {}
	}
	return v.values
}

// Size reports the element count of the view,
// when the wrapped source(s) made it known.
//
// The count is propagated, never computed by traversal:
// a view over an unsized source, or one whose count cannot be known
// without running a callable (Filter), reports ok == false.
func (v View[E]) Size() (int, bool) {
	if v.length == nil {
		return 0, false
	}
	return v.length()
}

// BidiView is a View whose wrapped source(s) support reverse traversal.
//
// It is the result type of every capability-preserving adaptor constructor,
// and satisfies Bidirectional, so it can be wrapped further by Reverse and
// the other *Bidi constructors.
type BidiView[E any] struct {
	View[E]
	backward iter.Seq[E]
}

// ValuesBackward implements Bidirectional.
func (v BidiView[E]) ValuesBackward() iter.Seq[E] {
	if v.backward == nil {
		return func(yield func(E) bool) {}
	}
	return v.backward
}

// IsBidirectional reports whether the given collection supports reverse
// traversal in addition to forward traversal.
//
// It is the runtime mirror of the compile-time classification the *Bidi
// constructors perform through their parameter types, and works structurally
// on any collection, including ones not defined by this package.
func IsBidirectional[E any](src Iterable[E]) bool {
	_, ok := src.(Bidirectional[E])
	return ok
}

// IsReadOnly reports whether traversing the given collection yields read-only
// access to its elements.
//
// Mutability is carried in the element handle type: a view over *T handles
// writes through to the source, anything else yields detached values.
// A transform that returns pointers of its own making is reported as mutable,
// since those pointers are writable, just not into the view's source.
func IsReadOnly[E any](src Iterable[E]) bool {
	return reflect.TypeFor[E]().Kind() != reflect.Pointer
}

// Size reports the element count of a collection when it is knowable without
// traversal. It understands both Sizer collections and the optional size of
// this package's views.
func Size[E any](src Iterable[E]) (int, bool) {
	if fn := sizeOf[E](src); fn != nil {
		return fn()
	}
	return 0, false
}

// IsEmpty reports whether the collection has no elements.
//
// When the size is not knowable, it pulls at most one element.
func IsEmpty[E any](src Iterable[E]) bool {
	if n, ok := Size[E](src); ok {
		return n == 0
	}
	for range src.Values() {
		return false
	}
	return true
}

// Collect eagerly materialises the forward traversal into a slice.
func Collect[E any](src Iterable[E]) []E {
	var vs []E
	for v := range src.Values() {
		vs = append(vs, v)
	}
	return vs
}

// CollectBackward eagerly materialises the reverse traversal into a slice.
func CollectBackward[E any](src Bidirectional[E]) []E {
	var vs []E
	for v := range src.ValuesBackward() {
		vs = append(vs, v)
	}
	return vs
}

func sizeOf[E any](src Iterable[E]) func() (int, bool) {
	type sized interface{ Size() (int, bool) }
	switch src := src.(type) {
	case sized:
		return src.Size
	case Sizer:
		return func() (int, bool) { return src.Len(), true }
	default:
		return nil
	}
}

// deferred postpones deriving the source's traversal until the view itself is
// traversed, so that a view constructed early still observes the source's
// current state on every walk.
func deferred[E any](derive func() iter.Seq[E]) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range derive() {
			if !yield(v) {
				return
			}
		}
	}
}

func mapSeq[A, B any](derive func() iter.Seq[A], fn func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range derive() {
			if !yield(fn(v)) {
				return
			}
		}
	}
}

func filterSeq[E any](derive func() iter.Seq[E], pred func(E) bool) iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range derive() {
			if !pred(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}
