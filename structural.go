package viewkit

// Reverse returns a view whose forward traversal is the source's reverse
// traversal, and vice versa.
//
// Only bidirectional sources can be reversed; passing a forward-only view
// does not compile. Reversing twice yields a view behaviorally identical to
// the original.
func Reverse[E any](src Bidirectional[E]) BidiView[E] {
	return BidiView[E]{
		View: View[E]{
			values: deferred(src.ValuesBackward),
			length: sizeOf[E](src),
		},
		backward: deferred(src.Values),
	}
}

// Join returns a view over two collections of the same element type: every
// element of the first, followed by every element of the second.
//
// The shared type parameter rejects mismatched element types at compile time,
// and with it mismatched mutability: a mutable and a read-only view cannot be
// joined without downgrading the mutable side via ReadOnly first.
//
// The joined size is the sum of the parts when both are known.
func Join[E any](first, second Iterable[E]) View[E] {
	return View[E]{
		values: func(yield func(E) bool) {
			for v := range first.Values() {
				if !yield(v) {
					return
				}
			}
			for v := range second.Values() {
				if !yield(v) {
					return
				}
			}
		},
		length: jointSize[E](first, second),
	}
}

// JoinBidi is the capability-preserving twin of Join.
//
// Its reverse traversal is the reverse of the whole joined sequence: every
// element of the second collection backwards, then every element of the first
// backwards.
func JoinBidi[E any](first, second Bidirectional[E]) BidiView[E] {
	return BidiView[E]{
		View: Join[E](first, second),
		backward: func(yield func(E) bool) {
			for v := range second.ValuesBackward() {
				if !yield(v) {
					return
				}
			}
			for v := range first.ValuesBackward() {
				if !yield(v) {
					return
				}
			}
		},
	}
}

// Chain flattens a collection of collections into a single view over the
// inner elements, in outer order.
//
// Empty inner collections are skipped transparently, no matter how many occur
// in a row or where, including an entirely empty outer collection.
func Chain[E any](outer Iterable[Iterable[E]]) View[E] {
	return View[E]{
		values: func(yield func(E) bool) {
			for inner := range outer.Values() {
				if inner == nil {
					continue
				}
				for v := range inner.Values() {
					if !yield(v) {
						return
					}
				}
			}
		},
	}
}

// ChainBidi is the capability-preserving twin of Chain.
//
// Flattening stays reversible only when both the outer collection and every
// inner collection are bidirectional, which the parameter type enforces: the
// outer view's elements must themselves be Bidirectional.
func ChainBidi[E any](outer Bidirectional[Bidirectional[E]]) BidiView[E] {
	return BidiView[E]{
		View: View[E]{
			values: func(yield func(E) bool) {
				for inner := range outer.Values() {
					if inner == nil {
						continue
					}
					for v := range inner.Values() {
						if !yield(v) {
							return
						}
					}
				}
			},
		},
		backward: func(yield func(E) bool) {
			for inner := range outer.ValuesBackward() {
				if inner == nil {
					continue
				}
				for v := range inner.ValuesBackward() {
					if !yield(v) {
						return
					}
				}
			}
		},
	}
}

func jointSize[E any](first, second Iterable[E]) func() (int, bool) {
	fs := sizeOf[E](first)
	ss := sizeOf[E](second)
	if fs == nil || ss == nil {
		return nil
	}
	return func() (int, bool) {
		fn, ok := fs()
		if !ok {
			return 0, false
		}
		sn, ok := ss()
		if !ok {
			return 0, false
		}
		return fn + sn, true
	}
}
