package viewkit

import "iter"

// Cursor is an explicit pull-style traversal handle over a view.
//
// Clients use a cursor to access and traverse a collection without knowing
// its representation, and without yielding control to a range loop.
// Interface design inspired by https://golang.org/pkg/encoding/json/#Decoder
//
// A cursor is valid only while its originating view and that view's source
// are alive. Value before the first Next, or at or past the end of the
// traversal, returns the zero handle; advancing a finished cursor keeps
// reporting false.
type Cursor[E any] struct {
	next func() (E, bool)
	stop func()
	val  E
	done bool
}

// Pull derives a forward cursor from the given collection.
//
// A cursor holds traversal resources until it is exhausted;
// call Close when abandoning it early.
func Pull[E any](src Iterable[E]) *Cursor[E] {
	next, stop := iter.Pull(src.Values())
	return &Cursor[E]{next: next, stop: stop}
}

// PullBackward derives a reverse cursor from a bidirectional collection.
func PullBackward[E any](src Bidirectional[E]) *Cursor[E] {
	next, stop := iter.Pull(src.ValuesBackward())
	return &Cursor[E]{next: next, stop: stop}
}

// Next advances the cursor and ensures Value returns the next element.
// It reports false once the traversal is exhausted or the cursor is closed.
func (c *Cursor[E]) Next() bool {
	if c.done {
		return false
	}
	v, ok := c.next()
	if !ok {
		c.Close()
		var zero E
		c.val = zero
		return false
	}
	c.val = v
	return true
}

// Value returns the element the cursor currently stands on.
// The call is repeatable without side effects.
func (c *Cursor[E]) Value() E {
	return c.val
}

// Close releases the traversal. It is safe to call multiple times.
func (c *Cursor[E]) Close() {
	if c.done {
		return
	}
	c.done = true
	c.stop()
}
