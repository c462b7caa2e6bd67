// Package viewkitcontract provides reusable behavioral contracts for
// collections that take part in the viewkit view algebra. Implementers of
// custom Iterable or Bidirectional collections can run these suites against
// their own types.
package viewkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/viewkit"
)

// Iterable asserts the forward traversal expectations every view source must
// meet: traversal is repeatable and honours early termination.
func Iterable[E any](mk func(testing.TB) viewkit.Iterable[E]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) viewkit.Iterable[E] {
		return mk(t)
	})

	s.Then("values can be collected from the traversal", func(t *testcase.T) {
		assert.NotEmpty(t, viewkit.Collect[E](subject.Get(t)))
	})

	s.Then("traversal is repeatable", func(t *testcase.T) {
		src := subject.Get(t)
		assert.Equal(t, viewkit.Collect[E](src), viewkit.Collect[E](src))
	})

	s.Then("traversal honours early termination", func(t *testcase.T) {
		var n int
		for range subject.Get(t).Values() {
			n++
			break
		}
		assert.True(t, n <= 1)
	})

	s.Then("reported size matches the traversed element count", func(t *testcase.T) {
		src := subject.Get(t)
		if n, ok := viewkit.Size[E](src); ok {
			assert.Equal(t, n, len(viewkit.Collect[E](src)))
		}
	})

	return s.AsSuite("viewkit.Iterable")
}

// Bidirectional asserts the reverse traversal expectations on top of the
// Iterable contract, including the reverse round-trip law.
func Bidirectional[E any](mk func(testing.TB) viewkit.Bidirectional[E]) contract.Contract {
	s := testcase.NewSpec(nil)

	testcase.RunSuite(s, Iterable[E](func(tb testing.TB) viewkit.Iterable[E] {
		return mk(tb)
	}))

	subject := testcase.Let(s, func(t *testcase.T) viewkit.Bidirectional[E] {
		return mk(t)
	})

	s.Then("backward traversal yields the forward elements in reverse order", func(t *testcase.T) {
		src := subject.Get(t)
		forward := viewkit.Collect[E](src)
		backward := viewkit.CollectBackward[E](src)
		assert.Equal(t, len(forward), len(backward))
		for i, v := range forward {
			assert.Equal(t, v, backward[len(backward)-1-i])
		}
	})

	s.Then("reversing twice is behaviorally identical to the original", func(t *testcase.T) {
		src := subject.Get(t)
		roundTrip := viewkit.Reverse[E](viewkit.Reverse[E](src))
		assert.Equal(t, viewkit.Collect[E](src), viewkit.Collect[E](roundTrip))
		assert.Equal(t, viewkit.CollectBackward[E](src), viewkit.CollectBackward[E](roundTrip))
	})

	return s.AsSuite("viewkit.Bidirectional")
}
