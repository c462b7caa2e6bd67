// Package datastruct provides the collection types of viewkit that are not
// built into the language. LinkedList is the canonical bidirectional,
// non-random-access source collection for views.
package datastruct

import (
	"iter"
	"slices"
)

type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Iter() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		for ref := range ll.Refs() {
			if !yield(index, *ref) {
				return
			}
			index++
		}
	}
}

// Refs traverses the list front to back, yielding a writable handle to each
// element's storage. The handles stay valid as long as their node is part of
// the list.
func (ll *LinkedList[T]) Refs() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(&current.data) {
				return
			}
		}
	}
}

// RefsBackward traverses the list back to front, yielding writable handles.
func (ll *LinkedList[T]) RefsBackward() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if ll == nil {
			return
		}
		for current := ll.tail; current != nil; current = current.prev {
			if !yield(&current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	var vs []T
	for _, v := range ll.Iter() {
		vs = append(vs, v)
	}
	return vs
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds an element to the beginning of the list.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	if len(vs) == 0 {
		return
	}
	for _, v := range slices.Backward(vs) {
		ll.prepend(v)
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Len returns the number of elements in the list.
func (ll *LinkedList[T]) Len() int {
	if ll == nil {
		return 0
	}
	return ll.length
}

func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	}
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	var prev = ll.tail.prev
	if prev != nil {
		prev.next = nil
	}
	if prev == nil {
		ll.head = nil
	}
	ll.tail = prev
	ll.length--
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 {
		var zero T
		return zero, false
	}
	var ok = index < ll.length
	if !ok {
		var zero T
		return zero, false
	}
	for i, v := range ll.Iter() {
		if i == index {
			return v, true
		}
	}
	var zero T
	return zero, false
}
