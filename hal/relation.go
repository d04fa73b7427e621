package hal

import (
	"iter"
	"slices"
)

// Relation holds the values registered under one relation name. A relation
// with one value renders as that value, a relation with more renders as an
// array in insertion order.
//
// Relations are values: Insert never touches the storage of the receiver, so
// two documents never share a backing array.
type Relation[T any] struct {
	items []T
}

// Single returns a relation holding exactly one value.
func Single[T any](value T) Relation[T] {
	return Relation[T]{items: []T{value}}
}

// Insert returns a relation with value appended. A single relation becomes a
// two element array, an array grows by one.
func (r Relation[T]) Insert(value T) Relation[T] {
	return Relation[T]{items: append(slices.Clip(r.items), value)}
}

// All yields every value in insertion order. The sequence can be ranged over
// any number of times.
func (r Relation[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range r.items {
			if !yield(item) {
				return
			}
		}
	}
}

// Items returns a copy of the held values.
func (r Relation[T]) Items() []T {
	return slices.Clone(r.items)
}

// Len reports how many values the relation holds.
func (r Relation[T]) Len() int {
	return len(r.items)
}

// IsMultiple reports whether the relation renders as an array.
func (r Relation[T]) IsMultiple() bool {
	return len(r.items) != 1
}

// MarshalJSON renders a single value bare and anything else as an array.
func (r Relation[T]) MarshalJSON() ([]byte, error) {
	stream := jsonAPI.BorrowStream(nil)
	defer jsonAPI.ReturnStream(stream)

	writeRelation(stream, r, writeValue[T])
	return streamBytes(stream)
}
