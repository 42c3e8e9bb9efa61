package collection

import "iter"

// Enumerable is the read surface satisfied by [Collection][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every element in iteration order.
	All() []T

	// Count returns the number of elements.
	Count() int

	// Keys returns the keys in iteration order.
	Keys() []Key

	// Get returns the element stored under key with a presence flag.
	Get(key Key) (T, bool)

	// Has reports whether key addresses an element.
	Has(key Key) bool

	// Each calls fn(element, key) for every element in iteration order.
	Each(fn func(T, Key))

	// Seq returns a lazy, restartable (key, element) iterator.
	Seq() iter.Seq2[Key, T]

	// IsEmpty reports whether the collection contains no elements.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection has at least one element.
	IsNotEmpty() bool

	// First returns the first element, optionally matching fns[0].
	First(fns ...func(T) bool) (T, bool)

	// Last returns the last element, optionally matching fns[0].
	Last(fns ...func(T) bool) (T, bool)
}
