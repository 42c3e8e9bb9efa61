package collection

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
)

// Key addresses an element within a Collection: a dense zero-based int in
// list mode, or an arbitrary comparable scalar (typically string or int)
// in map mode. A collection's mode is never stored; it is inferred from
// whether the keys happen to form the dense range 0..n-1 (see
// [Collection.IsList]).
type Key = any

// Collection is a generic, ordered mapping from [Key] to element.
//
// Every method that transforms the collection returns a *new* Collection,
// leaving the original unchanged; [Collection.Walk] is the single sanctioned
// in-place mutation entry point. This value-semantics design keeps reads
// goroutine-safe and avoids aliasing bugs in pipelines.
//
// # Creating a collection
//
//	c := collection.New(1, 2, 3, 4, 5)
//	c := collection.From([]string{"a", "b", "c"})
//	c := collection.FromEntries(collection.Entry[int]{Key: "a", Value: 1})
//	c := collection.Empty[int]()
//
// # Key policy
//
// Operations fall into two camps, and each documents which one it is in:
//
//   - key-resetting: any operation that derives values per element
//     (Map, FlatMap, Filter, SortBy, Partition, Uniq, Diff, Concat)
//     returns dense 0..n-1 keys, so list semantics never grow gaps.
//   - key-preserving: MapValues and Intersect keep the original keys,
//     GroupBy and KeyBy introduce keys derived from their selector.
//
// # Dynamic selectors
//
// Methods with a selector or predicate parameter accept it polymorphically:
// a Go callable, a dot-notation path string, or (for predicates) a
// record.Record match template. An unsupported argument kind fails with
// [ErrInvalidArgument]; a path that cannot be resolved fails with
// record.ErrFieldAccess. These methods therefore return an error alongside
// the result:
//
//	adults, err := people.Filter(record.Record{"role": "admin"})
//	cities, err := people.Map("address.city")
//
// # Type-transforming operations
//
// Go methods cannot introduce new type parameters, so transforms that
// change the element type with full typing are package-level functions:
// [Map], [MapValues], [FlatMap], [Pluck], [Reduce], [GroupBy], [KeyBy].
type Collection[T any] struct {
	keys   []Key
	values []T
	index  map[Key]int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a list-mode Collection from a variadic list of elements
// (copied).
func New[T any](items ...T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return fromValues(dst)
}

// From creates a list-mode Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return fromValues(dst)
}

// FromEntries creates a map-mode Collection from explicit key→element
// entries, preserving their order. A duplicate key overwrites the element
// stored under it while keeping the key's first position.
func FromEntries[T any](entries ...Entry[T]) *Collection[T] {
	c := &Collection[T]{
		keys:   make([]Key, 0, len(entries)),
		values: make([]T, 0, len(entries)),
		index:  make(map[Key]int, len(entries)),
	}
	for _, e := range entries {
		c.put(e.Key, e.Value)
	}
	return c
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return fromValues([]T{})
}

// fromValues wraps an owned slice with dense 0..n-1 keys. Callers must not
// retain the slice.
func fromValues[T any](values []T) *Collection[T] {
	keys := make([]Key, len(values))
	index := make(map[Key]int, len(values))
	for i := range values {
		keys[i] = i
		index[i] = i
	}
	return &Collection[T]{keys: keys, values: values, index: index}
}

// fromKeyed wraps owned key and value slices. Keys must be unique and the
// slices equal length. Callers must not retain either slice.
func fromKeyed[T any](keys []Key, values []T) *Collection[T] {
	index := make(map[Key]int, len(keys))
	for i, k := range keys {
		index[k] = i
	}
	return &Collection[T]{keys: keys, values: values, index: index}
}

// put appends a key→value association, or overwrites the value in place
// when the key already exists.
func (c *Collection[T]) put(k Key, v T) {
	if pos, ok := c.index[k]; ok {
		c.values[pos] = v
		return
	}
	c.index[k] = len(c.keys)
	c.keys = append(c.keys, k)
	c.values = append(c.values, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Count returns the number of elements in the collection.
func (c *Collection[T]) Count() int { return len(c.values) }

// IsEmpty reports whether the collection contains no elements.
func (c *Collection[T]) IsEmpty() bool { return len(c.values) == 0 }

// IsNotEmpty reports whether the collection has at least one element.
func (c *Collection[T]) IsNotEmpty() bool { return len(c.values) > 0 }

// IsList reports whether the collection is in list mode: its keys form the
// dense int range 0..n-1 in order. An empty collection is a list.
func (c *Collection[T]) IsList() bool {
	for i, k := range c.keys {
		n, ok := k.(int)
		if !ok || n != i {
			return false
		}
	}
	return true
}

// Get returns the element stored under key together with a presence flag.
func (c *Collection[T]) Get(key Key) (T, bool) {
	var zero T
	pos, ok := c.index[key]
	if !ok {
		return zero, false
	}
	return c.values[pos], true
}

// Has reports whether key addresses an element in the collection.
func (c *Collection[T]) Has(key Key) bool {
	_, ok := c.index[key]
	return ok
}

// Keys returns the collection's keys in iteration order.
func (c *Collection[T]) Keys() []Key {
	out := make([]Key, len(c.keys))
	copy(out, c.keys)
	return out
}

// All returns a copy of the elements in iteration order, discarding keys.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.values))
	copy(out, c.values)
	return out
}

// ToSlice is an alias for [Collection.All].
func (c *Collection[T]) ToSlice() []T { return c.All() }

// Entries returns the key→element associations in iteration order.
func (c *Collection[T]) Entries() []Entry[T] {
	out := make([]Entry[T], len(c.keys))
	for i, k := range c.keys {
		out[i] = Entry[T]{Key: k, Value: c.values[i]}
	}
	return out
}

// Values returns a list-mode copy of the collection, resetting keys to the
// dense range 0..n-1.
func (c *Collection[T]) Values() *Collection[T] { return From(c.values) }

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON implements json.Marshaler. A list-mode collection serializes
// as a JSON array; a map-mode collection as a JSON object whose member
// order is the collection's insertion order.
func (c *Collection[T]) MarshalJSON() ([]byte, error) {
	if c.IsList() {
		return json.Marshal(c.values)
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(keyString(k))
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(c.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ToJSON serialises the collection to compact JSON.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return c.MarshalJSON()
}

// String returns a pretty-printed, insertion-order-preserving JSON
// representation. It implements [fmt.Stringer].
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.values)
	}
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b)
	}
	return out.String()
}

// keyString renders a map-mode key as a JSON object member name.
func keyString(k Key) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Seq returns a lazy, restartable iterator over (key, element) pairs in
// collection order, usable directly in a range statement:
//
//	for k, v := range c.Seq() { ... }
func (c *Collection[T]) Seq() iter.Seq2[Key, T] {
	return func(yield func(Key, T) bool) {
		for i, k := range c.keys {
			if !yield(k, c.values[i]) {
				return
			}
		}
	}
}

// Each calls fn(element, key) for every element, in collection order.
func (c *Collection[T]) Each(fn func(T, Key)) {
	for i, k := range c.keys {
		fn(c.values[i], k)
	}
}

// Tap calls fn(c) for side-effects (e.g. logging or debugging) and returns
// c unchanged for further chaining.
func (c *Collection[T]) Tap(fn func(*Collection[T])) *Collection[T] {
	fn(c)
	return c
}

// Dump prints the collection to stdout and returns c for chaining.
func (c *Collection[T]) Dump() *Collection[T] {
	fmt.Println(c.String())
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Search & Lookup
// ─────────────────────────────────────────────────────────────────────────────

// First returns the first element, optionally the first matching fns[0].
// Returns the zero value and false when the collection is empty or no
// element satisfies the predicate. Absence is a value, not an error.
func (c *Collection[T]) First(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		for _, v := range c.values {
			if fns[0](v) {
				return v, true
			}
		}
		return zero, false
	}
	if len(c.values) == 0 {
		return zero, false
	}
	return c.values[0], true
}

// FirstOrFail returns the first element matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) FirstOrFail(fn func(T) bool) (T, error) {
	v, ok := c.First(fn)
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Last returns the last element, optionally the last matching fns[0].
// Returns the zero value and false when the collection is empty or no
// element satisfies the predicate.
func (c *Collection[T]) Last(fns ...func(T) bool) (T, bool) {
	var zero T
	if len(fns) > 0 {
		var found T
		matched := false
		for _, v := range c.values {
			if fns[0](v) {
				found = v
				matched = true
			}
		}
		return found, matched
	}
	if len(c.values) == 0 {
		return zero, false
	}
	return c.values[len(c.values)-1], true
}

// LastOrFail returns the last element matching fn, or [ErrNoMatchingItems].
func (c *Collection[T]) LastOrFail(fn func(T) bool) (T, error) {
	v, ok := c.Last(fn)
	if !ok {
		return v, ErrNoMatchingItems
	}
	return v, nil
}

// Contains reports whether at least one element satisfies fn.
// For loose value membership, see [Collection.Includes].
func (c *Collection[T]) Contains(fn func(T) bool) bool {
	for _, v := range c.values {
		if fn(v) {
			return true
		}
	}
	return false
}

// Search returns the key of the first element for which fn returns true,
// together with a presence flag.
func (c *Collection[T]) Search(fn func(T) bool) (Key, bool) {
	for i, v := range c.values {
		if fn(v) {
			return c.keys[i], true
		}
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// Equals reports structural equality with other: same length and each
// element pairwise equal under STRICT equality (exact value and type, no
// coercion). This is deliberately a different tier from the loose equality
// used by Uniq, Includes, Intersect, and Diff.
func (c *Collection[T]) Equals(other *Collection[T]) bool {
	if other == nil || len(c.values) != len(other.values) {
		return false
	}
	for i := range c.values {
		if !strictEqual(any(c.values[i]), any(other.values[i])) {
			return false
		}
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Conditional pipeline
// ─────────────────────────────────────────────────────────────────────────────

// When calls fn(c) if condition is true and returns the result.
// Otherwise returns c unchanged.
func (c *Collection[T]) When(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	if condition {
		return fn(c)
	}
	return c
}

// Unless calls fn(c) if condition is false; otherwise returns c.
func (c *Collection[T]) Unless(condition bool, fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(!condition, fn)
}

// WhenEmpty calls fn(c) if c is empty; otherwise returns c.
func (c *Collection[T]) WhenEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsEmpty(), fn)
}

// WhenNotEmpty calls fn(c) if c is not empty; otherwise returns c.
func (c *Collection[T]) WhenNotEmpty(fn func(*Collection[T]) *Collection[T]) *Collection[T] {
	return c.When(c.IsNotEmpty(), fn)
}
