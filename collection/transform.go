package collection

import (
	"fmt"
	"reflect"
	"sort"
)

// ─────────────────────────────────────────────────────────────────────────────
// Transform layer
//
// Each operation here is a distinct key-handling policy over the container;
// see the Collection doc for the key-resetting vs key-preserving split.
// Selector and predicate parameters are polymorphic (callable | path |
// template) and resolve once via the adapter layer in selector.go.
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new Collection[any] with each element transformed by the
// selector, invoked as selector(element, key). Result keys are reset to the
// dense range 0..n-1.
//
// For a type-safe transform to a concrete type U, use the package-level
// [Map] function instead.
func (c *Collection[T]) Map(selector any) (*Collection[any], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	out := make([]any, len(c.values))
	for i, k := range c.keys {
		v, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return fromValues(out), nil
}

// MapValues is [Collection.Map] with the original keys preserved exactly,
// for callers that need a mapping transform without losing map semantics.
func (c *Collection[T]) MapValues(selector any) (*Collection[any], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	out := make([]any, len(c.values))
	for i, k := range c.keys {
		v, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return fromKeyed(keys, out), nil
}

// splicable lets FlatMap recognize any *Collection instantiation among the
// values a selector produces.
type splicable interface {
	anyValues() []any
}

func (c *Collection[T]) anyValues() []any {
	out := make([]any, len(c.values))
	for i, v := range c.values {
		out[i] = v
	}
	return out
}

// FlatMap invokes the selector per element and splices sequence-like
// results into the output: slices and nested Collections contribute their
// elements, nil contributes nothing, and any other value is appended as a
// single element. Result keys are always a fresh dense range.
func (c *Collection[T]) FlatMap(selector any) (*Collection[any], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	out := make([]any, 0, len(c.values))
	for i, k := range c.keys {
		v, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		switch t := v.(type) {
		case nil:
		case splicable:
			out = append(out, t.anyValues()...)
		default:
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Slice {
				for j := 0; j < rv.Len(); j++ {
					out = append(out, rv.Index(j).Interface())
				}
				continue
			}
			out = append(out, v)
		}
	}
	return fromValues(out), nil
}

// Walk invokes visitor(&element, key) for every element, permitting
// in-place mutation of the stored element. It returns the SAME collection
// (not a copy) to support chaining. This is the engine's only operation
// with externally observable mutation.
func (c *Collection[T]) Walk(visitor func(*T, Key)) *Collection[T] {
	for i, k := range c.keys {
		visitor(&c.values[i], k)
	}
	return c
}

// Filter returns a new collection retaining the elements for which the
// predicate holds. Keys are reset to the dense range 0..n-1: filtering with
// original keys intact would leave surprising gaps in list mode.
func (c *Collection[T]) Filter(predicate any) (*Collection[T], error) {
	pred, err := predicateOf[T](predicate)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(c.values))
	for i, k := range c.keys {
		ok, err := pred(c.values[i], k)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, c.values[i])
		}
	}
	return fromValues(out), nil
}

// Reject returns a new collection with the elements matching the predicate
// removed. It is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(predicate any) (*Collection[T], error) {
	pred, err := predicateOf[T](predicate)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(c.values))
	for i, k := range c.keys {
		ok, err := pred(c.values[i], k)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, c.values[i])
		}
	}
	return fromValues(out), nil
}

// Partition splits the collection in a single pass into exactly two
// sub-collections: elements matching the predicate, then the rest. Both
// carry freshly dense keys, and every original element lands in exactly
// one of the two.
func (c *Collection[T]) Partition(predicate any) (*Collection[T], *Collection[T], error) {
	pred, err := predicateOf[T](predicate)
	if err != nil {
		return nil, nil, err
	}
	pass := make([]T, 0)
	fail := make([]T, 0)
	for i, k := range c.keys {
		ok, err := pred(c.values[i], k)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			pass = append(pass, c.values[i])
		} else {
			fail = append(fail, c.values[i])
		}
	}
	return fromValues(pass), fromValues(fail), nil
}

// Uniq returns a new collection with loose-equality duplicates removed,
// preserving first-seen order. Comparison is pairwise against every
// retained element: O(n²), acceptable for the small collections this
// engine targets. Keys are reset to the dense range.
func (c *Collection[T]) Uniq() *Collection[T] {
	kept := make([]T, 0, len(c.values))
	for _, v := range c.values {
		dup := false
		for _, seen := range kept {
			if looseEqual(any(seen), any(v)) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, v)
		}
	}
	return fromValues(kept)
}

// UniqBy is [Collection.Uniq] with equality decided on selector(element)
// rather than on the element itself.
func (c *Collection[T]) UniqBy(selector any) (*Collection[T], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	kept := make([]T, 0, len(c.values))
	keptKeys := make([]any, 0, len(c.values))
	for i, k := range c.keys {
		derived, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		dup := false
		for _, seen := range keptKeys {
			if looseEqual(seen, derived) {
				dup = true
				break
			}
		}
		if !dup {
			kept = append(kept, c.values[i])
			keptKeys = append(keptKeys, derived)
		}
	}
	return fromValues(kept), nil
}

// SortBy returns a new collection stably sorted by the given selectors in
// order: the first selector whose derived values compare unequal decides,
// ties cascade to later selectors, and elements equal on every selector
// retain their relative input order. With no selectors, elements sort by
// their own value. Keys are reset to the dense range.
func (c *Collection[T]) SortBy(selectors ...any) (*Collection[T], error) {
	if len(selectors) == 0 {
		selectors = []any{func(v T, _ Key) any { return any(v) }}
	}
	sels := make([]valuer[T], len(selectors))
	for i, s := range selectors {
		sel, err := selectorOf[T](s)
		if err != nil {
			return nil, err
		}
		sels[i] = sel
	}

	// Derive every sort key up front so selector failures surface before
	// any reordering happens.
	type row struct {
		value   T
		derived []any
	}
	rows := make([]row, len(c.values))
	for i, k := range c.keys {
		derived := make([]any, len(sels))
		for j, sel := range sels {
			v, err := sel(c.values[i], k)
			if err != nil {
				return nil, err
			}
			derived[j] = v
		}
		rows[i] = row{value: c.values[i], derived: derived}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		for d := range sels {
			if cmp := compareValues(rows[i].derived[d], rows[j].derived[d]); cmp != 0 {
				return cmp < 0
			}
		}
		return false
	})

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.value
	}
	return fromValues(out), nil
}

// Reverse returns a new collection with entries in reversed order,
// preserving each element's key.
func (c *Collection[T]) Reverse() *Collection[T] {
	n := len(c.values)
	keys := make([]Key, n)
	values := make([]T, n)
	for i := range c.values {
		keys[n-1-i] = c.keys[i]
		values[n-1-i] = c.values[i]
	}
	return fromKeyed(keys, values)
}

// GroupBy buckets elements by selector result. Bucket keys retain the
// insertion order of their first appearance; each bucket is a list-mode
// collection accumulating every element that produced its key.
// Contrast with [Collection.KeyBy], which keeps only the last element.
func (c *Collection[T]) GroupBy(selector any) (*Collection[*Collection[T]], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	groups := &Collection[*Collection[T]]{index: map[Key]int{}}
	for i, k := range c.keys {
		derived, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		gk := normalizeKey(derived)
		bucket, ok := groups.Get(gk)
		if !ok {
			bucket = Empty[T]()
			groups.put(gk, bucket)
		}
		bucket.put(len(bucket.keys), c.values[i])
	}
	return groups, nil
}

// KeyBy returns a map-mode collection keyed by selector result, holding
// the LAST element that produced each key (last write wins); a duplicate
// key keeps its first position but swaps its element.
func (c *Collection[T]) KeyBy(selector any) (*Collection[T], error) {
	sel, err := selectorOf[T](selector)
	if err != nil {
		return nil, err
	}
	out := &Collection[T]{index: map[Key]int{}}
	for i, k := range c.keys {
		derived, err := sel(c.values[i], k)
		if err != nil {
			return nil, err
		}
		out.put(normalizeKey(derived), c.values[i])
	}
	return out, nil
}

// normalizeKey makes an arbitrary selector result usable as a Collection
// key: runtime-comparable values pass through, anything else (maps, slices)
// keys by its printed form instead of panicking on map insertion.
func normalizeKey(v any) Key {
	if v == nil {
		return nil
	}
	if reflect.ValueOf(v).Comparable() {
		return v
	}
	return fmt.Sprint(v)
}
