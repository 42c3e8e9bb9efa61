package collection

// This file contains package-level generic functions for operations that
// transform a Collection[T] into a Collection[U] (T ≠ U) with full typing.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. The method-based
// counterparts (Collection.Map, Collection.FlatMap, …) accept polymorphic
// selectors and return Collection[any]; the functions here take plain Go
// callbacks and keep the element type concrete.

// Map applies fn(element, key) to every element and returns a new
// list-mode Collection[U] with dense keys.
//
//	labels := collection.Map(c, func(n int, _ collection.Key) string {
//	    return strconv.Itoa(n)
//	})
func Map[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	out := make([]U, len(c.values))
	for i, k := range c.keys {
		out[i] = fn(c.values[i], k)
	}
	return fromValues(out)
}

// MapValues applies fn(element, key) to every element while preserving the
// collection's original keys exactly.
func MapValues[T, U any](c *Collection[T], fn func(T, Key) U) *Collection[U] {
	keys := make([]Key, len(c.keys))
	copy(keys, c.keys)
	out := make([]U, len(c.values))
	for i, k := range c.keys {
		out[i] = fn(c.values[i], k)
	}
	return fromKeyed(keys, out)
}

// FlatMap applies fn to every element (producing a []U per element) and
// flattens the results into a single list-mode Collection[U].
//
//	words := collection.FlatMap(c, func(s string, _ collection.Key) []string {
//	    return strings.Fields(s)
//	})
func FlatMap[T, U any](c *Collection[T], fn func(T, Key) []U) *Collection[U] {
	out := make([]U, 0, len(c.values))
	for i, k := range c.keys {
		out = append(out, fn(c.values[i], k)...)
	}
	return fromValues(out)
}

// Pluck extracts a single derived value from every element.
//
//	names := collection.Pluck(users, func(u User) string { return u.Name })
func Pluck[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	out := make([]U, len(c.values))
	for i, v := range c.values {
		out[i] = fn(v)
	}
	return fromValues(out)
}

// Reduce folds the collection into a single value of type U.
//
//	sum := collection.Reduce(c, func(acc, n int, _ collection.Key) int {
//	    return acc + n
//	}, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T, Key) U, initial U) U {
	result := initial
	for i, k := range c.keys {
		result = fn(result, c.values[i], k)
	}
	return result
}

// GroupBy buckets elements under the comparable key K extracted by fn,
// keys ordered by first appearance, each bucket accumulating in input
// order.
//
//	byDept := collection.GroupBy(employees,
//	    func(e Employee) string { return e.Department })
func GroupBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[*Collection[T]] {
	groups := &Collection[*Collection[T]]{index: map[Key]int{}}
	for _, v := range c.values {
		k := fn(v)
		bucket, ok := groups.Get(k)
		if !ok {
			bucket = Empty[T]()
			groups.put(k, bucket)
		}
		bucket.put(len(bucket.keys), v)
	}
	return groups
}

// KeyBy builds a map-mode collection keyed by the value extracted by fn.
// When multiple elements share a key, the last one wins.
//
//	byID := collection.KeyBy(users, func(u User) int { return u.ID })
func KeyBy[T any, K comparable](c *Collection[T], fn func(T) K) *Collection[T] {
	out := &Collection[T]{index: map[Key]int{}}
	for _, v := range c.values {
		out.put(fn(v), v)
	}
	return out
}
