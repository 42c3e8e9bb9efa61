// Package collection provides a fluent, ordered, key-addressable
// Collection type with Lodash-style combinators: map, filter, groupBy,
// keyBy, partition, sortBy, set algebra, and recursive tree building.
//
// # The container
//
// A [Collection] is an ordered mapping from [Key] to element. Keys are
// either the dense int range 0..n-1 ("list mode") or arbitrary scalars
// ("map mode"); the mode is inferred from the keys, never stored. Keys are
// unique and insertion order is iteration order.
//
//	c := collection.New("a", "b", "c")          // list mode
//	m, _ := c.KeyBy(func(s string) any { return s }) // map mode
//
// # Key-handling policies
//
// Every transform documents what happens to keys. Operations that derive
// values per element (Map, FlatMap, Filter, SortBy, Partition, Uniq, Diff,
// Concat) reset keys to a fresh dense range; MapValues and Intersect
// preserve keys; GroupBy and KeyBy key their result by selector output.
//
// # Dynamic selectors and predicates
//
// Wherever an operation takes a selector or predicate, it accepts a Go
// callable, a dot-notation path string, or (for predicates) a
// record.Record match template:
//
//	admins, _ := users.Filter(record.Record{"role": "admin"})
//	cities, _ := users.Map("address.city")
//	sorted, _ := users.SortBy("age", "name")
//
// Unsupported argument kinds fail with [ErrInvalidArgument]; unresolvable
// paths fail with record.ErrFieldAccess.
//
// # Two equality tiers
//
// Set-like operations (Uniq, Includes, Intersect, Diff) and match
// templates compare with LOOSE equality, which coerces across numeric
// representations (1 == 1.0 == "1"). [Collection.Equals] compares with
// STRICT equality: exact value and type. The two never mix.
//
// # Trees
//
// [GroupByRecursive] and [ToTree] assemble flat record collections into
// parent/child hierarchies, inferring roots from parent references that
// never occur as ids:
//
//	tree, _ := collection.ToTree(pages, "id", "parent")
//
// # Immutability
//
// Transforms return new Collections; the one sanctioned mutation entry
// point is [Collection.Walk], which visits each element by pointer and
// returns the receiver for chaining.
package collection
