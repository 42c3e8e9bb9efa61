package collection

import (
	"fmt"
	"reflect"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set-algebra layer
//
// Membership here is decided by the LOOSE equality primitive in compare.go
// (or a caller-supplied comparator for DiffWith), never by the strict
// equality that backs Equals.
// ─────────────────────────────────────────────────────────────────────────────

// Includes reports whether any element compares loosely equal to value.
func (c *Collection[T]) Includes(value T) bool {
	for _, v := range c.values {
		if looseEqual(any(v), any(value)) {
			return true
		}
	}
	return false
}

// Intersect returns the elements present (by loose equality) in both c and
// other, preserving c's order AND c's keys, matching native
// array-intersection semantics. Contrast with the dense key reset of
// Filter and Diff.
func (c *Collection[T]) Intersect(other *Collection[T]) *Collection[T] {
	keys := make([]Key, 0, len(c.keys))
	values := make([]T, 0, len(c.values))
	for i, k := range c.keys {
		if other.Includes(c.values[i]) {
			keys = append(keys, k)
			values = append(values, c.values[i])
		}
	}
	return fromKeyed(keys, values)
}

// Diff returns the elements of c not loosely equal to any element of
// other. Result keys reset to the dense range, avoiding surprising gaps.
func (c *Collection[T]) Diff(other *Collection[T]) *Collection[T] {
	return c.DiffWith(other, func(a, b T) bool { return looseEqual(any(a), any(b)) })
}

// DiffWith is [Collection.Diff] with equality decided by the supplied
// comparator instead of the default loose-equality rule.
func (c *Collection[T]) DiffWith(other *Collection[T], eq func(a, b T) bool) *Collection[T] {
	out := make([]T, 0, len(c.values))
	for _, v := range c.values {
		found := false
		for _, o := range other.values {
			if eq(v, o) {
				found = true
				break
			}
		}
		if !found {
			out = append(out, v)
		}
	}
	return fromValues(out)
}

// Push returns a new collection with the given elements appended, keys
// reset to the dense range spanning the result.
func (c *Collection[T]) Push(items ...T) *Collection[T] {
	out := make([]T, 0, len(c.values)+len(items))
	out = append(out, c.values...)
	out = append(out, items...)
	return fromValues(out)
}

// Concat appends, in argument order, whole Collections (their elements
// spliced), whole []T slices (spliced), or single T values (appended as one
// element). Any other argument kind fails with [ErrInvalidArgument].
// Result keys are a dense range spanning the concatenation.
func (c *Collection[T]) Concat(values ...any) (*Collection[T], error) {
	out := make([]T, 0, len(c.values)+len(values))
	out = append(out, c.values...)
	for _, v := range values {
		switch t := v.(type) {
		case *Collection[T]:
			out = append(out, t.values...)
		case []T:
			out = append(out, t...)
		case T:
			out = append(out, t)
		default:
			return nil, fmt.Errorf("%w: cannot concat %T into a collection of %s",
				ErrInvalidArgument, v, reflect.TypeFor[T]())
		}
	}
	return fromValues(out), nil
}
