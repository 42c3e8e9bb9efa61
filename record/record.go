package record

import (
	"fmt"
	"strings"
)

// Record is the field-indexable element type used by path selectors, match
// templates, and the tree-building helpers in package collection. It is a
// type alias, so plain map[string]any literals are Records without
// conversion.
type Record = map[string]any

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation field access
//
// A path is a dot-separated chain of field names walked through nested
// Records:
//
//	r := record.Record{
//	    "user": record.Record{
//	        "name":    "Alice",
//	        "address": record.Record{"city": "London"},
//	    },
//	}
//
//	record.Get(r, "user.address.city")  → "London", nil
//	record.Lookup(r, "user.age")        → nil, false
//	record.Set(r, "user.age", 30)
//	record.Has(r, "user.name")          → true
// ─────────────────────────────────────────────────────────────────────────────

// Get retrieves the value at the dot-notation path.
//
// Unlike [Lookup], Get is strict: a missing field at any step, or an
// intermediate value that is not itself a Record, returns an error wrapping
// [ErrFieldAccess].
func Get(r Record, path string) (any, error) {
	segments := strings.Split(path, ".")
	current := r
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q has no field %q", ErrFieldAccess, path, seg)
		}
		if i == len(segments)-1 {
			return val, nil
		}
		nested, ok := val.(Record)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not indexable at %q", ErrFieldAccess, path, seg)
		}
		current = nested
	}
	return nil, fmt.Errorf("%w: empty path", ErrFieldAccess)
}

// Lookup retrieves the value at the dot-notation path together with a
// presence flag. A missing field or a non-Record intermediate yields
// (nil, false) rather than an error.
func Lookup(r Record, path string) (any, bool) {
	segments := strings.Split(path, ".")
	current := r
	for i, seg := range segments {
		val, ok := current[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return val, true
		}
		nested, ok := val.(Record)
		if !ok {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Has reports whether the dot-notation path exists in r.
func Has(r Record, path string) bool {
	_, ok := Lookup(r, path)
	return ok
}

// Set writes value into r at the dot-notation path, creating intermediate
// Records as needed. An existing non-Record intermediate is replaced.
func Set(r Record, path string, value any) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		r[path] = value
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := r[seg].(Record)
	if !ok {
		nested = Record{}
		r[seg] = nested
	}
	Set(nested, rest, value)
}

// Forget removes the dot-notation path from r.
// Intermediate Records left empty are not cleaned up.
func Forget(r Record, path string) {
	segments := strings.SplitN(path, ".", 2)
	if len(segments) == 1 {
		delete(r, path)
		return
	}
	seg, rest := segments[0], segments[1]
	nested, ok := r[seg].(Record)
	if !ok {
		return
	}
	Forget(nested, rest)
}

// Dot flattens a nested Record into a single-level Record keyed by
// dot-notation paths.
//
//	record.Dot(record.Record{"a": record.Record{"b": 1}})
//	// → record.Record{"a.b": 1}
func Dot(r Record) Record {
	out := Record{}
	dotFlatten("", r, out)
	return out
}

func dotFlatten(prefix string, r Record, out Record) {
	for k, v := range r {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(Record); ok {
			dotFlatten(path, nested, out)
		} else {
			out[path] = v
		}
	}
}

// Undot expands a flat dot-notation Record into a nested Record.
//
//	record.Undot(record.Record{"a.b": 1, "a.c": 2})
//	// → record.Record{"a": record.Record{"b": 1, "c": 2}}
func Undot(r Record) Record {
	out := Record{}
	for path, val := range r {
		Set(out, path, val)
	}
	return out
}

// Clone returns a shallow copy of r. Nested Records are shared with the
// original; use it when a caller needs to attach fields without mutating
// the source.
func Clone(r Record) Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
