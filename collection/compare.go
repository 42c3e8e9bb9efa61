package collection

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Equality primitives
//
// The engine carries two equality tiers and never mixes them:
//
//   - looseEqual backs the set-like operations (Uniq, Includes, Intersect,
//     Diff), match templates, and the tree layer. It coerces across
//     compatible numeric representations, so 1, 1.0 and "1" compare equal.
//   - strictEqual backs [Collection.Equals] only: exact value-and-type
//     comparison with no coercion.
//
// Both live here so the coercion behavior stays behind a single primitive
// and can be tightened without touching the operations above it.
// ─────────────────────────────────────────────────────────────────────────────

// looseEqual reports value equality with numeric coercion: values of any
// integer, float, or numeric-string representation compare by numeric value.
// Everything else falls back to deep equality.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
		return false
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return as == bs
		}
		return false
	}
	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			return ab == bb
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// strictEqual reports exact value-and-type equality, no coercion.
func strictEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}

// compareValues imposes a total loose order for multi-key sorting:
// nil sorts first, numbers (including numeric strings) by value, strings
// lexicographically, false before true. Values of unrelated kinds fall back
// to their fmt.Sprint rendering so the order stays total and deterministic.
func compareValues(a, b any) int {
	if looseEqual(a, b) {
		return 0
	}
	switch {
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			if af < bf {
				return -1
			}
			return 1
		}
	}
	if as, aok := a.(string); aok {
		if bs, bok := b.(string); bok {
			return strings.Compare(as, bs)
		}
	}
	if ab, aok := a.(bool); aok {
		if bb, bok := b.(bool); bok {
			if !ab && bb {
				return -1
			}
			return 1
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

// toFloat reports whether v has a numeric representation and returns it.
// Numeric strings count; booleans do not.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

// truthy is the predicate meaning of a bare path selector: nil, false,
// zero numbers, and empty strings are falsy; everything else is truthy.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return true
}
