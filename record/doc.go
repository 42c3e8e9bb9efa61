// Package record provides dot-notation field access over map[string]any
// values, the field-indexable element representation used by package
// collection's path selectors, match templates, and tree builders.
//
// # Reading
//
// [Get] is strict and returns an error wrapping [ErrFieldAccess] when a path
// cannot be resolved; [Lookup] is lenient and reports absence with a bool:
//
//	r := record.Record{"user": record.Record{"name": "Alice"}}
//
//	name, err := record.Get(r, "user.name")   // "Alice", nil
//	_, err = record.Get(r, "user.email")      // ErrFieldAccess
//	_, ok := record.Lookup(r, "user.email")   // nil, false
//
// # Writing
//
// [Set] creates intermediate Records as needed; [Forget] removes a path:
//
//	record.Set(r, "user.address.city", "London")
//	record.Forget(r, "user.name")
//
// # Flattening
//
// [Dot] flattens nesting into dot-keyed paths and [Undot] reverses it,
// which is convenient for diffing or serializing hierarchical data.
package record
