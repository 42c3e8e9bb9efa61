package collection

import "fmt"

// Entry holds one key→element association of a Collection.
// It is the element type produced by [Collection.Entries] and consumed by
// [FromEntries].
type Entry[T any] struct {
	Key   Key
	Value T
}

// String returns a human-readable representation: "key: value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}
