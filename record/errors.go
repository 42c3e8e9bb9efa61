package record

import "errors"

// ErrFieldAccess is returned by [Get] when a dot-notation path traverses
// into a value that is not a Record or names a field that does not exist.
// Callers match it with errors.Is; the wrapped message carries the path and
// the failing segment.
var ErrFieldAccess = errors.New("record: field access failed")
