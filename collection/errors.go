package collection

import "errors"

// Sentinel errors returned by Collection operations.
var (
	// ErrInvalidArgument is returned when a selector or predicate argument
	// is neither a supported callable, a dot-notation path string, nor
	// (for predicates) a record match template.
	ErrInvalidArgument = errors.New("collection: invalid selector or predicate argument")

	// ErrNoRoot is returned by ToTree when no root value can be inferred,
	// which signals a cyclic or fully self-referential dataset.
	ErrNoRoot = errors.New("collection: no tree root could be inferred")

	// ErrNoMatchingItems is returned by FirstOrFail / LastOrFail when no
	// element satisfies the predicate.
	ErrNoMatchingItems = errors.New("collection: no elements match the given condition")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("collection: macro not found")
)
