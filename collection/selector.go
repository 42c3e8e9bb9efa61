package collection

import (
	"fmt"
	"sort"

	"github.com/hasbyte1/go-collect/record"
)

// ─────────────────────────────────────────────────────────────────────────────
// Adapter layer
//
// Operations that derive values from or test elements accept their selector
// or predicate argument polymorphically. The accepted kinds are:
//
//	selector:   func(T, Key) any | func(T) any | "a.b.c" (dot path)
//	predicate:  func(T, Key) bool | func(T) bool | "a.b.c" (truthiness)
//	            | record.Record (match template)
//
// Anything else fails with [ErrInvalidArgument]. Each argument is resolved
// exactly once at the call boundary into one of the uniform callables below;
// no operation inspects argument types after that point.
// ─────────────────────────────────────────────────────────────────────────────

// valuer is the uniform callable every selector-like argument resolves to.
type valuer[T any] func(T, Key) (any, error)

// tester is the uniform callable every predicate-like argument resolves to.
type tester[T any] func(T, Key) (bool, error)

// selectorOf resolves a selector-like argument into a valuer.
func selectorOf[T any](arg any) (valuer[T], error) {
	switch sel := arg.(type) {
	case func(T, Key) any:
		return func(el T, k Key) (any, error) { return sel(el, k), nil }, nil
	case func(T) any:
		return func(el T, _ Key) (any, error) { return sel(el), nil }, nil
	case string:
		return pathValuer[T](sel), nil
	}
	return nil, fmt.Errorf("%w: %T cannot be used as a selector", ErrInvalidArgument, arg)
}

// predicateOf resolves a predicate-like argument into a tester.
func predicateOf[T any](arg any) (tester[T], error) {
	switch pred := arg.(type) {
	case func(T, Key) bool:
		return func(el T, k Key) (bool, error) { return pred(el, k), nil }, nil
	case func(T) bool:
		return func(el T, _ Key) (bool, error) { return pred(el), nil }, nil
	case string:
		path := pathValuer[T](pred)
		return func(el T, k Key) (bool, error) {
			v, _ := path(el, k)
			return truthy(v), nil
		}, nil
	case record.Record:
		return templateTester[T](pred), nil
	}
	return nil, fmt.Errorf("%w: %T cannot be used as a predicate", ErrInvalidArgument, arg)
}

// pathValuer builds a valuer that walks the element through the segments of
// a dot-notation path. Elements that are not Records fail with
// record.ErrFieldAccess, as do missing fields and non-indexable
// intermediates.
func pathValuer[T any](path string) valuer[T] {
	return func(el T, _ Key) (any, error) {
		r, ok := any(el).(record.Record)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not field-indexable", record.ErrFieldAccess, el)
		}
		return record.Get(r, path)
	}
}

// templateTester builds a tester from a partial record: the element matches
// when every template field compares loosely equal to the element's value at
// that field. A field absent from the element reads as nil, so a template
// expecting nil matches elements that lack the field entirely. An empty
// template matches everything; a non-Record element matches nothing.
func templateTester[T any](template record.Record) tester[T] {
	fields := make([]string, 0, len(template))
	for f := range template {
		fields = append(fields, f)
	}
	// Deterministic evaluation order; the result does not depend on it,
	// but predictable short-circuiting helps debugging.
	sort.Strings(fields)

	return func(el T, _ Key) (bool, error) {
		r, ok := any(el).(record.Record)
		if !ok {
			return false, nil
		}
		for _, f := range fields {
			got, _ := record.Lookup(r, f)
			if !looseEqual(got, template[f]) {
				return false, nil
			}
		}
		return true, nil
	}
}
