package collection

import (
	"fmt"
	"sync"
)

// MacroFunc is the signature of a registered macro.
//
// The collection is passed as an any so that a macro registered once works
// across every Collection[T] instantiation; type-assert inside the macro to
// the concrete *Collection[YourType].
type MacroFunc func(c any, args ...any) any

var macros struct {
	mu sync.RWMutex
	m  map[string]MacroFunc
}

func init() {
	macros.m = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry, replacing any
// macro already registered under that name. Safe for concurrent use.
//
//	collection.RegisterMacro("evens", func(c any, _ ...any) any {
//	    out, _ := c.(*collection.Collection[int]).
//	        Filter(func(n int) bool { return n%2 == 0 })
//	    return out
//	})
func RegisterMacro(name string, fn MacroFunc) {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.m[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macros.mu.RLock()
	defer macros.mu.RUnlock()
	_, ok := macros.m[name]
	return ok
}

// FlushMacros removes all registered macros. Intended for tests.
func FlushMacros() {
	macros.mu.Lock()
	defer macros.mu.Unlock()
	macros.m = make(map[string]MacroFunc)
}

// CallMacro invokes the named macro with the supplied collection and args.
// Returns ErrMacroNotFound when no macro is registered under name.
func CallMacro(name string, c any, args ...any) (any, error) {
	macros.mu.RLock()
	fn, ok := macros.m[name]
	macros.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(c, args...), nil
}

// Macro calls the named registered macro on c, forwarding args.
func (c *Collection[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, c, args...)
}
