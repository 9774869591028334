package route

import (
	"errors"
	"fmt"
)

// Sentinel errors for resolution configuration.
var (
	// ErrDuplicateRoute indicates a route name was registered twice,
	// including the implicit home name registered at engine construction.
	ErrDuplicateRoute = errors.New("route name already registered")

	// ErrNoFallback indicates no fallback was configured before the first
	// resolution. Resolution must always produce a descriptor, so a missing
	// fallback is a configuration error, not a per-request one.
	ErrNoFallback = errors.New("no fallback registered")
)

// Table is the static mapping from route name to page factory. Lookup is by
// exact name only; registration order is irrelevant.
type Table struct {
	factories map[Name]Factory
}

// NewTable creates an empty route table.
func NewTable() *Table {
	return &Table{
		factories: make(map[Name]Factory),
	}
}

// Register adds a factory under name. Registering the same name twice fails
// with ErrDuplicateRoute.
func (t *Table) Register(name Name, fn Factory) error {
	if _, ok := t.factories[name]; ok {
		return fmt.Errorf("register %q: %w", name, ErrDuplicateRoute)
	}
	t.factories[name] = fn
	return nil
}

// Lookup returns the factory registered under name, if any.
func (t *Table) Lookup(name Name) (Factory, bool) {
	fn, ok := t.factories[name]
	return fn, ok
}

// Has reports whether name is registered.
func (t *Table) Has(name Name) bool {
	_, ok := t.factories[name]
	return ok
}
