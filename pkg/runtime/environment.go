package runtime

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUndefined is wrapped by Get when a name has no binding.
var ErrUndefined = errors.New("undefined variable")

// Environment is the single global scope of a helang session. It is created
// once per session and passed into every evaluation.
type Environment struct {
	values map[string]Value
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]Value)}
}

// Snapshot returns a deterministic copy of the current bindings.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = CopyValue(v)
	}
	return out
}

// Define inserts or overwrites a binding. The variant of an existing binding
// may change.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Get returns a copy of the binding.
func (e *Environment) Get(name string) (Value, error) {
	v, ok := e.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUndefined, name)
	}
	return CopyValue(v), nil
}

// Lookup returns the stored binding itself so callers can mutate arrays in place.
func (e *Environment) Lookup(name string) (Value, bool) {
	v, ok := e.values[name]
	return v, ok
}

func (e *Environment) Len() int {
	return len(e.values)
}

// Keys returns the bindings in sorted order (useful for determinism in tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Reset drops every binding.
func (e *Environment) Reset() {
	e.values = make(map[string]Value)
}
