package runtime

import (
	"errors"
	"testing"
)

func TestEnvironmentDefineOverwritesVariant(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", NewArray([]int64{1, 2, 3}))
	env.Define("a", ScalarValue{Val: 5})

	got, err := env.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Kind() != KindScalar {
		t.Fatalf("expected scalar after redeclaration, got %s", got.Kind())
	}
	if got.(ScalarValue).Val != 5 {
		t.Fatalf("expected 5, got %v", got)
	}
}

func TestEnvironmentGetReturnsCopy(t *testing.T) {
	env := NewEnvironment()
	env.Define("a", NewArray([]int64{1, 2, 3}))

	got, err := env.Get("a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.(*ArrayValue).Fill(0)

	again, _ := env.Get("a")
	if again.String() != "1 | 2 | 3" {
		t.Fatalf("stored array mutated through copy: %s", again)
	}
}

func TestEnvironmentMissingBinding(t *testing.T) {
	env := NewEnvironment()
	_, err := env.Get("nope")
	if !errors.Is(err, ErrUndefined) || err.Error() != "undefined variable: nope" {
		t.Fatalf("unexpected error %v", err)
	}
	if _, ok := env.Lookup("nope"); ok {
		t.Fatalf("failed read must not create a binding")
	}
}

func TestEnvironmentKeysSortedAndReset(t *testing.T) {
	env := NewEnvironment()
	env.Define("b", ScalarValue{Val: 2})
	env.Define("a", ScalarValue{Val: 1})
	keys := env.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Fatalf("unexpected keys %v", keys)
	}
	env.Reset()
	if env.Len() != 0 {
		t.Fatalf("expected empty environment after reset")
	}
}
