package interpreter

import (
	"errors"
	"testing"

	"helang/interpreter-go/pkg/runtime"
)

func TestRuntimeErrorKinds(t *testing.T) {
	cases := []struct {
		name    string
		source  string
		kind    *RuntimeError
		message string
	}{
		{"read undefined", "print nope", ErrUndefinedVariable, "undefined variable: nope"},
		{"index undefined", "print nope[1]", ErrUndefinedVariable, "undefined variable: nope"},
		{"index assign undefined", "nope[1] = 2", ErrUndefinedVariable, "undefined variable: nope"},
		{"slice assign undefined", "nope[1 | 2] = 2", ErrUndefinedVariable, "undefined variable: nope"},
		{"index scalar", "print s[1]", ErrNotAnArray, "indexing non-array"},
		{"whole scalar", "print s[0]", ErrNotAnArray, "indexing non-array"},
		{"slice scalar", "print s[1 | 2]", ErrNotAnArray, "cannot slice non-array"},
		{"assign into scalar", "s[1] = 2", ErrNotAnArray, "assigning to non-array"},
		{"slice assign into scalar", "s[1 | 2] = 2", ErrNotAnArray, "assigning to non-array"},
		{"read past end", "print a[4]", ErrIndexOutOfBounds, "index 4 out of bounds 3"},
		{"read negative", "print a[-1]", ErrIndexOutOfBounds, "index -1 out of bounds 3"},
		{"slice read zero", "print a[0 | 1]", ErrIndexOutOfBounds, "index 0 out of bounds 3"},
		{"slice read past end", "print a[1 | 9]", ErrIndexOutOfBounds, "index 9 out of bounds 3"},
		{"write past end", "a[4] = 1", ErrIndexOutOfBounds, "index 4 out of bounds 3"},
		{"write negative", "a[-2] = 1", ErrIndexOutOfBounds, "index -2 out of bounds 3"},
		{"slice write zero", "a[0 | 1] = 1", ErrIndexOutOfBounds, "index 0 out of bounds 3"},
		{"array into element", "a[1] = 1 | 2", ErrIncompatibleTypes, "incompatible types"},
		{"array into slice", "a[1 | 2] = 1 | 2", ErrIncompatibleTypes, "incompatible types"},
		{"zeros into element", "a[1] = [2]", ErrIncompatibleTypes, "incompatible types"},
		{"array into scalar element", "s[1] = 1 | 2", ErrIncompatibleTypes, "incompatible types"},
		{"array into undefined element", "nope[1] = 1 | 2", ErrIncompatibleTypes, "incompatible types"},
		{"literal target", "5 = 6", ErrAssignToLiteral, "cannot assign value to literal"},
		{"array literal target", "1 | 2 = 3", ErrAssignToLiteral, "cannot assign value to literal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env := runtime.NewEnvironment()
			mustRun(t, env, "u8 a = 1 | 2 | 3\nu8 s = 7")
			before := env.Snapshot()

			_, err := runSource(t, env, tc.source)
			if !errors.Is(err, tc.kind) {
				t.Fatalf("expected %s, got %v", tc.kind.Kind, err)
			}
			var rerr *RuntimeError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *RuntimeError, got %T", err)
			}
			if rerr.Message != tc.message {
				t.Fatalf("message %q, want %q", rerr.Message, tc.message)
			}
			if rerr.Span.Start.Line != 1 {
				t.Fatalf("expected span on line 1, got %s", rerr.Span)
			}
			after := env.Snapshot()
			for name, val := range before {
				if after[name].String() != val.String() {
					t.Fatalf("%s changed from %s to %s", name, val, after[name])
				}
			}
		})
	}
}

func TestAssignToLiteralRejectsUnitBeforeExecution(t *testing.T) {
	env := runtime.NewEnvironment()
	out, err := runSource(t, env, "u8 a = 1\nprint a\n5 = 6")
	if !errors.Is(err, ErrAssignToLiteral) {
		t.Fatalf("expected AssignToLiteral, got %v", err)
	}
	if _, defined := env.Lookup("a"); out != "" || defined {
		t.Fatalf("statements ran before the literal assignment was rejected: out=%q", out)
	}
}

func TestRuntimeErrorFormatting(t *testing.T) {
	_, err := runSource(t, runtime.NewEnvironment(), "\n\nprint x")
	if got := err.Error(); got != "3:7: undefined variable: x" {
		t.Fatalf("unexpected error text %q", got)
	}
	if ErrNotAnArray.Error() != "" {
		t.Fatalf("sentinels carry no message")
	}
	if errors.Is(err, ErrNotAnArray) {
		t.Fatalf("kinds must not match across categories")
	}
	if IncompatibleTypes.String() != "IncompatibleTypes" {
		t.Fatalf("kind name %q", IncompatibleTypes.String())
	}
}
