package interpreter

import (
	"bytes"
	"testing"

	"helang/interpreter-go/pkg/ast"
	"helang/interpreter-go/pkg/parser"
	"helang/interpreter-go/pkg/runtime"
)

// runSource parses and evaluates source against env, returning what was
// printed along with the evaluation error.
func runSource(t testing.TB, env *runtime.Environment, source string) (string, error) {
	t.Helper()
	stmts, err := parser.Parse(source)
	if err != nil {
		t.Fatalf("parse %q: %v", source, err)
	}
	return runStatements(t, env, stmts...)
}

func runStatements(t testing.TB, env *runtime.Environment, stmts ...ast.Statement) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := New(WithOutput(&out)).Evaluate(stmts, env)
	return out.String(), err
}

func mustRun(t testing.TB, env *runtime.Environment, source string) string {
	t.Helper()
	out, err := runSource(t, env, source)
	if err != nil {
		t.Fatalf("evaluate %q: %v", source, err)
	}
	return out
}

func mustGet(t testing.TB, env *runtime.Environment, name string) runtime.Value {
	t.Helper()
	val, err := env.Get(name)
	if err != nil {
		t.Fatalf("get %s: %v", name, err)
	}
	return val
}
