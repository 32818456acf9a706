package interpreter

import (
	"errors"
	"math"
	"strconv"
	"testing"

	"helang/interpreter-go/pkg/ast"
	"helang/interpreter-go/pkg/parser"
	"helang/interpreter-go/pkg/runtime"
)

func TestPrintScalarLiteral(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 255, math.MaxInt64, math.MinInt64} {
		out, err := runStatements(t, runtime.NewEnvironment(), ast.Print(ast.Scalar(v)))
		if err != nil {
			t.Fatalf("print %d: %v", v, err)
		}
		if want := strconv.FormatInt(v, 10) + "\n"; out != want {
			t.Fatalf("print %d wrote %q, want %q", v, out, want)
		}
	}
}

func TestArrayDeclarationAndIndexing(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 1 | 2 | 3")

	if out := mustRun(t, env, "print a[0]"); out != "1 | 2 | 3\n" {
		t.Fatalf("a[0] printed %q", out)
	}
	for i := 1; i <= 3; i++ {
		out := mustRun(t, env, "print a["+strconv.Itoa(i)+"]")
		if out != strconv.Itoa(i)+"\n" {
			t.Fatalf("a[%d] printed %q", i, out)
		}
	}

	_, err := runSource(t, env, "print a[4]")
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected IndexOutOfBounds, got %v", err)
	}
	var rerr *RuntimeError
	if !errors.As(err, &rerr) || rerr.Message != "index 4 out of bounds 3" {
		t.Fatalf("unexpected error %#v", err)
	}
}

func TestBroadcastAssignment(t *testing.T) {
	env := runtime.NewEnvironment()
	out := mustRun(t, env, "u8 b = [3]\nb[0] = 9\nprint b")
	if out != "9 | 9 | 9\n" {
		t.Fatalf("broadcast printed %q", out)
	}
}

func TestSliceRead(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 b = 10 | 20 | 30")

	out, err := runStatements(t, env, ast.Print(ast.Idx("b", ast.Arr(2, 1))))
	if err != nil {
		t.Fatalf("slice read: %v", err)
	}
	if out != "20 | 10\n" {
		t.Fatalf("slice read printed %q", out)
	}
	if out := mustRun(t, env, "b[3 | 3 | 1]"); out != "30 | 30 | 10\n" {
		t.Fatalf("repeated slice printed %q", out)
	}
}

func TestSliceWrite(t *testing.T) {
	env := runtime.NewEnvironment()
	out := mustRun(t, env, "u8 b = 1 | 2 | 3\nb[1 | 3] = 7\nprint b")
	if out != "7 | 2 | 7\n" {
		t.Fatalf("slice write printed %q", out)
	}
}

func TestSliceWriteIsAllOrNothing(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 b = 1 | 2 | 3")

	_, err := runSource(t, env, "b[1 | 4 | 2] = 7")
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("expected IndexOutOfBounds, got %v", err)
	}
	if got := mustGet(t, env, "b").String(); got != "1 | 2 | 3" {
		t.Fatalf("failed slice write mutated array: %s", got)
	}
}

func TestUndefinedReferenceLeavesEnvironmentUnchanged(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 1")
	before := env.Snapshot()

	_, err := runSource(t, env, "print x")
	if !errors.Is(err, ErrUndefinedVariable) {
		t.Fatalf("expected UndefinedVariable, got %v", err)
	}
	var rerr *RuntimeError
	if errors.As(err, &rerr); rerr.Message != "undefined variable: x" {
		t.Fatalf("unexpected message %q", rerr.Message)
	}
	after := env.Snapshot()
	if len(after) != len(before) || after["a"].String() != before["a"].String() {
		t.Fatalf("environment changed: before %v after %v", before, after)
	}
}

func TestPrintIsIdempotent(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 4 | 5")
	first := mustRun(t, env, "print a")
	second := mustRun(t, env, "print a")
	if first != second || first != "4 | 5\n" {
		t.Fatalf("print not idempotent: %q then %q", first, second)
	}
	if got := mustGet(t, env, "a").String(); got != "4 | 5" {
		t.Fatalf("print changed binding: %s", got)
	}
}

func TestDeclarationOverwriteChangesVariant(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 1 | 2 | 3\nu8 a = 5")
	if val := mustGet(t, env, "a"); val.Kind() != runtime.KindScalar || val.String() != "5" {
		t.Fatalf("expected scalar 5, got %s %s", val.Kind(), val)
	}
	mustRun(t, env, "a = 6 | 7")
	if val := mustGet(t, env, "a"); val.Kind() != runtime.KindArray {
		t.Fatalf("expected array after assignment, got %s", val.Kind())
	}
}

func TestEndToEndIndexAssignOnScalarFails(t *testing.T) {
	env := runtime.NewEnvironment()
	out, err := runSource(t, env, `u8 a = 1 | 2 | 3
u8 b = 4
a = 3 | 4 | 5
b[1] = 3
print a
print b
`)
	if !errors.Is(err, ErrNotAnArray) {
		t.Fatalf("expected NotAnArray, got %v", err)
	}
	var rerr *RuntimeError
	errors.As(err, &rerr)
	if rerr.Span.Start.Line != 4 {
		t.Fatalf("expected failure on line 4, got %s", rerr.Span)
	}
	if out != "" {
		t.Fatalf("statements after the failure ran: %q", out)
	}
	if got := mustGet(t, env, "a").String(); got != "3 | 4 | 5" {
		t.Fatalf("earlier statements should keep their effects, a = %s", got)
	}
	if got := mustGet(t, env, "b").String(); got != "4" {
		t.Fatalf("b = %s", got)
	}
}

func TestSpecialCommand(t *testing.T) {
	out, err := runStatements(t, runtime.NewEnvironment(), ast.Test5G())
	if err != nil {
		t.Fatalf("test5g: %v", err)
	}
	if out != Test5GMessage+"\n" {
		t.Fatalf("test5g printed %q", out)
	}
}

func TestEmptyArrayPrintsEmptyLine(t *testing.T) {
	out := mustRun(t, runtime.NewEnvironment(), "u8 e = [0]\nprint e\ne[0] = 3\nprint e")
	if out != "\n\n" {
		t.Fatalf("empty array printed %q", out)
	}
}

func TestEvaluationDoesNotMutateStatements(t *testing.T) {
	stmts := parser.MustParse("u8 a = 1 | 2\na[0] = 5\nprint a")
	for i := 0; i < 2; i++ {
		out, err := runStatements(t, runtime.NewEnvironment(), stmts...)
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if out != "5 | 5\n" {
			t.Fatalf("run %d printed %q", i, out)
		}
	}
	decl := stmts[0].(*ast.Declaration)
	if elems := decl.Value.(*ast.ArrayLiteral).Elements; elems[0] != 1 || elems[1] != 2 {
		t.Fatalf("literal mutated by evaluation: %v", elems)
	}
}

func TestEnvironmentPersistsAcrossEvaluations(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 1 | 2")
	mustRun(t, env, "a[2] = 8")
	if out := mustRun(t, env, "a"); out != "1 | 8\n" {
		t.Fatalf("expected state to carry over, printed %q", out)
	}
}

func TestEvaluateRequiresEnvironment(t *testing.T) {
	if err := New().Evaluate(nil, nil); err == nil {
		t.Fatalf("expected error for nil environment")
	}
}

func TestArrayByLengthDeclaresZeros(t *testing.T) {
	env := runtime.NewEnvironment()
	if out := mustRun(t, env, "u8 z = [3]\nz[2] = 4\nprint z\nprint [2]"); out != "0 | 4 | 0\n0 | 0\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestIdentifierReadReturnsCopy(t *testing.T) {
	env := runtime.NewEnvironment()
	mustRun(t, env, "u8 a = 1 | 2")
	val, err := New().evaluateExpression(ast.ID("a"), env)
	if err != nil {
		t.Fatalf("read a: %v", err)
	}
	val.(*runtime.ArrayValue).Fill(7)
	if got := mustGet(t, env, "a").String(); got != "1 | 2" {
		t.Fatalf("binding mutated through read: %s", got)
	}

	_, err = New().evaluateExpression(ast.ID("missing"), env)
	var rtErr *RuntimeError
	if !errors.As(err, &rtErr) || rtErr.Kind != UndefinedVariable || rtErr.Message != "undefined variable: missing" {
		t.Fatalf("unexpected error %v", err)
	}
}
