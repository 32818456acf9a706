package interpreter

import (
	"fmt"

	"helang/interpreter-go/pkg/ast"
	"helang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) error {
	switch n := node.(type) {
	case *ast.Declaration:
		env.Define(n.Name.Name, literalValue(n.Value))
		return nil
	case *ast.Assignment:
		return i.evaluateAssignment(n, env)
	case *ast.PrintStatement:
		return i.evaluatePrintStatement(n, env)
	case *ast.SpecialCommand:
		return i.writeLine(Test5GMessage)
	default:
		return fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluatePrintStatement(node *ast.PrintStatement, env *runtime.Environment) error {
	val, err := i.evaluateExpression(node.Expression, env)
	if err != nil {
		return err
	}
	return i.writeLine(stringifyValue(val))
}

func (i *Interpreter) writeLine(line string) error {
	if _, err := fmt.Fprintln(i.out, line); err != nil {
		return fmt.Errorf("interpreter: write output: %w", err)
	}
	return nil
}

func (i *Interpreter) evaluateAssignment(node *ast.Assignment, env *runtime.Environment) error {
	switch target := node.Target.(type) {
	case *ast.Identifier:
		env.Define(target.Name, literalValue(node.Value))
		return nil
	case *ast.IndexExpression:
		return i.assignIndex(node, target, env)
	case ast.Literal:
		return newRuntimeError(AssignToLiteral, node.Span(), "cannot assign value to literal")
	default:
		return fmt.Errorf("unsupported assignment target: %s", target.NodeType())
	}
}

// assignIndex broadcasts a scalar into one position, the whole array
// (position 0) or a slice. Only a scalar value may be written. Slice positions
// are all validated before the first write, so a failing statement leaves the
// array untouched.
func (i *Interpreter) assignIndex(node *ast.Assignment, target *ast.IndexExpression, env *runtime.Environment) error {
	value, ok := node.Value.(*ast.ScalarLiteral)
	if !ok {
		return newRuntimeError(IncompatibleTypes, node.Span(), "incompatible types")
	}
	switch idx := target.Index.(type) {
	case *ast.ScalarLiteral:
		arr, err := lookupArray(target.Object, env, node.Span(), "assigning to non-array")
		if err != nil {
			return err
		}
		if idx.Value == 0 {
			arr.Fill(value.Value)
			return nil
		}
		if !arr.InBounds(idx.Value) {
			return outOfBounds(node.Span(), idx.Value, arr)
		}
		arr.Set(idx.Value, value.Value)
		return nil
	default:
		positions := literalElements(idx)
		arr, err := lookupArray(target.Object, env, node.Span(), "assigning to non-array")
		if err != nil {
			return err
		}
		for _, pos := range positions {
			if !arr.InBounds(pos) {
				return outOfBounds(node.Span(), pos, arr)
			}
		}
		for _, pos := range positions {
			arr.Set(pos, value.Value)
		}
		return nil
	}
}

// lookupArray returns the stored array bound to id for in-place mutation.
func lookupArray(id *ast.Identifier, env *runtime.Environment, span ast.Span, notArray string) (*runtime.ArrayValue, error) {
	val, ok := env.Lookup(id.Name)
	if !ok {
		return nil, newRuntimeError(UndefinedVariable, span, "undefined variable: %s", id.Name)
	}
	arr, ok := val.(*runtime.ArrayValue)
	if !ok {
		return nil, newRuntimeError(NotAnArray, span, "%s", notArray)
	}
	return arr, nil
}

func outOfBounds(span ast.Span, pos int64, arr *runtime.ArrayValue) *RuntimeError {
	return newRuntimeError(IndexOutOfBounds, span, "index %d out of bounds %d", pos, arr.Len())
}
