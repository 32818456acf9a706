package interpreter

import (
	"fmt"

	"helang/interpreter-go/pkg/ast"
	"helang/interpreter-go/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case ast.Literal:
		return literalValue(n), nil
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, newRuntimeError(UndefinedVariable, n.Span(), "%v", err)
		}
		return val, nil
	case *ast.IndexExpression:
		return i.evaluateIndexExpression(n, env)
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateIndexExpression(node *ast.IndexExpression, env *runtime.Environment) (runtime.Value, error) {
	val, ok := env.Lookup(node.Object.Name)
	if !ok {
		return nil, newRuntimeError(UndefinedVariable, node.Span(), "undefined variable: %s", node.Object.Name)
	}
	arr, isArray := val.(*runtime.ArrayValue)
	if idx, ok := node.Index.(*ast.ScalarLiteral); ok {
		if !isArray {
			return nil, newRuntimeError(NotAnArray, node.Span(), "indexing non-array")
		}
		if idx.Value == 0 {
			return arr.Copy(), nil
		}
		if !arr.InBounds(idx.Value) {
			return nil, outOfBounds(node.Span(), idx.Value, arr)
		}
		return runtime.ScalarValue{Val: arr.At(idx.Value)}, nil
	}
	if !isArray {
		return nil, newRuntimeError(NotAnArray, node.Span(), "cannot slice non-array")
	}
	positions := literalElements(node.Index)
	out := make([]int64, 0, len(positions))
	for _, pos := range positions {
		if !arr.InBounds(pos) {
			return nil, outOfBounds(node.Span(), pos, arr)
		}
		out = append(out, arr.At(pos))
	}
	return &runtime.ArrayValue{Elements: out}, nil
}

// literalValue materialises a literal as a fresh runtime value.
func literalValue(lit ast.Literal) runtime.Value {
	switch l := lit.(type) {
	case *ast.ScalarLiteral:
		return runtime.ScalarValue{Val: l.Value}
	case *ast.ArrayByLength:
		return runtime.NewZeroArray(int(l.Length))
	default:
		return runtime.NewArray(literalElements(l))
	}
}

// literalElements lists the integers an array-shaped literal denotes.
func literalElements(lit ast.Literal) []int64 {
	switch l := lit.(type) {
	case *ast.ArrayLiteral:
		return l.Elements
	case *ast.ArrayByLength:
		return make([]int64, l.Length)
	case *ast.ScalarLiteral:
		return []int64{l.Value}
	default:
		return nil
	}
}
