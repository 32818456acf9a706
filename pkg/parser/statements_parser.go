package parser

import (
	"fmt"

	"helang/interpreter-go/pkg/ast"
)

func parseStatement(node *cstStatement) (ast.Statement, error) {
	switch {
	case node.Decl != nil:
		return parseDeclaration(node)
	case node.Print != nil:
		expr, err := parseOperand(node.Print.Operand)
		if err != nil {
			return nil, err
		}
		return annotateStatement(ast.NewPrintStatement(expr), node.Pos, node.EndPos), nil
	case node.Test5G:
		return annotateStatement(ast.NewSpecialCommand("test5g"), node.Pos, node.EndPos), nil
	case node.Target != nil:
		return parseTargetStatement(node)
	default:
		return nil, fmt.Errorf("parser: empty statement at %d:%d", node.Pos.Line, node.Pos.Column)
	}
}

func parseDeclaration(node *cstStatement) (ast.Statement, error) {
	name := parseIdentifier(node.Decl.Name)
	value, err := parseLiteral(node.Decl.Value)
	if err != nil {
		return nil, err
	}
	return annotateStatement(ast.NewDeclaration(name, value), node.Pos, node.EndPos), nil
}

// parseTargetStatement lowers `operand = literal` to an Assignment and a bare
// operand to a PrintStatement. Literal targets are kept so the evaluator can
// reject them.
func parseTargetStatement(node *cstStatement) (ast.Statement, error) {
	target, err := parseOperand(node.Target.Operand)
	if err != nil {
		return nil, err
	}
	if node.Target.Value == nil {
		return annotateStatement(ast.NewPrintStatement(target), node.Pos, node.EndPos), nil
	}
	value, err := parseLiteral(node.Target.Value)
	if err != nil {
		return nil, err
	}
	return annotateStatement(ast.NewAssignment(target, value), node.Pos, node.EndPos), nil
}
