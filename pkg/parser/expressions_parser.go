package parser

import (
	"fmt"

	"helang/interpreter-go/pkg/ast"
)

func parseOperand(node *cstOperand) (ast.Expression, error) {
	if node == nil {
		return nil, fmt.Errorf("parser: missing operand")
	}
	if node.Literal != nil {
		return parseLiteral(node.Literal)
	}
	if node.Name == nil {
		return nil, fmt.Errorf("parser: empty operand at %d:%d", node.Pos.Line, node.Pos.Column)
	}
	id := parseIdentifier(node.Name)
	if node.Index == nil {
		return id, nil
	}
	index, err := parseLiteral(node.Index)
	if err != nil {
		return nil, err
	}
	return annotateExpression(ast.NewIndexExpression(id, index), node.Pos, node.EndPos), nil
}

func parseIdentifier(node *cstIdent) *ast.Identifier {
	id := ast.NewIdentifier(node.Name)
	annotateExpression(id, node.Pos, node.EndPos)
	return id
}
