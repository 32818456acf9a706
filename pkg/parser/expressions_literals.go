package parser

import "helang/interpreter-go/pkg/ast"

func parseLiteral(node *cstLiteral) (ast.Literal, error) {
	if node.Length != nil {
		return parseArrayByLength(node)
	}
	values := make([]int64, 0, len(node.Values))
	for _, elem := range node.Values {
		value, err := parseInt(elem.Text, elem.Pos)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	var lit ast.Literal
	if len(values) == 1 {
		lit = ast.NewScalarLiteral(values[0])
	} else {
		lit = ast.NewArrayLiteral(values)
	}
	annotateExpression(lit, node.Pos, node.EndPos)
	return lit, nil
}

func parseArrayByLength(node *cstLiteral) (ast.Literal, error) {
	length, err := parseInt(*node.Length, node.Pos)
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, syntaxErrorAt(node.Pos, "array length %d is negative", length)
	}
	if length > MaxArrayLength {
		return nil, syntaxErrorAt(node.Pos, "array length %d exceeds %d", length, MaxArrayLength)
	}
	lit := ast.NewArrayByLength(length)
	annotateExpression(lit, node.Pos, node.EndPos)
	return lit, nil
}
