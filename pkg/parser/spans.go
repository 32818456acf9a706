package parser

import (
	"github.com/alecthomas/participle/v2/lexer"

	"helang/interpreter-go/pkg/ast"
)

func spanFromPositions(start, end lexer.Position) ast.Span {
	span := ast.Span{
		Start: ast.Position{Line: start.Line, Column: start.Column},
		End:   ast.Position{Line: end.Line, Column: end.Column},
	}
	if span.End.Line == 0 {
		span.End = span.Start
	}
	return span
}

func annotateStatement(stmt ast.Statement, start, end lexer.Position) ast.Statement {
	ast.SetSpan(stmt, spanFromPositions(start, end))
	return stmt
}

func annotateExpression(expr ast.Expression, start, end lexer.Position) ast.Expression {
	ast.SetSpan(expr, spanFromPositions(start, end))
	return expr
}
