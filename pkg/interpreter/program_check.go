package interpreter

import "helang/interpreter-go/pkg/ast"

// CheckStatements rejects statement shapes that can never execute, before
// any statement runs. The only such shape is an assignment whose target is
// a literal.
func CheckStatements(stmts []ast.Statement) error {
	for _, stmt := range stmts {
		assign, ok := stmt.(*ast.Assignment)
		if !ok {
			continue
		}
		if _, isLiteral := assign.Target.(ast.Literal); isLiteral {
			return newRuntimeError(AssignToLiteral, assign.Span(), "cannot assign value to literal")
		}
	}
	return nil
}
