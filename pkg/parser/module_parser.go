package parser

import "helang/interpreter-go/pkg/ast"

func lowerProgram(cst *cstProgram) ([]ast.Statement, error) {
	body := make([]ast.Statement, 0, len(cst.Lines))
	for _, line := range cst.Lines {
		if line == nil || line.Statement == nil {
			continue
		}
		stmt, err := parseStatement(line.Statement)
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
	}
	return body, nil
}
