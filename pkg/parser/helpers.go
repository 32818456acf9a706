package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"helang/interpreter-go/pkg/ast"
)

func parseInt(text string, pos lexer.Position) (int64, error) {
	value, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, syntaxErrorAt(pos, "integer %s out of range", text)
	}
	return value, nil
}

func syntaxErrorAt(pos lexer.Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{
		Pos:     ast.Position{Line: pos.Line, Column: pos.Column},
		Message: fmt.Sprintf(format, args...),
	}
}

func sourceLine(source string, line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}
