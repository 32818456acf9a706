package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"helang/interpreter-go/pkg/ast"
)

// ErrSyntax matches every *SyntaxError through errors.Is.
var ErrSyntax = errors.New("syntax error")

// SyntaxError reports the first point at which source could not be parsed.
type SyntaxError struct {
	Filename string
	Pos      ast.Position
	Message  string
	Line     string
}

func (e *SyntaxError) Error() string {
	name := e.Filename
	if name == "" {
		name = "<input>"
	}
	return fmt.Sprintf("%s:%d:%d: %s", name, e.Pos.Line, e.Pos.Column, e.Message)
}

func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}

// Snippet renders the offending line with a caret under the column.
func (e *SyntaxError) Snippet() string {
	if e.Line == "" {
		return ""
	}
	col := e.Pos.Column
	if col < 1 {
		col = 1
	}
	return e.Line + "\n" + strings.Repeat(" ", col-1) + "^"
}

// ruleNames maps grammar rule types to the words used in error messages.
var ruleNames = strings.NewReplacer(
	"CstStatement", "statement",
	"CstOperand", "operand",
	"CstLiteral", "literal",
	"CstIdent", "identifier",
	"CstTarget", "operand",
	"CstDecl", "declaration",
	"CstPrint", "print statement",
	"CstLine", "statement",
	"CstInt", "integer",
)

func newSyntaxError(filename, source string, err error) *SyntaxError {
	var perr participle.Error
	if !errors.As(err, &perr) {
		return &SyntaxError{Filename: filename, Message: err.Error()}
	}
	pos := perr.Position()
	return &SyntaxError{
		Filename: filename,
		Pos:      ast.Position{Line: pos.Line, Column: pos.Column},
		Message:  ruleNames.Replace(perr.Message()),
		Line:     sourceLine(source, pos.Line),
	}
}

// withSource fills in the location context of errors raised while lowering.
func withSource(err error, filename, source string) error {
	var serr *SyntaxError
	if errors.As(err, &serr) {
		serr.Filename = filename
		serr.Line = sourceLine(source, serr.Pos.Line)
		return serr
	}
	return fmt.Errorf("parser: %w", err)
}
