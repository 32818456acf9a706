package parser

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"helang/interpreter-go/pkg/ast"
)

// MaxArrayLength bounds the `[n]` literal.
const MaxArrayLength = 1 << 20

var helangLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Keyword", Pattern: `(u8|print|test5g)\b`},
	{Name: "Int", Pattern: `[-+]?\d+\b`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Punct", Pattern: `[|\[\]=]`},
	{Name: "EOL", Pattern: `[\n;]`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

var grammar = participle.MustBuild[cstProgram](
	participle.Lexer(helangLexer),
	participle.Elide("Whitespace", "Comment"),
)

// Concrete syntax tree produced by participle. It is lowered into pkg/ast
// before anything outside this package sees it.

type cstProgram struct {
	Lines []*cstLine `@@*`
}

type cstLine struct {
	Statement *cstStatement `@@? EOL`
}

type cstStatement struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Decl   *cstDecl   `  @@`
	Print  *cstPrint  `| @@`
	Test5G bool       `| @"test5g"`
	Target *cstTarget `| @@`
}

type cstDecl struct {
	Tag   string      `@"u8"`
	Name  *cstIdent   `@@ "="`
	Value *cstLiteral `@@`
}

type cstPrint struct {
	Operand *cstOperand `"print" @@`
}

// cstTarget covers both `operand = literal` and a bare operand.
type cstTarget struct {
	Operand *cstOperand `@@`
	Value   *cstLiteral `( "=" @@ )?`
}

type cstOperand struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Literal *cstLiteral `  @@`
	Name    *cstIdent   `| @@`
	Index   *cstLiteral `  ( "[" @@ "]" )?`
}

type cstIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Name string `@Ident`
}

type cstLiteral struct {
	Pos    lexer.Position
	EndPos lexer.Position

	Length *string   `  "[" @Int "]"`
	Values []*cstInt `| @@ ( "|" @@ )*`
}

type cstInt struct {
	Pos lexer.Position

	Text string `@Int`
}

// Parse parses helang source into its statement list.
func Parse(source string) ([]ast.Statement, error) {
	program, err := ParseProgram("", []byte(source))
	if err != nil {
		return nil, err
	}
	return program.Body, nil
}

// ParseProgram parses a named source unit. The filename only appears in
// error messages and the resulting Program.
func ParseProgram(filename string, source []byte) (*ast.Program, error) {
	text := string(source)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	cst, err := grammar.ParseString(filename, text)
	if err != nil {
		return nil, newSyntaxError(filename, text, err)
	}
	body, err := lowerProgram(cst)
	if err != nil {
		return nil, withSource(err, filename, text)
	}
	program := ast.NewProgram(filename, body)
	if len(body) > 0 {
		ast.SetSpan(program, ast.Span{Start: body[0].Span().Start, End: body[len(body)-1].Span().End})
	}
	return program, nil
}

// MustParse is Parse for tests and fixed inputs.
func MustParse(source string) []ast.Statement {
	stmts, err := Parse(source)
	if err != nil {
		panic(fmt.Sprintf("parser: %v", err))
	}
	return stmts
}
