package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"helang/interpreter-go/pkg/ast"
)

// Token is a lexed source token, as printed by `helang tokens`.
type Token struct {
	Kind  string       `json:"kind"`
	Value string       `json:"value"`
	Pos   ast.Position `json:"pos"`
}

var symbolNames = func() map[lexer.TokenType]string {
	names := make(map[lexer.TokenType]string)
	for name, typ := range helangLexer.Symbols() {
		names[typ] = name
	}
	return names
}()

// Tokens lexes source without parsing it. Whitespace and the end-of-input
// marker are dropped; comments are kept.
func Tokens(filename, source string) ([]Token, error) {
	raw, err := grammar.Lex(filename, strings.NewReader(source))
	if err != nil {
		return nil, newSyntaxError(filename, source, err)
	}
	out := make([]Token, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			continue
		}
		kind := symbolNames[tok.Type]
		if kind == "Whitespace" {
			continue
		}
		out = append(out, Token{
			Kind:  kind,
			Value: tok.Value,
			Pos:   ast.Position{Line: tok.Pos.Line, Column: tok.Pos.Column},
		})
	}
	return out, nil
}
