package parser_test

import (
	"testing"

	"helang/interpreter-go/pkg/parser"
)

func TestTokensDumpsLexemes(t *testing.T) {
	tokens, err := parser.Tokens("t.he", "u8 a = 1 | 2 // note\nprint a[0]")
	if err != nil {
		t.Fatalf("Tokens returned error: %v", err)
	}
	want := []struct{ kind, value string }{
		{"Keyword", "u8"},
		{"Ident", "a"},
		{"Punct", "="},
		{"Int", "1"},
		{"Punct", "|"},
		{"Int", "2"},
		{"Comment", "// note"},
		{"EOL", "\n"},
		{"Keyword", "print"},
		{"Ident", "a"},
		{"Punct", "["},
		{"Int", "0"},
		{"Punct", "]"},
	}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %+v", len(want), len(tokens), tokens)
	}
	for i, w := range want {
		if tokens[i].Kind != w.kind || tokens[i].Value != w.value {
			t.Fatalf("token %d: got %s %q, want %s %q", i, tokens[i].Kind, tokens[i].Value, w.kind, w.value)
		}
	}
	if tokens[8].Pos.Line != 2 || tokens[8].Pos.Column != 1 {
		t.Fatalf("print token at %+v", tokens[8].Pos)
	}
}

func TestTokensRejectsInvalidInput(t *testing.T) {
	if _, err := parser.Tokens("", "a = 12ab"); err == nil {
		t.Fatalf("expected lexer error")
	}
}
