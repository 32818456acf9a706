package ast

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestSetSpanAnnotatesNodes(t *testing.T) {
	nodes := []Node{
		ID("a"),
		Scalar(1),
		Arr(1, 2),
		Zeros(3),
		Idx("a", Scalar(0)),
		Decl("a", Scalar(1)),
		Assign(ID("a"), Scalar(2)),
		Print(ID("a")),
		Test5G(),
		Prog(),
	}
	want := Span{Start: Position{Line: 2, Column: 3}, End: Position{Line: 2, Column: 9}}
	for _, node := range nodes {
		SetSpan(node, want)
		if got := node.Span(); got != want {
			t.Fatalf("%s span mismatch: got %+v, want %+v", node.NodeType(), got, want)
		}
	}
	SetSpan(nil, want)
}

func TestSpanString(t *testing.T) {
	if got := (Span{}).String(); got != "?" {
		t.Fatalf("zero span rendered as %q", got)
	}
	span := Span{Start: Position{Line: 4, Column: 7}}
	if got := span.String(); got != "4:7" {
		t.Fatalf("span rendered as %q, want 4:7", got)
	}
}

func TestProgramJSONCarriesNodeTypes(t *testing.T) {
	prog := Prog(
		Decl("a", Arr(1, 2, 3)),
		Assign(Idx("a", Scalar(0)), Scalar(9)),
		Print(ID("a")),
	)
	data, err := json.Marshal(prog)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(data)
	for _, fragment := range []string{`"type":"Program"`, `"type":"Declaration"`, `"elements":[1,2,3]`, `"type":"IndexExpression"`, `"type":"PrintStatement"`} {
		if !strings.Contains(text, fragment) {
			t.Fatalf("expected %s in %s", fragment, text)
		}
	}
}
