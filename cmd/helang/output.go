package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"helang/interpreter-go/pkg/parser"
	"helang/interpreter-go/pkg/session"
)

var (
	errorColor = color.New(color.FgRed, color.Bold)
	noteColor  = color.New(color.FgYellow)
)

// printError writes err to w; syntax errors are followed by the offending
// line and a caret.
func printError(w io.Writer, err error) {
	errorColor.Fprintf(w, "error: %v\n", err)
	var synErr *parser.SyntaxError
	if errors.As(err, &synErr) {
		if snippet := synErr.Snippet(); snippet != "" {
			noteColor.Fprintln(w, snippet)
		}
	}
}

func writeBindings(w io.Writer, bindings []session.Binding) {
	if len(bindings) == 0 {
		fmt.Fprintln(w, "(no bindings)")
		return
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Kind", "Value"})
	table.SetAutoWrapText(false)
	for _, b := range bindings {
		table.Append([]string{b.Name, b.Value.Kind().String(), b.Value.String()})
	}
	table.Render()
}
