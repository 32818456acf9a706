package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/urfave/cli.v1"

	"helang/interpreter-go/pkg/parser"
)

var (
	checkCommand = cli.Command{
		Action:    checkAction,
		Name:      "check",
		Usage:     "Parse source files and report syntax errors",
		ArgsUsage: "FILE...",
		Category:  "LANGUAGE COMMANDS",
		Description: `
The check command parses every FILE in parallel without executing anything
and reports every syntax error found, one per file.`,
	}
	astCommand = cli.Command{
		Action:    astAction,
		Name:      "ast",
		Usage:     "Print the syntax tree of a source file as JSON",
		ArgsUsage: "FILE",
		Category:  "DEBUGGING COMMANDS",
	}
	tokensCommand = cli.Command{
		Action:    tokensAction,
		Name:      "tokens",
		Usage:     "Print the token stream of a source file",
		ArgsUsage: "FILE",
		Category:  "DEBUGGING COMMANDS",
	}
	versionCommand = cli.Command{
		Action:   versionAction,
		Name:     "version",
		Usage:    "Print version numbers",
		Category: "MISCELLANEOUS COMMANDS",
	}
)

func checkAction(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}
	files := []string(ctx.Args())
	if len(files) == 0 {
		return fmt.Errorf("check: no files given")
	}

	// One slot per file keeps the report in argument order.
	results := make([]error, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			data, err := os.ReadFile(file)
			if err != nil {
				results[i] = fmt.Errorf("check: %w", err)
				return nil
			}
			_, results[i] = parser.ParseProgram(file, data)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, err := range results {
		if err != nil {
			failed++
			printError(ctx.App.ErrWriter, err)
			continue
		}
		fmt.Fprintf(ctx.App.Writer, "%s: ok\n", files[i])
	}
	if failed > 0 {
		return exitStatus(1)
	}
	return nil
}

func astAction(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}
	file, data, err := singleFile(ctx)
	if err != nil {
		return err
	}
	program, err := parser.ParseProgram(file, data)
	if err != nil {
		printError(ctx.App.ErrWriter, err)
		return exitStatus(1)
	}
	return writeJSON(ctx, program)
}

func tokensAction(ctx *cli.Context) error {
	if _, err := setup(ctx); err != nil {
		return err
	}
	file, data, err := singleFile(ctx)
	if err != nil {
		return err
	}
	tokens, err := parser.Tokens(file, string(data))
	if err != nil {
		printError(ctx.App.ErrWriter, err)
		return exitStatus(1)
	}
	for _, tok := range tokens {
		fmt.Fprintf(ctx.App.Writer, "%s\t%s\t%q\n", tok.Pos, tok.Kind, tok.Value)
	}
	return nil
}

func versionAction(ctx *cli.Context) error {
	fmt.Fprintln(ctx.App.Writer, "helang")
	fmt.Fprintln(ctx.App.Writer, "Version:", version)
	fmt.Fprintln(ctx.App.Writer, "Go Version:", runtime.Version())
	fmt.Fprintln(ctx.App.Writer, "Operating System:", runtime.GOOS)
	return nil
}

func singleFile(ctx *cli.Context) (string, []byte, error) {
	if ctx.NArg() != 1 {
		return "", nil, fmt.Errorf("%s: expected exactly one file", ctx.Command.Name)
	}
	file := ctx.Args().First()
	data, err := os.ReadFile(file)
	if err != nil {
		return "", nil, err
	}
	return file, data, nil
}

func writeJSON(ctx *cli.Context, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(ctx.App.Writer, "%s\n", out)
	return err
}
