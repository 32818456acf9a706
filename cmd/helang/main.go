// helang is the command-line host for the helang language: batch runs,
// an interactive session and a few inspection tools.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/urfave/cli.v1"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	return runWith(args, os.Stdout, os.Stderr)
}

func runWith(args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	err := app.Run(append([]string{app.Name}, args...))
	if err == nil {
		return 0
	}
	var status exitStatus
	if errors.As(err, &status) {
		return int(status)
	}
	printError(stderr, err)
	return 1
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "helang"
	app.Usage = "run and explore helang programs"
	app.Version = version
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		noColorFlag,
	}
	app.Commands = []cli.Command{
		astCommand,
		checkCommand,
		dumpConfigCommand,
		replCommand,
		runCommand,
		tokensCommand,
		versionCommand,
	}
	app.Action = defaultAction
	return app
}

// defaultAction starts the REPL when no command is given.
func defaultAction(ctx *cli.Context) error {
	if ctx.NArg() > 0 {
		return fmt.Errorf("unknown command %q, see 'helang help'", ctx.Args().First())
	}
	return replAction(ctx)
}
