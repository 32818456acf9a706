package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/log"
	"github.com/peterh/liner"
	"gopkg.in/urfave/cli.v1"

	"helang/interpreter-go/pkg/session"
)

var replCommand = cli.Command{
	Action:    replAction,
	Name:      "repl",
	Usage:     "Start an interactive session",
	ArgsUsage: "",
	Category:  "LANGUAGE COMMANDS",
	Description: `
The repl command reads one line at a time and executes it against a single
environment. Errors are reported and the session continues. Lines starting
with ':' are session commands, see :help.`,
}

const replHelp = `Commands:
  :help     show this text
  :env      list the current bindings
  :reset    discard every binding
  :quit     leave the session (also :exit, Ctrl-D)
`

// lineReader is the subset of *liner.State the REPL uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
	Close() error
}

// newLineReader opens the terminal line editor and loads history from
// histPath. Tests replace it.
var newLineReader = func(histPath string) (lineReader, error) {
	ln := liner.NewLiner()
	ln.SetCtrlCAborts(true)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	return &historyLiner{State: ln, path: histPath}, nil
}

// historyLiner writes the history file back when closed.
type historyLiner struct {
	*liner.State
	path string
}

func (h *historyLiner) Close() error {
	if h.path != "" {
		_ = os.MkdirAll(filepath.Dir(h.path), 0o755)
		if f, err := os.Create(h.path); err == nil {
			_, _ = h.WriteHistory(f)
			_ = f.Close()
		} else {
			log.Debug("Cannot save history", "path", h.path, "err", err)
		}
	}
	return h.State.Close()
}

func replAction(ctx *cli.Context) error {
	cfg, err := setup(ctx)
	if err != nil {
		return err
	}
	sess, err := session.New(session.Config{Output: ctx.App.Writer, CacheSize: cfg.Parser.CacheSize})
	if err != nil {
		return err
	}
	ln, err := newLineReader(cfg.REPL.HistoryFile)
	if err != nil {
		return err
	}
	defer ln.Close()

	r := &repl{
		sess:   sess,
		ln:     ln,
		prompt: cfg.REPL.Prompt,
		out:    ctx.App.Writer,
		errOut: ctx.App.ErrWriter,
	}
	fmt.Fprintf(r.out, "helang %s (type :help for commands)\n", version)
	r.loop()
	return nil
}

type repl struct {
	sess   *session.Session
	ln     lineReader
	prompt string
	out    io.Writer
	errOut io.Writer
	lines  int
}

func (r *repl) loop() {
	for {
		line, err := r.ln.Prompt(r.prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out)
			return
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			printError(r.errOut, err)
			return
		}

		text := strings.TrimSpace(line)
		if text == "" {
			continue
		}
		r.ln.AppendHistory(line)
		if strings.HasPrefix(text, ":") {
			if done := r.command(text); done {
				return
			}
			continue
		}

		r.lines++
		if err := r.sess.Exec(fmt.Sprintf("<repl:%d>", r.lines), line); err != nil {
			printError(r.errOut, err)
		}
	}
}

func (r *repl) command(text string) (exit bool) {
	switch strings.ToLower(strings.Fields(text)[0]) {
	case ":quit", ":exit", ":q":
		return true
	case ":help":
		fmt.Fprint(r.out, replHelp)
	case ":env":
		writeBindings(r.out, r.sess.Bindings())
	case ":reset":
		r.sess.Reset()
		fmt.Fprintln(r.out, "environment reset.")
	default:
		fmt.Fprintf(r.out, "unknown command %s. Type :help for help.\n", text)
	}
	return false
}
