package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"

	"helang/interpreter-go/pkg/ast"
	"helang/interpreter-go/pkg/runtime"
)

// Test5GMessage is the canned reply of the `test5g` command.
const Test5GMessage = "很残念，你的电脑并没有配备 5G 芯片。"

// Interpreter executes helang statements against a caller-owned environment.
// It holds no program state of its own, so one Interpreter can serve any
// number of environments.
type Interpreter struct {
	out    io.Writer
	logger log.Logger
}

type Option func(*Interpreter)

// WithOutput redirects print output (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		i.out = w
	}
}

func WithLogger(logger log.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// New returns an interpreter writing to stdout.
func New(opts ...Option) *Interpreter {
	interp := &Interpreter{out: os.Stdout, logger: log.Root()}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Evaluate runs stmts in order against env and stops at the first failure.
// Statements that completed before the failure keep their effects.
func (i *Interpreter) Evaluate(stmts []ast.Statement, env *runtime.Environment) error {
	if env == nil {
		return fmt.Errorf("interpreter: nil environment")
	}
	if err := CheckStatements(stmts); err != nil {
		return err
	}
	for _, stmt := range stmts {
		i.logger.Trace("Executing statement", "type", stmt.NodeType(), "pos", stmt.Span())
		if err := i.evaluateStatement(stmt, env); err != nil {
			i.logger.Debug("Statement failed", "type", stmt.NodeType(), "pos", stmt.Span(), "err", err)
			return err
		}
	}
	return nil
}

// EvaluateProgram executes a parsed unit.
func (i *Interpreter) EvaluateProgram(program *ast.Program, env *runtime.Environment) error {
	if program == nil {
		return nil
	}
	return i.Evaluate(program.Body, env)
}
