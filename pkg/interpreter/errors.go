package interpreter

import (
	"fmt"

	"helang/interpreter-go/pkg/ast"
)

// ErrorKind classifies runtime failures.
type ErrorKind int

const (
	UndefinedVariable ErrorKind = iota + 1
	NotAnArray
	IndexOutOfBounds
	IncompatibleTypes
	AssignToLiteral
)

func (k ErrorKind) String() string {
	switch k {
	case UndefinedVariable:
		return "UndefinedVariable"
	case NotAnArray:
		return "NotAnArray"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case IncompatibleTypes:
		return "IncompatibleTypes"
	case AssignToLiteral:
		return "AssignToLiteral"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinels for errors.Is; they match any RuntimeError of the same kind.
var (
	ErrUndefinedVariable = &RuntimeError{Kind: UndefinedVariable}
	ErrNotAnArray        = &RuntimeError{Kind: NotAnArray}
	ErrIndexOutOfBounds  = &RuntimeError{Kind: IndexOutOfBounds}
	ErrIncompatibleTypes = &RuntimeError{Kind: IncompatibleTypes}
	ErrAssignToLiteral   = &RuntimeError{Kind: AssignToLiteral}
)

// RuntimeError aborts evaluation of the current unit.
type RuntimeError struct {
	Kind    ErrorKind
	Message string
	Span    ast.Span
}

func newRuntimeError(kind ErrorKind, span ast.Span, format string, args ...interface{}) *RuntimeError {
	return &RuntimeError{Kind: kind, Span: span, Message: fmt.Sprintf(format, args...)}
}

func (e *RuntimeError) Error() string {
	if e.Span.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

func (e *RuntimeError) Is(target error) bool {
	t, ok := target.(*RuntimeError)
	return ok && t.Kind == e.Kind
}
