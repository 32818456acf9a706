// Package session hosts a long-lived helang environment: one environment,
// one interpreter and a parse cache shared by every unit executed in it.
package session

import (
	"fmt"
	"io"
	"sync"

	"github.com/ethereum/go-ethereum/log"
	"github.com/google/uuid"

	"helang/interpreter-go/pkg/interpreter"
	"helang/interpreter-go/pkg/parser"
	"helang/interpreter-go/pkg/runtime"
)

// Session serializes Exec calls so hosts can share it between goroutines.
type Session struct {
	ID string

	mu     sync.Mutex
	env    *runtime.Environment
	interp *interpreter.Interpreter
	cache  *parser.Cache
	logger log.Logger
	units  int
}

type Config struct {
	Output    io.Writer
	CacheSize int
}

func New(cfg Config) (*Session, error) {
	cache, err := parser.NewCache(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	id := uuid.New().String()
	logger := log.New("session", id[:8])
	opts := []interpreter.Option{interpreter.WithLogger(logger)}
	if cfg.Output != nil {
		opts = append(opts, interpreter.WithOutput(cfg.Output))
	}
	return &Session{
		ID:     id,
		env:    runtime.NewEnvironment(),
		interp: interpreter.New(opts...),
		cache:  cache,
		logger: logger,
	}, nil
}

// Exec parses and evaluates one source unit. Syntax errors leave the
// environment untouched; runtime errors keep the effects of the statements
// that completed before the failure.
func (s *Session) Exec(name, source string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.units++
	s.logger.Debug("Executing unit", "unit", name, "seq", s.units)
	stmts, err := s.cache.Parse(name, source)
	if err != nil {
		return err
	}
	if err := s.interp.Evaluate(stmts, s.env); err != nil {
		return err
	}
	s.logger.Debug("Unit finished", "unit", name, "bindings", s.env.Len())
	return nil
}

// Bindings returns the current environment as name/value pairs in name order.
func (s *Session) Bindings() []Binding {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.env.Snapshot()
	out := make([]Binding, 0, len(snapshot))
	for _, name := range s.env.Keys() {
		out = append(out, Binding{Name: name, Value: snapshot[name]})
	}
	return out
}

// Binding is one entry of the environment.
type Binding struct {
	Name  string
	Value runtime.Value
}

func (b Binding) String() string {
	return fmt.Sprintf("%s = %s", b.Name, b.Value)
}

// Reset discards every binding; the parse cache is kept.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.env.Reset()
	s.logger.Debug("Session reset")
}
