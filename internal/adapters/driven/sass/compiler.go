package sass

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/bep/godartsass/v2"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure Compiler implements the interface.
var _ driven.StylesheetCompiler = (*Compiler)(nil)

// transpiler is the subset of *godartsass.Transpiler the compiler uses.
type transpiler interface {
	Execute(args godartsass.Args) (godartsass.Result, error)
	Close() error
}

// startFunc starts a transpiler for the resolved binary.
type startFunc func(binary string, timeout time.Duration) (transpiler, error)

// Compiler compiles SCSS with Dart Sass.
type Compiler struct {
	binary  string
	timeout time.Duration
	start   startFunc
	lookup  func(string) (string, error)

	mu         sync.Mutex
	transpiler transpiler
}

// New creates a Dart Sass compiler. binary is resolved through PATH when it
// is not a path. Nothing is started until the first Compile.
func New(binary string, timeout time.Duration) *Compiler {
	if binary == "" {
		binary = domain.DefaultSassBinary
	}
	if timeout <= 0 {
		timeout = domain.DefaultSassTimeoutSeconds * time.Second
	}
	return &Compiler{
		binary:  binary,
		timeout: timeout,
		start:   startDartSass,
		lookup:  exec.LookPath,
	}
}

// Name returns the compiler name.
func (c *Compiler) Name() string {
	return "dart-sass"
}

// Available returns true if the Dart Sass binary can be found.
func (c *Compiler) Available() bool {
	_, err := c.lookup(c.binary)
	return err == nil
}

// Compile compiles source as SCSS.
func (c *Compiler) Compile(ctx context.Context, source string) error {
	t, err := c.ensureStarted()
	if err != nil {
		return err
	}

	type outcome struct {
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		_, err := t.Execute(godartsass.Args{
			Source:       source,
			SourceSyntax: godartsass.SourceSyntaxSCSS,
			OutputStyle:  godartsass.OutputStyleCompressed,
		})
		done <- outcome{err: err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case out := <-done:
		return c.classify(out.err)
	}
}

// Close stops the Dart Sass process, if running.
func (c *Compiler) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler == nil {
		return nil
	}
	err := c.transpiler.Close()
	c.transpiler = nil
	if errors.Is(err, godartsass.ErrShutdown) {
		return nil
	}
	return err
}

// ensureStarted starts Dart Sass once. A failed start is retried on the
// next call so installing the binary does not require a restart.
func (c *Compiler) ensureStarted() (transpiler, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler != nil {
		return c.transpiler, nil
	}

	path, err := c.lookup(c.binary)
	if err != nil {
		return nil, fmt.Errorf("dart sass %q: %w", c.binary, domain.ErrToolUnavailable)
	}

	t, err := c.start(path, c.timeout)
	if err != nil {
		return nil, fmt.Errorf("starting dart sass: %v: %w", err, domain.ErrToolUnavailable)
	}
	logger.Debug("sass: started %s (timeout %s)", path, c.timeout)
	c.transpiler = t
	return t, nil
}

// classify maps a transpiler error onto the compiler contract. Only a
// SassError describes the stylesheet; every other error means the
// process can no longer be trusted.
func (c *Compiler) classify(err error) error {
	if err == nil {
		return nil
	}

	var sassErr godartsass.SassError
	if errors.As(err, &sassErr) {
		return &driven.CompileError{Message: sassErr.Message}
	}

	c.reset()
	switch {
	case errors.Is(err, godartsass.ErrShutdown):
		return fmt.Errorf("dart sass exited: %w", err)
	case strings.Contains(strings.ToLower(err.Error()), "timeout"):
		return fmt.Errorf("dart sass after %s: %w", c.timeout, domain.ErrToolTimeout)
	default:
		return fmt.Errorf("dart sass: %w", err)
	}
}

// reset discards a transpiler that can no longer be trusted.
func (c *Compiler) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.transpiler != nil {
		_ = c.transpiler.Close()
		c.transpiler = nil
	}
}

func startDartSass(binary string, timeout time.Duration) (transpiler, error) {
	t, err := godartsass.Start(godartsass.Options{
		DartSassEmbeddedFilename: binary,
		Timeout:                  timeout,
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}
