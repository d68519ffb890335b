package libsass

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bep/golibsass/libsass"
	"github.com/bep/golibsass/libsass/libsasserrors"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// Ensure Compiler implements the interface.
var _ driven.StylesheetCompiler = (*Compiler)(nil)

// Compiler compiles SCSS with LibSass.
type Compiler struct {
	newTranspiler func(libsass.Options) (libsass.Transpiler, error)

	once       sync.Once
	transpiler libsass.Transpiler
	initErr    error
}

// New creates a LibSass compiler. The transpiler is created on first use.
func New() *Compiler {
	return &Compiler{newTranspiler: libsass.New}
}

// Name returns the compiler name.
func (c *Compiler) Name() string {
	return "libsass"
}

// Compile compiles source as SCSS and discards the output.
// LibSass cannot be interrupted, so ctx is only checked before compiling.
func (c *Compiler) Compile(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	// LibSass rejects an empty data context.
	if strings.TrimSpace(source) == "" {
		return nil
	}

	t, err := c.ensureTranspiler()
	if err != nil {
		return err
	}

	if _, err := t.Execute(source); err != nil {
		return classify(err)
	}
	return nil
}

func (c *Compiler) ensureTranspiler() (libsass.Transpiler, error) {
	c.once.Do(func() {
		t, err := c.newTranspiler(libsass.Options{OutputStyle: libsass.CompressedStyle})
		if err != nil {
			c.initErr = fmt.Errorf("creating libsass transpiler: %v: %w", err, domain.ErrToolUnavailable)
			return
		}
		c.transpiler = t
	})
	return c.transpiler, c.initErr
}

// classify turns a LibSass status error into a CompileError. Anything
// else is returned as a tool failure.
func classify(err error) error {
	var sassErr libsasserrors.Error
	if !errors.As(err, &sassErr) {
		return fmt.Errorf("libsass: %w", err)
	}
	return &driven.CompileError{Message: formatMessage(sassErr)}
}

func formatMessage(e libsasserrors.Error) string {
	if e.Line > 0 {
		return fmt.Sprintf("%s (line %d, column %d)", e.Message, e.Line, e.Column)
	}
	return e.Message
}
