package stylesheet

import (
	"context"
	"errors"
	"strings"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure Fallback implements the interface.
var _ driven.StylesheetCompiler = (*Fallback)(nil)

// Fallback tries compilers in order, moving on only when a compiler
// reports domain.ErrToolUnavailable.
type Fallback struct {
	compilers []driven.StylesheetCompiler
}

// NewFallback creates a compiler chain.
func NewFallback(compilers ...driven.StylesheetCompiler) *Fallback {
	return &Fallback{compilers: compilers}
}

// Name lists the chained compilers.
func (f *Fallback) Name() string {
	names := make([]string, len(f.compilers))
	for i, c := range f.compilers {
		names[i] = c.Name()
	}
	return strings.Join(names, "|")
}

// Compile runs the first available compiler.
func (f *Fallback) Compile(ctx context.Context, source string) error {
	err := error(domain.ErrToolUnavailable)
	for _, c := range f.compilers {
		err = c.Compile(ctx, source)
		if !errors.Is(err, domain.ErrToolUnavailable) {
			return err
		}
		logger.Debug("stylesheet: %s unavailable, trying next compiler", c.Name())
	}
	return err
}
