package html

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/smacker/go-tree-sitter/html"

	"github.com/custodia-labs/snipcheck/internal/checkers/treesitter"
	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// Checker validates HTML documents.
type Checker struct {
	ignore domain.HTMLSettings
}

// Option configures a Checker.
type Option func(*Checker)

// WithIgnoredCategories drops diagnostics of the given categories.
func WithIgnoredCategories(categories ...domain.DiagnosticCategory) Option {
	return func(c *Checker) {
		c.ignore.IgnoreCategories = append(c.ignore.IgnoreCategories, categories...)
	}
}

// New creates a new HTML checker. By default every diagnostic counts.
func New(opts ...Option) *Checker {
	c := &Checker{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return "html"
}

// Extensions returns the extensions this checker handles.
func (c *Checker) Extensions() []string {
	return []string{"html", "htm"}
}

// Check reports the first significant diagnostic of the document.
func (c *Checker) Check(ctx context.Context, content string) domain.CheckResult {
	diags, err := Diagnose(ctx, content)
	if err != nil {
		return domain.ToolError(fmt.Sprintf("Html error occurred: %v", err))
	}

	for _, d := range diags {
		if c.ignore.Ignores(d.Category) {
			logger.Debug("html: ignoring %s diagnostic on line %d: %s", d.Category, d.Line, d.Message)
			continue
		}
		return domain.GrammarError(fmt.Sprintf("HTML line %d: %s", d.Line, d.Message), domain.LineAt(d.Line))
	}
	return domain.OK()
}

// Diagnose parses content and returns the full diagnostic log.
// An error means the document could not be parsed at all.
func Diagnose(ctx context.Context, content string) ([]Diagnostic, error) {
	if !utf8.ValidString(content) {
		return nil, fmt.Errorf("input is not valid UTF-8 at byte %d", invalidOffset(content))
	}

	tree, err := treesitter.Parse(ctx, html.GetLanguage(), []byte(content))
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	return collect(tree), nil
}

// invalidOffset returns the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(s)
}
