// Package stylesheet provides a Checker for CSS and SCSS. Snippets are
// compiled by a real stylesheet compiler after their @import statements are
// removed, since the compiler has no access to the imported files.
package stylesheet

import (
	"context"
	"errors"
	"regexp"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// importStatement matches quoted @import statements. A malformed import
// that happens to match is removed too.
var importStatement = regexp.MustCompile(`@import\s+['"].*?['"];`)

// StripImports removes every @import "..."; statement from src.
func StripImports(src string) string {
	return importStatement.ReplaceAllString(src, "")
}

// Checker validates stylesheets with a StylesheetCompiler.
type Checker struct {
	compiler   driven.StylesheetCompiler
	extensions []string
}

// New creates a stylesheet checker for the given extensions.
// With no extensions it handles css and scss.
func New(compiler driven.StylesheetCompiler, extensions ...string) *Checker {
	if len(extensions) == 0 {
		extensions = []string{"css", "scss"}
	}
	return &Checker{compiler: compiler, extensions: extensions}
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return "stylesheet"
}

// Extensions returns the extensions this checker handles.
func (c *Checker) Extensions() []string {
	return c.extensions
}

// Check compiles content with imports stripped.
func (c *Checker) Check(ctx context.Context, content string) domain.CheckResult {
	err := c.compiler.Compile(ctx, StripImports(content))
	if err == nil {
		return domain.OK()
	}

	var compileErr *driven.CompileError
	if errors.As(err, &compileErr) {
		return domain.GrammarError("CSS/SCSS syntax error: "+compileErr.Message, nil)
	}

	logger.Debug("stylesheet: %s failed: %v", c.compiler.Name(), err)
	return domain.ToolError("CSS/SCSS compiler error: " + err.Error())
}
