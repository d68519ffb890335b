// Package javascript provides a Checker for browser JavaScript. Snippets
// are parsed as complete ES modules by esbuild, so strict-mode rules and
// import/export syntax apply.
package javascript

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// Ensure Checker implements the interface.
var _ driven.Checker = (*Checker)(nil)

// Checker validates JavaScript snippets.
type Checker struct{}

// New creates a new JavaScript checker.
func New() *Checker {
	return &Checker{}
}

// Name returns the checker name.
func (c *Checker) Name() string {
	return "javascript"
}

// Extensions returns the extensions this checker handles.
func (c *Checker) Extensions() []string {
	return []string{"js"}
}

// Check parses content as an ES module. The reported line is the parser's
// 1-based line, unadjusted.
func (c *Checker) Check(_ context.Context, content string) domain.CheckResult {
	result := api.Transform(content, api.TransformOptions{
		Loader:     api.LoaderJS,
		Format:     api.FormatESModule,
		Sourcefile: "snippet.js",
		LogLevel:   api.LogLevelSilent,
	})
	if len(result.Errors) == 0 {
		return domain.OK()
	}

	msg := result.Errors[0]
	if msg.Location == nil {
		return domain.GrammarError("JavaScript syntax error: "+msg.Text, nil)
	}
	line := msg.Location.Line
	text := fmt.Sprintf("JavaScript syntax error: Line %d: %s", line, msg.Text)
	return domain.GrammarError(text, domain.LineAt(line))
}
