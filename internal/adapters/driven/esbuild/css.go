package esbuild

import (
	"context"
	"fmt"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/custodia-labs/snipcheck/internal/core/ports/driven"
)

// Ensure CSSCompiler implements the interface.
var _ driven.StylesheetCompiler = (*CSSCompiler)(nil)

// syntaxErrorID is the esbuild message ID for recoverable CSS syntax problems.
const syntaxErrorID = "css-syntax-error"

// CSSCompiler parses plain CSS with esbuild.
type CSSCompiler struct{}

// NewCSSCompiler creates an esbuild CSS compiler. esbuild recovers from most
// CSS syntax problems and only warns about them, so those warnings are
// promoted to errors.
func NewCSSCompiler() *CSSCompiler {
	return &CSSCompiler{}
}

// Name returns the compiler name.
func (c *CSSCompiler) Name() string {
	return "esbuild-css"
}

// Compile parses source as CSS.
func (c *CSSCompiler) Compile(ctx context.Context, source string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result := api.Transform(source, api.TransformOptions{
		Loader:      api.LoaderCSS,
		Sourcefile:  "snippet.css",
		LogLevel:    api.LogLevelSilent,
		LogOverride: map[string]api.LogLevel{syntaxErrorID: api.LogLevelError},
	})
	if len(result.Errors) == 0 {
		return nil
	}
	return &driven.CompileError{Message: formatMessage(result.Errors[0])}
}

// formatMessage renders an esbuild message with its position.
func formatMessage(msg api.Message) string {
	if msg.Location == nil {
		return msg.Text
	}
	return fmt.Sprintf("%s (line %d, column %d)", msg.Text, msg.Location.Line, msg.Location.Column+1)
}
