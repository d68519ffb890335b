package driven

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// Checker validates snippets of one format family.
// Each checker handles specific extensions (e.g., "py", "vue").
type Checker interface {
	// Name identifies the checker in logs and listings.
	Name() string

	// Extensions returns the file extensions this checker handles, without the dot.
	Extensions() []string

	// Check validates content. Syntax problems are reported through the
	// result; implementations must not panic or return partial results.
	Check(ctx context.Context, content string) domain.CheckResult
}

// StylesheetCompiler compiles stylesheet source.
// Implementations may run an external process.
type StylesheetCompiler interface {
	// Name identifies the compiler in logs.
	Name() string

	// Compile returns nil if source compiles. A *CompileError means the
	// source is invalid; any other error is a tool failure. Implementations
	// return an error wrapping domain.ErrToolUnavailable when the compiler
	// cannot be started.
	Compile(ctx context.Context, source string) error
}

// CompileError is returned by a StylesheetCompiler when the source is rejected.
type CompileError struct {
	Message string
}

// Error implements error.
func (e *CompileError) Error() string {
	return e.Message
}
