package driving

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// SyntaxService validates generated snippets before they are written.
type SyntaxService interface {
	// Check validates a single snippet, dispatching on its filename extension.
	// Unknown extensions are accepted unconditionally.
	Check(ctx context.Context, unit domain.SourceUnit) domain.CheckResult

	// CheckPaths validates every file with a registered extension under the
	// given files and directories.
	CheckPaths(ctx context.Context, paths []string) (*domain.Report, error)

	// Supports returns true if a checker is registered for the filename's extension.
	Supports(filename string) bool

	// SupportedExtensions returns the registered extensions in sorted order.
	SupportedExtensions() []string
}
