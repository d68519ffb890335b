package driven

import (
	"context"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// CheckerRegistry selects the checker for a snippet.
// It maps extensions to checkers and passes unknown extensions through.
type CheckerRegistry interface {
	// Check validates a snippet using the checker registered for its extension.
	// Snippets with no registered checker are valid.
	Check(ctx context.Context, unit domain.SourceUnit) domain.CheckResult

	// Register adds a checker for each of its extensions.
	// A later registration for the same extension replaces the earlier one.
	Register(checker Checker)

	// Lookup returns the checker for an extension.
	Lookup(ext string) (Checker, bool)

	// SupportedExtensions returns all extensions with a checker, sorted.
	SupportedExtensions() []string
}
