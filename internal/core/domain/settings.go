package domain

import "runtime"

// DiagnosticCategory groups markup diagnostics so noisy classes can be ignored.
type DiagnosticCategory string

// Markup diagnostic categories.
const (
	// CategorySyntax covers unparseable markup and tokens the parser had to invent.
	CategorySyntax DiagnosticCategory = "syntax"

	// CategoryTag covers end tags that do not match an open element.
	CategoryTag DiagnosticCategory = "tag"

	// CategoryAttribute covers malformed attribute names and values.
	CategoryAttribute DiagnosticCategory = "attribute"
)

// IsValid returns true if the category is recognised.
func (c DiagnosticCategory) IsValid() bool {
	switch c {
	case CategorySyntax, CategoryTag, CategoryAttribute:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (c DiagnosticCategory) String() string {
	return string(c)
}

// Default values.
const (
	DefaultSassBinary         = "sass"
	DefaultSassTimeoutSeconds = 10
)

// DefaultBalancedTags are the template tags counted in single-file components.
// The set is a cheap heuristic, not a parser.
var DefaultBalancedTags = []string{"div", "p", "span"}

// SassSettings configures the Dart Sass compiler.
type SassSettings struct {
	// Binary is the dart-sass executable, resolved through PATH when not absolute.
	Binary string `json:"binary"`

	// TimeoutSeconds bounds each compilation.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// HTMLSettings configures the markup checker.
type HTMLSettings struct {
	// IgnoreCategories lists diagnostic categories that do not fail a check.
	// Empty by default.
	IgnoreCategories []DiagnosticCategory `json:"ignore_categories"`
}

// CompositeSettings configures the single-file component checker.
type CompositeSettings struct {
	// BalancedTags are the template tag names whose open/close counts must agree.
	BalancedTags []string `json:"balanced_tags"`
}

// CheckSettings configures batch checking.
type CheckSettings struct {
	// Concurrency is the number of files checked in parallel.
	Concurrency int `json:"concurrency"`
}

// PipelineSettings are handed to the code generation pipeline at startup.
type PipelineSettings struct {
	// FrontendFeedback enables the screenshot feedback loop in the pipeline.
	FrontendFeedback bool `json:"frontend_feedback"`
}

// Settings holds all snipcheck configuration.
type Settings struct {
	Sass      SassSettings      `json:"sass"`
	HTML      HTMLSettings      `json:"html"`
	Composite CompositeSettings `json:"composite"`
	Check     CheckSettings     `json:"check"`
	Pipeline  PipelineSettings  `json:"pipeline"`
}

// DefaultSettings returns settings with sensible defaults.
func DefaultSettings() *Settings {
	tags := make([]string, len(DefaultBalancedTags))
	copy(tags, DefaultBalancedTags)

	return &Settings{
		Sass: SassSettings{
			Binary:         DefaultSassBinary,
			TimeoutSeconds: DefaultSassTimeoutSeconds,
		},
		Composite: CompositeSettings{
			BalancedTags: tags,
		},
		Check: CheckSettings{
			Concurrency: runtime.NumCPU(),
		},
	}
}

// Ignores returns true if diagnostics of category c should not fail a check.
func (s HTMLSettings) Ignores(c DiagnosticCategory) bool {
	for _, ignored := range s.IgnoreCategories {
		if ignored == c {
			return true
		}
	}
	return false
}
