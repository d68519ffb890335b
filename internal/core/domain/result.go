package domain

import "fmt"

// validSyntax is the rendering of a successful check.
const validSyntax = "Valid syntax"

// ErrorKind classifies why a snippet was rejected.
type ErrorKind string

// Error kinds.
const (
	// KindGrammar means a delegate parser or compiler rejected the input.
	KindGrammar ErrorKind = "grammar"

	// KindStructural means open and close tokens did not balance.
	KindStructural ErrorKind = "structural"

	// KindExtraction means a required region of a composite document was missing.
	KindExtraction ErrorKind = "extraction"

	// KindTool means the underlying parser or compiler failed for reasons
	// unrelated to the input.
	KindTool ErrorKind = "tool"
)

// String returns the string representation.
func (k ErrorKind) String() string {
	return string(k)
}

// CheckResult is the outcome of validating a snippet.
// Either Valid is true and every other field is zero, or Valid is false
// and Kind and Message describe the failure.
type CheckResult struct {
	Valid   bool      `json:"valid"`
	Kind    ErrorKind `json:"kind,omitempty"`
	Message string    `json:"message,omitempty"`
	// Line is set only when the failing strategy can locate the problem.
	Line *int `json:"line,omitempty"`
}

// OK returns a successful result.
func OK() CheckResult {
	return CheckResult{Valid: true}
}

// GrammarError reports that a delegate parser rejected the input.
// Pass a nil line when the parser did not provide one.
func GrammarError(message string, line *int) CheckResult {
	return CheckResult{Kind: KindGrammar, Message: message, Line: line}
}

// StructuralMismatch reports that open and close tokens disagree.
func StructuralMismatch(open, closing string) CheckResult {
	return CheckResult{
		Kind:    KindStructural,
		Message: fmt.Sprintf("Invalid syntax, mismatch of %s and %s", open, closing),
	}
}

// ExtractionFailure reports that a required segment could not be located.
func ExtractionFailure(segment Segment) CheckResult {
	return CheckResult{
		Kind:    KindExtraction,
		Message: fmt.Sprintf("%s part has no valid open/closing tags.", segment.Title()),
	}
}

// ToolError reports an internal fault of a parser or compiler.
func ToolError(message string) CheckResult {
	return CheckResult{Kind: KindTool, Message: message}
}

// LineAt returns a pointer to n, for use with GrammarError.
func LineAt(n int) *int {
	return &n
}

// OK returns true if the snippet was accepted.
func (r CheckResult) OK() bool {
	return r.Valid
}

// String renders the result the way the code generation pipeline reads it.
func (r CheckResult) String() string {
	if r.Valid {
		return validSyntax
	}
	return r.Message
}
