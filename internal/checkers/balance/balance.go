// Package balance counts matched open/close token pairs.
//
// It is a cheap structural heuristic, not a parser: it has no notion of
// strings, comments, escapes or nesting limits. A brace inside a string
// literal counts like any other brace.
package balance

import (
	"strings"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// Pair is an open/close token pair.
type Pair struct {
	Open  string
	Close string

	// Tag requires an open token to be followed by a tag boundary so that
	// "<div" does not match the start of "<divider>".
	Tag bool
}

// Braces is the curly brace pair used for script bodies.
var Braces = Pair{Open: "{", Close: "}"}

// TagPair returns the pair for a markup tag name, e.g. "<div" and "</div>".
func TagPair(name string) Pair {
	return Pair{Open: "<" + name, Close: "</" + name + ">", Tag: true}
}

// Scan checks that every close token in content has a preceding open token
// and that none are left open. It fails as soon as a close token appears
// with nothing open.
func Scan(content string, p Pair) domain.CheckResult {
	return ScanTokens(content, p.Open, p.Close, p.Tag)
}

// ScanTokens is Scan with the pair spelled out.
func ScanTokens(content, open, closing string, tagMode bool) domain.CheckResult {
	if open == "" || closing == "" {
		return domain.ToolError("balance: open and close tokens must not be empty")
	}

	depth := 0
	for i := 0; i < len(content); {
		rest := content[i:]
		switch {
		case strings.HasPrefix(rest, open) && (!tagMode || isTagBoundary(content, i+len(open))):
			depth++
			i += len(open)
		case strings.HasPrefix(rest, closing):
			depth--
			if depth < 0 {
				return domain.StructuralMismatch(open, closing)
			}
			i += len(closing)
		default:
			i++
		}
	}

	if depth != 0 {
		return domain.StructuralMismatch(open, closing)
	}
	return domain.OK()
}

// isTagBoundary reports whether the byte at i ends a tag name.
// End of input is not a boundary: "<div" at EOF is an unfinished tag.
func isTagBoundary(content string, i int) bool {
	if i >= len(content) {
		return false
	}
	switch content[i] {
	case ' ', '>', '\n', '\r', '\t':
		return true
	default:
		return false
	}
}
