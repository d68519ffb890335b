// Package domain defines the core types for snipcheck.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SourceUnit: A snippet and the filename it will be written to
//   - CheckResult: The outcome of validating one snippet
//   - SegmentExtraction: The regions of a single-file component
//   - Report: The outcome of validating a batch of files
//   - Settings: Tunables for the individual checkers
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
