// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// and checkers implement them.
//
// # Interfaces
//
//   - Checker: Validates snippets of one format family
//   - StylesheetCompiler: Compiles CSS/SCSS (Dart Sass, esbuild)
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or checker package
package driven
