// Package checkers provides implementations of the Checker interface
// for the snippet formats snipcheck understands. Each checker validates
// one format family and reports problems as a domain.CheckResult.
//
// Checkers are registered with the CheckerRegistry at startup:
//
//   - python: py
//   - html: html, htm
//   - javascript: js
//   - stylesheet: css, scss
//   - vue: vue
//
// The balance and segment packages are the shared primitives used by the
// single-file component checker.
package checkers
