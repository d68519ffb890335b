// Package services implements the driving port interfaces.
// Services contain the core logic and orchestrate calls to driven
// ports (checkers, compilers, configuration).
//
// Services never import a checker or adapter package directly; the
// concrete checkers are injected at startup.
package services
