package mcp

import (
	"github.com/custodia-labs/snipcheck/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Syntax validates snippets and files.
	Syntax driving.SyntaxService

	// Settings exposes the resolved configuration. Optional.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Syntax == nil {
		return ErrMissingSyntaxService
	}
	return nil
}
