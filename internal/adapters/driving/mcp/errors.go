// Package mcp provides an MCP (Model Context Protocol) server adapter for snipcheck.
// It lets code generation agents validate snippets before writing them to disk.
package mcp

import "errors"

// ErrMissingSyntaxService is returned when the syntax service is not provided.
var ErrMissingSyntaxService = errors.New("mcp: syntax service is required")
