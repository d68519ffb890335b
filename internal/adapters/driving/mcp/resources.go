package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// URIScheme is the custom URI scheme for snipcheck resources.
	uriScheme = "snipcheck://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "extensions",
		Name:        "extensions",
		Description: "File extensions that have a syntax checker",
		MIMEType:    "application/json",
	}, s.handleExtensionsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Resolved snipcheck settings, including pipeline flags",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)

	// Template for per-extension support lookups.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "extensions/{extension}",
		Name:        "extension-support",
		Description: "Whether snippets with a given extension are checked",
		MIMEType:    "application/json",
	}, s.handleExtensionResource)
}

// handleExtensionsResource lists the supported extensions.
func (s *Server) handleExtensionsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Syntax.SupportedExtensions())
}

// handleSettingsResource returns the resolved settings.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Settings == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	settings, err := s.ports.Settings.Get()
	if err != nil {
		return nil, fmt.Errorf("getting settings: %w", err)
	}
	return jsonResource(req.Params.URI, settings)
}

// handleExtensionResource reports whether one extension is checked.
func (s *Server) handleExtensionResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	ext := extractExtension(req.Params.URI)
	if ext == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	type extensionInfo struct {
		Extension string `json:"extension"`
		Checked   bool   `json:"checked"`
	}
	return jsonResource(req.Params.URI, extensionInfo{
		Extension: ext,
		Checked:   s.ports.Syntax.Supports("snippet." + ext),
	})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractExtension extracts the extension from a URI like snipcheck://extensions/{extension}.
// A leading dot is tolerated.
func extractExtension(uri string) string {
	const prefix = uriScheme + "extensions/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	ext := strings.TrimPrefix(strings.TrimPrefix(uri, prefix), ".")
	if strings.Contains(ext, "/") {
		return ""
	}
	return ext
}
