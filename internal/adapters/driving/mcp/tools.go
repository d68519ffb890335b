package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/snipcheck/internal/core/domain"
)

// CheckSyntaxInput is the input schema for the check_syntax tool.
type CheckSyntaxInput struct {
	Content  string `json:"content" jsonschema:"the generated source text to validate"`
	Filename string `json:"filename" jsonschema:"the target filename; its extension selects the checker"`
}

// CheckSyntaxOutput is the output schema for the check_syntax tool.
type CheckSyntaxOutput struct {
	Valid   bool   `json:"valid"`
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
}

// CheckPathsInput is the input schema for the check_paths tool.
type CheckPathsInput struct {
	Paths []string `json:"paths" jsonschema:"files or directories to validate"`
}

// CheckPathsOutput is the output schema for the check_paths tool.
type CheckPathsOutput struct {
	ReportID string            `json:"report_id"`
	Checked  int               `json:"checked"`
	Skipped  int               `json:"skipped"`
	Invalid  int               `json:"invalid"`
	Failures []FileFailureItem `json:"failures,omitempty"`
}

// FileFailureItem describes one rejected file.
type FileFailureItem struct {
	Path    string `json:"path"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Line    *int   `json:"line,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_syntax",
		Description: "Validate a generated snippet for the language implied by its filename",
	}, s.handleCheckSyntax)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_paths",
		Description: "Validate every supported file under the given files and directories",
	}, s.handleCheckPaths)
}

// handleCheckSyntax handles the check_syntax tool invocation.
func (s *Server) handleCheckSyntax(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckSyntaxInput,
) (*mcp.CallToolResult, CheckSyntaxOutput, error) {
	if input.Filename == "" {
		return nil, CheckSyntaxOutput{}, errors.New("filename is required")
	}

	result := s.ports.Syntax.Check(ctx, domain.NewSourceUnit(input.Content, input.Filename))

	return nil, CheckSyntaxOutput{
		Valid:   result.OK(),
		Kind:    result.Kind.String(),
		Message: result.String(),
		Line:    result.Line,
	}, nil
}

// handleCheckPaths handles the check_paths tool invocation.
func (s *Server) handleCheckPaths(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckPathsInput,
) (*mcp.CallToolResult, CheckPathsOutput, error) {
	report, err := s.ports.Syntax.CheckPaths(ctx, input.Paths)
	if err != nil {
		return nil, CheckPathsOutput{}, err
	}

	output := CheckPathsOutput{
		ReportID: report.ID,
		Checked:  report.Checked(),
		Skipped:  report.Skipped,
		Invalid:  report.InvalidCount,
	}
	for _, fr := range report.Invalid() {
		output.Failures = append(output.Failures, FileFailureItem{
			Path:    fr.Path,
			Kind:    fr.Result.Kind.String(),
			Message: fr.Result.Message,
			Line:    fr.Result.Line,
		})
	}

	return nil, output, nil
}
