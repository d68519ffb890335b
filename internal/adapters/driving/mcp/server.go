package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/snipcheck/internal/logger"
)

// Version is the MCP server version.
const Version = "0.1.0"

// shutdownTimeout bounds how long in-flight HTTP requests may finish.
const shutdownTimeout = 5 * time.Second

// Server is the MCP server for snipcheck.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a new MCP server with the given ports.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	impl := &mcp.Implementation{
		Name:    "snipcheck",
		Title:   "Snippet syntax checker",
		Version: Version,
	}
	opts := &mcp.ServerOptions{
		Instructions: instructions(ports),
	}

	s := &Server{
		ports:  ports,
		server: mcp.NewServer(impl, opts),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// instructions tells clients when to call the tools. The supported
// extensions are listed so an agent can skip snippets nothing checks.
func instructions(ports *Ports) string {
	var b strings.Builder
	b.WriteString("snipcheck validates the syntax of generated code before it is written to disk.\n")
	b.WriteString("Call check_syntax with the target filename and the snippet content; ")
	b.WriteString("call check_paths to validate files and directories already on disk.\n")

	if exts := ports.Syntax.SupportedExtensions(); len(exts) > 0 {
		fmt.Fprintf(&b, "Checked extensions: %s. Other files are always reported valid.\n", strings.Join(exts, ", "))
	}

	b.WriteString("A result of kind grammar or structural means the snippet must be regenerated; ")
	b.WriteString("kind tool means the checker itself failed.\n")
	b.WriteString("Read " + uriScheme + "extensions for the checker registry")
	if ports.Settings != nil {
		b.WriteString(" and " + uriScheme + "settings for the active configuration")
	}
	b.WriteString(".")
	return b.String()
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// Every check is independent, so the handler keeps no session state.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, &mcp.StreamableHTTPOptions{Stateless: true})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutting down %s: %v", addr, err)
		}
	}()

	logger.Debug("mcp: listening on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
