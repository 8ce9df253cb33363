package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gradsuite/cvdash/internal/logger"
)

// Server identity reported to MCP clients.
const (
	Name    = "cvdash"
	Version = "0.1.0"
)

// instructions is sent to clients on initialise.
const instructions = `cvdash manages a collection of CVs (résumés).
Use search_cvs to find CVs by title or owner name, get_cv to read one and
create_cv to add one. delete_cv schedules a removal: the CV is flagged as
removing and disappears after a short grace interval.`

// shutdownTimeout bounds how long RunHTTP waits for in-flight requests.
const shutdownTimeout = 5 * time.Second

// Server exposes the CV collection over MCP.
type Server struct {
	ports  *Ports
	server *mcp.Server
}

// NewServer creates a server with the CV tools and resources registered.
// delete_cv is only offered when ports carries a Deleter.
func NewServer(ports *Ports) (*Server, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("validating ports: %w", err)
	}

	s := &Server{
		ports: ports,
		server: mcp.NewServer(
			&mcp.Implementation{Name: Name, Version: Version},
			&mcp.ServerOptions{Instructions: instructions},
		),
	}
	s.registerTools()
	s.registerResources()

	logger.Debug("mcp: server ready (delete enabled: %t)", ports.Deleter != nil)
	return s, nil
}

// Run serves CV tools over stdio until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	logger.Debug("mcp: serving cvs over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the streamable HTTP handler for the CV server.
func (s *Server) Handler() http.Handler {
	return mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.server
	}, nil)
}

// RunHTTP serves CV tools over streamable HTTP on addr. It returns nil
// once ctx is cancelled and the listener has shut down.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("mcp: shutting down http server: %v", err)
		}
	}()

	logger.Debug("mcp: serving cvs on %s", addr)
	if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mcp http server: %w", err)
	}
	return nil
}
