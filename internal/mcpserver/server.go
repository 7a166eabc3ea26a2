// Package mcpserver exposes the planning workflow over MCP so external
// agents can drive plan generation, approval, and file writing through
// native protocol tools instead of shelling out to the CLI.
package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mark3labs/planwright/internal/agent"
	"github.com/mark3labs/planwright/internal/logger"
)

// Server manages an embedded MCP HTTP server wrapping a single planning
// agent. The agent itself carries no synchronization; the server serializes
// tool calls with its own mutex.
type Server struct {
	agent     *agent.Agent
	outputDir string

	mcpServer *server.MCPServer
	stdServer *http.Server
	port      int
	mu        sync.Mutex
}

// New creates a new MCP server around the given agent. outputDir is the
// default target for implement-plan and write-files when the caller passes
// none. The server is not started until Start() is called.
func New(a *agent.Agent, outputDir string) *Server {
	return &Server{
		agent:     a,
		outputDir: outputDir,
	}
}

// Start starts the MCP HTTP server. port 0 picks a random available port.
// Returns the bound port or an error if startup fails.
func (s *Server) Start(ctx context.Context, port int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer != nil {
		return 0, fmt.Errorf("server already started")
	}

	s.mcpServer = server.NewMCPServer(
		"planwright",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	if err := s.registerTools(); err != nil {
		return 0, fmt.Errorf("failed to register tools: %w", err)
	}

	listener, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	if err != nil {
		return 0, fmt.Errorf("failed to listen: %w", err)
	}
	s.port = listener.Addr().(*net.TCPAddr).Port

	mux := http.NewServeMux()
	mcpHandler := server.NewStreamableHTTPServer(
		s.mcpServer,
		server.WithStateLess(true),
	)
	mux.Handle("/mcp", mcpHandler)

	s.stdServer = &http.Server{Handler: mux}

	logger.Debug("starting MCP server on port %d", s.port)
	go func() {
		if err := s.stdServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.Error("MCP server error: %v", err)
		}
	}()

	return s.port, nil
}

// Stop shuts the MCP HTTP server down and cleans up resources.
func (s *Server) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stdServer == nil {
		return nil // Already stopped
	}

	logger.Debug("stopping MCP server")
	if err := s.stdServer.Shutdown(context.Background()); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	s.stdServer = nil
	s.mcpServer = nil
	return nil
}

// URL returns the HTTP URL for the MCP server endpoint.
func (s *Server) URL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("http://localhost:%d/mcp", s.port)
}
