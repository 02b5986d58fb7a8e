// Package mcp exposes the alert history to AI agents over the Model
// Context Protocol, without going through the HTTP surface.
package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/report"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes alert query tools.
type Server struct {
	reports *report.Store
	notifs  *notifications.Store
	mcp     *server.MCPServer
}

// NewServer creates a new MCP server over the given stores.
func NewServer(reports *report.Store, notifs *notifications.Store) *Server {
	s := &Server{reports: reports, notifs: notifs}

	s.mcp = server.NewMCPServer(
		"alertdesk",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers.
func (s *Server) registerTools() {
	s.mcp.AddTool(getKPIsTool, s.handleGetKPIs)
	s.mcp.AddTool(listNotificationsTool, s.handleListNotifications)
	s.mcp.AddTool(detectScenarioTool, s.handleDetectScenario)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
