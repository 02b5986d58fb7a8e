package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// handleGetKPIs computes the KPI snapshot for one scenario.
func (s *Server) handleGetKPIs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, err := request.RequireString("scenario")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: scenario"), nil
	}

	sc, err := scenario.Lookup(key)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("unknown scenario %q", key)), nil
	}

	metrics, err := s.reports.Metrics(ctx, sc.Table)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("computing kpis failed: %v", err)), nil
	}

	last := "never"
	if metrics.LastReportTime != nil {
		last = metrics.LastReportTime.UTC().Format(time.RFC3339)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"%s (%s)\nTotal reports: %d\nReports today: %d\nLast report: %s",
		sc.Label, sc.Key, metrics.TotalReports, metrics.ReportsToday, last,
	)), nil
}

// handleListNotifications lists recent notifications, newest first.
func (s *Server) handleListNotifications(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", 10)
	if limit <= 0 {
		limit = 10
	}

	filter := notifications.Filter{}
	if key := request.GetString("scenario", ""); key != "" {
		sc, err := scenario.Lookup(key)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("unknown scenario %q", key)), nil
		}
		filter.Scenario = sc.Key
	}

	items, err := s.notifs.List(ctx, filter, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("listing notifications failed: %v", err)), nil
	}

	if len(items) == 0 {
		return mcp.NewToolResultText("No notifications recorded."), nil
	}

	var b strings.Builder
	for _, n := range items {
		fmt.Fprintf(&b, "- [%s] %s: %s\n",
			n.CreatedAt.UTC().Format(time.RFC3339), n.Scenario, n.Message)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// handleDetectScenario runs the keyword detector over an utterance.
func (s *Server) handleDetectScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: text"), nil
	}

	key, ok := scenario.Detect(text)
	if !ok {
		return mcp.NewToolResultText("No scenario detected."), nil
	}

	sc, _ := scenario.Lookup(string(key))
	return mcp.NewToolResultText(fmt.Sprintf("Detected scenario: %s (%s)", sc.Key, sc.Label)), nil
}
