package mcp

import "github.com/mark3labs/mcp-go/mcp"

// getKPIsTool defines the get_kpis MCP tool.
var getKPIsTool = mcp.NewTool("get_kpis",
	mcp.WithDescription("Get the current KPI snapshot for a scenario: total reports, reports today, and the most recent report time."),
	mcp.WithString("scenario",
		mcp.Required(),
		mcp.Description("Scenario key"),
		mcp.Enum("passport-lost", "long-queue", "tempered-id"),
	),
)

// listNotificationsTool defines the list_notifications MCP tool.
var listNotificationsTool = mcp.NewTool("list_notifications",
	mcp.WithDescription("List the most recent alert notifications, newest first, optionally filtered to one scenario."),
	mcp.WithString("scenario",
		mcp.Description("Scenario key to filter by"),
		mcp.Enum("passport-lost", "long-queue", "tempered-id"),
	),
	mcp.WithNumber("limit",
		mcp.Description("Maximum number of notifications to return (default 10)"),
	),
)

// detectScenarioTool defines the detect_scenario MCP tool.
var detectScenarioTool = mcp.NewTool("detect_scenario",
	mcp.WithDescription("Classify a free-text utterance into one of the registered alert scenarios, or none."),
	mcp.WithString("text",
		mcp.Required(),
		mcp.Description("Free-text utterance to classify"),
	),
)
