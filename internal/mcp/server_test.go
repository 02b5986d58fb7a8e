package mcp

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alertdeskhq/alertdesk/internal/db"
	"github.com/alertdeskhq/alertdesk/internal/notifications"
	"github.com/alertdeskhq/alertdesk/internal/report"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

func setupTestServer(t *testing.T) (*Server, *report.Store, *notifications.Store) {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	reports := report.NewStore(database)
	notifs := notifications.NewStore(database)
	return NewServer(reports, notifs), reports, notifs
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content = %T, want text", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"get_kpis", getKPIsTool, "get_kpis"},
		{"list_notifications", listNotificationsTool, "list_notifications"},
		{"detect_scenario", detectScenarioTool, "detect_scenario"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv, reports, notifs := setupTestServer(t)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.reports != reports || srv.notifs != notifs {
		t.Error("stores not set correctly")
	}
}

func TestHandleGetKPIs(t *testing.T) {
	srv, reports, _ := setupTestServer(t)
	ctx := context.Background()

	sc, err := scenario.Lookup("passport-lost")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	now := time.Now()
	for _, ts := range []time.Time{now, now.Add(-48 * time.Hour)} {
		if _, err := reports.Insert(ctx, sc.Table, ts, "uploads/a.jpg"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	t.Run("known scenario", func(t *testing.T) {
		result, err := srv.handleGetKPIs(ctx, callRequest(map[string]any{"scenario": "passport-lost"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		for _, want := range []string{"Lost Passport", "Total reports: 2", "Reports today: 1", "Last report:"} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("empty scenario", func(t *testing.T) {
		result, err := srv.handleGetKPIs(ctx, callRequest(map[string]any{"scenario": "long-queue"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Last report: never") {
			t.Errorf("result missing never marker:\n%s", text)
		}
	})

	t.Run("unknown scenario", func(t *testing.T) {
		result, err := srv.handleGetKPIs(ctx, callRequest(map[string]any{"scenario": "alien-invasion"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown scenario")
		}
	})

	t.Run("missing scenario", func(t *testing.T) {
		result, err := srv.handleGetKPIs(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing scenario")
		}
	})
}

func TestHandleListNotifications(t *testing.T) {
	srv, _, notifs := setupTestServer(t)
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		result, err := srv.handleListNotifications(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := resultText(t, result); text != "No notifications recorded." {
			t.Errorf("text = %q", text)
		}
	})

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		if _, err := notifs.Insert(ctx, ts, scenario.LongQueue, "queue notice"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := notifs.Insert(ctx, base.Add(time.Hour), scenario.TemperedID, "id notice"); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	t.Run("all scenarios", func(t *testing.T) {
		result, err := srv.handleListNotifications(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if got := strings.Count(text, "- ["); got != 4 {
			t.Errorf("listed %d notifications, want 4:\n%s", got, text)
		}
		// Newest first.
		if !strings.HasPrefix(text, "- ["+base.Add(time.Hour).Format(time.RFC3339)) {
			t.Errorf("first line is not the newest notification:\n%s", text)
		}
	})

	t.Run("scenario filter and limit", func(t *testing.T) {
		result, err := srv.handleListNotifications(ctx, callRequest(map[string]any{
			"scenario": "long-queue",
			"limit":    2,
		}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		if got := strings.Count(text, "- ["); got != 2 {
			t.Errorf("listed %d notifications, want 2:\n%s", got, text)
		}
		if strings.Contains(text, "tempered-id") {
			t.Errorf("filtered list leaked another scenario:\n%s", text)
		}
	})

	t.Run("unknown scenario", func(t *testing.T) {
		result, err := srv.handleListNotifications(ctx, callRequest(map[string]any{"scenario": "alien-invasion"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for unknown scenario")
		}
	})
}

func TestHandleDetectScenario(t *testing.T) {
	srv, _, _ := setupTestServer(t)
	ctx := context.Background()

	t.Run("detected", func(t *testing.T) {
		result, err := srv.handleDetectScenario(ctx, callRequest(map[string]any{"text": "my passport went missing"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := resultText(t, result); !strings.Contains(text, "passport-lost") {
			t.Errorf("text = %q, want passport-lost", text)
		}
	})

	t.Run("no match", func(t *testing.T) {
		result, err := srv.handleDetectScenario(ctx, callRequest(map[string]any{"text": "lovely weather out there"}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := resultText(t, result); text != "No scenario detected." {
			t.Errorf("text = %q", text)
		}
	})

	t.Run("missing text", func(t *testing.T) {
		result, err := srv.handleDetectScenario(ctx, callRequest(map[string]any{}))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing text")
		}
	})
}
