package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alertdeskhq/alertdesk/internal/db"
	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestInsertAndList(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		if _, err := store.Insert(ctx, ts, scenario.PassportLost, "passport received"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	items, err := store.List(ctx, Filter{}, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	// Newest first.
	for i := 1; i < len(items); i++ {
		if items[i].CreatedAt.After(items[i-1].CreatedAt) {
			t.Errorf("items out of order: %v before %v", items[i-1].CreatedAt, items[i].CreatedAt)
		}
	}
	if !items[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("first item = %v, want newest", items[0].CreatedAt)
	}
}

func TestListLimitAndScenarioFilter(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 5; i++ {
		if _, err := store.Insert(ctx, base.Add(time.Duration(i)*time.Second), scenario.LongQueue, "queue"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}
	if _, err := store.Insert(ctx, base.Add(time.Hour), scenario.TemperedID, "id"); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	items, err := store.List(ctx, Filter{}, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("limited len = %d, want 2", len(items))
	}

	items, err = store.List(ctx, Filter{Scenario: scenario.LongQueue}, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 5 {
		t.Errorf("filtered len = %d, want 5", len(items))
	}
	for _, n := range items {
		if n.Scenario != scenario.LongQueue {
			t.Errorf("filtered item scenario = %q", n.Scenario)
		}
	}
}

func TestListTimeRange(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	day1 := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 22, 10, 0, 0, 0, time.UTC)
	for _, ts := range []time.Time{day1, day2} {
		if _, err := store.Insert(ctx, ts, scenario.PassportLost, "m"); err != nil {
			t.Fatalf("Insert: %v", err)
		}
	}

	items, err := store.List(ctx, Filter{
		Since: time.Date(2026, 8, 21, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC),
	}, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || !items[0].CreatedAt.Equal(day2) {
		t.Errorf("ranged items = %+v, want only the 22nd", items)
	}
}

func TestCountInRange(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	ts := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	if _, err := store.Insert(ctx, ts, scenario.TemperedID, "m"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := store.Insert(ctx, ts.Add(-48*time.Hour), scenario.TemperedID, "m"); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	n, err := store.CountInRange(ctx, scenario.TemperedID, ts.Add(-time.Hour), ts)
	if err != nil {
		t.Fatalf("CountInRange: %v", err)
	}
	if n != 1 {
		t.Errorf("CountInRange = %d, want 1", n)
	}

	n, err = store.CountInRange(ctx, scenario.PassportLost, ts.Add(-time.Hour), ts)
	if err != nil {
		t.Fatalf("CountInRange: %v", err)
	}
	if n != 0 {
		t.Errorf("CountInRange other scenario = %d, want 0", n)
	}
}

func TestDeleteByScenario(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC()
	store.Insert(ctx, now, scenario.PassportLost, "a")
	store.Insert(ctx, now, scenario.PassportLost, "b")
	store.Insert(ctx, now, scenario.LongQueue, "c")

	deleted, err := store.DeleteByScenario(ctx, scenario.PassportLost)
	if err != nil {
		t.Fatalf("DeleteByScenario: %v", err)
	}
	if deleted != 2 {
		t.Errorf("deleted = %d, want 2", deleted)
	}

	items, err := store.List(ctx, Filter{}, 10)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Scenario != scenario.LongQueue {
		t.Errorf("surviving items = %+v", items)
	}
}

func TestListEndpoint(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	store.Insert(ctx, now, scenario.LongQueue, "queue notice")
	store.Insert(ctx, now.Add(time.Second), scenario.TemperedID, "id notice")

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/notifications?scenario=tempered-id", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Items []Notification `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(resp.Items))
	}
	if resp.Items[0].Scenario != scenario.TemperedID || resp.Items[0].Message != "id notice" {
		t.Errorf("item = %+v", resp.Items[0])
	}
}

func TestListEndpointRejectsBadDates(t *testing.T) {
	store := setupTestStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	for _, target := range []string{
		"/notifications?start=not-a-date",
		"/notifications?end=2026-13-45",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("%s: decoding: %v", target, err)
		}
		if resp["error"] == "" {
			t.Errorf("%s: body = %s, want an error message", target, rec.Body.String())
		}
	}
}

func TestListEndpointEmpty(t *testing.T) {
	store := setupTestStore(t)

	r := chi.NewRouter()
	RegisterRoutes(r, store)

	req := httptest.NewRequest(http.MethodGet, "/notifications", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Items []Notification `json:"items"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding: %v", err)
	}
	if resp.Items == nil || len(resp.Items) != 0 {
		t.Errorf("items = %v, want empty non-null array", resp.Items)
	}
}
