package notifications

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// defaultLimit caps unbounded notification listings.
const defaultLimit = 100

// RegisterRoutes mounts the notification endpoints on the given router.
func RegisterRoutes(r chi.Router, store *Store) {
	r.Get("/notifications", handleList(store))
}

func handleList(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		filter := Filter{}
		if v := q.Get("scenario"); v != "" {
			filter.Scenario = scenario.Key(v)
		}
		// start/end are inclusive calendar dates in the server's local day.
		if v := q.Get("start"); v != "" {
			t, err := time.ParseInLocation(time.DateOnly, v, time.Local)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid start date: " + v})
				return
			}
			filter.Since = t
		}
		if v := q.Get("end"); v != "" {
			t, err := time.ParseInLocation(time.DateOnly, v, time.Local)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid end date: " + v})
				return
			}
			filter.Until = t.AddDate(0, 0, 1).Add(-time.Second)
		}

		limit := defaultLimit
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		items, err := store.List(r.Context(), filter, limit)
		if err != nil {
			log.Printf("notifications: list: %v", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load notifications"})
			return
		}
		if items == nil {
			items = []Notification{}
		}

		writeJSON(w, http.StatusOK, map[string]any{"items": items})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
