package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/alertdeskhq/alertdesk/internal/scenario"
)

// RegisterRoutes mounts the submission and KPI endpoints on the given
// router. maxUploadBytes caps the request body accepted on /submit;
// larger uploads are rejected before the form is parsed.
func RegisterRoutes(r chi.Router, pipeline *Pipeline, store *Store, maxUploadBytes int64) {
	r.Get("/scenarios", handleScenarios())
	r.Post("/submit", handleSubmit(pipeline, maxUploadBytes))
	r.Get("/kpis", handleKPIs(store))
	r.Post("/clear", handleClear(pipeline))
}

func handleScenarios() http.HandlerFunc {
	type entry struct {
		Value scenario.Key `json:"value"`
		Label string       `json:"label"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var scenarios []entry
		for _, sc := range scenario.All() {
			scenarios = append(scenarios, entry{Value: sc.Key, Label: sc.Label})
		}
		writeJSON(w, http.StatusOK, map[string]any{"scenarios": scenarios})
	}
}

func handleSubmit(pipeline *Pipeline, maxUploadBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("upload exceeds the %d byte limit", tooLarge.Limit))
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		key := r.FormValue("scenario")

		var photo *multipart.FileHeader
		if r.MultipartForm != nil && len(r.MultipartForm.File["photo"]) > 0 {
			photo = r.MultipartForm.File["photo"][0]
		}

		result, err := pipeline.Submit(r.Context(), key, photo)
		if err != nil {
			status, msg := mapPipelineError(err)
			if status == http.StatusInternalServerError {
				log.Printf("report: submit %q: %v", key, err)
			}
			writeError(w, status, msg)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":             true,
			"scenario":       result.Scenario,
			"filePath":       result.FilePath,
			"chatbotMessage": result.Message,
			"kpis":           result.Metrics,
		})
	}
}

func handleKPIs(store *Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := r.URL.Query().Get("scenario")
		sc, err := scenario.Lookup(key)
		if err != nil {
			writeError(w, http.StatusBadRequest, "unknown scenario: "+key)
			return
		}

		metrics, err := store.Metrics(r.Context(), sc.Table)
		if err != nil {
			log.Printf("report: kpis %q: %v", key, err)
			writeError(w, http.StatusInternalServerError, "failed to compute kpis")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"scenario": sc.Key,
			"kpis":     metrics,
		})
	}
}

func handleClear(pipeline *Pipeline) http.HandlerFunc {
	type clearRequest struct {
		Scenario           string `json:"scenario"`
		ClearNotifications *bool  `json:"clearNotifications"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var req clearRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		clearNotifs := true
		if req.ClearNotifications != nil {
			clearNotifs = *req.ClearNotifications
		}

		result, err := pipeline.Clear(r.Context(), req.Scenario, clearNotifs)
		if err != nil {
			status, msg := mapPipelineError(err)
			if status == http.StatusInternalServerError {
				log.Printf("report: clear %q: %v", req.Scenario, err)
			}
			writeError(w, status, msg)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"ok":             true,
			"scenario":       result.Scenario,
			"kpis":           result.Metrics,
			"chatbotMessage": result.Message,
		})
	}
}

// mapPipelineError translates pipeline failures into a status code and
// a caller-safe message. Storage detail never reaches the response.
func mapPipelineError(err error) (int, string) {
	switch {
	case errors.Is(err, scenario.ErrUnknown):
		return http.StatusBadRequest, "unknown scenario"
	case errors.Is(err, ErrMissingAttachment):
		return http.StatusBadRequest, "photo attachment is required"
	default:
		return http.StatusInternalServerError, "storage failure"
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
