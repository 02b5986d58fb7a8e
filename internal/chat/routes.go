package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the chat endpoints on the given router.
func RegisterRoutes(r chi.Router, gateway *Gateway) {
	r.Post("/llm-chat", handleChat(gateway))
	r.Get("/ws/chat", handleWebSocket(gateway))
}

func handleChat(gateway *Gateway) http.HandlerFunc {
	type chatRequest struct {
		Messages []Message `json:"messages"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !gateway.Configured() {
			writeError(w, http.StatusBadRequest, "OPENAI_API_KEY is not configured")
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		reply, err := gateway.Chat(r.Context(), req.Messages)
		if err != nil {
			log.Printf("chat: %v", err)
			writeError(w, http.StatusInternalServerError, "chat service is unavailable")
			return
		}

		var key string
		if reply.Detected {
			key = string(reply.Scenario)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"reply":    reply.Content,
			"scenario": key,
		})
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
