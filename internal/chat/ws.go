package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type    string `json:"type"` // "message"
	Content string `json:"content"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type     string `json:"type"` // "response" or "error"
	Content  string `json:"content"`
	Scenario string `json:"scenario,omitempty"`
}

// handleWebSocket runs a per-connection chat loop with the same
// grounding and history bounding as the HTTP endpoint. History lives
// only for the lifetime of the connection.
func handleWebSocket(gateway *Gateway) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("chat: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		var history []Message

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("chat: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWS(conn, wsResponse{Type: "error", Content: "invalid message format"})
				continue
			}
			if req.Type != "message" {
				sendWS(conn, wsResponse{Type: "error", Content: "unknown message type: " + req.Type})
				continue
			}
			if req.Content == "" {
				sendWS(conn, wsResponse{Type: "error", Content: "content is required"})
				continue
			}
			if !gateway.Configured() {
				sendWS(conn, wsResponse{Type: "error", Content: "OPENAI_API_KEY is not configured"})
				continue
			}

			history = append(history, Message{Role: "user", Content: req.Content})

			reply, err := gateway.Chat(r.Context(), history)
			if err != nil {
				log.Printf("chat: websocket turn: %v", err)
				sendWS(conn, wsResponse{Type: "error", Content: "chat service is unavailable"})
				continue
			}

			history = append(history, Message{Role: "assistant", Content: reply.Content})

			resp := wsResponse{Type: "response", Content: reply.Content}
			if reply.Detected {
				resp.Scenario = string(reply.Scenario)
			}
			sendWS(conn, resp)
		}
	}
}

func sendWS(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("chat: websocket write: %v", err)
	}
}
