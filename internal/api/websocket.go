// Package api - WebSocket handler for live generation streaming
package api

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/dparker/statlab/internal/generator"
	"github.com/dparker/statlab/internal/stats"
	"github.com/dparker/statlab/internal/validate"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // single-user dashboard, same-host frontend
	},
}

// WSMessage represents a WebSocket message.
type WSMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// streamChunkSize is how many values go out per chunk message.
const streamChunkSize = 100

type wsGenerateRequest struct {
	Kind string `json:"kind"`
	validate.GeneratorParams
}

// GenerateStream handles GET /ws/generate. The client sends one
// generation request; the server validates it, streams the sequence in
// chunks so the frontend can animate the plot, then sends the final
// statistics and closes.
func (h *Handler) GenerateStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(4096)
	conn.SetReadDeadline(time.Now().Add(60 * time.Second))

	var req wsGenerateRequest
	if err := conn.ReadJSON(&req); err != nil {
		h.sendWS(conn, "error", map[string]string{
			"code":    "INVALID_MESSAGE",
			"message": "Invalid generation request",
		})
		return
	}

	kind := generator.Kind(req.Kind)
	report := validate.Generator(kind, req.GeneratorParams)
	if !report.Valid {
		h.sendWS(conn, "validation", report)
		return
	}

	seq, err := generator.Generate(kind, req.Params())
	if err != nil {
		h.sendWS(conn, "error", map[string]string{
			"code":    "INVALID_GENERATOR",
			"message": err.Error(),
		})
		return
	}

	for offset := 0; offset < len(seq); offset += streamChunkSize {
		end := offset + streamChunkSize
		if end > len(seq) {
			end = len(seq)
		}
		ok := h.sendWS(conn, "chunk", map[string]interface{}{
			"offset": offset,
			"values": seq[offset:end],
		})
		if !ok {
			return
		}
	}

	h.sendWS(conn, "stats", stats.Full(seq))
	conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(time.Second))
}

func (h *Handler) sendWS(conn *websocket.Conn, msgType string, payload interface{}) bool {
	raw, err := json.Marshal(payload)
	if err != nil {
		return false
	}
	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteJSON(WSMessage{Type: msgType, Payload: raw}); err != nil {
		log.Printf("websocket write error: %v", err)
		return false
	}
	return true
}
