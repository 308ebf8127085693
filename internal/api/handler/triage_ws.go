package handler

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/EvarJr/EBotikaApp/internal/models"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Any origin is fine for the demo client.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type triageClientMsg struct {
	Text string `json:"text"`
}

type triageServerMsg struct {
	Type    string            `json:"type"` // "chunk", "done"
	Text    string            `json:"text,omitempty"`
	Summary *models.AISummary `json:"summary,omitempty"`
}

// TriageStream runs the AI symptom-check conversation over a WebSocket.
// The client sends one JSON {"text": ...} per user turn; the server streams
// the assistant reply as chunk frames and closes each turn with a done
// frame. When the assistant emits its final summary, the done frame carries
// the parsed summary and the stored transcript is cleared.
//
// The transcript is persisted after every turn so a reload can resume an
// unfinished symptom check.
func (h *Handler) TriageStream(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization token missing"})
		return
	}
	userID, err := h.parseToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token or expired"})
		return
	}
	lang := c.Query("lang")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}
	defer conn.Close()

	history, err := h.Store.LoadTranscript(userID)
	if err != nil {
		log.Printf("triage: failed to load transcript for %s: %v", userID, err)
	}

	for {
		var in triageClientMsg
		if err := conn.ReadJSON(&in); err != nil {
			return
		}
		if in.Text == "" {
			continue
		}

		history = append(history, models.TriageMessage{
			ID:        uuid.New().String(),
			Sender:    "user",
			Text:      in.Text,
			Timestamp: time.Now(),
		})

		chunks, summary := h.Triage.Stream(c.Request.Context(), history, lang)
		var reply string
		for chunk := range chunks {
			reply += chunk
			if err := conn.WriteJSON(triageServerMsg{Type: "chunk", Text: chunk}); err != nil {
				return
			}
		}

		history = append(history, models.TriageMessage{
			ID:        uuid.New().String(),
			Sender:    "ai",
			Text:      reply,
			Timestamp: time.Now(),
		})

		if summary != nil {
			if err := h.Store.DeleteTranscript(userID); err != nil {
				log.Printf("triage: failed to clear transcript for %s: %v", userID, err)
			}
			conn.WriteJSON(triageServerMsg{Type: "done", Summary: summary})
			return
		}

		if err := h.Store.SaveTranscript(userID, history); err != nil {
			log.Printf("triage: failed to save transcript for %s: %v", userID, err)
		}
		if err := conn.WriteJSON(triageServerMsg{Type: "done"}); err != nil {
			return
		}
	}
}
