package ws

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

type analysisEvent struct {
	Type      string `json:"type"`
	Payload   any    `json:"payload,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the usecase layer's notification port.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) AnalysisCompleted(userID uuid.UUID, event string, payload any) {
	if n == nil || n.hub == nil {
		return
	}

	event = strings.TrimSpace(event)
	if event == "" || userID == uuid.Nil {
		return
	}

	evt := analysisEvent{
		Type:      event,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Send(userID, b)
}
