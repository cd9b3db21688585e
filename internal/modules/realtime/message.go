package realtime

import "time"

// Topic for availability push. Clients receiving it re-query the gateway
// rather than trusting any payload; messages carry counts only.
const TopicAvailabilityChanged = "availability.changed"

// Message is the wire format pushed to websocket subscribers.
type Message struct {
	Topic     string            `json:"topic"`
	Entity    string            `json:"entity"`
	Action    string            `json:"action"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// NewAvailabilityMessage builds the refresh notification broadcast after the
// local view changes.
func NewAvailabilityMessage(metadata map[string]string) *Message {
	return &Message{
		Topic:     TopicAvailabilityChanged,
		Entity:    "availability",
		Action:    "changed",
		Metadata:  metadata,
		Timestamp: time.Now().UTC(),
	}
}
