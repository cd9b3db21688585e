package realtime

import (
	"encoding/json"
	"testing"
)

func TestNewAvailabilityMessage(t *testing.T) {
	msg := NewAvailabilityMessage(map[string]string{"bookings": "3", "unavailableDates": "1"})
	if msg.Topic != TopicAvailabilityChanged {
		t.Fatalf("unexpected topic: %s", msg.Topic)
	}
	if msg.Entity != "availability" || msg.Action != "changed" {
		t.Fatalf("unexpected entity/action: %s/%s", msg.Entity, msg.Action)
	}
	if msg.Timestamp.IsZero() {
		t.Fatal("expected timestamp")
	}
	if msg.Metadata["bookings"] != "3" {
		t.Fatalf("metadata mismatch: %v", msg.Metadata)
	}
}

func TestMessageWireFormat(t *testing.T) {
	msg := NewAvailabilityMessage(nil)
	raw, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["topic"] != TopicAvailabilityChanged {
		t.Fatalf("topic field = %v", decoded["topic"])
	}
	// Empty metadata is omitted from the wire, not sent as null.
	if _, present := decoded["metadata"]; present {
		t.Fatal("empty metadata should be omitted")
	}
}
