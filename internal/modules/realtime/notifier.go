package realtime

// AvailabilityBroadcaster adapts the hub to the booking module's notifier
// port: every refresh fans out one availability.changed message.
type AvailabilityBroadcaster struct {
	hub *Hub
}

func NewAvailabilityBroadcaster(hub *Hub) *AvailabilityBroadcaster {
	return &AvailabilityBroadcaster{hub: hub}
}

func (b *AvailabilityBroadcaster) AvailabilityChanged(metadata map[string]string) {
	b.hub.Broadcast(NewAvailabilityMessage(metadata))
}
