package panel

// Event is a single telemetry record forwarded from a panel.
type Event struct {
	Name string
	Data string
}

// EventSink receives telemetry events relayed from panel surfaces.
type EventSink interface {
	Record(Event)
}

// NopSink discards all events.
type NopSink struct{}

// Record implements EventSink.
func (NopSink) Record(Event) {}
