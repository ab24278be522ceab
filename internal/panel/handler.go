package panel

import (
	"fmt"

	"jrc/internal/advisor"
	"jrc/internal/config"
	"jrc/internal/java"
)

// Handler reacts to inbound panel messages and produces outbound
// replies. It owns no panel state; the registry wires it to surfaces.
type Handler struct {
	advisor  *advisor.Client
	settings *config.Settings
	sink     EventSink
}

// NewHandler builds a handler. A nil sink falls back to NopSink.
func NewHandler(client *advisor.Client, settings *config.Settings, sink EventSink) *Handler {
	if sink == nil {
		sink = NopSink{}
	}
	return &Handler{
		advisor:  client,
		settings: settings,
		sink:     sink,
	}
}

// HandleInbound processes one decoded message and returns the reply to
// post back to the surface, if any. An advisor failure propagates: the
// panel's suggestion area simply stays unpopulated.
func (h *Handler) HandleInbound(msg Inbound) (any, error) {
	switch m := msg.(type) {
	case RequestJdkInfo:
		info, err := h.advisor.LatestRelease(m.JdkVersion, m.JvmImpl)
		if err != nil {
			return nil, err
		}
		return NewApplyJdkInfo(info), nil

	case TabActivated:
		h.sink.Record(Event{Name: "guide.tabActivated", Data: m.TabID})
		return nil, nil

	default:
		return nil, fmt.Errorf("unhandled panel message %T", msg)
	}
}

// RuntimeEntries enumerates and validates the JDK candidates shown in
// the runtime configuration panel.
func (h *Handler) RuntimeEntries() []java.Candidate {
	entries := java.Enumerate(h.settings)
	java.Validate(entries)
	return entries
}
