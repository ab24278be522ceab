package panel

import (
	"fmt"
	"sync"
)

// Feature identifies one of the tool's panels.
type Feature int

const (
	FeatureRuntimeConfig Feature = iota
	FeatureGuide
	FeatureGettingStarted
)

func (f Feature) String() string {
	switch f {
	case FeatureRuntimeConfig:
		return "runtime-config"
	case FeatureGuide:
		return "guide"
	case FeatureGettingStarted:
		return "getting-started"
	}
	return "unknown"
}

// Title returns the human-readable panel title.
func (f Feature) Title() string {
	switch f {
	case FeatureRuntimeConfig:
		return "Configure Java Runtime"
	case FeatureGuide:
		return "User Guide"
	case FeatureGettingStarted:
		return "Getting Started"
	}
	return "Unknown"
}

// Surface is a host-owned view hosting one panel's content. The
// registry owns its lifecycle bookkeeping; the host owns its rendering.
type Surface interface {
	// Reveal brings the surface to the foreground. Revealing an
	// already-visible surface is a no-op.
	Reveal()
	// Post delivers an outbound message to the surface.
	Post(msg any) error
	// Dispose releases the surface.
	Dispose()
}

// SurfaceFactory constructs the surface for a feature when no panel is
// open. The dispatch function is the surface's single inbound channel.
type SurfaceFactory func(feature Feature, content string, dispatch func(data []byte) error) (Surface, error)

// Registry enforces the one-panel-per-feature rule. Each feature moves
// through Unopened -> Open -> Unopened; opening while Open only
// reveals, never reconstructs.
type Registry struct {
	factory SurfaceFactory
	handler *Handler

	mu   sync.Mutex
	open map[Feature]Surface
}

// NewRegistry builds a registry around a surface factory and a message
// handler.
func NewRegistry(factory SurfaceFactory, handler *Handler) *Registry {
	return &Registry{
		factory: factory,
		handler: handler,
		open:    make(map[Feature]Surface),
	}
}

// Open reveals the existing panel for the feature, or constructs a new
// surface, loads the feature's static content, wires its inbound
// dispatcher, and reveals it. The runtime configuration panel also
// receives the current validated candidate entries on construction.
func (r *Registry) Open(feature Feature) error {
	r.mu.Lock()
	if surface, ok := r.open[feature]; ok {
		r.mu.Unlock()
		surface.Reveal()
		return nil
	}

	dispatch := func(data []byte) error {
		return r.dispatch(feature, data)
	}
	surface, err := r.factory(feature, contentFor(feature), dispatch)
	if err != nil {
		r.mu.Unlock()
		return fmt.Errorf("failed to open %s panel: %w", feature, err)
	}
	r.open[feature] = surface
	r.mu.Unlock()

	if feature == FeatureRuntimeConfig {
		if err := surface.Post(NewShowJavaRuntimeEntries(r.handler.RuntimeEntries())); err != nil {
			return fmt.Errorf("failed to populate %s panel: %w", feature, err)
		}
	}

	surface.Reveal()
	return nil
}

// NotifyDisposed returns the feature to the unopened state. The next
// Open constructs a fresh surface.
func (r *Registry) NotifyDisposed(feature Feature) {
	r.mu.Lock()
	delete(r.open, feature)
	r.mu.Unlock()
}

// Close disposes the feature's surface, if open, and forgets it.
func (r *Registry) Close(feature Feature) {
	r.mu.Lock()
	surface, ok := r.open[feature]
	delete(r.open, feature)
	r.mu.Unlock()

	if ok {
		surface.Dispose()
	}
}

// IsOpen reports whether the feature currently has a live surface.
func (r *Registry) IsOpen(feature Feature) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.open[feature]
	return ok
}

// dispatch decodes one inbound surface message, hands it to the
// handler, and posts the reply, if any, back to the feature's surface.
func (r *Registry) dispatch(feature Feature, data []byte) error {
	msg, err := DecodeInbound(data)
	if err != nil {
		return err
	}

	reply, err := r.handler.HandleInbound(msg)
	if err != nil {
		return err
	}
	if reply == nil {
		return nil
	}

	r.mu.Lock()
	surface, ok := r.open[feature]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("%s panel is no longer open", feature)
	}

	return surface.Post(reply)
}
