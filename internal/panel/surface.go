package panel

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// outboundMsg wraps an outbound panel message for delivery into a
// running bubbletea program.
type outboundMsg struct {
	payload any
}

// teaSurface hosts a panel as a bubbletea program. Reveal runs the
// program on first call and blocks until the user closes the panel;
// messages posted before that are buffered and replayed once the
// program is up.
type teaSurface struct {
	model tea.Model

	mu      sync.Mutex
	program *tea.Program
	running bool
	pending []any
}

// TeaSurfaceFactory returns a factory producing terminal surfaces for
// each feature. The notice, when non-empty, is shown by the guide
// panel (used for update availability).
func TeaSurfaceFactory(notice string) SurfaceFactory {
	return func(feature Feature, content string, dispatch func(data []byte) error) (Surface, error) {
		var model tea.Model
		switch feature {
		case FeatureRuntimeConfig:
			model = newRuntimeModel(content, dispatch)
		case FeatureGuide:
			model = newGuideModel(notice, dispatch)
		default:
			model = newStartModel(content)
		}
		return &teaSurface{model: model}, nil
	}
}

func (s *teaSurface) Reveal() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.program = tea.NewProgram(s.model)
	pending := s.pending
	s.pending = nil
	program := s.program
	s.mu.Unlock()

	go func() {
		for _, payload := range pending {
			program.Send(outboundMsg{payload: payload})
		}
	}()

	program.Run()

	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

func (s *teaSurface) Post(msg any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		s.pending = append(s.pending, msg)
		return nil
	}
	go s.program.Send(outboundMsg{payload: msg})
	return nil
}

func (s *teaSurface) Dispose() {
	s.mu.Lock()
	program, running := s.program, s.running
	s.mu.Unlock()
	if running && program != nil {
		program.Quit()
	}
}
