package java

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type probeFinishedMsg struct{}

type probeModel struct {
	spinner  spinner.Model
	quitting bool
}

func newProbeModel() probeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))

	return probeModel{
		spinner: s,
	}
}

func (m probeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m probeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case probeFinishedMsg:
		m.quitting = true
		return m, tea.Quit

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

func (m probeModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf(" %s Probing JDK candidates...\n", m.spinner.View())
}

// WithProbe runs a discovery function behind a spinner animation
func WithProbe(fn func() error) error {
	p := tea.NewProgram(newProbeModel())

	// Run function in background
	go func() {
		time.Sleep(50 * time.Millisecond) // Give UI time to start
		fn()
		p.Send(probeFinishedMsg{})
	}()

	// Run the spinner UI
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
