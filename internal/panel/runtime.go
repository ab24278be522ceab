package panel

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"jrc/internal/advisor"
	"jrc/internal/java"
	"jrc/internal/theme"
)

type suggestFailedMsg struct{ err error }

// runtimeModel is the bubbletea model behind the runtime configuration
// panel. It receives validated candidate entries and, on request,
// suggested download metadata, both through the surface boundary.
type runtimeModel struct {
	content  string
	dispatch func(data []byte) error

	spinner    spinner.Model
	entries    []java.Candidate
	loaded     bool
	suggestion advisor.Suggestion
	requesting bool
	suggestErr error
}

func newRuntimeModel(content string, dispatch func(data []byte) error) runtimeModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Info)

	return runtimeModel{
		content:  content,
		dispatch: dispatch,
		spinner:  s,
	}
}

func (m runtimeModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m runtimeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "s":
			if m.requesting {
				return m, nil
			}
			m.requesting = true
			m.suggestErr = nil
			return m, m.requestSuggestion
		}
		return m, nil

	case outboundMsg:
		switch payload := msg.payload.(type) {
		case ShowJavaRuntimeEntries:
			m.entries = payload.Entries
			m.loaded = true
		case ApplyJdkInfo:
			m.suggestion = payload.JdkInfo
			m.requesting = false
		}
		return m, nil

	case suggestFailedMsg:
		m.requesting = false
		m.suggestErr = msg.err
		return m, nil

	default:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
}

// requestSuggestion sends a requestJdkInfo message through the inbound
// dispatcher. The reply, if any, comes back as an outboundMsg.
func (m runtimeModel) requestSuggestion() tea.Msg {
	raw, err := json.Marshal(map[string]string{
		"command":    CommandRequestJdkInfo,
		"jdkVersion": advisor.DefaultJDKVersion,
		"jvmImpl":    advisor.DefaultJVMImpl,
	})
	if err != nil {
		return suggestFailedMsg{err: err}
	}
	if err := m.dispatch(raw); err != nil {
		return suggestFailedMsg{err: err}
	}
	return nil
}

func (m runtimeModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleBox.Render(theme.Title.Render(FeatureRuntimeConfig.Title())))
	b.WriteString("\n\n")
	b.WriteString(m.content)
	b.WriteString("\n\n")

	if !m.loaded {
		b.WriteString(fmt.Sprintf(" %s Validating JDK candidates...\n", m.spinner.View()))
		return b.String()
	}

	for _, entry := range m.entries {
		b.WriteString(renderEntry(entry))
	}

	b.WriteString("\n")
	switch {
	case m.requesting:
		b.WriteString(fmt.Sprintf(" %s Fetching download suggestion...\n", m.spinner.View()))
	case m.suggestErr != nil:
		b.WriteString(theme.WarningMessage("No suggestion available: "+m.suggestErr.Error()) + "\n")
	case m.suggestion != nil:
		b.WriteString(theme.LabelStyle.Render("Suggested download:") + "\n")
		b.WriteString(renderSuggestion(m.suggestion))
	}

	b.WriteString("\n")
	b.WriteString(theme.Faint.Render("  s: fetch download suggestion  •  q: close"))
	b.WriteString("\n")
	return b.String()
}

func renderEntry(entry java.Candidate) string {
	marker := theme.Faint.Render("?")
	switch entry.Validity {
	case java.ValidityValid:
		marker = theme.SuccessStyle.Render("✓")
	case java.ValidityInvalid:
		marker = theme.ErrorStyle.Render("✗")
	}

	path := entry.Path
	if path == "" {
		path = theme.Faint.Render("(not set)")
	} else {
		path = theme.PathStyle.Render(path)
	}

	line := fmt.Sprintf("  %s %s %s\n", marker, theme.LabelStyle.Render(entry.Name), path)
	if entry.Hint != "" {
		line += "      " + theme.HintStyle.Render(entry.Hint) + "\n"
	}
	return line
}

// renderSuggestion prints the opaque release metadata as indented JSON;
// its internal structure is not interpreted here.
func renderSuggestion(suggestion advisor.Suggestion) string {
	data, err := json.MarshalIndent(suggestion, "  ", "  ")
	if err != nil {
		return theme.Faint.Render("  (unrenderable suggestion)") + "\n"
	}
	return theme.Faint.Render("  "+string(data)) + "\n"
}
