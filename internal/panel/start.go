package panel

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jrc/internal/theme"
)

// startModel is the bubbletea model behind the getting-started panel.
// It displays a fixed static document and nothing else.
type startModel struct {
	content string
}

func newStartModel(content string) startModel {
	return startModel{content: content}
}

func (m startModel) Init() tea.Cmd {
	return nil
}

func (m startModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q", "esc", "ctrl+c", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m startModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleBox.Render(theme.Title.Render(FeatureGettingStarted.Title())))
	b.WriteString("\n\n")
	b.WriteString(m.content)
	b.WriteString("\n")
	b.WriteString(theme.Faint.Render("  q: close"))
	b.WriteString("\n")
	return b.String()
}
