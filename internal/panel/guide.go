package panel

import (
	"encoding/json"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"jrc/internal/theme"
)

// guideModel is the bubbletea model behind the guide panel: a fixed
// set of tabs over static content. Switching tabs emits a tabActivated
// message through the inbound dispatcher so the host can record it.
type guideModel struct {
	notice   string
	dispatch func(data []byte) error

	tabs      []guideTab
	activeTab int
}

func newGuideModel(notice string, dispatch func(data []byte) error) guideModel {
	return guideModel{
		notice:   notice,
		dispatch: dispatch,
		tabs:     guideTabs,
	}
}

func (m guideModel) Init() tea.Cmd {
	return nil
}

func (m guideModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "tab":
			if m.activeTab < len(m.tabs)-1 {
				m.activeTab++
				return m, m.notifyTabActivated
			}
		case "left", "h", "shift+tab":
			if m.activeTab > 0 {
				m.activeTab--
				return m, m.notifyTabActivated
			}
		}
	}
	return m, nil
}

// notifyTabActivated reports the newly active tab through the inbound
// dispatcher. Delivery failures are invisible to the user.
func (m guideModel) notifyTabActivated() tea.Msg {
	raw, err := json.Marshal(map[string]string{
		"command": CommandTabActivated,
		"tabId":   m.tabs[m.activeTab].ID,
	})
	if err != nil {
		return nil
	}
	m.dispatch(raw)
	return nil
}

func (m guideModel) View() string {
	var b strings.Builder

	b.WriteString(theme.TitleBox.Render(theme.Title.Render(FeatureGuide.Title())))
	b.WriteString("\n\n")

	if m.notice != "" {
		b.WriteString(theme.InfoMessage(m.notice))
		b.WriteString("\n\n")
	}

	var tabBar []string
	for i, tab := range m.tabs {
		if i == m.activeTab {
			tabBar = append(tabBar, theme.TabActive.Render(tab.Title))
		} else {
			tabBar = append(tabBar, theme.TabInactive.Render(tab.Title))
		}
	}
	b.WriteString(strings.Join(tabBar, " "))
	b.WriteString("\n\n")

	b.WriteString(theme.Box.Render(m.tabs[m.activeTab].Body))
	b.WriteString("\n\n")
	b.WriteString(theme.Faint.Render("  ←/→: switch tab  •  q: close"))
	b.WriteString("\n")
	return b.String()
}
