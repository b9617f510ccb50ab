package dashboard

import (
	"fmt"

	"compete/cmd/compete/ui"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 {
		return "Loading competitions..."
	}
	l := m.layout()
	header := ui.RenderHeader(m.styles, m.width, m.search.View(), m.theme.Mode())

	var body, helpView string
	switch {
	case m.wiz.IsOpen():
		modal := ui.RenderWizard(m.wizardView(), m.styles)
		body = lipgloss.Place(m.width, l.ContentHeight(), lipgloss.Center, lipgloss.Center, modal)
		helpView = m.help.View(wizardKeys(m.keys))
	case m.showDetail:
		body = m.detail.View()
		helpView = m.help.View(m.keys)
	default:
		content := lipgloss.JoinVertical(lipgloss.Left,
			ui.RenderStats(m.stats, m.styles, l),
			m.body.View(),
		)
		if m.sidebarOpen {
			sidebar := ui.RenderSidebar(ui.SidebarView{
				State:    m.filters,
				Types:    m.types,
				Expanded: m.expanded,
				Cursor:   m.sidebarCursor,
				Focused:  m.focus == FocusSidebar,
				PrizeMax: m.filters.Ceiling(),
				Width:    l.SidebarWidth(),
			}, m.styles)
			content = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, content)
		}
		body = content
		helpView = m.help.View(m.keys)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar(), helpView)
}

func (m Model) statusBar() string {
	text := m.statusMessage
	if text == "" {
		text = fmt.Sprintf("%s of %s competitions · sorted by %s",
			ui.FormatCount(len(m.visible)), ui.FormatCount(len(m.records)), m.filters.SortBy.Label())
	}
	return m.styles.StatusBar.Width(m.width).Render(ui.Truncate(text, max(m.width-2, 1)))
}
