package ui

import (
	"compete/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// NavItems are the header navigation labels. Only Explore and Create do
// anything; the rest are placeholders.
var NavItems = []string{"Explore", "Create", "My Competitions", "Analytics"}

// RenderHeader draws the brand, navigation, search box, theme indicator and
// the inert wallet button.
func RenderHeader(s Styles, width int, search string, mode theme.Mode) string {
	brand := s.Title.Render("◆ CompeteProtocol")

	nav := ""
	for i, item := range NavItems {
		style := s.NavItem
		if i == 0 {
			style = style.Foreground(s.Theme.Primary).Bold(true)
		}
		nav += style.Render(item)
	}

	icon := "☀"
	if mode == theme.Dark {
		icon = "☾"
	}
	right := lipgloss.JoinHorizontal(lipgloss.Center,
		search, " ",
		s.Muted.Render("["+icon+" t]"), " ",
		s.ButtonGhost.Render("Connect Wallet"),
	)

	left := lipgloss.JoinHorizontal(lipgloss.Center, brand, "  ", nav)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - s.Header.GetHorizontalFrameSize()
	if gap < 1 {
		// Too narrow for one line: stack the right-hand group below.
		return s.Header.Width(max(width-s.Header.GetHorizontalFrameSize(), 1)).
			Render(lipgloss.JoinVertical(lipgloss.Left, left, right))
	}
	line := left + lipgloss.NewStyle().Width(gap).Render("") + right
	return s.Header.Render(line)
}
