package ui

import (
	"fmt"
	"strings"

	"compete/internal/competition"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// DetailMarkdown describes a competition as markdown for glamour.
func DetailMarkdown(c competition.Competition) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Title)
	fmt.Fprintf(&sb, "**%s** · %s\n\n", c.Type.Name, c.Status.Label())
	fmt.Fprintf(&sb, "%s\n\n", c.Description)
	sb.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&sb, "| Prize pool | %s |\n", FormatPrize(c.PrizePool))
	fmt.Fprintf(&sb, "| Participants | %s |\n", FormatParticipants(c))
	fmt.Fprintf(&sb, "| Time remaining | %s |\n", FormatTimeRemaining(c.TimeRemaining))
	fmt.Fprintf(&sb, "| Entry fee | %s |\n", FormatEntryFee(c.EntryFee))
	fmt.Fprintf(&sb, "| Verification | %s |\n", c.VerificationMethod.Label())
	fmt.Fprintf(&sb, "| Creator | `%s` |\n", c.Creator)
	fmt.Fprintf(&sb, "| Starts | %s |\n", c.StartDate)
	fmt.Fprintf(&sb, "| Ends | %s |\n", c.EndDate)
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "> %s\n", c.VerificationMethod.Description())
	return sb.String()
}

// DetailPageModel shows one competition in a scrollable pane.
type DetailPageModel struct {
	viewport viewport.Model
	markdown *Markdown
	styles   Styles
	current  competition.Competition
	loaded   bool
	width    int
	height   int
}

// NewDetailPageModel creates a new detail page component.
func NewDetailPageModel(md *Markdown, styles Styles) DetailPageModel {
	return DetailPageModel{
		viewport: viewport.New(80, 20),
		markdown: md,
		styles:   styles,
	}
}

// SetSize updates the size of the viewport.
func (m *DetailPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = max(h-2, 1) // Reserve space for footer
	m.UpdateContent()
}

// SetStyles swaps the palette after a theme toggle.
func (m *DetailPageModel) SetStyles(s Styles) {
	m.styles = s
	m.UpdateContent()
}

// Show loads a competition into the pane.
func (m *DetailPageModel) Show(c competition.Competition) {
	m.current = c
	m.loaded = true
	m.UpdateContent()
	m.viewport.GotoTop()
}

// Current returns the competition on display.
func (m DetailPageModel) Current() (competition.Competition, bool) {
	return m.current, m.loaded
}

// UpdateContent re-renders the markdown into the viewport.
func (m *DetailPageModel) UpdateContent() {
	if !m.loaded {
		m.viewport.SetContent("No competition selected.")
		return
	}
	m.viewport.SetContent(m.markdown.Render(DetailMarkdown(m.current), m.viewport.Width, m.styles.Theme.IsDark))
}

// Update handles scroll messages.
func (m DetailPageModel) Update(msg tea.Msg) (DetailPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m DetailPageModel) View() string {
	footer := "esc back"
	if m.loaded && m.current.CanJoin() {
		footer = "j join · " + footer
	}
	return m.viewport.View() + "\n" + m.styles.Footer.Render(footer)
}
