package ui

import (
	"strings"

	"compete/internal/competition"

	"github.com/charmbracelet/lipgloss"
)

// RenderCard draws one competition card at the given outer width.
// Join is only offered for competitions that can still be joined.
func RenderCard(c competition.Competition, s Styles, width int, selected bool) string {
	box := s.Card
	if selected {
		box = s.CardSelected
	}
	outer := max(width-box.GetHorizontalBorderSize(), 12)
	inner := outer - box.GetHorizontalPadding()

	badges := s.TypeBadge(c.Type) + " " + s.StatusBadge(c.Status)

	title := s.Bold.Width(inner).Render(Truncate(c.Title, inner*2))
	desc := s.Muted.Width(inner).Render(clampLines(c.Description, inner, 2))

	prize := s.Title.Render(FormatPrize(c.PrizePool))
	meta := []string{
		s.Body.Render(FormatParticipants(c)),
		s.Body.Render(FormatTimeRemaining(c.TimeRemaining)),
		s.Muted.Render("Entry: " + FormatEntryFee(c.EntryFee)),
		s.Muted.Render("Verification: " + c.VerificationMethod.Label()),
	}

	buttons := s.ButtonGhost.Render("[v] View Details")
	if c.CanJoin() {
		buttons += " " + s.Button.Render("[j] Join Now")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		badges,
		"",
		title,
		desc,
		"",
		prize,
		strings.Join(meta, "\n"),
		"",
		buttons,
	)
	return box.Width(outer).Render(body)
}

// clampLines word-wraps text to width and keeps at most n lines.
func clampLines(text string, width, n int) string {
	words := strings.Fields(text)
	var lines []string
	var cur strings.Builder
	for _, w := range words {
		if cur.Len() > 0 && cur.Len()+1+len(w) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(w)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	if len(lines) > n {
		lines = lines[:n]
		lines[n-1] = Truncate(lines[n-1]+" ...", width)
	}
	return strings.Join(lines, "\n")
}

// RenderGrid lays cards out in rows of cols. selected is an index into
// records, -1 for none.
func RenderGrid(records []competition.Competition, s Styles, l LayoutConfig, selected int) string {
	cols := l.GridColumns()
	width := l.CardWidth()

	var rows []string
	for start := 0; start < len(records); start += cols {
		end := min(start+cols, len(records))
		cells := make([]string, 0, cols*2)
		for i := start; i < end; i++ {
			if i > start {
				cells = append(cells, strings.Repeat(" ", CardGap))
			}
			cells = append(cells, RenderCard(records[i], s, width, i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// RenderResults is the heading plus either the grid or the empty state.
func RenderResults(records []competition.Competition, s Styles, l LayoutConfig, selected int) string {
	heading := s.Title.Render("Available Competitions (" + FormatCount(len(records)) + ")")
	if len(records) == 0 {
		empty := lipgloss.JoinVertical(lipgloss.Center,
			s.Bold.Render("No competitions found"),
			s.Muted.Render("Try adjusting your filters or press c to create a new competition."),
		)
		return lipgloss.JoinVertical(lipgloss.Left, heading, "",
			lipgloss.PlaceHorizontal(l.ContentWidth(), lipgloss.Center, empty))
	}
	return lipgloss.JoinVertical(lipgloss.Left, heading, "", RenderGrid(records, s, l, selected))
}
