package ui

import (
	"strings"

	"compete/internal/competition"

	"github.com/charmbracelet/lipgloss"
)

// StatTile is one aggregate number with its month-over-month change.
type StatTile struct {
	Title  string
	Value  string
	Change float64
}

// Tiles maps protocol stats to the four dashboard tiles in display order.
func Tiles(st competition.ProtocolStats) []StatTile {
	return []StatTile{
		{Title: "Total Value Locked", Value: st.TVL, Change: st.TVLChange},
		{Title: "Active Competitions", Value: FormatCount(st.ActiveCompetitions), Change: st.CompetitionsChange},
		{Title: "Total Prizes Distributed", Value: st.TotalPrizes, Change: st.PrizesChange},
		{Title: "Participants This Month", Value: FormatCount(st.MonthlyParticipants), Change: st.ParticipantsChange},
	}
}

// RenderTile draws a single stat tile.
func RenderTile(t StatTile, s Styles, width int) string {
	change := s.Success
	if t.Change < 0 {
		change = s.Error
	}
	inner := max(width-s.Tile.GetHorizontalBorderSize(), StatTileMinWidth-2)
	body := lipgloss.JoinVertical(lipgloss.Left,
		change.Render(FormatChange(t.Change)),
		s.Bold.Render(t.Value),
		s.Muted.Render(t.Title),
	)
	return s.Tile.Width(inner).Render(body)
}

// RenderStats lays the tiles out across the content width.
func RenderStats(st competition.ProtocolStats, s Styles, l LayoutConfig) string {
	tiles := Tiles(st)
	cols := l.StatColumns()
	width := max((l.TerminalWidth-(cols-1))/cols, StatTileMinWidth)

	var rows []string
	for start := 0; start < len(tiles); start += cols {
		end := min(start+cols, len(tiles))
		cells := make([]string, 0, cols)
		for _, t := range tiles[start:end] {
			cells = append(cells, RenderTile(t, s, width))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}
