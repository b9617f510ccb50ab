package ui

import (
	"strings"

	"compete/internal/competition"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows for the non-interactive commands.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers []string) *SimpleTable {
	return &SimpleTable{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

// AddRow adds a row to the table.
func (t *SimpleTable) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// CompetitionTable lists records in the order given.
func CompetitionTable(title string, records []competition.Competition) *SimpleTable {
	t := NewSimpleTable(title, []string{"ID", "Title", "Type", "Status", "Prize", "Participants", "Remaining", "Verification"})
	for _, c := range records {
		t.AddRow(
			c.ID,
			Truncate(c.Title, 40),
			c.Type.Name,
			c.Status.Label(),
			FormatPrize(c.PrizePool),
			FormatCount(c.Participants),
			FormatTimeRemaining(c.TimeRemaining),
			c.VerificationMethod.Label(),
		)
	}
	return t
}

// View renders the table using the provided styles. An empty table renders
// as nothing.
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	colWidths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		colWidths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(colWidths) {
				colWidths[i] = max(colWidths[i], lipgloss.Width(cell))
			}
		}
	}
	for i := range colWidths {
		colWidths[i] += 2 // cell padding
	}

	headerStyle := styles.Bold.Padding(0, 1)
	rowStyle := styles.Body.Padding(0, 1)
	sep := styles.Muted.Render("│")

	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range colWidths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			sb.WriteString(style.Width(colWidths[i]).Render(cell))
			if i < len(colWidths)-1 {
				sb.WriteString(sep)
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, headerStyle)
	total := len(colWidths) - 1
	for _, w := range colWidths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)) + "\n")
	for _, row := range t.Rows {
		writeRow(row, rowStyle)
	}
	return sb.String()
}
