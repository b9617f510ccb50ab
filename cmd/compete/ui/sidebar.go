package ui

import (
	"fmt"
	"strings"

	"compete/internal/competition"
	"compete/internal/filter"

	"github.com/charmbracelet/lipgloss"
)

// Section is a collapsible block of the filter sidebar.
type Section string

const (
	SectionTypes        Section = "types"
	SectionPrize        Section = "prize"
	SectionStatus       Section = "status"
	SectionVerification Section = "verification"
	SectionSort         Section = "sort"
)

// Title is the section heading.
func (s Section) Title() string {
	switch s {
	case SectionTypes:
		return "Competition Types"
	case SectionPrize:
		return "Prize Range ($)"
	case SectionStatus:
		return "Status"
	case SectionVerification:
		return "Verification"
	case SectionSort:
		return "Sort by"
	default:
		return string(s)
	}
}

// Collapsible reports whether the section has a header that folds it.
func (s Section) Collapsible() bool { return s != SectionPrize }

// Sections lists the sidebar in display order.
func Sections() []Section {
	return []Section{SectionTypes, SectionPrize, SectionStatus, SectionVerification, SectionSort}
}

// SidebarRow is one focusable line. Header rows fold their section; option
// rows carry the value they toggle or select.
type SidebarRow struct {
	Section Section
	Header  bool
	Value   string
}

// SidebarRows flattens the sidebar into cursor-addressable rows, omitting
// options of collapsed sections.
func SidebarRows(types []competition.CompetitionType, expanded map[Section]bool) []SidebarRow {
	var rows []SidebarRow
	for _, sec := range Sections() {
		if !sec.Collapsible() {
			rows = append(rows, SidebarRow{Section: sec})
			continue
		}
		rows = append(rows, SidebarRow{Section: sec, Header: true})
		if !expanded[sec] {
			continue
		}
		for _, v := range sectionValues(sec, types) {
			rows = append(rows, SidebarRow{Section: sec, Value: v})
		}
	}
	return rows
}

func sectionValues(sec Section, types []competition.CompetitionType) []string {
	var out []string
	switch sec {
	case SectionTypes:
		for _, t := range types {
			out = append(out, t.ID)
		}
	case SectionStatus:
		for _, s := range competition.AllStatuses() {
			out = append(out, string(s))
		}
	case SectionVerification:
		for _, v := range competition.AllVerificationMethods() {
			out = append(out, string(v))
		}
	case SectionSort:
		for _, k := range filter.SortKeys() {
			out = append(out, string(k))
		}
	}
	return out
}

// SidebarView is everything the sidebar needs to draw itself.
type SidebarView struct {
	State    filter.State
	Types    []competition.CompetitionType
	Expanded map[Section]bool
	Cursor   int
	Focused  bool
	PrizeMax float64
	Width    int
}

// RenderSidebar draws the filter panel.
func RenderSidebar(v SidebarView, s Styles) string {
	rows := SidebarRows(v.Types, v.Expanded)
	outer := max(v.Width-s.Sidebar.GetHorizontalBorderSize(), 12)
	inner := outer - s.Sidebar.GetHorizontalPadding()

	var sb strings.Builder
	title := "Filters"
	if !v.State.IsDefault() {
		title += s.Muted.Render("  (r to reset)")
	}
	sb.WriteString(s.Title.Render(title))
	sb.WriteString("\n")

	for i, row := range rows {
		focused := v.Focused && i == v.Cursor
		if row.Header || !row.Section.Collapsible() {
			sb.WriteString("\n")
		}
		sb.WriteString(renderRow(row, v, s, focused, inner))
		sb.WriteString("\n")
	}
	return s.Sidebar.Width(outer).Render(strings.TrimRight(sb.String(), "\n"))
}

func renderRow(row SidebarRow, v SidebarView, s Styles, focused bool, width int) string {
	cursor := "  "
	if focused {
		cursor = s.Cursor.Render("> ")
	}

	if row.Section == SectionPrize {
		return cursor + s.Bold.Render(row.Section.Title()) + "\n" +
			"  " + renderPrizeBar(v.State.PrizeRange, v.PrizeMax, s, width-2)
	}
	if row.Header {
		arrow := "▾"
		if !v.Expanded[row.Section] {
			arrow = "▸"
		}
		return cursor + s.Bold.Render(row.Section.Title()+" "+arrow)
	}

	label, checked := optionLabel(row, v)
	box := "[ ]"
	if row.Section == SectionSort {
		box = "( )"
	}
	if checked {
		box = strings.Replace(box, " ", "x", 1)
		if row.Section == SectionSort {
			box = "(•)"
		}
		return cursor + s.Checked.Render(box+" "+label)
	}
	return cursor + s.Body.Render(box+" "+label)
}

func optionLabel(row SidebarRow, v SidebarView) (string, bool) {
	st := v.State
	switch row.Section {
	case SectionTypes:
		for _, t := range v.Types {
			if t.ID == row.Value {
				return t.Name, st.HasType(t.ID)
			}
		}
		return row.Value, st.HasType(row.Value)
	case SectionStatus:
		status := competition.Status(row.Value)
		return status.Label(), st.HasStatus(status)
	case SectionVerification:
		method := competition.VerificationMethod(row.Value)
		return method.Label(), st.HasVerification(method)
	case SectionSort:
		key := filter.SortKey(row.Value)
		return key.Label(), st.SortBy == key
	}
	return row.Value, false
}

func renderPrizeBar(r filter.Range, top float64, s Styles, width int) string {
	if top <= 0 {
		top = filter.DefaultPrizeMax
	}
	label := fmt.Sprintf("$%s - $%s", FormatCount(int(r.Min)), FormatCount(int(r.Max)))
	barWidth := max(width, 4)
	filled := int(float64(barWidth) * r.Max / top)
	filled = min(max(filled, 0), barWidth)
	bar := s.Checked.Render(strings.Repeat("━", filled)) + s.Divider.Render(strings.Repeat("─", barWidth-filled))
	return lipgloss.JoinVertical(lipgloss.Left, bar, "  "+s.Muted.Render(label+"  (←/→)"))
}
