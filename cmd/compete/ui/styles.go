// Package ui provides the visual styling and presentational pieces of the
// compete dashboard. Nothing here owns state; the dashboard model passes
// values in and gets strings back.
package ui

import (
	"strings"

	"compete/internal/competition"
	"compete/internal/theme"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Light Mode Colors (Default)
	LightBackground = lipgloss.Color("#f8fafc")
	LightForeground = lipgloss.Color("#0f172a")
	LightPrimary    = lipgloss.Color("#2563eb") // Blue 600
	LightAccent     = lipgloss.Color("#7c3aed") // Violet 600
	LightMuted      = lipgloss.Color("#64748b")
	LightBorder     = lipgloss.Color("#e2e8f0")
	LightCard       = lipgloss.Color("#ffffff")

	// Dark Mode Colors
	DarkBackground = lipgloss.Color("#020617")
	DarkForeground = lipgloss.Color("#f1f5f9")
	DarkPrimary    = lipgloss.Color("#60a5fa") // Blue 400
	DarkAccent     = lipgloss.Color("#a78bfa") // Violet 400
	DarkMuted      = lipgloss.Color("#94a3b8")
	DarkBorder     = lipgloss.Color("#334155")
	DarkCard       = lipgloss.Color("#0f172a")

	// Semantic Colors (same in both modes)
	Destructive = lipgloss.Color("#dc2626")
	Success     = lipgloss.Color("#16a34a")
	Warning     = lipgloss.Color("#ca8a04")
	Info        = lipgloss.Color("#2563eb")
)

// typeColors maps the seed's color names to terminal colors.
var typeColors = map[string]lipgloss.Color{
	"purple": lipgloss.Color("#9333ea"),
	"blue":   lipgloss.Color("#2563eb"),
	"pink":   lipgloss.Color("#db2777"),
	"green":  lipgloss.Color("#16a34a"),
	"yellow": lipgloss.Color("#ca8a04"),
	"indigo": lipgloss.Color("#4f46e5"),
}

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Card       lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Card:       LightCard,
	}
}

// DarkTheme returns the dark mode theme
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Card:       DarkCard,
		IsDark:     true,
	}
}

// ThemeFor maps a provider mode to its palette.
func ThemeFor(mode theme.Mode) Theme {
	if mode == theme.Dark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	NavItem lipgloss.Style
	Footer  lipgloss.Style
	Sidebar lipgloss.Style
	Modal   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style

	// Components
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Tile         lipgloss.Style
	Badge        lipgloss.Style
	Button       lipgloss.Style
	ButtonGhost  lipgloss.Style
	Checked      lipgloss.Style
	Cursor       lipgloss.Style
	Divider      lipgloss.Style
	StatusBar    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Header: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(t.Border),

		NavItem: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),

		Sidebar: lipgloss.NewStyle().
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderRight(true).
			BorderForeground(t.Border),

		Modal: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Primary),

		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(t.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(Success).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(Destructive).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(Warning).Bold(true),

		Card: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		CardSelected: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Primary),

		Tile: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		Button: lipgloss.NewStyle().
			Background(t.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 1).
			Bold(true),

		ButtonGhost: lipgloss.NewStyle().
			Foreground(t.Primary).
			Padding(0, 1).
			Underline(true),

		Checked: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Divider: lipgloss.NewStyle().
			Foreground(t.Border),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// StylesFor builds styles for the provider's current mode.
func StylesFor(p *theme.Provider) Styles {
	return NewStyles(ThemeFor(p.Mode()))
}

// StatusColor is the badge background for a competition status.
func StatusColor(s competition.Status) lipgloss.Color {
	switch s {
	case competition.StatusActive:
		return Success
	case competition.StatusUpcoming:
		return Info
	case competition.StatusDisputed:
		return Destructive
	default:
		return lipgloss.Color("#6b7280")
	}
}

// TypeColor resolves a competition type's color name.
func TypeColor(t competition.CompetitionType) lipgloss.Color {
	if c, ok := typeColors[t.Color]; ok {
		return c
	}
	return lipgloss.Color("#6b7280")
}

// StatusBadge renders the colored status pill.
func (s Styles) StatusBadge(st competition.Status) string {
	return s.Badge.Background(StatusColor(st)).Render(st.Label())
}

// TypeBadge renders the colored type pill.
func (s Styles) TypeBadge(t competition.CompetitionType) string {
	return s.Badge.Background(TypeColor(t)).Render(t.Name)
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
