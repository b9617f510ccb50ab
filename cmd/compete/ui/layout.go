// Package ui layout constants for consistent spacing and dimensions
package ui

// Layout constants for panel sizing
const (
	SidebarWidth     = 30
	SidebarCollapsed = 0
	CardMinWidth     = 36
	CardGap          = 1
	StatTileMinWidth = 22

	HeaderHeight    = 2
	FooterHeight    = 2
	StatusBarHeight = 1
	StatsHeight     = 5

	// Responsive breakpoints
	MinimumTerminalWidth = 60
	CompactModeWidth     = 100
	FullFeaturesWidth    = 140

	ModalMaxWidth = 72
)

// LayoutConfig provides computed layout dimensions based on terminal size
type LayoutConfig struct {
	TerminalWidth  int
	TerminalHeight int
	SidebarOpen    bool
	IsCompact      bool
	IsFullWidth    bool
}

// NewLayoutConfig creates a layout configuration for the given terminal size
func NewLayoutConfig(width, height int, sidebarOpen bool) LayoutConfig {
	return LayoutConfig{
		TerminalWidth:  width,
		TerminalHeight: height,
		SidebarOpen:    sidebarOpen,
		IsCompact:      width < CompactModeWidth,
		IsFullWidth:    width >= FullFeaturesWidth,
	}
}

// SidebarWidth is the width the sidebar occupies, 0 when collapsed or when
// the terminal is too narrow to share.
func (l LayoutConfig) SidebarWidth() int {
	if !l.SidebarOpen || l.TerminalWidth < MinimumTerminalWidth {
		return SidebarCollapsed
	}
	return SidebarWidth
}

// ContentWidth is what is left for the grid next to the sidebar.
func (l LayoutConfig) ContentWidth() int {
	w := l.TerminalWidth - l.SidebarWidth()
	if w < CardMinWidth {
		return CardMinWidth
	}
	return w
}

// ContentHeight is the height below the header and above the footer.
func (l LayoutConfig) ContentHeight() int {
	h := l.TerminalHeight - HeaderHeight - FooterHeight - StatusBarHeight
	if h < 1 {
		return 1
	}
	return h
}

// GridColumns is how many cards fit side by side: 1 compact, up to 3 wide.
func (l LayoutConfig) GridColumns() int {
	cols := (l.ContentWidth() + CardGap) / (CardMinWidth + CardGap)
	switch {
	case cols < 1:
		return 1
	case cols > 3:
		return 3
	default:
		return cols
	}
}

// CardWidth is the outer width of one card in the grid.
func (l LayoutConfig) CardWidth() int {
	cols := l.GridColumns()
	return (l.ContentWidth() - CardGap*(cols-1)) / cols
}

// StatColumns is how many stat tiles share a row: 2 compact, 4 otherwise.
func (l LayoutConfig) StatColumns() int {
	if l.IsCompact {
		return 2
	}
	return 4
}

// ModalWidth clamps the wizard width to the terminal.
func (l LayoutConfig) ModalWidth() int {
	w := l.TerminalWidth - 4
	if w > ModalMaxWidth {
		return ModalMaxWidth
	}
	if w < 30 {
		return 30
	}
	return w
}
