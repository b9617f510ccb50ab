package config

import "compete/internal/filter"

// UIConfig holds dashboard configuration.
type UIConfig struct {
	// DefaultSort is the sort key the dashboard opens with.
	DefaultSort string `yaml:"default_sort"`

	// PrizeMax is the top of the prize range control.
	PrizeMax float64 `yaml:"prize_max"`

	// PrizeStep is how far one keypress moves the prize bound.
	PrizeStep float64 `yaml:"prize_step"`

	// SidebarOpen shows the filter sidebar on start.
	SidebarOpen bool `yaml:"sidebar_open"`
}

// DefaultUIConfig returns sensible UI defaults.
func DefaultUIConfig() UIConfig {
	return UIConfig{
		DefaultSort: string(filter.SortTVL),
		PrizeMax:    filter.DefaultPrizeMax,
		PrizeStep:   filter.DefaultPrizeStep,
		SidebarOpen: true,
	}
}

// Collaborator names understood by actions.NewCollaborators.
const (
	CollaboratorConsole  = "console"
	CollaboratorRecorder = "recorder"
)

// ValidCollaborators lists the accepted collaborator names.
var ValidCollaborators = []string{CollaboratorConsole, CollaboratorRecorder}

// ActionsConfig selects where join, view and deploy requests go.
type ActionsConfig struct {
	Collaborator string `yaml:"collaborator"`
}
