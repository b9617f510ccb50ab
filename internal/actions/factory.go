package actions

import (
	"fmt"

	"compete/internal/config"
	"compete/internal/metrics"
)

// NewCollaborators builds the collaborator named in cfg. m may be nil.
func NewCollaborators(cfg config.ActionsConfig, m *metrics.Metrics) (Collaborators, error) {
	switch cfg.Collaborator {
	case config.CollaboratorConsole, "":
		c := NewConsole(m)
		return Collaborators{Handler: c, Deployer: c}, nil
	case config.CollaboratorRecorder:
		r := NewRecorder(m)
		return Collaborators{Handler: r, Deployer: r}, nil
	default:
		return Collaborators{}, fmt.Errorf("unknown actions collaborator: %s", cfg.Collaborator)
	}
}
