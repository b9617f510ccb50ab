// Package actions holds the collaborators that receive the dashboard's
// outward-facing requests: joining a competition, viewing its details and
// deploying a drafted one. None of them touch a network; they stand in for
// the wallet and contract integrations that live elsewhere.
package actions

import (
	"context"

	"compete/internal/wizard"
)

// Handler receives per-competition actions. The id is always the id of the
// record the user acted on.
type Handler interface {
	Name() string
	Join(ctx context.Context, id string) error
	View(ctx context.Context, id string) error
}

// Collaborators bundles the handler and deployer chosen by configuration.
type Collaborators struct {
	Handler  Handler
	Deployer wizard.Deployer
}
