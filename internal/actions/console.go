package actions

import (
	"context"

	"compete/internal/logging"
	"compete/internal/metrics"
	"compete/internal/wizard"
)

// Console logs every request to the actions category and counts it.
type Console struct {
	metrics *metrics.Metrics
}

// NewConsole returns a console collaborator. m may be nil.
func NewConsole(m *metrics.Metrics) *Console {
	return &Console{metrics: m}
}

func (c *Console) Name() string { return "console" }

func (c *Console) Join(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Actions("join competition %s", id)
	logging.Audit().Join(id, nil)
	c.metrics.ObserveAction(metrics.ActionJoin, nil)
	return nil
}

func (c *Console) View(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Actions("view competition %s", id)
	logging.Audit().View(id, nil)
	c.metrics.ObserveAction(metrics.ActionView, nil)
	return nil
}

// Deploy logs the draft that would have been sent on-chain.
func (c *Console) Deploy(ctx context.Context, d wizard.Draft) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	logging.Get(logging.CategoryActions).
		With("draft", d.ID, "type", d.Type, "token", d.Token, "verification", string(d.VerificationMethod)).
		Info("deploy competition %q prize %s %s", d.Name, d.PrizePool, d.Token)
	c.metrics.ObserveAction(metrics.ActionDeploy, nil)
	return nil
}
