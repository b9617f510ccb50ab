// Package metrics counts dashboard activity with prometheus collectors held in
// a private registry. Nothing is served over HTTP; the CLI can dump the text
// exposition on exit.
package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "compete"

// Action labels.
const (
	ActionJoin   = "join"
	ActionView   = "view"
	ActionDeploy = "deploy"
)

// Metrics holds every collector the dashboard updates.
type Metrics struct {
	registry *prometheus.Registry

	Actions       *prometheus.CounterVec
	FilterChanges prometheus.Counter
	ThemeToggles  prometheus.Counter
	WizardOpened  prometheus.Counter
	VisibleCount  prometheus.Gauge
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		Actions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Join, view and deploy requests handed to collaborators",
		}, []string{"action", "outcome"}),
		FilterChanges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "changes_total",
			Help:      "Filter state replacements",
		}),
		ThemeToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "theme",
			Name:      "toggles_total",
			Help:      "Light/dark toggles",
		}),
		WizardOpened: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "wizard",
			Name:      "opened_total",
			Help:      "Create-competition wizard openings",
		}),
		VisibleCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "filter",
			Name:      "visible_competitions",
			Help:      "Competitions shown after the last filter pass",
		}),
	}
	m.registry.MustRegister(m.Actions, m.FilterChanges, m.ThemeToggles, m.WizardOpened, m.VisibleCount)
	return m
}

// ObserveAction counts one collaborator call.
func (m *Metrics) ObserveAction(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	m.Actions.WithLabelValues(action, outcome).Inc()
}

// Registry exposes the registry for tests and embedding.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Dump writes every metric family in the prometheus text format.
func (m *Metrics) Dump(w io.Writer) error {
	families, err := m.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
