package metrics

import (
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveActionSplitsOutcome(t *testing.T) {
	m := New()
	m.ObserveAction(ActionJoin, nil)
	m.ObserveAction(ActionJoin, nil)
	m.ObserveAction(ActionJoin, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Actions.WithLabelValues(ActionJoin, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Actions.WithLabelValues(ActionJoin, "error")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.Actions.WithLabelValues(ActionDeploy, "ok")))
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	m.ObserveAction(ActionView, nil)
}

func TestRegistriesAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.FilterChanges.Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(a.FilterChanges))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.FilterChanges))
}

func TestDumpWritesTextExposition(t *testing.T) {
	m := New()
	m.ObserveAction(ActionView, nil)
	m.ThemeToggles.Inc()
	m.VisibleCount.Set(5)

	var sb strings.Builder
	require.NoError(t, m.Dump(&sb))
	out := sb.String()

	assert.Contains(t, out, "# TYPE compete_actions_total counter")
	assert.Contains(t, out, `compete_actions_total{action="view",outcome="ok"} 1`)
	assert.Contains(t, out, "compete_theme_toggles_total 1")
	assert.Contains(t, out, "compete_filter_visible_competitions 5")
}
