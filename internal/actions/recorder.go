package actions

import (
	"context"
	"slices"
	"sync"

	"compete/internal/logging"
	"compete/internal/metrics"
	"compete/internal/wizard"
)

// Call is one request seen by a Recorder.
type Call struct {
	Action string
	ID     string
}

// Recorder keeps every request in memory. It backs --dry-run and tests.
// Errors can be injected per action with Fail.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	drafts  []wizard.Draft
	fail    map[string]error
	metrics *metrics.Metrics
}

// NewRecorder returns an empty recorder. m may be nil.
func NewRecorder(m *metrics.Metrics) *Recorder {
	return &Recorder{fail: make(map[string]error), metrics: m}
}

func (r *Recorder) Name() string { return "recorder" }

// Fail makes subsequent calls of action return err. A nil err clears it.
func (r *Recorder) Fail(action string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil {
		delete(r.fail, action)
		return
	}
	r.fail[action] = err
}

func (r *Recorder) record(action, id string) error {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Action: action, ID: id})
	err := r.fail[action]
	r.mu.Unlock()

	r.metrics.ObserveAction(action, err)
	if err != nil {
		logging.ActionsError("%s %s failed: %v", action, id, err)
	}
	return err
}

func (r *Recorder) Join(_ context.Context, id string) error {
	return r.record(metrics.ActionJoin, id)
}

func (r *Recorder) View(_ context.Context, id string) error {
	return r.record(metrics.ActionView, id)
}

func (r *Recorder) Deploy(_ context.Context, d wizard.Draft) error {
	r.mu.Lock()
	r.drafts = append(r.drafts, d)
	r.mu.Unlock()
	return r.record(metrics.ActionDeploy, d.ID)
}

// Calls returns a copy of every recorded request in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Drafts returns a copy of every deployed draft in order.
func (r *Recorder) Drafts() []wizard.Draft {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.drafts)
}
