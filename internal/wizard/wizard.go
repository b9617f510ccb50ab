// Package wizard implements the four-step create-competition flow:
// Basic Info -> Prize Structure -> Verification -> Review.
//
// There is deliberately no validation between steps. Submit is only
// accepted on the review step; it hands the draft to a Deployer once and
// then resets to a blank, closed wizard.
package wizard

import (
	"context"
	"errors"
	"fmt"

	"compete/internal/competition"
	"compete/internal/logging"

	"github.com/google/uuid"
)

// Step is a 1-based position in the flow.
type Step int

const (
	StepBasicInfo Step = iota + 1
	StepPrizeStructure
	StepVerification
	StepReview
)

// TotalSteps is the number of steps in the flow.
const TotalSteps = int(StepReview)

// Title is the heading rendered for the step.
func (s Step) Title() string {
	switch s {
	case StepBasicInfo:
		return "Basic Information"
	case StepPrizeStructure:
		return "Prize Structure"
	case StepVerification:
		return "Verification Method"
	case StepReview:
		return "Review & Deploy"
	default:
		return fmt.Sprintf("Step %d", int(s))
	}
}

var (
	// ErrNotAtReview is returned by Submit before the review step.
	ErrNotAtReview = errors.New("wizard: submit is only available on the review step")
	// ErrClosed is returned by Submit when the wizard is not open.
	ErrClosed = errors.New("wizard: not open")
)

// Deployer receives a completed draft. What it does with it is outside the
// dashboard's concern.
type Deployer interface {
	Deploy(ctx context.Context, d Draft) error
}

// Wizard is the step state machine plus the draft it accumulates.
type Wizard struct {
	deployer Deployer
	step     Step
	draft    Draft
	open     bool
}

// New returns a closed wizard that submits to deployer.
func New(deployer Deployer) *Wizard {
	return &Wizard{
		deployer: deployer,
		step:     StepBasicInfo,
		draft:    BlankDraft(),
	}
}

// Open starts a fresh draft on the first step.
func (w *Wizard) Open() {
	w.step = StepBasicInfo
	w.draft = BlankDraft()
	w.draft.ID = uuid.NewString()
	w.open = true
	logging.Wizard("opened draft %s", w.draft.ID)
}

// Close discards the draft. There is no save-progress.
func (w *Wizard) Close() {
	if w.open {
		logging.Wizard("closed draft %s at step %d without submitting", w.draft.ID, w.step)
		logging.Audit().Log(logging.AuditEvent{
			Type:    logging.AuditDraftAbandoned,
			Target:  w.draft.ID,
			Success: true,
			Fields:  map[string]interface{}{"step": int(w.step)},
		})
	}
	w.reset()
}

func (w *Wizard) reset() {
	w.step = StepBasicInfo
	w.draft = BlankDraft()
	w.open = false
}

// Next advances one step; it is a no-op on the review step.
func (w *Wizard) Next() {
	if w.step < StepReview {
		w.step++
		logging.WizardDebug("draft %s advanced to step %d", w.draft.ID, w.step)
	}
}

// Previous retreats one step; it is a no-op on the first step.
func (w *Wizard) Previous() {
	if w.step > StepBasicInfo {
		w.step--
		logging.WizardDebug("draft %s back to step %d", w.draft.ID, w.step)
	}
}

// Submit hands the draft to the deployer exactly once, then resets the
// wizard to a blank closed state. The reset happens even when the deployer
// fails; the deployer error is returned to the caller.
func (w *Wizard) Submit(ctx context.Context) error {
	if !w.open {
		return ErrClosed
	}
	if w.step != StepReview {
		return ErrNotAtReview
	}

	d := w.draft
	w.reset()

	logging.Wizard("submitting draft %s (%q)", d.ID, d.Name)
	if w.deployer == nil {
		logging.Audit().DraftSubmitted(d.ID, d.Name, nil)
		return nil
	}
	err := w.deployer.Deploy(ctx, d)
	logging.Audit().DraftSubmitted(d.ID, d.Name, err)
	if err != nil {
		logging.Get(logging.CategoryWizard).Error("deploy of draft %s failed: %v", d.ID, err)
		return fmt.Errorf("deploy draft %s: %w", d.ID, err)
	}
	return nil
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Draft returns a copy of the accumulated form.
func (w *Wizard) Draft() Draft { return w.draft }

// IsOpen reports whether the wizard is showing.
func (w *Wizard) IsOpen() bool { return w.open }

// Progress is the completed fraction used by the progress bar.
func (w *Wizard) Progress() float64 {
	return float64(w.step) / float64(TotalSteps)
}

// Update replaces the draft with fn applied to a copy of it. The ID is
// preserved.
func (w *Wizard) Update(fn func(Draft) Draft) {
	id := w.draft.ID
	w.draft = fn(w.draft)
	w.draft.ID = id
	w.draft.DisputeWindow = clampDisputeWindow(w.draft.DisputeWindow)
}

// SelectType sets the competition type id.
func (w *Wizard) SelectType(id string) {
	w.Update(func(d Draft) Draft {
		d.Type = id
		return d
	})
}

// CycleType moves the type selection through the lookup table.
func (w *Wizard) CycleType(delta int) {
	types := competition.Types()
	ids := make([]string, len(types))
	for i, t := range types {
		ids[i] = t.ID
	}
	w.SelectType(cycle(ids, w.draft.Type, delta))
}

// CycleToken moves the prize token through Tokens().
func (w *Wizard) CycleToken(delta int) {
	w.Update(func(d Draft) Draft {
		d.Token = cycle(Tokens(), d.Token, delta)
		return d
	})
}

// CycleDistribution moves the payout policy through Distributions.
func (w *Wizard) CycleDistribution(delta int) {
	w.Update(func(d Draft) Draft {
		d.Distribution = cycle(Distributions(), d.Distribution, delta)
		return d
	})
}

// CycleVerification moves the verification method.
func (w *Wizard) CycleVerification(delta int) {
	w.Update(func(d Draft) Draft {
		d.VerificationMethod = cycle(competition.AllVerificationMethods(), d.VerificationMethod, delta)
		return d
	})
}

// ToggleEntryFee flips whether an entry fee is required.
func (w *Wizard) ToggleEntryFee() {
	w.Update(func(d Draft) Draft {
		d.EntryFeeEnabled = !d.EntryFeeEnabled
		return d
	})
}

// SetDisputeWindow sets the dispute window in days, clamped to [1, 30].
func (w *Wizard) SetDisputeWindow(days int) {
	w.Update(func(d Draft) Draft {
		d.DisputeWindow = days
		return d
	})
}
