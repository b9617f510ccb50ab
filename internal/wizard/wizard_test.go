package wizard

import (
	"context"
	"errors"
	"testing"

	"compete/internal/competition"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDeployer struct {
	calls []Draft
	err   error
}

func (f *fakeDeployer) Deploy(_ context.Context, d Draft) error {
	f.calls = append(f.calls, d)
	return f.err
}

func advanceTo(w *Wizard, step Step) {
	for w.Step() < step {
		w.Next()
	}
}

func TestNewIsClosed(t *testing.T) {
	w := New(nil)
	assert.False(t, w.IsOpen())
	assert.Equal(t, StepBasicInfo, w.Step())
	assert.Equal(t, BlankDraft(), w.Draft())
}

func TestOpenStartsFreshDraft(t *testing.T) {
	w := New(nil)
	w.Open()
	first := w.Draft().ID
	require.NotEmpty(t, first)

	w.Close()
	w.Open()
	assert.NotEqual(t, first, w.Draft().ID)
	assert.True(t, w.IsOpen())
	assert.Equal(t, "USDC", w.Draft().Token)
	assert.Equal(t, DistributionWinnerTakesAll, w.Draft().Distribution)
	assert.Equal(t, competition.VerificationOracle, w.Draft().VerificationMethod)
	assert.Equal(t, DefaultDisputeWindow, w.Draft().DisputeWindow)
}

func TestNavigationBoundaries(t *testing.T) {
	w := New(nil)
	w.Open()

	w.Previous()
	assert.Equal(t, StepBasicInfo, w.Step(), "previous on step 1 is a no-op")

	for i := 0; i < 10; i++ {
		w.Next()
	}
	assert.Equal(t, StepReview, w.Step(), "next on step 4 is a no-op")
	assert.InDelta(t, 1.0, w.Progress(), 1e-9)

	w.Previous()
	assert.Equal(t, StepVerification, w.Step())
	assert.InDelta(t, 0.75, w.Progress(), 1e-9)
}

func TestNoValidationBetweenSteps(t *testing.T) {
	w := New(nil)
	w.Open()
	require.NotEmpty(t, w.Draft().Missing())

	advanceTo(w, StepReview)
	assert.Equal(t, StepReview, w.Step())
}

func TestSubmitBeforeReviewDoesNotDeploy(t *testing.T) {
	dep := &fakeDeployer{}
	w := New(dep)
	w.Open()

	for _, step := range []Step{StepBasicInfo, StepPrizeStructure, StepVerification} {
		advanceTo(w, step)
		err := w.Submit(context.Background())
		assert.ErrorIs(t, err, ErrNotAtReview, "step %d", step)
		assert.True(t, w.IsOpen())
		assert.Equal(t, step, w.Step())
	}
	assert.Empty(t, dep.calls)
}

func TestSubmitWhenClosed(t *testing.T) {
	dep := &fakeDeployer{}
	w := New(dep)
	assert.ErrorIs(t, w.Submit(context.Background()), ErrClosed)
	assert.Empty(t, dep.calls)
}

func TestSubmitDeploysOnceAndResets(t *testing.T) {
	dep := &fakeDeployer{}
	w := New(dep)
	w.Open()
	w.Update(func(d Draft) Draft {
		d.Name = "Speedrun Cup"
		d.PrizePool = "5,000"
		return d
	})
	w.SelectType("esports")
	id := w.Draft().ID
	advanceTo(w, StepReview)

	require.NoError(t, w.Submit(context.Background()))
	require.Len(t, dep.calls, 1)

	got := dep.calls[0]
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "Speedrun Cup", got.Name)
	assert.Equal(t, "5,000", got.PrizePool)
	assert.Equal(t, "Esports", got.TypeName())

	assert.False(t, w.IsOpen())
	assert.Equal(t, StepBasicInfo, w.Step())
	assert.Equal(t, BlankDraft(), w.Draft())
}

func TestSubmitResetsEvenWhenDeployFails(t *testing.T) {
	boom := errors.New("boom")
	dep := &fakeDeployer{err: boom}
	w := New(dep)
	w.Open()
	advanceTo(w, StepReview)

	err := w.Submit(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, dep.calls, 1)
	assert.False(t, w.IsOpen())
	assert.Equal(t, StepBasicInfo, w.Step())
}

func TestCloseDiscardsDraft(t *testing.T) {
	w := New(nil)
	w.Open()
	w.Update(func(d Draft) Draft {
		d.Name = "abandoned"
		return d
	})
	w.Next()
	w.Close()

	assert.False(t, w.IsOpen())
	assert.Equal(t, StepBasicInfo, w.Step())
	assert.Empty(t, w.Draft().Name)
}

func TestDraftIsACopy(t *testing.T) {
	w := New(nil)
	w.Open()
	d := w.Draft()
	d.Name = "mutated"
	assert.Empty(t, w.Draft().Name)
}

func TestUpdateKeepsID(t *testing.T) {
	w := New(nil)
	w.Open()
	id := w.Draft().ID
	w.Update(func(d Draft) Draft {
		return Draft{Name: "replaced"}
	})
	assert.Equal(t, id, w.Draft().ID)
	assert.Equal(t, "replaced", w.Draft().Name)
}

func TestSetDisputeWindowClamps(t *testing.T) {
	w := New(nil)
	w.Open()

	w.SetDisputeWindow(0)
	assert.Equal(t, MinDisputeWindow, w.Draft().DisputeWindow)
	w.SetDisputeWindow(45)
	assert.Equal(t, MaxDisputeWindow, w.Draft().DisputeWindow)
	w.SetDisputeWindow(14)
	assert.Equal(t, 14, w.Draft().DisputeWindow)
}

func TestCyclers(t *testing.T) {
	w := New(nil)
	w.Open()

	w.CycleToken(1)
	assert.Equal(t, "ETH", w.Draft().Token)
	w.CycleToken(-2)
	assert.Equal(t, "DAI", w.Draft().Token)

	w.CycleDistribution(1)
	assert.Equal(t, DistributionSplit, w.Draft().Distribution)
	assert.Equal(t, "Top 3 Split", w.Draft().Distribution.Label())
	assert.Equal(t, "60% / 25% / 15% distribution", w.Draft().Distribution.Description())

	w.CycleVerification(-1)
	assert.Equal(t, competition.VerificationHybrid, w.Draft().VerificationMethod)

	w.CycleType(1)
	assert.Equal(t, "esports", w.Draft().Type, "unset type starts at the first option")
	w.CycleType(1)
	assert.Equal(t, "hackathon", w.Draft().Type)

	w.ToggleEntryFee()
	assert.True(t, w.Draft().EntryFeeEnabled)
	assert.Contains(t, w.Draft().Missing(), "entry fee")
}

func TestTokensReturnsFreshSlice(t *testing.T) {
	tokens := Tokens()
	tokens[0] = "DOGE"
	assert.Equal(t, []string{"USDC", "ETH", "USDT", "DAI"}, Tokens())

	w := New(nil)
	w.Open()
	w.CycleToken(0)
	assert.Equal(t, "USDC", w.Draft().Token)
}

func TestStepTitles(t *testing.T) {
	assert.Equal(t, "Basic Information", StepBasicInfo.Title())
	assert.Equal(t, "Review & Deploy", StepReview.Title())
	assert.Equal(t, "Step 9", Step(9).Title())
}
