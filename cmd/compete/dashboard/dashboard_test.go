package dashboard

import (
	"errors"
	"strings"
	"testing"

	"compete/internal/actions"
	"compete/internal/competition"
	"compete/internal/config"
	"compete/internal/filter"
	"compete/internal/metrics"
	"compete/internal/theme"
	"compete/internal/wizard"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type harness struct {
	model   Model
	rec     *actions.Recorder
	metrics *metrics.Metrics
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return newHarnessWithConfig(t, config.DefaultConfig())
}

func newHarnessWithConfig(t *testing.T, cfg *config.Config) *harness {
	t.Helper()
	met := metrics.New()
	rec := actions.NewRecorder(met)
	m := New(cfg, Deps{
		Theme:   theme.New(theme.Light),
		Actions: actions.Collaborators{Handler: rec, Deployer: rec},
		Metrics: met,
	})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 140, Height: 50})
	return &harness{model: next.(Model), rec: rec, metrics: met}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// press feeds keys through Update and returns the last command.
func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = h.model.Update(keyMsg(k))
		h.model = next.(Model)
	}
	return cmd
}

func (h *harness) typeText(s string) {
	for _, r := range s {
		h.press(string(r))
	}
}

// run executes a collaborator command and feeds its result back.
func (h *harness) run(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	_, ok := msg.(actionDoneMsg)
	require.True(t, ok, "expected actionDoneMsg, got %T", msg)
	next, _ := h.model.Update(msg)
	h.model = next.(Model)
}

func (h *harness) selectID(t *testing.T, id string) {
	t.Helper()
	for i, c := range h.model.visible {
		if c.ID == id {
			h.model.selected = i
			return
		}
	}
	t.Fatalf("competition %s not visible", id)
}

func TestNewShowsEverythingSortedByPrize(t *testing.T) {
	h := newHarness(t)
	require.Len(t, h.model.Visible(), len(competition.Seed()))
	assert.True(t, h.model.Filters().IsDefault())
	assert.Equal(t, filter.SortTVL, h.model.Filters().SortBy)

	vis := h.model.Visible()
	for i := 1; i < len(vis); i++ {
		assert.GreaterOrEqual(t, vis[i-1].PrizeAmount(), vis[i].PrizeAmount())
	}
}

func TestThemeToggle(t *testing.T) {
	h := newHarness(t)
	h.press("t")
	assert.Equal(t, theme.Dark, h.model.Theme().Mode())
	assert.True(t, h.model.styles.Theme.IsDark)
	h.press("t")
	assert.Equal(t, theme.Light, h.model.Theme().Mode())
	assert.Equal(t, 2.0, testutil.ToFloat64(h.metrics.ThemeToggles))
}

func TestSearchNarrowsResults(t *testing.T) {
	h := newHarness(t)
	h.press("/")
	require.Equal(t, FocusSearch, h.model.Focus())

	h.typeText("hack")
	assert.Equal(t, "hack", h.model.Filters().Search)
	require.NotEmpty(t, h.model.Visible())
	assert.Less(t, len(h.model.Visible()), len(competition.Seed()))

	h.press("esc")
	assert.Equal(t, FocusGrid, h.model.Focus())
	assert.Equal(t, "hack", h.model.Filters().Search)
	assert.Equal(t, float64(len(h.model.Visible())), testutil.ToFloat64(h.metrics.VisibleCount))
}

func TestSortCycle(t *testing.T) {
	h := newHarness(t)
	h.press("o")
	assert.Equal(t, filter.SortTime, h.model.Filters().SortBy)
	assert.Contains(t, h.model.StatusMessage(), "Time Remaining")
}

func TestSidebarToggleTypeAndReset(t *testing.T) {
	h := newHarness(t)
	h.press("tab")
	require.Equal(t, FocusSidebar, h.model.Focus())

	// Row 0 is the types header, row 1 the first type.
	h.press("down", "space")
	assert.Equal(t, []string{"esports"}, h.model.Filters().Types)
	require.NotEmpty(t, h.model.Visible())
	for _, c := range h.model.Visible() {
		assert.Equal(t, "esports", c.Type.ID)
	}

	h.press("r")
	assert.True(t, h.model.Filters().IsDefault())
	assert.Len(t, h.model.Visible(), len(competition.Seed()))
}

func TestSidebarPrizeStep(t *testing.T) {
	h := newHarness(t)
	h.press("tab")
	// types header + six types, then the prize row.
	for i := 0; i < 7; i++ {
		h.press("down")
	}
	h.press("left", "left")
	assert.Equal(t, float64(98000), h.model.Filters().PrizeRange.Max)
	h.press("right")
	assert.Equal(t, float64(99000), h.model.Filters().PrizeRange.Max)
}

func TestSidebarPrizeCeilingFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.PrizeMax = 200000
	h := newHarnessWithConfig(t, cfg)

	assert.Equal(t, float64(200000), h.model.Filters().PrizeRange.Max)
	assert.True(t, h.model.Filters().IsDefault())

	h.press("tab")
	for i := 0; i < 7; i++ {
		h.press("down")
	}
	h.press("right")
	assert.Equal(t, float64(200000), h.model.Filters().PrizeRange.Max, "ceiling holds")

	for i := 0; i < 60; i++ {
		h.press("left")
	}
	assert.Equal(t, float64(140000), h.model.Filters().PrizeRange.Max)
	h.press("right")
	assert.Equal(t, float64(141000), h.model.Filters().PrizeRange.Max, "above the built-in default")

	h.press("r")
	assert.Equal(t, float64(200000), h.model.Filters().PrizeRange.Max)
}

func TestSidebarFoldsSection(t *testing.T) {
	h := newHarness(t)
	before := h.model
	h.press("tab", "space")
	assert.False(t, h.model.expanded["types"])
	assert.True(t, h.model.Filters().IsDefault())
	assert.True(t, before.expanded["types"], "earlier model values keep their fold state")
}

func TestJoinActiveCompetition(t *testing.T) {
	h := newHarness(t)
	h.selectID(t, "1")
	cmd := h.press("j")
	h.run(t, cmd)

	assert.Equal(t, []actions.Call{{Action: metrics.ActionJoin, ID: "1"}}, h.rec.Calls())
	assert.Contains(t, h.model.StatusMessage(), "Join requested")
}

func TestJoinEndedCompetitionIsRefused(t *testing.T) {
	h := newHarness(t)
	h.selectID(t, "5")
	cmd := h.press("j")
	assert.Nil(t, cmd)
	assert.Empty(t, h.rec.Calls())
	assert.Contains(t, h.model.StatusMessage(), "cannot be joined")
}

func TestJoinFailureShownInStatus(t *testing.T) {
	h := newHarness(t)
	h.rec.Fail(metrics.ActionJoin, errors.New("wallet locked"))
	h.selectID(t, "1")
	h.run(t, h.press("j"))
	assert.Contains(t, h.model.StatusMessage(), "wallet locked")
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.Actions.WithLabelValues(metrics.ActionJoin, "error")))
}

func TestViewOpensDetail(t *testing.T) {
	h := newHarness(t)
	h.selectID(t, "2")
	cmd := h.press("v")
	require.True(t, h.model.DetailOpen())
	h.run(t, cmd)
	assert.Equal(t, []actions.Call{{Action: metrics.ActionView, ID: "2"}}, h.rec.Calls())

	c, ok := h.model.detail.Current()
	require.True(t, ok)
	assert.Equal(t, "2", c.ID)

	h.press("esc")
	assert.False(t, h.model.DetailOpen())
}

func TestWizardCreateAndDeploy(t *testing.T) {
	h := newHarness(t)
	h.press("c")
	require.True(t, h.model.Wizard().IsOpen())
	assert.Equal(t, 1.0, testutil.ToFloat64(h.metrics.WizardOpened))

	h.typeText("Cup t")
	assert.Equal(t, "Cup t", h.model.Wizard().Draft().Name, "shortcut keys are plain text in a field")
	assert.Equal(t, theme.Light, h.model.Theme().Mode())

	// name -> description -> type
	h.press("tab", "tab", "right")
	assert.Equal(t, "esports", h.model.Wizard().Draft().Type)

	h.press("ctrl+n")
	require.Equal(t, wizard.StepPrizeStructure, h.model.Wizard().Step())
	h.typeText("5,000")
	h.press("tab", "right")
	assert.Equal(t, "ETH", h.model.Wizard().Draft().Token)

	h.press("ctrl+n", "down", "right", "right")
	assert.Equal(t, wizard.StepVerification, h.model.Wizard().Step())
	assert.Equal(t, 9, h.model.Wizard().Draft().DisputeWindow)

	h.press("ctrl+n")
	require.Equal(t, wizard.StepReview, h.model.Wizard().Step())
	assert.Contains(t, h.model.View(), "Deploy Competition")

	h.press("enter")
	assert.False(t, h.model.Wizard().IsOpen())
	drafts := h.rec.Drafts()
	require.Len(t, drafts, 1)
	assert.Equal(t, "Cup t", drafts[0].Name)
	assert.Equal(t, "5,000", drafts[0].PrizePool)
	assert.Equal(t, "ETH", drafts[0].Token)
	assert.Contains(t, h.model.StatusMessage(), "submitted for deployment")
}

func TestWizardEnterBeforeReviewNeverDeploys(t *testing.T) {
	h := newHarness(t)
	// Enter advances through fields (tab leaves the multi-line description)
	// and off the last field of a step onto the next one.
	h.press("c", "enter", "tab", "enter", "enter")
	assert.Equal(t, wizard.StepBasicInfo, h.model.Wizard().Step())
	h.press("enter")
	assert.Equal(t, wizard.StepPrizeStructure, h.model.Wizard().Step())
	assert.Empty(t, h.rec.Drafts())
}

func TestWizardDeployFailureStillResets(t *testing.T) {
	h := newHarness(t)
	h.rec.Fail(metrics.ActionDeploy, errors.New("rpc down"))
	h.press("c", "ctrl+n", "ctrl+n", "ctrl+n", "enter")
	assert.False(t, h.model.Wizard().IsOpen())
	assert.Contains(t, h.model.StatusMessage(), "rpc down")
}

func TestWizardEscDiscards(t *testing.T) {
	h := newHarness(t)
	h.press("c")
	h.typeText("gone")
	h.press("esc")
	assert.False(t, h.model.Wizard().IsOpen())
	assert.Empty(t, h.model.Wizard().Draft().Name)
	assert.Empty(t, h.rec.Drafts())

	h.press("c")
	assert.Empty(t, h.model.Wizard().Draft().Name)
	assert.Empty(t, h.model.inputs[0].Value())
}

func TestSidebarHide(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.model.SidebarOpen())
	h.press("s")
	assert.False(t, h.model.SidebarOpen())
	assert.NotContains(t, h.model.View(), "Filters")
}

func TestQuit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		h := newHarness(t)
		cmd := h.press(k)
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestViewComposition(t *testing.T) {
	h := newHarness(t)
	out := h.model.View()
	for _, want := range []string{"CompeteProtocol", "Available Competitions", "Filters", "Connect Wallet"} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}
