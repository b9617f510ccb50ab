// Package dashboard is the root bubbletea model of the compete TUI. It owns
// every piece of mutable UI state (filters, sidebar, wizard, theme, detail
// pane) and composes the presentational renderers in the ui package.
package dashboard

import (
	"context"

	"compete/cmd/compete/ui"
	"compete/internal/actions"
	"compete/internal/competition"
	"compete/internal/config"
	"compete/internal/filter"
	"compete/internal/logging"
	"compete/internal/metrics"
	"compete/internal/theme"
	"compete/internal/wizard"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Focus is the region receiving keys when no modal is open.
type Focus int

const (
	FocusGrid Focus = iota
	FocusSidebar
	FocusSearch
)

// Deps are the collaborators the model is wired to.
type Deps struct {
	Theme   *theme.Provider
	Actions actions.Collaborators
	Metrics *metrics.Metrics
	// Context is passed to collaborator calls. Defaults to Background.
	Context context.Context
}

// Model is the root dashboard model.
type Model struct {
	ctx     context.Context
	cfg     *config.Config
	theme   *theme.Provider
	handler actions.Handler
	metrics *metrics.Metrics

	styles   ui.Styles
	markdown *ui.Markdown
	keys     keyMap
	help     help.Model

	// Data
	records []competition.Competition
	types   []competition.CompetitionType
	stats   competition.ProtocolStats
	visible []competition.Competition

	// Filters and sidebar
	filters       filter.State
	sidebarOpen   bool
	expanded      map[ui.Section]bool
	sidebarCursor int

	// Grid
	focus    Focus
	selected int
	search   textinput.Model
	body     viewport.Model

	// Detail pane
	showDetail bool
	detail     ui.DetailPageModel

	// Create wizard
	wiz         *wizard.Wizard
	wizFocus    int
	inputs      map[ui.WizardField]textinput.Model
	description textarea.Model
	progress    progress.Model

	statusMessage string
	width         int
	height        int
}

// New builds the dashboard over the seed dataset.
func New(cfg *config.Config, deps Deps) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	ctx := deps.Context
	if ctx == nil {
		ctx = context.Background()
	}
	provider := deps.Theme
	if provider == nil {
		provider = theme.Detect(cfg.Theme)
	}
	handler := deps.Actions.Handler
	deployer := deps.Actions.Deployer
	if handler == nil || deployer == nil {
		console := actions.NewConsole(deps.Metrics)
		if handler == nil {
			handler = console
		}
		if deployer == nil {
			deployer = console
		}
	}

	styles := ui.StylesFor(provider)
	md := ui.NewMarkdown()

	search := textinput.New()
	search.Placeholder = "Search competitions..."
	search.Prompt = "⌕ "
	search.CharLimit = 80
	search.Width = 28

	filters := filter.DefaultState().WithPrizeCeiling(cfg.UI.PrizeMax)
	if key, err := filter.ParseSortKey(cfg.UI.DefaultSort); err == nil {
		filters = filters.WithSortBy(key)
	}

	m := Model{
		ctx:      ctx,
		cfg:      cfg,
		theme:    provider,
		handler:  handler,
		metrics:  deps.Metrics,
		styles:   styles,
		markdown: md,
		keys:     newKeyMap(),
		help:     help.New(),

		records: competition.Seed(),
		types:   competition.Types(),
		stats:   competition.Stats(),

		filters:     filters,
		sidebarOpen: cfg.UI.SidebarOpen,
		expanded: map[ui.Section]bool{
			ui.SectionTypes:        true,
			ui.SectionStatus:       true,
			ui.SectionVerification: true,
			ui.SectionSort:         true,
		},

		search: search,
		body:   viewport.New(80, 20),
		detail: ui.NewDetailPageModel(md, styles),

		wiz:         wizard.New(deployer),
		inputs:      newWizardInputs(),
		description: newDescriptionInput(),
		progress:    progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),

		width:  100,
		height: 40,
	}
	m.visible = filter.Apply(m.records, m.filters)
	m.resize(m.width, m.height)
	logging.Boot("dashboard ready: %d competitions, theme %s, handler %s", len(m.records), provider.Mode(), handler.Name())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Filters returns the current filter state.
func (m Model) Filters() filter.State { return m.filters }

// Visible returns the records currently shown, in display order.
func (m Model) Visible() []competition.Competition { return m.visible }

// Wizard exposes the create wizard state machine.
func (m Model) Wizard() *wizard.Wizard { return m.wiz }

// Theme returns the theme provider.
func (m Model) Theme() *theme.Provider { return m.theme }

// StatusMessage is the last status-bar text.
func (m Model) StatusMessage() string { return m.statusMessage }

// Focus returns the focused region.
func (m Model) Focus() Focus { return m.focus }

// SidebarOpen reports whether the filter sidebar is shown.
func (m Model) SidebarOpen() bool { return m.sidebarOpen }

// DetailOpen reports whether the detail pane is shown.
func (m Model) DetailOpen() bool { return m.showDetail }

// Selected returns the highlighted card, if any.
func (m Model) Selected() (competition.Competition, bool) {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return competition.Competition{}, false
	}
	return m.visible[m.selected], true
}

func (m Model) layout() ui.LayoutConfig {
	return ui.NewLayoutConfig(m.width, m.height, m.sidebarOpen)
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	l := m.layout()
	m.help.Width = w
	m.body.Width = l.ContentWidth()
	m.body.Height = max(l.ContentHeight()-ui.StatsHeight, 3)
	m.detail.SetSize(w, l.ContentHeight())
	m.refreshBody()
}

// setFilters replaces the filter state and re-runs the engine.
func (m *Model) setFilters(st filter.State) {
	m.filters = st
	m.visible = filter.Apply(m.records, m.filters)
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 && len(m.visible) > 0 {
		m.selected = 0
	}
	if m.metrics != nil {
		m.metrics.FilterChanges.Inc()
		m.metrics.VisibleCount.Set(float64(len(m.visible)))
	}
	logging.Get(logging.CategoryFilter).
		With("search", st.Search, "types", st.Types, "status", st.Status, "verification", st.Verification, "sort", string(st.SortBy)).
		Debug("filters applied: %d of %d visible", len(m.visible), len(m.records))
	m.refreshBody()
}

// refreshBody re-renders the results grid into the scrolling body and keeps
// the selected card in view.
func (m *Model) refreshBody() {
	l := m.layout()
	m.body.SetContent(ui.RenderResults(m.visible, m.styles, l, m.selectedIndex()))

	if m.selected <= 0 {
		m.body.GotoTop()
		return
	}
	row := m.selected / l.GridColumns()
	lines := m.body.TotalLineCount()
	rows := (len(m.visible) + l.GridColumns() - 1) / l.GridColumns()
	if rows == 0 {
		return
	}
	// Approximate the row's first line from the average row height.
	perRow := max((lines-2)/rows, 1)
	top := 2 + row*perRow
	if top < m.body.YOffset || top+perRow > m.body.YOffset+m.body.Height {
		m.body.SetYOffset(top)
	}
}

func (m Model) selectedIndex() int {
	if m.focus != FocusGrid {
		return -1
	}
	return m.selected
}

func (m *Model) applyTheme() {
	m.styles = ui.StylesFor(m.theme)
	m.detail.SetStyles(m.styles)
	m.refreshBody()
}
