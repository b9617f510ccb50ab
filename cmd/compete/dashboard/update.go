package dashboard

import (
	"fmt"
	"maps"

	"compete/cmd/compete/ui"
	"compete/internal/competition"
	"compete/internal/filter"
	"compete/internal/logging"
	"compete/internal/metrics"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// actionDoneMsg reports the outcome of a collaborator call made off the
// event loop.
type actionDoneMsg struct {
	action string
	id     string
	err    error
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		logging.UIDebug("resize %dx%d, %d grid columns", msg.Width, msg.Height, m.layout().GridColumns())
		return m, nil

	case tea.KeyMsg:
		model, cmd, _ := m.handleKeyMsg(msg)
		return model, cmd

	case actionDoneMsg:
		m.statusMessage = actionStatus(msg, m.records)
		return m, nil
	}

	// Cursor blink and other component messages.
	var cmd tea.Cmd
	switch {
	case m.wiz.IsOpen():
		m, cmd, _ = m.updateFocusedInput(msg)
	case m.focus == FocusSearch:
		m.search, cmd = m.search.Update(msg)
	}
	return m, cmd
}

// handleKeyMsg routes a key press. The bool reports whether the key was
// consumed.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit, true
	}

	// The wizard modal captures everything while open.
	if m.wiz.IsOpen() {
		return m.handleWizardKey(msg)
	}

	if m.focus == FocusSearch {
		return m.handleSearchKey(msg)
	}

	if m.showDetail {
		return m.handleDetailKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil, true

	case key.Matches(msg, m.keys.Theme):
		mode := m.theme.Toggle()
		m.applyTheme()
		if m.metrics != nil {
			m.metrics.ThemeToggles.Inc()
		}
		m.statusMessage = fmt.Sprintf("Theme: %s", mode)
		return m, nil, true

	case key.Matches(msg, m.keys.Search):
		m.focus = FocusSearch
		cmd := m.search.Focus()
		m.refreshBody()
		return m, cmd, true

	case key.Matches(msg, m.keys.Create):
		m.openWizard()
		return m, textinput.Blink, true

	case key.Matches(msg, m.keys.Sidebar):
		m.sidebarOpen = !m.sidebarOpen
		if !m.sidebarOpen && m.focus == FocusSidebar {
			m.focus = FocusGrid
		}
		m.resize(m.width, m.height)
		return m, nil, true

	case key.Matches(msg, m.keys.FocusSidebar):
		if m.focus == FocusSidebar {
			m.focus = FocusGrid
		} else {
			m.focus = FocusSidebar
			if !m.sidebarOpen {
				m.sidebarOpen = true
				m.resize(m.width, m.height)
			}
		}
		m.refreshBody()
		return m, nil, true

	case key.Matches(msg, m.keys.ResetFilters):
		m.search.SetValue("")
		m.setFilters(m.filters.Reset())
		m.statusMessage = "Filters reset"
		return m, nil, true

	case key.Matches(msg, m.keys.Sort):
		m.setFilters(m.filters.NextSort())
		m.statusMessage = "Sorted by " + m.filters.SortBy.Label()
		return m, nil, true
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKey(msg)
	}
	return m.handleGridKey(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter, tea.KeyTab:
		m.search.Blur()
		m.focus = FocusGrid
		m.refreshBody()
		return m, nil, true
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.filters.Search {
		m.setFilters(m.filters.WithSearch(q))
	}
	return m, cmd, true
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Back), msg.String() == "q":
		m.showDetail = false
		return m, nil, true
	case key.Matches(msg, m.keys.Join):
		var cmd tea.Cmd
		if c, ok := m.detail.Current(); ok {
			cmd = m.join(c)
		}
		return m, cmd, true
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd, true
}

func (m Model) handleGridKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	cols := m.layout().GridColumns()
	move := func(delta int) {
		next := m.selected + delta
		if next >= 0 && next < len(m.visible) {
			m.selected = next
			m.refreshBody()
		}
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		move(-1)
	case key.Matches(msg, m.keys.Right):
		move(1)
	case key.Matches(msg, m.keys.Up):
		move(-cols)
	case key.Matches(msg, m.keys.Down):
		move(cols)

	case key.Matches(msg, m.keys.View):
		c, ok := m.Selected()
		if !ok {
			return m, nil, true
		}
		m.detail.Show(c)
		m.showDetail = true
		return m, m.runAction(metrics.ActionView, c.ID), true

	case key.Matches(msg, m.keys.Join):
		c, ok := m.Selected()
		if !ok {
			return m, nil, true
		}
		cmd := m.join(c)
		return m, cmd, true

	case key.Matches(msg, m.keys.Back):
		m.statusMessage = ""

	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *Model) handleSidebarKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	rows := ui.SidebarRows(m.types, m.expanded)
	if m.sidebarCursor >= len(rows) {
		m.sidebarCursor = len(rows) - 1
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.sidebarCursor > 0 {
			m.sidebarCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.sidebarCursor < len(rows)-1 {
			m.sidebarCursor++
		}
	case key.Matches(msg, m.keys.Back):
		m.focus = FocusGrid
		m.refreshBody()

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.sidebarCursor < 0 || rows[m.sidebarCursor].Section != ui.SectionPrize {
			return *m, nil, false
		}
		step := m.cfg.UI.PrizeStep
		if key.Matches(msg, m.keys.Left) {
			step = -step
		}
		m.setFilters(m.filters.WithPrizeMax(m.filters.PrizeRange.Max + step))

	case key.Matches(msg, m.keys.Select):
		if m.sidebarCursor < 0 {
			return *m, nil, true
		}
		m.activateRow(rows[m.sidebarCursor])

	default:
		return *m, nil, false
	}
	return *m, nil, true
}

// activateRow folds a section header or toggles the option under the cursor.
func (m *Model) activateRow(row ui.SidebarRow) {
	if row.Header {
		expanded := maps.Clone(m.expanded)
		expanded[row.Section] = !expanded[row.Section]
		m.expanded = expanded
		return
	}
	st := m.filters
	switch row.Section {
	case ui.SectionTypes:
		st = st.ToggleType(row.Value)
	case ui.SectionStatus:
		st = st.ToggleStatus(competition.Status(row.Value))
	case ui.SectionVerification:
		st = st.ToggleVerification(competition.VerificationMethod(row.Value))
	case ui.SectionSort:
		st = st.WithSortBy(filter.SortKey(row.Value))
	default:
		return
	}
	m.setFilters(st)
}

// join refuses closed competitions before anything reaches the handler.
func (m *Model) join(c competition.Competition) tea.Cmd {
	if !c.CanJoin() {
		m.statusMessage = fmt.Sprintf("%s is %s and cannot be joined", c.Title, c.Status.Label())
		return nil
	}
	return m.runAction(metrics.ActionJoin, c.ID)
}

func (m Model) runAction(action, id string) tea.Cmd {
	h, ctx := m.handler, m.ctx
	return func() tea.Msg {
		var err error
		switch action {
		case metrics.ActionJoin:
			err = h.Join(ctx, id)
		case metrics.ActionView:
			err = h.View(ctx, id)
		}
		if err != nil {
			logging.ActionsError("%s %s failed: %v", action, id, err)
		}
		return actionDoneMsg{action: action, id: id, err: err}
	}
}

func actionStatus(msg actionDoneMsg, records []competition.Competition) string {
	title := msg.id
	if c, ok := competition.FindByID(records, msg.id); ok {
		title = c.Title
	}
	if msg.err != nil {
		return fmt.Sprintf("Could not %s %s: %v", msg.action, title, msg.err)
	}
	switch msg.action {
	case metrics.ActionJoin:
		return "Join requested for " + title
	case metrics.ActionView:
		return "Viewing " + title
	}
	return ""
}
