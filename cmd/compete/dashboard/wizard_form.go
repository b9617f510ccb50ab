package dashboard

import (
	"errors"
	"fmt"
	"maps"

	"compete/cmd/compete/ui"
	"compete/internal/wizard"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var textFields = []ui.WizardField{
	ui.FieldName, ui.FieldStartDate, ui.FieldEndDate, ui.FieldPrizePool, ui.FieldEntryFee,
}

func newWizardInputs() map[ui.WizardField]textinput.Model {
	placeholders := map[ui.WizardField]string{
		ui.FieldName:      "e.g., Global Esports Championship",
		ui.FieldStartDate: "YYYY-MM-DD",
		ui.FieldEndDate:   "YYYY-MM-DD",
		ui.FieldPrizePool: "10,000",
		ui.FieldEntryFee:  "50",
	}
	inputs := make(map[ui.WizardField]textinput.Model, len(textFields))
	for _, f := range textFields {
		ti := textinput.New()
		ti.Placeholder = placeholders[f]
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 40
		inputs[f] = ti
	}
	return inputs
}

func newDescriptionInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Describe your competition, rules, and requirements..."
	ta.ShowLineNumbers = false
	ta.SetWidth(48)
	ta.SetHeight(3)
	ta.CharLimit = 1000
	return ta
}

func (m *Model) openWizard() {
	m.wiz.Open()
	m.inputs = newWizardInputs()
	m.description = newDescriptionInput()
	m.wizFocus = 0
	m.focusWizardField()
	if m.metrics != nil {
		m.metrics.WizardOpened.Inc()
	}
}

// wizardField returns the focused control, or -1 on the review step.
func (m Model) wizardField() ui.WizardField {
	fields := ui.StepFields(m.wiz.Step(), m.wiz.Draft())
	if len(fields) == 0 {
		return -1
	}
	return fields[min(max(m.wizFocus, 0), len(fields)-1)]
}

func (m *Model) focusWizardField() tea.Cmd {
	inputs := make(map[ui.WizardField]textinput.Model, len(m.inputs))
	for f, ti := range m.inputs {
		ti.Blur()
		inputs[f] = ti
	}
	m.inputs = inputs
	m.description.Blur()

	switch f := m.wizardField(); {
	case f == ui.FieldDescription:
		return m.description.Focus()
	case f.IsText():
		ti := m.inputs[f]
		cmd := ti.Focus()
		m.inputs[f] = ti
		return cmd
	}
	return nil
}

func (m *Model) moveWizardFocus(delta int) tea.Cmd {
	n := len(ui.StepFields(m.wiz.Step(), m.wiz.Draft()))
	if n == 0 {
		return nil
	}
	m.wizFocus = ((m.wizFocus+delta)%n + n) % n
	return m.focusWizardField()
}

func (m *Model) changeStep(forward bool) tea.Cmd {
	if forward {
		m.wiz.Next()
	} else {
		m.wiz.Previous()
	}
	m.wizFocus = 0
	return m.focusWizardField()
}

func (m Model) handleWizardKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	field := m.wizardField()

	switch {
	case key.Matches(msg, m.keys.Back):
		m.wiz.Close()
		m.statusMessage = "Draft discarded"
		return m, nil, true

	case key.Matches(msg, m.keys.NextStep):
		cmd := m.changeStep(true)
		return m, cmd, true

	case key.Matches(msg, m.keys.PrevStep):
		cmd := m.changeStep(false)
		return m, cmd, true

	case msg.Type == tea.KeyTab:
		cmd := m.moveWizardFocus(1)
		return m, cmd, true

	case msg.Type == tea.KeyShiftTab:
		cmd := m.moveWizardFocus(-1)
		return m, cmd, true

	case msg.Type == tea.KeyEnter:
		if m.wiz.Step() == wizard.StepReview {
			m.submitWizard()
			return m, nil, true
		}
		if field != ui.FieldDescription {
			return m.advanceField()
		}
	}

	if field.IsText() {
		return m.updateFocusedInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		cmd := m.moveWizardFocus(-1)
		return m, cmd, true
	case key.Matches(msg, m.keys.Down):
		cmd := m.moveWizardFocus(1)
		return m, cmd, true
	case key.Matches(msg, m.keys.Left):
		m.cycleOption(field, -1)
	case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Toggle):
		m.cycleOption(field, 1)
	}
	return m, nil, true
}

// advanceField moves to the next field, or to the next step from the last.
func (m Model) advanceField() (Model, tea.Cmd, bool) {
	n := len(ui.StepFields(m.wiz.Step(), m.wiz.Draft()))
	if m.wizFocus >= n-1 {
		cmd := m.changeStep(true)
		return m, cmd, true
	}
	cmd := m.moveWizardFocus(1)
	return m, cmd, true
}

func (m *Model) cycleOption(field ui.WizardField, delta int) {
	switch field {
	case ui.FieldType:
		m.wiz.CycleType(delta)
	case ui.FieldToken:
		m.wiz.CycleToken(delta)
	case ui.FieldDistribution:
		m.wiz.CycleDistribution(delta)
	case ui.FieldEntryFeeEnabled:
		m.wiz.ToggleEntryFee()
	case ui.FieldVerification:
		m.wiz.CycleVerification(delta)
	case ui.FieldDisputeWindow:
		m.wiz.SetDisputeWindow(m.wiz.Draft().DisputeWindow + delta)
	}
}

// updateFocusedInput feeds msg to the focused text control and copies its
// value into the draft.
func (m Model) updateFocusedInput(msg tea.Msg) (Model, tea.Cmd, bool) {
	field := m.wizardField()
	var cmd tea.Cmd
	switch {
	case field == ui.FieldDescription:
		m.description, cmd = m.description.Update(msg)
		value := m.description.Value()
		m.wiz.Update(func(d wizard.Draft) wizard.Draft {
			d.Description = value
			return d
		})
	case field.IsText():
		ti := m.inputs[field]
		ti, cmd = ti.Update(msg)
		m.inputs = maps.Clone(m.inputs)
		m.inputs[field] = ti
		setDraftText(m.wiz, field, ti.Value())
	}
	return m, cmd, true
}

func setDraftText(w *wizard.Wizard, field ui.WizardField, value string) {
	w.Update(func(d wizard.Draft) wizard.Draft {
		switch field {
		case ui.FieldName:
			d.Name = value
		case ui.FieldStartDate:
			d.StartDate = value
		case ui.FieldEndDate:
			d.EndDate = value
		case ui.FieldPrizePool:
			d.PrizePool = value
		case ui.FieldEntryFee:
			d.EntryFee = value
		}
		return d
	})
}

func (m *Model) submitWizard() {
	name := m.wiz.Draft().Name
	err := m.wiz.Submit(m.ctx)
	switch {
	case errors.Is(err, wizard.ErrNotAtReview), errors.Is(err, wizard.ErrClosed):
		return
	case err != nil:
		m.statusMessage = fmt.Sprintf("Deploy failed: %v", err)
	default:
		if name == "" {
			name = "Untitled competition"
		}
		m.statusMessage = fmt.Sprintf("%s submitted for deployment (est. gas %s)", name, wizard.EstimatedGas)
	}
}

func (m Model) wizardView() ui.WizardView {
	inputs := make(map[ui.WizardField]string, len(m.inputs)+1)
	for f, ti := range m.inputs {
		inputs[f] = ti.View()
	}
	inputs[ui.FieldDescription] = m.description.View()

	focus := m.wizardField()
	return ui.WizardView{
		Step:     m.wiz.Step(),
		Draft:    m.wiz.Draft(),
		Focus:    focus,
		Inputs:   inputs,
		Types:    m.types,
		Progress: m.progress,
		Width:    m.layout().ModalWidth(),
		Markdown: m.markdown,
		Dark:     m.theme.IsDark(),
	}
}
