package ui

import (
	"fmt"
	"strings"

	"compete/internal/competition"
	"compete/internal/wizard"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// WizardField is one focusable control of the create wizard.
type WizardField int

const (
	FieldName WizardField = iota
	FieldDescription
	FieldType
	FieldStartDate
	FieldEndDate
	FieldPrizePool
	FieldToken
	FieldDistribution
	FieldEntryFeeEnabled
	FieldEntryFee
	FieldVerification
	FieldDisputeWindow
)

// Label is the field caption.
func (f WizardField) Label() string {
	switch f {
	case FieldName:
		return "Competition Name"
	case FieldDescription:
		return "Description"
	case FieldType:
		return "Competition Type"
	case FieldStartDate:
		return "Start Date"
	case FieldEndDate:
		return "End Date"
	case FieldPrizePool:
		return "Prize Pool Amount"
	case FieldToken:
		return "Token"
	case FieldDistribution:
		return "Prize Distribution"
	case FieldEntryFeeEnabled:
		return "Require entry fee"
	case FieldEntryFee:
		return "Entry Fee"
	case FieldVerification:
		return "Verification Method"
	case FieldDisputeWindow:
		return "Dispute Window (days)"
	default:
		return ""
	}
}

// IsText reports whether the field takes typed input.
func (f WizardField) IsText() bool {
	switch f {
	case FieldName, FieldDescription, FieldStartDate, FieldEndDate, FieldPrizePool, FieldEntryFee:
		return true
	}
	return false
}

// StepFields lists the focusable fields of a step in tab order. The entry
// fee amount only appears once the fee is enabled.
func StepFields(step wizard.Step, d wizard.Draft) []WizardField {
	switch step {
	case wizard.StepBasicInfo:
		return []WizardField{FieldName, FieldDescription, FieldType, FieldStartDate, FieldEndDate}
	case wizard.StepPrizeStructure:
		fields := []WizardField{FieldPrizePool, FieldToken, FieldDistribution, FieldEntryFeeEnabled}
		if d.EntryFeeEnabled {
			fields = append(fields, FieldEntryFee)
		}
		return fields
	case wizard.StepVerification:
		return []WizardField{FieldVerification, FieldDisputeWindow}
	default:
		return nil
	}
}

// WizardView is the read-only snapshot the modal is drawn from.
type WizardView struct {
	Step     wizard.Step
	Draft    wizard.Draft
	Focus    WizardField
	Inputs   map[WizardField]string // rendered text inputs
	Types    []competition.CompetitionType
	Progress progress.Model
	Width    int
	Markdown *Markdown
	Dark     bool
	Notice   string
}

// RenderWizard draws the create-competition modal.
func RenderWizard(v WizardView, s Styles) string {
	outer := max(v.Width-s.Modal.GetHorizontalBorderSize(), 24)
	inner := outer - s.Modal.GetHorizontalPadding()
	v.Progress.Width = inner

	head := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("Create Competition")+"  "+s.Muted.Render("(esc to close)"),
		s.Muted.Render(fmt.Sprintf("Step %d of %d · %s", int(v.Step), wizard.TotalSteps, v.Step.Title())),
		v.Progress.ViewAs(float64(v.Step)/float64(wizard.TotalSteps)),
	)

	var body string
	if v.Step == wizard.StepReview {
		body = renderReview(v, s, inner)
	} else {
		var parts []string
		for _, f := range StepFields(v.Step, v.Draft) {
			parts = append(parts, renderField(f, v, s))
		}
		body = strings.Join(parts, "\n\n")
	}

	prev := s.ButtonGhost.Render("← Previous")
	if v.Step == wizard.StepBasicInfo {
		prev = s.Muted.Render("  Previous")
	}
	next := s.Button.Render("Next →")
	if v.Step == wizard.StepReview {
		next = s.Button.Render("Deploy Competition (enter)")
	}
	footer := prev + "   " + next
	if v.Notice != "" {
		footer = s.Warning.Render(v.Notice) + "\n" + footer
	}

	return s.Modal.Width(outer).Render(lipgloss.JoinVertical(lipgloss.Left, head, "", body, "", footer))
}

func renderField(f WizardField, v WizardView, s Styles) string {
	label := s.Bold.Render(f.Label())
	if f == v.Focus {
		label = s.Cursor.Render("> ") + label
	} else {
		label = "  " + label
	}

	var control string
	switch f {
	case FieldType:
		var opts []string
		for _, t := range v.Types {
			opts = append(opts, radio(t.Name, v.Draft.Type == t.ID, s))
		}
		control = strings.Join(opts, "  ")
	case FieldToken:
		var opts []string
		for _, tok := range wizard.Tokens() {
			opts = append(opts, radio(tok, v.Draft.Token == tok, s))
		}
		control = strings.Join(opts, "  ")
	case FieldDistribution:
		var opts []string
		for _, d := range wizard.Distributions() {
			opts = append(opts, radio(d.Label(), v.Draft.Distribution == d, s)+"  "+s.Muted.Render(d.Description()))
		}
		control = strings.Join(opts, "\n    ")
	case FieldEntryFeeEnabled:
		box := "[ ]"
		if v.Draft.EntryFeeEnabled {
			box = "[x]"
		}
		control = s.Body.Render(box + " participants pay to join (space)")
	case FieldVerification:
		var opts []string
		for _, m := range competition.AllVerificationMethods() {
			opts = append(opts, radio(m.Label(), v.Draft.VerificationMethod == m, s)+"  "+s.Muted.Render(m.Description()))
		}
		control = strings.Join(opts, "\n    ")
	case FieldDisputeWindow:
		control = s.Body.Render(fmt.Sprintf("◀ %d ▶", v.Draft.DisputeWindow)) + "  " +
			s.Muted.Render("Time allowed for participants to dispute results after verification")
	default:
		control = v.Inputs[f]
	}
	return label + "\n    " + control
}

func radio(label string, on bool, s Styles) string {
	if on {
		return s.Checked.Render("(•) " + label)
	}
	return s.Body.Render("( ) " + label)
}

// ReviewMarkdown summarises a draft for the final step.
func ReviewMarkdown(d wizard.Draft) string {
	orDash := func(v string) string {
		if strings.TrimSpace(v) == "" {
			return "—"
		}
		return v
	}
	var sb strings.Builder
	sb.WriteString("## Competition Summary\n\n")
	fmt.Fprintf(&sb, "- **Name:** %s\n", orDash(d.Name))
	fmt.Fprintf(&sb, "- **Type:** %s\n", orDash(d.TypeName()))
	fmt.Fprintf(&sb, "- **Prize Pool:** %s %s\n", orDash(d.PrizePool), d.Token)
	fmt.Fprintf(&sb, "- **Distribution:** %s\n", d.Distribution.Label())
	if d.EntryFeeEnabled {
		fmt.Fprintf(&sb, "- **Entry Fee:** %s %s\n", orDash(d.EntryFee), d.Token)
	} else {
		sb.WriteString("- **Entry Fee:** Free\n")
	}
	fmt.Fprintf(&sb, "- **Verification:** %s\n", d.VerificationMethod.Label())
	fmt.Fprintf(&sb, "- **Dispute Window:** %d days\n", d.DisputeWindow)
	fmt.Fprintf(&sb, "\nEstimated gas: `%s`\n", wizard.EstimatedGas)
	return sb.String()
}

func renderReview(v WizardView, s Styles, width int) string {
	md := ReviewMarkdown(v.Draft)
	out := md
	if v.Markdown != nil {
		out = v.Markdown.Render(md, width, v.Dark)
	}
	if missing := v.Draft.Missing(); len(missing) > 0 {
		out += "\n" + s.Warning.Render("Not filled in: "+strings.Join(missing, ", "))
	}
	return out
}
