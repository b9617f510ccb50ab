package wizard

import (
	"slices"

	"compete/internal/competition"
)

// Distribution is the prize payout policy chosen in the prize step.
type Distribution string

const (
	DistributionWinnerTakesAll Distribution = "winner-takes-all"
	DistributionSplit          Distribution = "split"
	DistributionCustom         Distribution = "custom"
)

// Label is the option title.
func (d Distribution) Label() string {
	switch d {
	case DistributionWinnerTakesAll:
		return "Winner Takes All"
	case DistributionSplit:
		return "Top 3 Split"
	case DistributionCustom:
		return "Custom Distribution"
	default:
		return string(d)
	}
}

// Description is the option subtitle.
func (d Distribution) Description() string {
	switch d {
	case DistributionWinnerTakesAll:
		return "Single winner gets 100% of prize"
	case DistributionSplit:
		return "60% / 25% / 15% distribution"
	case DistributionCustom:
		return "Configure custom payout structure"
	default:
		return ""
	}
}

// Distributions lists the payout options in display order.
func Distributions() []Distribution {
	return []Distribution{DistributionWinnerTakesAll, DistributionSplit, DistributionCustom}
}

// Tokens lists the prize pool currencies offered by the prize step.
func Tokens() []string {
	return []string{"USDC", "ETH", "USDT", "DAI"}
}

// Dispute window bounds, in days.
const (
	DefaultDisputeWindow = 7
	MinDisputeWindow     = 1
	MaxDisputeWindow     = 30
)

// EstimatedGas is the static deployment cost shown on the review step.
const EstimatedGas = "~0.02 ETH"

// Draft accumulates the create-competition form. It is never persisted.
type Draft struct {
	ID                 string                         `json:"id"`
	Name               string                         `json:"name"`
	Description        string                         `json:"description"`
	Type               string                         `json:"type"`
	StartDate          string                         `json:"start_date"`
	EndDate            string                         `json:"end_date"`
	PrizePool          string                         `json:"prize_pool"`
	Token              string                         `json:"token"`
	Distribution       Distribution                   `json:"distribution"`
	EntryFee           string                         `json:"entry_fee"`
	EntryFeeEnabled    bool                           `json:"entry_fee_enabled"`
	VerificationMethod competition.VerificationMethod `json:"verification_method"`
	DisputeWindow      int                            `json:"dispute_window"`
}

// BlankDraft is the form state on open and after submit.
func BlankDraft() Draft {
	return Draft{
		Token:              "USDC",
		Distribution:       DistributionWinnerTakesAll,
		VerificationMethod: competition.VerificationOracle,
		DisputeWindow:      DefaultDisputeWindow,
	}
}

// TypeName resolves the selected type id to its display name.
func (d Draft) TypeName() string {
	if t, ok := competition.TypeByID(d.Type); ok {
		return t.Name
	}
	return ""
}

// Missing lists required fields that are still empty. It is informational
// only: navigation and submit never consult it.
func (d Draft) Missing() []string {
	var missing []string
	if d.Name == "" {
		missing = append(missing, "name")
	}
	if d.Type == "" {
		missing = append(missing, "type")
	}
	if d.PrizePool == "" {
		missing = append(missing, "prize pool")
	}
	if d.EntryFeeEnabled && d.EntryFee == "" {
		missing = append(missing, "entry fee")
	}
	return missing
}

func clampDisputeWindow(days int) int {
	switch {
	case days < MinDisputeWindow:
		return MinDisputeWindow
	case days > MaxDisputeWindow:
		return MaxDisputeWindow
	default:
		return days
	}
}

func cycle[T comparable](options []T, cur T, delta int) T {
	i := slices.Index(options, cur)
	if i < 0 {
		return options[0]
	}
	n := len(options)
	return options[((i+delta)%n+n)%n]
}
