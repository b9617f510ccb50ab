// Package filter implements the dashboard's filter and sort engine: a pure
// mapping from (records, State) to the ordered subset shown to the user.
package filter

import (
	"fmt"
	"slices"
	"strings"

	"compete/internal/competition"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortTVL          SortKey = "tvl"          // prize pool, largest first
	SortTime         SortKey = "time"         // time remaining, soonest first
	SortParticipants SortKey = "participants" // most participants first
	SortRecent       SortKey = "recent"       // latest start date first
)

// Label is the display name used by the sidebar.
func (k SortKey) Label() string {
	switch k {
	case SortTVL:
		return "Prize Pool"
	case SortTime:
		return "Time Remaining"
	case SortParticipants:
		return "Participants"
	case SortRecent:
		return "Recently Created"
	default:
		return string(k)
	}
}

// SortKeys lists the known sort keys in sidebar order.
func SortKeys() []SortKey {
	return []SortKey{SortTVL, SortTime, SortParticipants, SortRecent}
}

// ParseSortKey validates a user supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(SortKeys(), k) {
		return k, nil
	}
	return "", fmt.Errorf("unknown sort key %q (valid: tvl, time, participants, recent)", s)
}

// Default prize bounds used by DefaultState and the sidebar control.
const (
	DefaultPrizeMin  = 0
	DefaultPrizeMax  = 100000
	DefaultPrizeStep = 1000
)

// Range is an inclusive numeric bound.
type Range struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// State is the transient filter selection. Empty sets mean "no constraint";
// the prize range is always applied.
type State struct {
	Search       string                           `json:"search"`
	Types        []string                         `json:"types"`
	PrizeRange   Range                            `json:"prize_range"`
	Status       []competition.Status             `json:"status"`
	Verification []competition.VerificationMethod `json:"verification"`
	SortBy       SortKey                          `json:"sort_by"`
	// PrizeCeiling is the top of the prize control. Zero means
	// DefaultPrizeMax.
	PrizeCeiling float64 `json:"prize_ceiling"`
}

// DefaultState matches everything and sorts by prize pool.
func DefaultState() State {
	return State{
		Types:        []string{},
		PrizeRange:   Range{Min: DefaultPrizeMin, Max: DefaultPrizeMax},
		Status:       []competition.Status{},
		Verification: []competition.VerificationMethod{},
		SortBy:       SortTVL,
		PrizeCeiling: DefaultPrizeMax,
	}
}

// Ceiling returns the upper limit of the prize range.
func (s State) Ceiling() float64 {
	if s.PrizeCeiling <= 0 {
		return DefaultPrizeMax
	}
	return s.PrizeCeiling
}

// IsDefault reports whether no predicate narrows the result.
func (s State) IsDefault() bool {
	return s.Search == "" && len(s.Types) == 0 && len(s.Status) == 0 &&
		len(s.Verification) == 0 &&
		s.PrizeRange.Min <= DefaultPrizeMin && s.PrizeRange.Max >= s.Ceiling()
}

// Apply returns the records matching every active predicate, ordered by
// s.SortBy. The input slice is neither mutated nor reordered.
func Apply(records []competition.Competition, s State) []competition.Competition {
	search := strings.ToLower(s.Search)

	out := make([]competition.Competition, 0, len(records))
	for _, c := range records {
		if matches(c, s, search) {
			out = append(out, c)
		}
	}

	if cmp := comparator(s.SortBy); cmp != nil {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func matches(c competition.Competition, s State, search string) bool {
	if search != "" &&
		!strings.Contains(strings.ToLower(c.Title), search) &&
		!strings.Contains(strings.ToLower(c.Description), search) {
		return false
	}
	if len(s.Types) > 0 && !slices.Contains(s.Types, c.Type.ID) {
		return false
	}
	if !s.PrizeRange.Contains(c.PrizeAmount()) {
		return false
	}
	if len(s.Status) > 0 && !slices.Contains(s.Status, c.Status) {
		return false
	}
	if len(s.Verification) > 0 && !slices.Contains(s.Verification, c.VerificationMethod) {
		return false
	}
	return true
}

// comparator returns nil for unknown keys, which leaves filter order intact.
func comparator(key SortKey) func(a, b competition.Competition) int {
	switch key {
	case SortTVL:
		return func(a, b competition.Competition) int {
			return compareFloat(b.PrizeAmount(), a.PrizeAmount())
		}
	case SortTime:
		return func(a, b competition.Competition) int {
			return a.TimeRemaining.TotalHours() - b.TimeRemaining.TotalHours()
		}
	case SortParticipants:
		return func(a, b competition.Competition) int {
			return b.Participants - a.Participants
		}
	case SortRecent:
		return func(a, b competition.Competition) int {
			return b.StartTime().Compare(a.StartTime())
		}
	default:
		return nil
	}
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
