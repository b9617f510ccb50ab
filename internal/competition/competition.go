// Package competition holds the competition data model and the static seed
// dataset the dashboard browses.
//
// Records carry a denormalized copy of their CompetitionType rather than a
// bare type id; the filter engine reads that copy directly.
package competition

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is the lifecycle state of a competition.
type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusEnded    Status = "ended"
	StatusDisputed Status = "disputed"
)

// VerificationMethod is how results of a competition are verified.
type VerificationMethod string

const (
	VerificationOracle VerificationMethod = "oracle"
	VerificationManual VerificationMethod = "manual"
	VerificationAPI    VerificationMethod = "api"
	VerificationHybrid VerificationMethod = "hybrid"
)

// titleCase capitalizes a lowercase enum value. A Caser keeps internal state,
// so a fresh one is built per call.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// Label returns the capitalized display name ("Active").
func (s Status) Label() string { return titleCase(string(s)) }

// Label returns the capitalized display name ("Oracle", "Api").
func (v VerificationMethod) Label() string { return titleCase(string(v)) }

// Description is the one-line explanation shown in the create wizard.
func (v VerificationMethod) Description() string {
	switch v {
	case VerificationOracle:
		return "Automated verification through external data feeds"
	case VerificationManual:
		return "Human judges review and verify results"
	case VerificationAPI:
		return "Integration with platform APIs for automatic verification"
	case VerificationHybrid:
		return "Combination of automated and manual verification"
	default:
		return ""
	}
}

// AllStatuses lists every status in sidebar display order.
func AllStatuses() []Status {
	return []Status{StatusActive, StatusUpcoming, StatusEnded, StatusDisputed}
}

// AllVerificationMethods lists every verification method in display order.
func AllVerificationMethods() []VerificationMethod {
	return []VerificationMethod{VerificationOracle, VerificationManual, VerificationAPI, VerificationHybrid}
}

// CompetitionType is a small lookup entity (esports, hackathon, ...).
type CompetitionType struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Icon  string `json:"icon" yaml:"icon"`
	Color string `json:"color" yaml:"color"`
}

// PrizePool is the reward attached to a competition. Amount is a decimal
// string that may contain comma thousands separators ("50,000").
type PrizePool struct {
	Amount string `json:"amount"`
	Token  string `json:"token"`
	Symbol string `json:"symbol"`
}

// EntryFee is the optional cost of joining.
type EntryFee struct {
	Amount string `json:"amount"`
	Token  string `json:"token"`
}

// TimeRemaining is a static snapshot, not a live countdown.
type TimeRemaining struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// TotalHours collapses the snapshot to whole hours (minutes are ignored).
func (t TimeRemaining) TotalHours() int {
	return t.Days*24 + t.Hours
}

// Competition is a single dashboard record.
type Competition struct {
	ID                 string             `json:"id"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	Type               CompetitionType    `json:"type"`
	PrizePool          PrizePool          `json:"prize_pool"`
	Participants       int                `json:"participants"`
	MaxParticipants    *int               `json:"max_participants,omitempty"`
	TimeRemaining      TimeRemaining      `json:"time_remaining"`
	Status             Status             `json:"status"`
	VerificationMethod VerificationMethod `json:"verification_method"`
	EntryFee           *EntryFee          `json:"entry_fee,omitempty"`
	Creator            string             `json:"creator"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
}

// PrizeAmount is the numeric prize pool amount, 0 when unparseable.
func (c Competition) PrizeAmount() float64 {
	return ParseAmount(c.PrizePool.Amount)
}

// StartTime parses StartDate as RFC 3339. A malformed date yields the zero
// time, which sorts after every real date under "recent".
func (c Competition) StartTime() time.Time {
	t, err := time.Parse(time.RFC3339, c.StartDate)
	if err != nil {
		return time.Time{}
	}
	return t
}

// CanJoin reports whether the join affordance is offered.
func (c Competition) CanJoin() bool {
	return c.Status == StatusActive || c.Status == StatusUpcoming
}

// Clone returns a deep copy so optional pointer fields are not shared.
func (c Competition) Clone() Competition {
	out := c
	if c.MaxParticipants != nil {
		v := *c.MaxParticipants
		out.MaxParticipants = &v
	}
	if c.EntryFee != nil {
		fee := *c.EntryFee
		out.EntryFee = &fee
	}
	return out
}

// ParseAmount converts a display amount such as "75,000" to a float.
// Every comma is stripped before parsing. Anything that still fails to
// parse, or parses to NaN/Inf, is treated as 0 so a bad record degrades
// instead of breaking the list.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ProtocolStats are the aggregate tiles at the top of the dashboard. They are
// supplied as-is; nothing here derives them from the records.
type ProtocolStats struct {
	TVL                 string  `json:"tvl"`
	ActiveCompetitions  int     `json:"active_competitions"`
	TotalPrizes         string  `json:"total_prizes"`
	MonthlyParticipants int     `json:"monthly_participants"`
	TVLChange           float64 `json:"tvl_change"`
	CompetitionsChange  float64 `json:"competitions_change"`
	PrizesChange        float64 `json:"prizes_change"`
	ParticipantsChange  float64 `json:"participants_change"`
}

// FindByID returns the record with the given id.
func FindByID(records []Competition, id string) (Competition, bool) {
	for _, c := range records {
		if c.ID == id {
			return c, true
		}
	}
	return Competition{}, false
}
