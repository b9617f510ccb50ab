package ui

import (
	"fmt"
	"math"
	"strconv"

	"compete/internal/competition"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatCount renders an integer with locale thousands separators ("12,847").
func FormatCount(n int) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FormatChange renders a stat delta as an arrow plus absolute percentage.
func FormatChange(change float64) string {
	arrow := "▲"
	if change < 0 {
		arrow = "▼"
	}
	return fmt.Sprintf("%s %s%%", arrow, trimFloat(math.Abs(change)))
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatPrize is the card's prize line ("50,000 USDC").
func FormatPrize(p competition.PrizePool) string {
	return p.Amount + " " + p.Symbol
}

// FormatTimeRemaining is the card's countdown snapshot ("15d 6h remaining").
func FormatTimeRemaining(t competition.TimeRemaining) string {
	return fmt.Sprintf("%dd %dh remaining", t.Days, t.Hours)
}

// FormatParticipants includes the cap when there is one.
func FormatParticipants(c competition.Competition) string {
	if c.MaxParticipants != nil {
		return fmt.Sprintf("%s / %s participants", FormatCount(c.Participants), FormatCount(*c.MaxParticipants))
	}
	return FormatCount(c.Participants) + " participants"
}

// FormatEntryFee renders the optional fee, "Free" when absent.
func FormatEntryFee(fee *competition.EntryFee) string {
	if fee == nil {
		return "Free"
	}
	return fee.Amount + " " + fee.Token
}

// Truncate shortens s to at most n runes, ending in an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
