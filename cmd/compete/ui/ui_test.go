package ui

import (
	"strings"
	"testing"

	"compete/internal/competition"
	"compete/internal/filter"
	"compete/internal/theme"
	"compete/internal/wizard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lightStyles() Styles { return NewStyles(LightTheme()) }

func seedByID(t *testing.T, id string) competition.Competition {
	t.Helper()
	c, ok := competition.FindByID(competition.Seed(), id)
	require.True(t, ok, "seed record %s", id)
	return c
}

func TestThemeFor(t *testing.T) {
	assert.True(t, ThemeFor(theme.Dark).IsDark)
	assert.False(t, ThemeFor(theme.Light).IsDark)
	assert.True(t, StylesFor(theme.New(theme.Dark)).Theme.IsDark)
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "12,847", FormatCount(12847))
	assert.Equal(t, "▲ 12.5%", FormatChange(12.5))
	assert.Equal(t, "▼ 3%", FormatChange(-3))
	assert.Equal(t, "Free", FormatEntryFee(nil))
	assert.Equal(t, "15d 6h remaining", FormatTimeRemaining(competition.TimeRemaining{Days: 15, Hours: 6, Minutes: 32}))
	assert.Equal(t, "abc...", Truncate("abcdefghij", 6))
	assert.Equal(t, "short", Truncate("short", 10))
}

func TestTilesOrderAndValues(t *testing.T) {
	tiles := Tiles(competition.Stats())
	require.Len(t, tiles, 4)
	assert.Equal(t, "Total Value Locked", tiles[0].Title)
	assert.Equal(t, "$2.4M", tiles[0].Value)
	assert.Equal(t, "12,847", tiles[3].Value)

	out := RenderStats(competition.Stats(), lightStyles(), NewLayoutConfig(160, 40, true))
	assert.Contains(t, out, "Participants This Month")
	assert.Contains(t, out, "▲ 22.1%")
}

func TestRenderCardJoinOnlyWhenJoinable(t *testing.T) {
	s := lightStyles()

	active := RenderCard(seedByID(t, "1"), s, 60, false)
	assert.Contains(t, active, "Join Now")
	assert.Contains(t, active, "View Details")
	assert.Contains(t, active, "50,000 USDC")

	ended := seedByID(t, "1")
	ended.Status = competition.StatusEnded
	out := RenderCard(ended, s, 60, false)
	assert.NotContains(t, out, "Join Now")
	assert.Contains(t, out, "View Details")
}

func TestRenderResults(t *testing.T) {
	s := lightStyles()
	l := NewLayoutConfig(120, 40, true)

	out := RenderResults(competition.Seed(), s, l, 0)
	assert.Contains(t, out, "Available Competitions (8)")

	empty := RenderResults(nil, s, l, -1)
	assert.Contains(t, empty, "Available Competitions (0)")
	assert.Contains(t, empty, "No competitions found")
}

func TestLayoutColumns(t *testing.T) {
	assert.Equal(t, 1, NewLayoutConfig(70, 30, true).GridColumns())
	assert.Equal(t, 3, NewLayoutConfig(400, 30, true).GridColumns())

	closed := NewLayoutConfig(120, 30, false)
	assert.Equal(t, 0, closed.SidebarWidth())
	assert.Equal(t, 120, closed.ContentWidth())
	assert.Equal(t, 2, NewLayoutConfig(80, 30, true).StatColumns())
}

func TestSidebarRowsCollapse(t *testing.T) {
	types := competition.Types()
	all := map[Section]bool{SectionTypes: true, SectionStatus: true, SectionVerification: true, SectionSort: true}

	rows := SidebarRows(types, all)
	// 4 headers + prize + 6 types + 4 statuses + 4 methods + 4 sort keys
	assert.Len(t, rows, 23)

	rows = SidebarRows(types, map[Section]bool{SectionStatus: true})
	assert.Len(t, rows, 4+1+4)
	for _, r := range rows {
		if !r.Header && r.Section != SectionPrize {
			assert.Equal(t, SectionStatus, r.Section)
		}
	}
}

func TestRenderSidebarMarksSelections(t *testing.T) {
	st := filter.DefaultState().ToggleType("esports").WithPrizeMax(42000)
	out := RenderSidebar(SidebarView{
		State:    st,
		Types:    competition.Types(),
		Expanded: map[Section]bool{SectionTypes: true, SectionSort: true},
		Focused:  true,
		PrizeMax: filter.DefaultPrizeMax,
		Width:    SidebarWidth,
	}, lightStyles())

	assert.Contains(t, out, "[x] Esports")
	assert.Contains(t, out, "[ ] Hackathon")
	assert.Contains(t, out, "(•) Prize Pool")
	assert.Contains(t, out, "$0 - $42,000")
	assert.Contains(t, out, "Status ▸")
}

func TestStepFields(t *testing.T) {
	d := wizard.BlankDraft()
	assert.Len(t, StepFields(wizard.StepBasicInfo, d), 5)
	assert.NotContains(t, StepFields(wizard.StepPrizeStructure, d), FieldEntryFee)

	d.EntryFeeEnabled = true
	assert.Contains(t, StepFields(wizard.StepPrizeStructure, d), FieldEntryFee)
	assert.Empty(t, StepFields(wizard.StepReview, d))
}

func TestReviewMarkdown(t *testing.T) {
	d := wizard.BlankDraft()
	d.Name = "Speedrun Cup"
	d.Type = "esports"
	d.PrizePool = "5000"
	d.Distribution = wizard.DistributionSplit

	md := ReviewMarkdown(d)
	assert.Contains(t, md, "Speedrun Cup")
	assert.Contains(t, md, "Esports")
	assert.Contains(t, md, "5000 USDC")
	assert.Contains(t, md, "Top 3 Split")
	assert.Contains(t, md, "~0.02 ETH")
}

func TestSimpleTable(t *testing.T) {
	table := CompetitionTable("Competitions", competition.Seed()[:2])
	view := table.View(lightStyles())

	assert.Contains(t, view, "Competitions")
	assert.Contains(t, view, "Global Esports Championship")
	assert.Equal(t, "", NewSimpleTable("empty", []string{"a"}).View(lightStyles()))
}

func TestRenderCacheEvictsLeastUsed(t *testing.T) {
	rc := NewRenderCache(2)
	a, b, c := ComputeKey("a"), ComputeKey("b"), ComputeKey("c")
	rc.Set(a, "A")
	rc.Set(b, "B")
	_, _ = rc.Get(a)

	rc.Set(c, "C")
	assert.Equal(t, 2, rc.Len())
	_, okB := rc.Get(b)
	assert.False(t, okB, "least used entry should be evicted")

	calls := 0
	compute := func() string { calls++; return "X" }
	rc.GetOrCompute(a, compute)
	assert.Equal(t, 0, calls)

	assert.NotEqual(t, ComputeKey("ab", "c"), ComputeKey("a", "bc"))
	assert.NotEqual(t, ComputeKey(1, true), ComputeKey(1, false))
}

func TestDetailMarkdown(t *testing.T) {
	md := DetailMarkdown(seedByID(t, "1"))
	assert.True(t, strings.HasPrefix(md, "# Global Esports Championship 2024"))
	assert.Contains(t, md, "1,247 / 2,000 participants")
	assert.Contains(t, md, "Automated verification")
}
