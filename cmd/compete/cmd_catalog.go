package main

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"compete/cmd/compete/ui"
	"compete/internal/competition"
	"compete/internal/filter"
	"compete/internal/logging"
	"compete/internal/theme"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type listOptions struct {
	search       string
	types        []string
	status       []string
	verification []string
	min, max     float64
	sort         string
	json         bool
}

func newListCmd(a *app) *cobra.Command {
	var opts listOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List competitions matching the given filters",
		Long: `Prints the competitions that pass every filter, in the chosen order.

Example:
  compete list --type esports,trading --status active --sort participants`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.search, "search", "s", "", "Case-insensitive title/description search")
	f.StringSliceVarP(&opts.types, "type", "t", nil, "Competition type ids (repeatable)")
	f.StringSliceVar(&opts.status, "status", nil, "Statuses: active, upcoming, ended, disputed")
	f.StringSliceVar(&opts.verification, "verification", nil, "Verification: oracle, manual, api, hybrid")
	f.Float64Var(&opts.min, "min", filter.DefaultPrizeMin, "Minimum prize pool")
	f.Float64Var(&opts.max, "max", filter.DefaultPrizeMax, "Maximum prize pool (default ui.prize_max)")
	f.StringVar(&opts.sort, "sort", "", "Sort key: tvl, time, participants, recent (default from config)")
	f.BoolVar(&opts.json, "json", false, "Emit JSON instead of a table")
	return cmd
}

// state converts flags into a filter state, rejecting unknown values.
func (o listOptions) state(defaultSort string) (filter.State, error) {
	st := filter.DefaultState().WithSearch(o.search).WithPrizeRange(o.min, o.max)

	sortKey := o.sort
	if sortKey == "" {
		sortKey = defaultSort
	}
	key, err := filter.ParseSortKey(sortKey)
	if err != nil {
		return st, err
	}
	st = st.WithSortBy(key)

	for _, id := range o.types {
		id = strings.ToLower(strings.TrimSpace(id))
		if _, ok := competition.TypeByID(id); !ok {
			return st, fmt.Errorf("unknown competition type %q", id)
		}
		if !st.HasType(id) {
			st = st.ToggleType(id)
		}
	}
	for _, s := range o.status {
		status := competition.Status(strings.ToLower(strings.TrimSpace(s)))
		if !slices.Contains(competition.AllStatuses(), status) {
			return st, fmt.Errorf("unknown status %q", s)
		}
		if !st.HasStatus(status) {
			st = st.ToggleStatus(status)
		}
	}
	for _, v := range o.verification {
		method := competition.VerificationMethod(strings.ToLower(strings.TrimSpace(v)))
		if !slices.Contains(competition.AllVerificationMethods(), method) {
			return st, fmt.Errorf("unknown verification method %q", v)
		}
		if !st.HasVerification(method) {
			st = st.ToggleVerification(method)
		}
	}
	return st, nil
}

func (a *app) runList(cmd *cobra.Command, opts listOptions) error {
	if !cmd.Flags().Changed("max") {
		opts.max = a.cfg.UI.PrizeMax
	}
	st, err := opts.state(a.cfg.UI.DefaultSort)
	if err != nil {
		return err
	}
	records := filter.Apply(competition.Seed(), st)
	a.metrics.FilterChanges.Inc()
	a.metrics.VisibleCount.Set(float64(len(records)))
	logging.Filter("list: %d results for %+v", len(records), st)
	a.logger.Debug("filter applied", zap.Int("results", len(records)), zap.String("sort", string(st.SortBy)))

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No competitions found. Try adjusting your filters.")
		return nil
	}
	title := fmt.Sprintf("Available Competitions (%d) · sorted by %s", len(records), st.SortBy.Label())
	fmt.Fprintln(out, ui.CompetitionTable(title, records).View(a.styles()))
	return nil
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [id]",
		Short: "Show one competition in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, ok := competition.FindByID(competition.Seed(), args[0])
			if !ok {
				return fmt.Errorf("competition %s not found", args[0])
			}

			collabs, err := a.collaborators()
			if err != nil {
				return err
			}
			if err := collabs.Handler.View(cmdContext(cmd), c.ID); err != nil {
				a.logger.Warn("view request failed", zap.String("id", c.ID), zap.Error(err))
			}

			dark := theme.Detect(a.cfg.Theme).IsDark()
			fmt.Fprintln(cmd.OutOrStdout(), ui.NewMarkdown().Render(ui.DetailMarkdown(c), 80, dark))
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print protocol-wide statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := ui.NewSimpleTable("Protocol Stats", []string{"Metric", "Value", "Change"})
			for _, tile := range ui.Tiles(competition.Stats()) {
				t.AddRow(tile.Title, tile.Value, ui.FormatChange(tile.Change))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.View(a.styles()))
			return nil
		},
	}
}

func newTypesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List competition types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			records := competition.Seed()
			t := ui.NewSimpleTable("Competition Types", []string{"ID", "Name", "Icon", "Competitions"})
			for _, ct := range competition.Types() {
				n := 0
				for _, c := range records {
					if c.Type.ID == ct.ID {
						n++
					}
				}
				t.AddRow(ct.ID, ct.Name, ct.Icon, ui.FormatCount(n))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.View(a.styles()))
			return nil
		},
	}
}

func (a *app) styles() ui.Styles {
	return ui.StylesFor(theme.Detect(a.cfg.Theme))
}
