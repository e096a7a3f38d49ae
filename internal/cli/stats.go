package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/shop"
)

// NewStatsCommand creates the stats command.
func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show sales totals, category split and outstanding debt",
		Long: `Show the dashboard: sales for today, this week (from Sunday), this month and
this year; sales per category; the last 7 days; and total outstanding debt.

Calendar periods follow SMARTSTOCK_TZ (default: the local zone).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				sum := s.shop.Summary()
				if sum.Distribution == nil {
					sum.Distribution = []inventory.CategoryAmount{}
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(sum)
				}
				writeSummary(s.formatter.Writer, sum)
				return nil
			})
		},
	}
}

func writeSummary(w io.Writer, sum shop.Summary) {
	fmt.Fprintln(w, "Sales")
	fmt.Fprintf(w, "  Today: %s\n", baht(sum.Totals.Today))
	fmt.Fprintf(w, "  Week:  %s\n", baht(sum.Totals.Week))
	fmt.Fprintf(w, "  Month: %s\n", baht(sum.Totals.Month))
	fmt.Fprintf(w, "  Year:  %s\n", baht(sum.Totals.Year))

	fmt.Fprintln(w, "By category")
	if len(sum.Distribution) == 0 {
		fmt.Fprintln(w, "  (no sales)")
	}
	for _, c := range sum.Distribution {
		fmt.Fprintf(w, "  %s: %s\n", c.Name, baht(c.Amount))
	}

	fmt.Fprintf(w, "Last %d days\n", len(sum.Timeline))
	for _, d := range sum.Timeline {
		fmt.Fprintf(w, "  %s %s\n", d.Date.Format("2006-01-02 Mon"), baht(d.Total))
	}

	fmt.Fprintf(w, "Debts: %s (%d)\n", baht(sum.TotalDebt), sum.Debtors)
}
