package cli

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/model"
)

// DebtsResult is the debts list payload.
type DebtsResult struct {
	Debts []model.DebtEntry `json:"debts"`
	Total decimal.Decimal   `json:"total"`
}

// NewDebtsCommand creates the debts command group.
func NewDebtsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debts",
		Short: "Track money customers owe",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List outstanding debts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, runDebtsList)
		},
	})

	var amount, note string
	add := &cobra.Command{
		Use:   "add <customer>",
		Short: "Record an amount a customer owes",
		Long: `Record a debt.

Examples:
  smartstock debts add "ลุงชัย" --amount 120 --note "ค่าเหล้า"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				amt, err := parseMoney("amount", amount)
				if err != nil {
					return s.formatter.Fail("failed to record debt", err)
				}
				debt, err := s.shop.RecordDebt(ctx, args[0], note, amt)
				if err != nil {
					return s.formatter.Fail("failed to record debt", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(debt)
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Recorded debt %s %s (%s)\n", debt.CustomerName, baht(debt.Amount), debt.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&amount, "amount", "", "amount owed in baht (required)")
	add.Flags().StringVar(&note, "note", "", "what the debt is for")
	_ = add.MarkFlagRequired("amount")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "settle <id>",
		Short: "Remove a debt once paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				id := args[0]
				var found *model.DebtEntry
				for _, d := range s.shop.State().Debts {
					if d.ID == id {
						found = &d
						break
					}
				}
				if found == nil {
					return s.formatter.Fail("failed to settle debt", fmt.Errorf("debt %s: %w", id, errNotFound))
				}
				if err := s.shop.DeleteDebt(ctx, id); err != nil {
					return s.formatter.Fail("failed to settle debt", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(found)
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Settled %s %s\n", found.CustomerName, baht(found.Amount))
				return nil
			})
		},
	})

	return cmd
}

func runDebtsList(_ context.Context, s *session) error {
	debts := s.shop.State().Debts
	if debts == nil {
		debts = []model.DebtEntry{}
	}
	result := DebtsResult{Debts: debts, Total: inventory.TotalDebt(debts)}

	if s.formatter.IsJSON() {
		return s.formatter.Success(result)
	}
	w := s.formatter.Writer
	if len(debts) == 0 {
		fmt.Fprintln(w, "No outstanding debts.")
		return nil
	}
	loc := s.shop.Location()
	for _, d := range debts {
		fmt.Fprintf(w, "  %s  %s  %s  %s", stamp(d.Time(), loc), d.CustomerName, baht(d.Amount), d.ID)
		if d.Description != "" {
			fmt.Fprintf(w, "  %s", d.Description)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "Total: %s (%d)\n", baht(result.Total), len(debts))
	return nil
}
