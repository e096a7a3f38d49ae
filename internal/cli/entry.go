package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/model"
)

// EntryOptions holds flags for the entry add command.
type EntryOptions struct {
	*RootOptions
	Product      string
	Quantity     int
	PrevLeftover int
	Collected    int
}

// NewEntryCommand creates the entry command group.
func NewEntryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &EntryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Record sales",
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a sale of one product",
		Long: `Record a sale. The product's current name and price are copied into the entry.

For ice products the leftover bag count is tracked:
  leftover = previous leftover + quantity - collected
Without --prev-leftover the leftover of the last ice entry is carried forward.
Ice quantity may be 0 for a visit that only collected bags.

Examples:
  smartstock entry add --product p3 --qty 2
  smartstock entry add --product p_ice --qty 2 --prev-leftover 3 --collected 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				return runEntryAdd(ctx, s, opts, cmd)
			})
		},
	}
	add.Flags().StringVar(&opts.Product, "product", "", "product id (required)")
	add.Flags().IntVar(&opts.Quantity, "qty", 1, "units sold")
	add.Flags().IntVar(&opts.PrevLeftover, "prev-leftover", 0, "ice bags left at the shop before this delivery")
	add.Flags().IntVar(&opts.Collected, "collected", 0, "ice bags collected back")
	_ = add.MarkFlagRequired("product")
	cmd.AddCommand(add)

	return cmd
}

func runEntryAdd(ctx context.Context, s *session, opts *EntryOptions, cmd *cobra.Command) error {
	var ice *inventory.IceCount
	prevSet := cmd.Flags().Changed("prev-leftover")
	if prevSet || cmd.Flags().Changed("collected") {
		prev := opts.PrevLeftover
		if !prevSet {
			prev = inventory.LastIceLeftover(s.shop.State().Entries, opts.Product)
		}
		ice = &inventory.IceCount{PreviousLeftover: prev, Collected: opts.Collected}
	}

	entry, err := s.shop.RecordSale(ctx, opts.Product, opts.Quantity, ice)
	if err != nil {
		return s.formatter.Fail("failed to record sale", err)
	}

	if s.formatter.IsJSON() {
		return s.formatter.Success(entry)
	}
	fmt.Fprintf(s.formatter.Writer, "✓ Recorded %s x%d = %s\n", entry.ProductName, entry.Quantity, baht(entry.TotalPrice))
	if d := entry.IceDetails; d != nil {
		fmt.Fprintf(s.formatter.Writer, "  Ice leftover: %d -> %d (collected %d)\n", d.PreviousLeftover, d.CurrentLeftover, d.Collected)
	}
	return nil
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded sales, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				entries := s.shop.State().Entries
				if limit > 0 && len(entries) > limit {
					entries = entries[:limit]
				}
				if entries == nil {
					entries = []model.StockEntry{}
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(entries)
				}
				writeHistory(s.formatter.Writer, entries, s.shop.State().Categories, s.shop.Location())
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "show at most N entries (0 for all)")

	return cmd
}

func writeHistory(w io.Writer, entries []model.StockEntry, categories []model.Category, loc *time.Location) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No entries recorded.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %s x%d  %s  [%s]\n",
			stamp(e.Time(), loc), e.ProductName, e.Quantity, baht(e.TotalPrice),
			inventory.CategoryName(categories, e.CategoryID))
		if d := e.IceDetails; d != nil {
			fmt.Fprintf(w, "       ice %d -> %d (collected %d)\n", d.PreviousLeftover, d.CurrentLeftover, d.Collected)
		}
	}
}
