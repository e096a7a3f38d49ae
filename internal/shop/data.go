package shop

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/backup"
	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/store"
)

// TimelineDays is the span of the dashboard sales timeline.
const TimelineDays = 7

// Summary is the dashboard view of the current state.
type Summary struct {
	Totals       inventory.PeriodTotals     `json:"totals"`
	Distribution []inventory.CategoryAmount `json:"distribution"`
	Timeline     []inventory.DayTotal       `json:"timeline"`
	TotalDebt    decimal.Decimal            `json:"totalDebt"`
	Debtors      int                        `json:"debtors"`
}

// Summary aggregates the current snapshot as of the shop clock.
func (s *Shop) Summary() Summary {
	st := s.State()
	now := s.now()
	return Summary{
		Totals:       inventory.SumPeriods(st.Entries, now, s.loc),
		Distribution: inventory.CategoryDistribution(st.Entries, st.Categories),
		Timeline:     inventory.DailyTimeline(st.Entries, now, s.loc, TimelineDays),
		TotalDebt:    inventory.TotalDebt(st.Debts),
		Debtors:      len(st.Debts),
	}
}

// Export captures the stored state as a backup document.
func (s *Shop) Export(ctx context.Context) backup.Document {
	return backup.Export(ctx, s.repo, s.now())
}

// ExportFileName names a backup taken now, dated in the shop's location.
func (s *Shop) ExportFileName(format backup.Format) string {
	return backup.FileName(s.now().In(s.loc), format)
}

// Import applies a backup document and reloads the snapshot. On error
// nothing was written and the snapshot is unchanged.
func (s *Shop) Import(ctx context.Context, data []byte, format backup.Format) (store.Collections, error) {
	applied, err := backup.Import(ctx, s.repo, data, format)
	if err != nil {
		return store.Collections{}, err
	}
	s.Reload(ctx)
	s.logger.Info("backup imported",
		"categories", applied.Categories != nil,
		"products", applied.Products != nil,
		"entries", applied.Entries != nil,
		"debts", applied.Debts != nil,
	)
	return applied, nil
}

// Usage reports storage consumption.
func (s *Shop) Usage(ctx context.Context) (store.Usage, error) {
	u, err := s.repo.Usage(ctx)
	if err != nil {
		return store.Usage{}, fmt.Errorf("storage usage: %w", err)
	}
	return u, nil
}
