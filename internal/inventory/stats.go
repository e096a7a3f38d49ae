package inventory

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/model"
)

// Fallback labels for entries whose category no longer exists.
const (
	UnknownCategoryLabel = "อื่นๆ"  // dashboard distribution
	GeneralCategoryLabel = "ทั่วไป" // history listing
)

// PeriodTotals are sales sums for the periods containing "now".
type PeriodTotals struct {
	Today decimal.Decimal `json:"today"`
	Week  decimal.Decimal `json:"week"`
	Month decimal.Decimal `json:"month"`
	Year  decimal.Decimal `json:"year"`
}

// Cutoffs are the starts of the day, week, month and year containing now.
type Cutoffs struct {
	Day, Week, Month, Year time.Time
}

// PeriodCutoffs computes period starts in loc. Weeks start on Sunday.
func PeriodCutoffs(now time.Time, loc *time.Location) Cutoffs {
	now = now.In(loc)
	day := startOfDay(now)
	return Cutoffs{
		Day:   day,
		Week:  day.AddDate(0, 0, -int(now.Weekday())),
		Month: time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc),
		Year:  time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc),
	}
}

// SumPeriods sums totalPrice of entries whose timestamp is at or after each cutoff.
// Future-dated entries count in every period.
func SumPeriods(entries []model.StockEntry, now time.Time, loc *time.Location) PeriodTotals {
	c := PeriodCutoffs(now, loc)
	day, week, month, year := model.Millis(c.Day), model.Millis(c.Week), model.Millis(c.Month), model.Millis(c.Year)

	totals := PeriodTotals{Today: decimal.Zero, Week: decimal.Zero, Month: decimal.Zero, Year: decimal.Zero}
	for _, e := range entries {
		if e.Timestamp >= day {
			totals.Today = totals.Today.Add(e.TotalPrice)
		}
		if e.Timestamp >= week {
			totals.Week = totals.Week.Add(e.TotalPrice)
		}
		if e.Timestamp >= month {
			totals.Month = totals.Month.Add(e.TotalPrice)
		}
		if e.Timestamp >= year {
			totals.Year = totals.Year.Add(e.TotalPrice)
		}
	}
	return totals
}

// CategoryAmount is a sales total aggregated by category name.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"value"`
}

// CategoryDistribution groups entries by the current name of their category
// and sums totalPrice per group. Groups appear in order of first occurrence.
// Entries whose category was deleted fall under UnknownCategoryLabel.
func CategoryDistribution(entries []model.StockEntry, categories []model.Category) []CategoryAmount {
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		if _, seen := names[c.ID]; !seen {
			names[c.ID] = c.Name
		}
	}

	index := make(map[string]int)
	var out []CategoryAmount
	for _, e := range entries {
		name, ok := names[e.CategoryID]
		if !ok {
			name = UnknownCategoryLabel
		}
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, CategoryAmount{Name: name, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(e.TotalPrice)
	}
	return out
}

// DayTotal is the sales sum of one calendar day.
type DayTotal struct {
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// DailyTimeline returns totals for the last days calendar days ending today,
// oldest first. Days without sales are present with a zero total.
func DailyTimeline(entries []model.StockEntry, now time.Time, loc *time.Location, days int) []DayTotal {
	if days <= 0 {
		return nil
	}
	today := startOfDay(now.In(loc))

	out := make([]DayTotal, days)
	index := make(map[string]int, days)
	for i := range out {
		d := today.AddDate(0, 0, i-(days-1))
		out[i] = DayTotal{Date: d, Total: decimal.Zero}
		index[d.Format(time.DateOnly)] = i
	}

	for _, e := range entries {
		key := e.Time().In(loc).Format(time.DateOnly)
		if i, ok := index[key]; ok {
			out[i].Total = out[i].Total.Add(e.TotalPrice)
		}
	}
	return out
}

// CategoryName resolves a category id for display, falling back to
// GeneralCategoryLabel.
func CategoryName(categories []model.Category, id string) string {
	if c, ok := FindCategory(categories, id); ok {
		return c.Name
	}
	return GeneralCategoryLabel
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
