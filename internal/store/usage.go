package store

import (
	"context"
	"math"
	"unicode/utf16"
)

// QuotaMB is the nominal storage budget.
const QuotaMB = 5

// Usage reports how much of the storage budget the shop data occupies.
type Usage struct {
	Bytes      int     `json:"bytes"`
	SizeMB     float64 `json:"sizeMB"`     // rounded to 2 decimals
	Percentage float64 `json:"percentage"` // of QuotaMB, capped at 100, rounded to 1 decimal
}

// Usage estimates the stored size as UTF-16 code units of key and value,
// two bytes each.
func (s *Store) Usage(ctx context.Context) (Usage, error) {
	total := 0
	err := s.backend.Each(ctx, func(key string, value []byte) error {
		total += (utf16Len(key) + utf16Len(string(value))) * 2
		return nil
	})
	if err != nil {
		return Usage{}, err
	}
	return newUsage(total), nil
}

func newUsage(total int) Usage {
	sizeMB := round(float64(total)/(1024*1024), 2)
	pct := math.Min(100, sizeMB/QuotaMB*100)
	return Usage{
		Bytes:      total,
		SizeMB:     sizeMB,
		Percentage: round(pct, 1),
	}
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
