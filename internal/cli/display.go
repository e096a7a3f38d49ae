package cli

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// thai formats numbers the way the shop reads them: grouped thousands, at
// most two decimals.
var thai = message.NewPrinter(language.Thai)

// baht renders an amount as "฿1,234.5".
func baht(d decimal.Decimal) string {
	return "฿" + thai.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

// stamp renders a time in loc for listings.
func stamp(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}
