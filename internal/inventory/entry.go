package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/model"
)

// NewStockEntry snapshots product into a new sale of qty units.
//
// Ice products take an IceCount and get IceDetails attached; a nil count is
// treated as zero leftover and zero collected. Ice quantity may be zero (a
// visit that only collected bags); every other product needs at least one unit.
func NewStockEntry(product model.Product, qty int, ice *IceCount, now time.Time, id string) (model.StockEntry, error) {
	isIce := product.CategoryID == model.CategoryIce

	if qty < 1 && !(isIce && qty == 0) {
		return model.StockEntry{}, fmt.Errorf("%w: %d", ErrInvalidQuantity, qty)
	}

	entry := model.StockEntry{
		ID:           id,
		ProductID:    product.ID,
		ProductName:  product.Name,
		CategoryID:   product.CategoryID,
		Quantity:     qty,
		PricePerUnit: product.Price,
		TotalPrice:   product.Price.Mul(decimal.NewFromInt(int64(qty))),
		Timestamp:    model.Millis(now),
	}

	if isIce {
		var count IceCount
		if ice != nil {
			count = *ice
		}
		entry.IceDetails = &model.IceDetails{
			PreviousLeftover: count.PreviousLeftover,
			Collected:        count.Collected,
			CurrentLeftover:  IceLeftover(count.PreviousLeftover, qty, count.Collected),
		}
	}

	return entry, nil
}

// LastIceLeftover returns the current leftover recorded by the newest ice
// entry for productID, or 0 if there is none. Entries are newest first.
func LastIceLeftover(entries []model.StockEntry, productID string) int {
	for _, e := range entries {
		if e.ProductID == productID && e.IceDetails != nil {
			return e.IceDetails.CurrentLeftover
		}
	}
	return 0
}

// NewDebt records amount owed by customer.
func NewDebt(customer, description string, amount decimal.Decimal, now time.Time, id string) (model.DebtEntry, error) {
	customer = model.CleanText(customer)
	if customer == "" {
		return model.DebtEntry{}, ErrEmptyName
	}
	if !amount.IsPositive() {
		return model.DebtEntry{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}

	return model.DebtEntry{
		ID:           id,
		CustomerName: customer,
		Description:  model.CleanText(description),
		Amount:       amount,
		Timestamp:    model.Millis(now),
	}, nil
}

// TotalDebt sums every outstanding debt.
func TotalDebt(debts []model.DebtEntry) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

// FindProduct returns the product with the given id.
func FindProduct(products []model.Product, id string) (model.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

// FindCategory returns the category with the given id.
func FindCategory(categories []model.Category, id string) (model.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return model.Category{}, false
}
