package model

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Backups store prices as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Sentinel category ids with special handling.
const (
	CategoryDebt = "cat_debt" // pseudo-category for customer debt; never has products
	CategoryIce  = "cat_ice"  // entries carry IceDetails
)

// Category groups products.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Product is a sellable item belonging to a Category.
type Product struct {
	ID         string          `json:"id"`
	CategoryID string          `json:"categoryId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	Unit       string          `json:"unit"`
	Image      string          `json:"image"`
}

// IceDetails records the running count of unreturned ice bags at the time of an entry.
type IceDetails struct {
	PreviousLeftover int `json:"previousLeftover"`
	Collected        int `json:"collected"`
	CurrentLeftover  int `json:"currentLeftover"`
}

// StockEntry is a single recorded sale. Name, price and category are
// snapshotted at creation and never updated.
type StockEntry struct {
	ID           string          `json:"id"`
	ProductID    string          `json:"productId"`
	ProductName  string          `json:"productName"`
	CategoryID   string          `json:"categoryId"`
	Quantity     int             `json:"quantity"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
	TotalPrice   decimal.Decimal `json:"totalPrice"`
	Timestamp    int64           `json:"timestamp"`
	IceDetails   *IceDetails     `json:"iceDetails,omitempty"`
}

// Time returns the entry timestamp as a time.Time.
func (e StockEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// DebtEntry is an outstanding amount owed by a customer.
// It is deleted outright when settled.
type DebtEntry struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	Timestamp    int64           `json:"timestamp"`
}

// Time returns the debt timestamp as a time.Time.
func (d DebtEntry) Time() time.Time {
	return time.UnixMilli(d.Timestamp)
}

// Millis converts t to epoch milliseconds.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}
