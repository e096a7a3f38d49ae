package inventory

import (
	"errors"
	"fmt"
)

// Validation failures for new entities.
var (
	ErrEmptyName       = errors.New("name is required")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidQuantity = errors.New("quantity out of range")
	ErrUnknownCategory = errors.New("unknown category")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrDebtCategory    = errors.New("debt category cannot hold products")
	ErrDuplicateID     = errors.New("duplicate id")
)

// CategoryInUseError rejects the deletion of a category that products still reference.
type CategoryInUseError struct {
	CategoryID string
	Count      int    // number of referencing products
	Sample     string // name of the first referencing product
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %s is used by %q and %d product(s) in total", e.CategoryID, e.Sample, e.Count)
}
