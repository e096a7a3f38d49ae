package inventory

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/model"
)

// DefaultUnit is used when a product is created without a unit.
const DefaultUnit = "ขวด"

// categoryIDPrefix marks ids minted for new categories.
const categoryIDPrefix = "cat_"

// NewCategory builds a category. An empty image gets the first preset picture.
func NewCategory(name, image, id string) (model.Category, error) {
	name = model.CleanText(name)
	if name == "" {
		return model.Category{}, ErrEmptyName
	}
	if image == "" {
		image = model.PresetImages[0].URL
	}
	return model.Category{ID: CategoryID(id), Name: name, Image: image}, nil
}

// CategoryID returns id with the "cat_" prefix every category id carries.
func CategoryID(id string) string {
	if strings.HasPrefix(id, categoryIDPrefix) {
		return id
	}
	return categoryIDPrefix + id
}

// AddCategory appends cat to categories, rejecting a duplicate id.
func AddCategory(categories []model.Category, cat model.Category) ([]model.Category, error) {
	if _, ok := FindCategory(categories, cat.ID); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, cat.ID)
	}
	out := make([]model.Category, 0, len(categories)+1)
	out = append(out, categories...)
	return append(out, cat), nil
}

// NewProduct builds a product in an existing, non-debt category.
func NewProduct(categories []model.Category, categoryID, name string, price decimal.Decimal, unit, id string) (model.Product, error) {
	name = model.CleanText(name)
	if name == "" {
		return model.Product{}, ErrEmptyName
	}
	if !price.IsPositive() {
		return model.Product{}, fmt.Errorf("%w: %s", ErrInvalidPrice, price)
	}
	if categoryID == model.CategoryDebt {
		return model.Product{}, ErrDebtCategory
	}
	if _, ok := FindCategory(categories, categoryID); !ok {
		return model.Product{}, fmt.Errorf("%w: %s", ErrUnknownCategory, categoryID)
	}

	unit = model.CleanText(unit)
	if unit == "" {
		unit = DefaultUnit
	}

	return model.Product{
		ID:         id,
		CategoryID: categoryID,
		Name:       name,
		Price:      price,
		Unit:       unit,
	}, nil
}

// AddProduct appends prod to products, rejecting a duplicate id.
func AddProduct(products []model.Product, prod model.Product) ([]model.Product, error) {
	if _, ok := FindProduct(products, prod.ID); ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateID, prod.ID)
	}
	out := make([]model.Product, 0, len(products)+1)
	out = append(out, products...)
	return append(out, prod), nil
}

// CheckCategoryDeletable reports a *CategoryInUseError when any product
// references categoryID.
func CheckCategoryDeletable(products []model.Product, categoryID string) error {
	var linked []model.Product
	for _, p := range products {
		if p.CategoryID == categoryID {
			linked = append(linked, p)
		}
	}
	if len(linked) == 0 {
		return nil
	}
	return &CategoryInUseError{
		CategoryID: categoryID,
		Count:      len(linked),
		Sample:     linked[0].Name,
	}
}

// RemoveCategory returns categories without categoryID. It fails, returning
// nil, while any product still references the category.
func RemoveCategory(categories []model.Category, products []model.Product, categoryID string) ([]model.Category, error) {
	if err := CheckCategoryDeletable(products, categoryID); err != nil {
		return nil, err
	}
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.ID != categoryID {
			out = append(out, c)
		}
	}
	return out, nil
}

// RemoveProduct returns products without productID. Entries keep their
// snapshot of the product, so removal is always allowed.
func RemoveProduct(products []model.Product, productID string) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.ID != productID {
			out = append(out, p)
		}
	}
	return out
}

// ProductsIn returns the products of one category, in catalog order.
func ProductsIn(products []model.Product, categoryID string) []model.Product {
	var out []model.Product
	for _, p := range products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
