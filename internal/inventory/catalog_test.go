package inventory

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/smartstock/internal/model"
)

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(" ขนม ", "", "abc")
	require.NoError(t, err)
	assert.Equal(t, "cat_abc", c.ID)
	assert.Equal(t, "ขนม", c.Name)
	assert.Equal(t, model.PresetImages[0].URL, c.Image)

	c, err = NewCategory("ยา", "img.jpg", "cat_xyz")
	require.NoError(t, err)
	assert.Equal(t, "cat_xyz", c.ID)
	assert.Equal(t, "img.jpg", c.Image)

	_, err = NewCategory("", "", "x")
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestCategoryID(t *testing.T) {
	assert.Equal(t, "cat_abc", CategoryID("abc"))
	assert.Equal(t, "cat_abc", CategoryID("cat_abc"))
}

func TestAddCategory_RejectsDuplicate(t *testing.T) {
	cats := model.DefaultCategories()

	_, err := AddCategory(cats, model.Category{ID: "cat_ice", Name: "dup"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	out, err := AddCategory(cats, model.Category{ID: "cat_new", Name: "ใหม่"})
	require.NoError(t, err)
	assert.Len(t, out, len(cats)+1)
	assert.Equal(t, "cat_new", out[len(out)-1].ID)
	assert.Len(t, cats, 9, "input slice is not modified")
}

func TestNewProduct(t *testing.T) {
	cats := model.DefaultCategories()

	p, err := NewProduct(cats, "cat_beer", "ช้าง", decimal.NewFromInt(55), "", "pid")
	require.NoError(t, err)
	assert.Equal(t, DefaultUnit, p.Unit)
	assert.Equal(t, "cat_beer", p.CategoryID)

	tests := []struct {
		name     string
		category string
		prodName string
		price    decimal.Decimal
		want     error
	}{
		{"empty name", "cat_beer", " ", decimal.NewFromInt(1), ErrEmptyName},
		{"zero price", "cat_beer", "x", decimal.Zero, ErrInvalidPrice},
		{"debt category", model.CategoryDebt, "x", decimal.NewFromInt(1), ErrDebtCategory},
		{"unknown category", "cat_nope", "x", decimal.NewFromInt(1), ErrUnknownCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProduct(cats, tt.category, tt.prodName, tt.price, "ขวด", "pid")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAddProduct_RejectsDuplicate(t *testing.T) {
	_, err := AddProduct(model.DefaultProducts(), model.Product{ID: "p1"})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestRemoveCategory_Unreferenced(t *testing.T) {
	cats := model.DefaultCategories()

	out, err := RemoveCategory(cats, model.DefaultProducts(), "cat_liquor")
	require.NoError(t, err)
	assert.Len(t, out, len(cats)-1)
	for _, c := range out {
		assert.NotEqual(t, "cat_liquor", c.ID)
	}
}

func TestRemoveCategory_ReferencedIsRejected(t *testing.T) {
	cats := model.DefaultCategories()
	prods := model.DefaultProducts()

	out, err := RemoveCategory(cats, prods, "cat_soda")
	require.Error(t, err)
	assert.Nil(t, out)

	var inUse *CategoryInUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, "cat_soda", inUse.CategoryID)
	assert.Equal(t, 2, inUse.Count)
	assert.Equal(t, "โค้ก 325มล.", inUse.Sample)
	assert.True(t, strings.Contains(err.Error(), "2 product(s)"))

	assert.Len(t, cats, 9, "category list unchanged")
}

func TestCheckCategoryDeletable_EveryReferencedCategory(t *testing.T) {
	prods := model.DefaultProducts()
	for _, c := range model.DefaultCategories() {
		err := CheckCategoryDeletable(prods, c.ID)
		if len(ProductsIn(prods, c.ID)) > 0 {
			assert.Error(t, err, c.ID)
		} else {
			assert.NoError(t, err, c.ID)
		}
	}
}

func TestRemoveProduct(t *testing.T) {
	prods := model.DefaultProducts()

	out := RemoveProduct(prods, "p_ice")
	assert.Len(t, out, 5)
	_, ok := FindProduct(out, "p_ice")
	assert.False(t, ok)

	assert.Len(t, RemoveProduct(prods, "missing"), 6)
}

func TestProductsIn(t *testing.T) {
	prods := model.DefaultProducts()
	assert.Len(t, ProductsIn(prods, "cat_soda"), 2)
	assert.Empty(t, ProductsIn(prods, model.CategoryDebt))
}
