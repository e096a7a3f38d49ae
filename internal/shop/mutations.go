package shop

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/model"
)

// AddEntry prepends e to the entry log.
func (s *Shop) AddEntry(ctx context.Context, e model.StockEntry) error {
	_, err := s.update(func(st *State) error {
		updated, err := s.repo.AddEntry(ctx, e)
		if err != nil {
			return err
		}
		st.Entries = updated
		return nil
	})
	if err == nil {
		s.logger.Info("entry recorded", "id", e.ID, "product", e.ProductID, "quantity", e.Quantity, "total", e.TotalPrice.String())
	}
	return err
}

// AddDebt prepends d to the debt list.
func (s *Shop) AddDebt(ctx context.Context, d model.DebtEntry) error {
	_, err := s.update(func(st *State) error {
		updated, err := s.repo.AddDebt(ctx, d)
		if err != nil {
			return err
		}
		st.Debts = updated
		return nil
	})
	if err == nil {
		s.logger.Info("debt recorded", "id", d.ID, "customer", d.CustomerName, "amount", d.Amount.String())
	}
	return err
}

// DeleteDebt removes a settled debt. Unknown ids are a no-op.
func (s *Shop) DeleteDebt(ctx context.Context, id string) error {
	_, err := s.update(func(st *State) error {
		updated, err := s.repo.DeleteDebt(ctx, id)
		if err != nil {
			return err
		}
		st.Debts = updated
		return nil
	})
	if err == nil {
		s.logger.Info("debt settled", "id", id)
	}
	return err
}

// UpdateCategories replaces the category list wholesale.
func (s *Shop) UpdateCategories(ctx context.Context, cats []model.Category) error {
	_, err := s.update(func(st *State) error {
		if err := s.repo.SaveCategories(ctx, cats); err != nil {
			return err
		}
		st.Categories = cats
		return nil
	})
	return err
}

// UpdateProducts replaces the product list wholesale.
func (s *Shop) UpdateProducts(ctx context.Context, prods []model.Product) error {
	_, err := s.update(func(st *State) error {
		if err := s.repo.SaveProducts(ctx, prods); err != nil {
			return err
		}
		st.Products = prods
		return nil
	})
	return err
}

// RecordSale records qty units of productID. For ice products a nil count
// carries the leftover forward from the newest ice entry of that product.
func (s *Shop) RecordSale(ctx context.Context, productID string, qty int, ice *inventory.IceCount) (model.StockEntry, error) {
	st := s.State()

	product, ok := inventory.FindProduct(st.Products, productID)
	if !ok {
		return model.StockEntry{}, fmt.Errorf("%w: %s", inventory.ErrUnknownProduct, productID)
	}
	if product.CategoryID == model.CategoryIce && ice == nil {
		ice = &inventory.IceCount{PreviousLeftover: inventory.LastIceLeftover(st.Entries, productID)}
	}

	entry, err := inventory.NewStockEntry(product, qty, ice, s.now(), "")
	if err != nil {
		return model.StockEntry{}, err
	}
	entry.ID = s.ids.Generate()
	if err := s.AddEntry(ctx, entry); err != nil {
		return model.StockEntry{}, err
	}
	return entry, nil
}

// RecordDebt records an amount owed by customer.
func (s *Shop) RecordDebt(ctx context.Context, customer, description string, amount decimal.Decimal) (model.DebtEntry, error) {
	debt, err := inventory.NewDebt(customer, description, amount, s.now(), "")
	if err != nil {
		return model.DebtEntry{}, err
	}
	debt.ID = s.ids.Generate()
	if err := s.AddDebt(ctx, debt); err != nil {
		return model.DebtEntry{}, err
	}
	return debt, nil
}

// AddCategory creates a category and appends it to the list.
func (s *Shop) AddCategory(ctx context.Context, name, image string) (model.Category, error) {
	cat, err := inventory.NewCategory(name, image, "")
	if err != nil {
		return model.Category{}, err
	}
	cat.ID = inventory.CategoryID(s.ids.Generate())
	cats, err := inventory.AddCategory(s.State().Categories, cat)
	if err != nil {
		return model.Category{}, err
	}
	if err := s.UpdateCategories(ctx, cats); err != nil {
		return model.Category{}, err
	}
	return cat, nil
}

// DeleteCategory removes a category nothing references. On a
// *inventory.CategoryInUseError the store is not touched.
func (s *Shop) DeleteCategory(ctx context.Context, id string) error {
	st := s.State()
	cats, err := inventory.RemoveCategory(st.Categories, st.Products, id)
	if err != nil {
		return err
	}
	return s.UpdateCategories(ctx, cats)
}

// AddProduct creates a product and appends it to the catalog.
func (s *Shop) AddProduct(ctx context.Context, categoryID, name string, price decimal.Decimal, unit string) (model.Product, error) {
	st := s.State()
	prod, err := inventory.NewProduct(st.Categories, categoryID, name, price, unit, "")
	if err != nil {
		return model.Product{}, err
	}
	prod.ID = s.ids.Generate()
	prods, err := inventory.AddProduct(st.Products, prod)
	if err != nil {
		return model.Product{}, err
	}
	if err := s.UpdateProducts(ctx, prods); err != nil {
		return model.Product{}, err
	}
	return prod, nil
}

// DeleteProduct removes a product. Past entries keep their snapshot of it.
func (s *Shop) DeleteProduct(ctx context.Context, id string) error {
	return s.UpdateProducts(ctx, inventory.RemoveProduct(s.State().Products, id))
}
