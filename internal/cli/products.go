package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/model"
)

// ProductsOptions holds flags for products subcommands.
type ProductsOptions struct {
	*RootOptions
	Category string
	Price    string
	Unit     string
}

// NewProductsCommand creates the products command group.
func NewProductsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ProductsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List, add and delete products",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List products, optionally of one category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				return runProductsList(s, opts.Category)
			})
		},
	}
	list.Flags().StringVar(&opts.Category, "category", "", "only products of this category id")
	cmd.AddCommand(list)

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a product",
		Long: `Add a product to an existing category. The debt category cannot hold products.

Examples:
  smartstock products add "สไปรท์" --category cat_soda --price 15 --unit กระป๋อง`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				price, err := parseMoney("price", opts.Price)
				if err != nil {
					return s.formatter.Fail("failed to add product", err)
				}
				prod, err := s.shop.AddProduct(ctx, opts.Category, args[0], price, opts.Unit)
				if err != nil {
					return s.formatter.Fail("failed to add product", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(prod)
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Added product %s %s/%s (%s)\n", prod.Name, baht(prod.Price), prod.Unit, prod.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&opts.Category, "category", "", "category id (required)")
	add.Flags().StringVar(&opts.Price, "price", "", "unit price in baht (required)")
	add.Flags().StringVar(&opts.Unit, "unit", "", "unit name (default "+inventory.DefaultUnit+")")
	_ = add.MarkFlagRequired("category")
	_ = add.MarkFlagRequired("price")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product; past sales keep their snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				id := args[0]
				prod, ok := inventory.FindProduct(s.shop.State().Products, id)
				if !ok {
					return s.formatter.Fail("failed to delete product", fmt.Errorf("product %s: %w", id, errNotFound))
				}
				if err := s.shop.DeleteProduct(ctx, id); err != nil {
					return s.formatter.Fail("failed to delete product", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(map[string]string{"deleted": id})
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Deleted product %s (%s)\n", prod.Name, id)
				return nil
			})
		},
	})

	return cmd
}

func runProductsList(s *session, categoryID string) error {
	st := s.shop.State()
	products := st.Products
	if categoryID != "" {
		if _, ok := inventory.FindCategory(st.Categories, categoryID); !ok {
			return s.formatter.Fail("failed to list products", fmt.Errorf("category %s: %w", categoryID, errNotFound))
		}
		products = inventory.ProductsIn(products, categoryID)
	}
	if products == nil {
		products = []model.Product{}
	}

	if s.formatter.IsJSON() {
		return s.formatter.Success(products)
	}
	w := s.formatter.Writer
	fmt.Fprintf(w, "Products (%d)\n", len(products))
	for _, p := range products {
		fmt.Fprintf(w, "  %-8s %s %s/%s [%s]\n", p.ID, p.Name, baht(p.Price), p.Unit, inventory.CategoryName(st.Categories, p.CategoryID))
	}
	return nil
}
