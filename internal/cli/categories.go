package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/inventory"
	"github.com/roach88/smartstock/internal/model"
)

// CategoryRow is a category with its product count.
type CategoryRow struct {
	model.Category
	Products int `json:"products"`
}

// NewCategoriesCommand creates the categories command group.
func NewCategoriesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List, add and delete product categories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, runCategoriesList)
		},
	})

	var image string
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a category",
		Long: `Add a category. Without --image the first preset picture is used.

Examples:
  smartstock categories add "ขนม"
  smartstock categories add "ยา" --image https://example.com/med.jpg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				cat, err := s.shop.AddCategory(ctx, args[0], image)
				if err != nil {
					return s.formatter.Fail("failed to add category", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(cat)
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Added category %s (%s)\n", cat.Name, cat.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&image, "image", "", "picture URL (default first preset)")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a category no product uses",
		Long: `Delete a category. The category must exist and no product may reference it;
past sales keep their recorded category id.

Exit codes:
  0 - Category deleted
  1 - Category unknown or still in use`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				id := args[0]
				cat, ok := inventory.FindCategory(s.shop.State().Categories, id)
				if !ok {
					return s.formatter.Fail("failed to delete category", fmt.Errorf("category %s: %w", id, errNotFound))
				}
				if err := s.shop.DeleteCategory(ctx, id); err != nil {
					return s.formatter.Fail("failed to delete category", err)
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(map[string]string{"deleted": id})
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Deleted category %s (%s)\n", cat.Name, id)
				return nil
			})
		},
	})

	return cmd
}

func runCategoriesList(_ context.Context, s *session) error {
	st := s.shop.State()
	rows := make([]CategoryRow, 0, len(st.Categories))
	for _, c := range st.Categories {
		rows = append(rows, CategoryRow{Category: c, Products: len(inventory.ProductsIn(st.Products, c.ID))})
	}

	if s.formatter.IsJSON() {
		return s.formatter.Success(rows)
	}
	w := s.formatter.Writer
	fmt.Fprintf(w, "Categories (%d)\n", len(rows))
	for _, r := range rows {
		fmt.Fprintf(w, "  %-12s %s [%d]\n", r.ID, r.Name, r.Products)
	}
	return nil
}
