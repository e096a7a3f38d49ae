package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/store"
)

// NewStorageCommand creates the storage command.
func NewStorageCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "storage",
		Short: "Show how much of the storage budget the data uses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				u, err := s.shop.Usage(ctx)
				if err != nil {
					return s.formatter.Fail("failed to measure storage", &storageError{err})
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(u)
				}
				fmt.Fprintf(s.formatter.Writer, "Storage: %.2f MB of %d MB (%.1f%%)\n", u.SizeMB, store.QuotaMB, u.Percentage)
				return nil
			})
		},
	}
}
