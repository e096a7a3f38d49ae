package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/smartstock/internal/backup"
)

// ExportResult is the export payload when writing to a file.
type ExportResult struct {
	File       string `json:"file"`
	Format     string `json:"format"`
	ExportedAt string `json:"exportedAt"`
	Entries    int    `json:"entries"`
	Debts      int    `json:"debts"`
}

// ImportResult reports which collections an import replaced.
type ImportResult struct {
	File     string   `json:"file"`
	Replaced []string `json:"replaced"`
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output, as string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a backup of all shop data",
		Long: `Write categories, products, entries and debts to a backup document.

Without -o the file is named smartstock-backup-YYYY-MM-DD.<ext> in the current
directory. Use -o - to write the document to stdout.

Examples:
  smartstock export
  smartstock export --as yaml
  smartstock export -o - > backup.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				format, err := backup.ParseFormat(as)
				if err != nil {
					return s.formatter.Fail("failed to export", fmt.Errorf("%w: %v", errInvalidArgument, err))
				}
				if as == "" && output != "" && output != "-" {
					format = backup.FormatFromPath(output)
				}

				doc := s.shop.Export(ctx)
				var buf bytes.Buffer
				if err := backup.Encode(&buf, doc, format); err != nil {
					return s.formatter.Fail("failed to export", err)
				}

				if output == "-" {
					_, err := s.formatter.Writer.Write(buf.Bytes())
					return err
				}
				path := output
				if path == "" {
					path = s.shop.ExportFileName(format)
				}
				if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
					return s.formatter.Fail("failed to export", &fileError{err})
				}
				s.logger.Info("backup exported", "file", path, "format", string(format))

				result := ExportResult{
					File:       path,
					Format:     string(format),
					ExportedAt: doc.ExportedAt,
					Entries:    len(doc.Entries),
					Debts:      len(doc.Debts),
				}
				if s.formatter.IsJSON() {
					return s.formatter.Success(result)
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Exported %d entries and %d debts to %s\n", result.Entries, result.Debts, path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.Flags().StringVar(&as, "as", "", "document format json|yaml (default from -o extension, else json)")

	return cmd
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var as string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Restore shop data from a backup",
		Long: `Restore from a backup document. Each of categories, products, entries and
debts present in the document replaces the stored collection; absent or null
keys leave it untouched. A document that fails validation changes nothing.

Exit codes:
  0 - Backup applied
  1 - Document invalid
  2 - File or database error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(rootOpts, cmd, func(ctx context.Context, s *session) error {
				path := args[0]
				format := backup.FormatFromPath(path)
				if as != "" {
					f, err := backup.ParseFormat(as)
					if err != nil {
						return s.formatter.Fail("failed to import", fmt.Errorf("%w: %v", errInvalidArgument, err))
					}
					format = f
				}

				data, err := os.ReadFile(path)
				if err != nil {
					return s.formatter.Fail("failed to import", &fileError{err})
				}
				applied, err := s.shop.Import(ctx, data, format)
				if err != nil {
					return s.formatter.Fail("failed to import", err)
				}

				result := ImportResult{File: path, Replaced: []string{}}
				if applied.Categories != nil {
					result.Replaced = append(result.Replaced, "categories")
				}
				if applied.Products != nil {
					result.Replaced = append(result.Replaced, "products")
				}
				if applied.Entries != nil {
					result.Replaced = append(result.Replaced, "entries")
				}
				if applied.Debts != nil {
					result.Replaced = append(result.Replaced, "debts")
				}

				if s.formatter.IsJSON() {
					return s.formatter.Success(result)
				}
				if len(result.Replaced) == 0 {
					fmt.Fprintf(s.formatter.Writer, "✓ Nothing to import from %s\n", path)
					return nil
				}
				fmt.Fprintf(s.formatter.Writer, "✓ Imported %v from %s\n", result.Replaced, path)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&as, "as", "", "document format json|yaml (default from extension)")

	return cmd
}
