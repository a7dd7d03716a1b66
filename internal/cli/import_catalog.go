package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guttosm/packlist-service/internal/importer"
	"github.com/guttosm/packlist-service/internal/repository"
	"github.com/guttosm/packlist-service/internal/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type importOptions struct {
	file    string
	dryRun  bool
	timeout time.Duration
}

func newImportCatalogCommand(root *rootOptions) *cobra.Command {
	opts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import-catalog",
		Short: "Upsert a catalog spreadsheet into MongoDB",
		Long: `Parses an xlsx catalog and upserts every valid row by product ID into the
database named by MONGODB_URI and MONGODB_DATABASE. Rejected rows are listed
and skipped. With --dry-run the file is only parsed.`,
		Example: `  packlist import-catalog --file catalog.xlsx --dry-run
  MONGODB_URI=mongodb://localhost:27017 packlist import-catalog --file catalog.xlsx`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := os.Open(opts.file)
			if err != nil {
				return fmt.Errorf("open catalog: %w", err)
			}
			defer f.Close()

			result, err := importer.ParseCatalog(f)
			if err != nil {
				return fmt.Errorf("parse catalog: %w", err)
			}

			out := cmd.OutOrStdout()
			if opts.dryRun {
				fmt.Fprintf(out, "Parsed %d products, skipped %d rows (dry run)\n", len(result.Products), result.Skipped())
				return writeRowErrors(out, result.RowErrors)
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			imported, err := importProducts(ctx, root, result)
			if err != nil {
				return err
			}

			log.Info().Str("file", opts.file).Int("imported", imported).Int("skipped", result.Skipped()).
				Msg("Catalog imported")
			fmt.Fprintf(out, "Imported %d products, skipped %d rows\n", imported, result.Skipped())
			return writeRowErrors(out, result.RowErrors)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Catalog xlsx file (required)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and report without writing")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", time.Minute, "Timeout for the database import")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func importProducts(ctx context.Context, root *rootOptions, result *importer.ImportResult) (int, error) {
	db, err := repository.NewMongoDB(root.cfg.Database.URI, root.cfg.Database.DatabaseName)
	if err != nil {
		return 0, fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to close MongoDB connection")
		}
	}()

	catalog := service.NewCatalogService(repository.NewProductRepository(db))
	imported, err := catalog.Import(ctx, result.Products)
	if err != nil {
		return 0, fmt.Errorf("import catalog: %w", err)
	}
	return imported, nil
}

func writeRowErrors(w io.Writer, rowErrors []importer.RowError) error {
	if len(rowErrors) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROW\tCOLUMN\tREASON")
	for _, re := range rowErrors {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", re.Row, re.Column, re.Message)
	}
	return tw.Flush()
}
