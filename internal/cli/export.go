package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/export"
	"github.com/guttosm/packlist-service/internal/i18n"
	"github.com/spf13/cobra"
)

type exportOptions struct {
	input   string
	catalog string
	unit    string
	output  string
	lang    string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render an order as a proforma workbook",
		Long: `Reads a JSON order with an invoice header (the body accepted by
POST /api/packing/export) and writes the Invoice, Packing Calculation and
Packing Summary sheets to an xlsx file.`,
		Example: `  packlist export --input order.json --catalog catalog.xlsx
  packlist export --input order.json --output pf-42.xlsx --lang tr`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req dto.ExportRequest
			if err := readOrder(cmd, opts.input, &req); err != nil {
				return err
			}

			packing, err := calculate(root, &req.PackingRequest, opts.catalog, opts.unit)
			if err != nil {
				return err
			}

			header := req.Header.ToModel()
			if header.Currency == "" {
				header.Currency = root.cfg.Export.Currency
			}
			if header.Date.IsZero() {
				header.Date = time.Now().UTC()
			}

			doc := export.Document{
				Company: export.Company{
					Name:    root.cfg.Export.CompanyName,
					Address: root.cfg.Export.CompanyAddress,
				},
				Header:   header,
				Packing:  packing,
				Language: i18n.Tag(i18n.ParseLocale(opts.lang)),
			}

			path := opts.output
			if path == "" {
				path = doc.Filename()
			}
			if err := writeWorkbookFile(path, doc); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s cases, invoice total %s %s)\n",
				path, number(packing.Totals.TotalCases), packing.Totals.InvoiceTotal.StringFixed(2),
				strings.ToUpper(header.Currency))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Order JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "Catalog xlsx file; defaults to the products embedded in the order")
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "Counting unit override: case or piece")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Workbook path; defaults to a name derived from the proforma number")
	cmd.Flags().StringVar(&opts.lang, "lang", "en", "Locale for number formatting: en or tr")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func writeWorkbookFile(path string, doc export.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create workbook: %w", err)
	}
	if err := export.WriteWorkbook(f, doc); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("write workbook: %w", err)
	}
	return f.Close()
}
