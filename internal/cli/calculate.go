package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/guttosm/packlist-service/internal/domain/model"
	"github.com/spf13/cobra"
)

type calculateOptions struct {
	input   string
	catalog string
	unit    string
	output  string
}

func newCalculateCommand(root *rootOptions) *cobra.Command {
	opts := &calculateOptions{}

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Print the packing list of an order",
		Long: `Reads a JSON order (the body accepted by POST /api/packing/calculate) and
prints the series groups and shipment totals.`,
		Example: `  packlist calculate --input order.json --catalog catalog.xlsx
  packlist calculate --input order.json --unit piece --output json
  cat order.json | packlist calculate --input -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req dto.PackingRequest
			if err := readOrder(cmd, opts.input, &req); err != nil {
				return err
			}

			packing, err := calculate(root, &req, opts.catalog, opts.unit)
			if err != nil {
				return err
			}

			switch strings.ToLower(opts.output) {
			case "json":
				return writeJSON(cmd.OutOrStdout(), packing)
			case "table":
				return writePackingTable(cmd.OutOrStdout(), packing)
			default:
				return fmt.Errorf("invalid output format %q: use table or json", opts.output)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Order JSON file, or - for stdin (required)")
	cmd.Flags().StringVarP(&opts.catalog, "catalog", "c", "", "Catalog xlsx file; defaults to the products embedded in the order")
	cmd.Flags().StringVarP(&opts.unit, "unit", "u", "", "Counting unit override: case or piece")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "table", "Output format: table or json")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writePackingTable(w io.Writer, pl model.PackingList) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Unit:\t%s\n", pl.Unit)
	fmt.Fprintf(tw, "Pallet kg per unit:\t%s\n\n", number(pl.PalletWeightPerUnit))

	fmt.Fprintln(tw, "NO\tGROUP\tQTY\tNET KG\tTARE KG\tGROSS KG\tPIECES")
	for _, g := range pl.Groups {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			g.Number, g.Label, number(g.TotalQuantity), number(g.TotalNetKg),
			number(g.TotalTareKg), number(g.TotalGrossKg), number(g.TotalPieces))
	}

	t := pl.Totals
	fmt.Fprintln(tw)
	fmt.Fprintf(tw, "Total cases:\t%s\n", number(t.TotalCases))
	fmt.Fprintf(tw, "Total pieces:\t%s\n", number(t.TotalPieces))
	fmt.Fprintf(tw, "Net kg:\t%s\n", number(t.TotalNetKg))
	fmt.Fprintf(tw, "Tare kg:\t%s\n", number(t.TotalTareKg))
	fmt.Fprintf(tw, "Gross kg:\t%s\n", number(t.TotalGrossKg))
	fmt.Fprintf(tw, "Pallets:\t%d\n", t.PalletCount)
	fmt.Fprintf(tw, "Invoice total:\t%s\n", t.InvoiceTotal.StringFixed(2))

	if len(pl.Unresolved) > 0 {
		ids := make([]string, len(pl.Unresolved))
		for i, u := range pl.Unresolved {
			ids[i] = u.ProductID
		}
		fmt.Fprintf(tw, "Unresolved:\t%s\n", strings.Join(ids, ", "))
	}

	return tw.Flush()
}

// number prints v with at most three decimals and no trailing zeros.
func number(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
