// Package cli implements the packlist command-line tool. It runs the same
// calculator and workbook renderer as the HTTP service against local files.
package cli

import (
	"github.com/guttosm/packlist-service/config"
	"github.com/guttosm/packlist-service/internal/logger"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	logLevel string
	cfg      config.Config
}

// NewRootCommand builds the packlist command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "packlist",
		Short: "Packing list calculator for shipment orders",
		Long: `packlist turns an order file into a packing list: lines are priced in the
selected counting unit, grouped by product series, and the pallet weight is
spread over every unit shipped. The catalog comes from an xlsx file or from
the products embedded in the order.

Defaults are read from the same environment variables as the service
(PACKING_DEFAULT_UNIT, PACKING_PROMO_SERIES, EXPORT_*, MONGODB_*).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.InitWithWriter(opts.logLevel, true, cmd.ErrOrStderr())
			opts.cfg = config.Load()
		},
	}

	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	root.AddCommand(
		newCalculateCommand(opts),
		newExportCommand(opts),
		newImportCatalogCommand(opts),
		newSchemaCommand(),
	)
	return root
}
