package cli

import (
	"reflect"

	"github.com/guttosm/packlist-service/internal/domain/dto"
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

const schemaID = "https://github.com/guttosm/packlist-service/schemas/orders.json"

func newSchemaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the order documents",
		Long: `Prints one JSON Schema document whose $defs describe the order files read by
calculate and export and the catalog and proforma request bodies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd.OutOrStdout(), orderSchema())
		},
	}
}

// orderSchema merges the definitions of every request type into one document.
func orderSchema() map[string]interface{} {
	reflector := &jsonschema.Reflector{
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(decimal.Decimal{}) {
				return &jsonschema.Schema{
					Type:        "string",
					Pattern:     `^\d+(\.\d+)?$`,
					Description: "Decimal amount",
				}
			}
			return nil
		},
	}

	definitions := make(map[string]*jsonschema.Schema)
	for _, t := range []interface{}{
		dto.PackingRequest{},
		dto.ExportRequest{},
		dto.ProformaRequest{},
		dto.ProductRequest{},
	} {
		schema := reflector.Reflect(t)
		for name, def := range schema.Definitions {
			definitions[name] = def
		}
	}

	return map[string]interface{}{
		"$schema":     "https://json-schema.org/draft/2020-12/schema",
		"$id":         schemaID,
		"title":       "Packing list order documents",
		"description": "JSON Schema for the order, export, proforma and product request bodies",
		"$defs":       definitions,
	}
}
