package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcobb/galvan/internal/domain/gates"
	"github.com/pcobb/galvan/internal/presentation"
)

var schemaOrientation string

var componentSchemaCmd = &cobra.Command{
	Use:   "component:schema <id>",
	Short: "Show the property schema of a component type",
	Long: `Instantiate a component type and print its full detail as JSON:
metadata, property schema, current values, and oriented shape.

Use --orientation to rotate the placement before printing.

Examples:
  # Show the default schema of the OR gate
  galvan component:schema or_gate

  # Rotate east before printing the shape
  galvan component:schema or_gate --orientation East

  # Parse specific fields with jq
  galvan component:schema and_gate | jq '.schema | keys'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		placement, err := gates.Catalog().Create(args[0])
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("orientation") {
			raw, merr := json.Marshal(schemaOrientation)
			if merr != nil {
				return merr
			}
			if serr := placement.SetProperty("orientation", raw); serr != nil {
				return fmt.Errorf("setting orientation: %w", serr)
			}
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatDetail(presentation.FromPlacement(placement))
	},
}

func init() {
	componentSchemaCmd.Flags().StringVarP(&schemaOrientation, "orientation", "o", "", "Orientation to apply (North, East, South, West)")
	rootCmd.AddCommand(componentSchemaCmd)
}
