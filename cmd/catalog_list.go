package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/pcobb/galvan/internal/domain/gates"
	"github.com/pcobb/galvan/internal/presentation"
)

var catalogCategory string

var catalogListCmd = &cobra.Command{
	Use:   "catalog:list",
	Short: "List all registered component types",
	Long: `List all registered component types as JSON, sorted by id.

Use --category to filter entries by category.

Examples:
  # List all components
  galvan catalog:list

  # Filter by category
  galvan catalog:list --category Gates

  # Parse specific fields with jq
  galvan catalog:list | jq '.[].id'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := presentation.FromCatalog(gates.Catalog())

		if cmd.Flags().Changed("category") {
			filtered := make([]presentation.CatalogEntry, 0, len(entries))
			for _, entry := range entries {
				if entry.Category == catalogCategory {
					filtered = append(filtered, entry)
				}
			}
			entries = filtered
		}

		formatter := presentation.NewFormatter(os.Stdout)
		return formatter.FormatCatalog(entries)
	},
}

func init() {
	catalogListCmd.Flags().StringVarP(&catalogCategory, "category", "C", "", "Filter by component category (e.g., Gates)")
	rootCmd.AddCommand(catalogListCmd)
}
