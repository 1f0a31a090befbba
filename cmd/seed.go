package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gruhalankar/roomdecor/internal/catalog"
	"github.com/gruhalankar/roomdecor/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newSeedCmd() *cobra.Command {
	var seedFile string
	var catalogFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the furniture catalog from a seed file",
		Long: `Loads furniture items from a YAML seed file and replaces the catalog
contents. Run once to initialize a fresh deployment.`,
		Example: `  roomdecor seed --file seed/furniture.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(seedFile)
			if err != nil {
				return fmt.Errorf("failed to read seed file: %w", err)
			}

			var items []models.CatalogItem
			if err := yaml.Unmarshal(data, &items); err != nil {
				return fmt.Errorf("failed to parse seed file: %w", err)
			}

			for _, item := range items {
				if item.ID == "" {
					return fmt.Errorf("seed item %q has no id", item.Name)
				}
			}

			store := catalog.New(catalogFile)
			if err := store.Replace(items); err != nil {
				return err
			}

			slog.Info("Catalog seeded", "items", len(items), "source", seedFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "seed/furniture.yaml", "Path to the YAML seed file")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "Path to the catalog JSON file")

	return cmd
}
