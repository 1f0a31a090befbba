package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roomdecor",
		Short: "AI-powered furniture recommendation backend",
		Long: `Roomdecor analyzes room photos with vision-capable LLMs and recommends
furniture from a catalog of placeable 3D assets.

It serves the HTTP API used by the GruhaAlankar apps and ships a CLI for
seeding the catalog and evaluating recommendation quality.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newSeedCmd())
	cmd.AddCommand(newEvalCmd())

	return cmd
}
