// Package main provides the cookbook CLI entrypoint.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/guttosm/cookbook-service/config"
	"github.com/guttosm/cookbook-service/internal/app"
)

var (
	version    = "1.0.0"
	cfg        config.Config
	components app.Components
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cookbook",
		Short: "Household cookbook - recipes, ingredients and shopping lists",
		Long: `cookbook manages a household recipe collection backed by flat files.

Ingredients carry a grocery category and a preferred store, recipes
reference ingredients with amounts and units, and the shopping list
groups its items by store and category for a walk through the shop.

Set DATA_DIR to point at the directory holding ingredients.csv,
recipes.csv and shoppingList.csv (defaults to the working directory).`,
		Version: version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional; real env vars win either way
			_ = godotenv.Load()
			cfg = config.Load()
			app.InitializeLogger()
			components = app.InitializeServices(cfg.Storage)
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		ingredientsCmd(),
		recipesCmd(),
		shoppingCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
