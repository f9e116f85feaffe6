package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

func ingredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ingredients",
		Aliases: []string{"ingredient", "ing"},
		Short:   "Manage the ingredient registry",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all ingredients sorted by store, category and name",
		Run: func(cmd *cobra.Command, args []string) {
			ingredients, err := components.Ingredients.List()
			if err != nil {
				exitOnError(err)
			}
			if len(ingredients) == 0 {
				fmt.Println("No ingredients registered")
				return
			}
			for _, ing := range ingredients {
				printIngredient(ing)
			}
		},
	}

	var categoryCode, storeCode int
	addCmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add an ingredient or update its category and store",
		Long: `Add an ingredient to the registry, or update the category and store
of an existing one. Codes outside the known range fall back to the
"Anderes" category and the "Any" store.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ing, err := components.Ingredients.Upsert(args[0], categoryCode, storeCode)
			if err != nil {
				exitOnError(err)
			}
			fmt.Printf("Saved %s\n", color.GreenString(ing.Name))
			printIngredient(ing)
		},
	}
	addCmd.Flags().IntVarP(&categoryCode, "category", "c", -1, "Category code (see 'cookbook ingredients categories')")
	addCmd.Flags().IntVarP(&storeCode, "store", "s", -1, "Store code (see 'cookbook ingredients stores')")

	removeCmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "Remove an ingredient from the registry",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if err := components.Ingredients.Delete(args[0]); err != nil {
				exitOnError(err)
			}
			fmt.Printf("Removed %s\n", args[0])
		},
	}

	cmd.AddCommand(listCmd, addCmd, removeCmd, categoriesCmd(), storesCmd())
	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List grocery categories and their codes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, c := range model.Categories() {
				fmt.Printf("%3d  %s\n", c.Code(), c.Label())
			}
		},
	}
}

func storesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stores",
		Short: "List stores and their codes",
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range model.Stores() {
				fmt.Printf("%3d  %s\n", s.Code(), s.Label())
			}
		},
	}
}
