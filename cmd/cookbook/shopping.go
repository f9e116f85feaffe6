package main

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/repository"
)

func shoppingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shopping",
		Aliases: []string{"shop", "list"},
		Short:   "Manage the shopping list",
	}

	var asJSON bool
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show the shopping list grouped by store and category",
		Run: func(cmd *cobra.Command, args []string) {
			list, err := components.ShoppingList.Get()
			if err != nil {
				exitOnError(err)
			}
			if asJSON {
				fmt.Println(list.GroupedJSON())
				return
			}
			printShoppingList(list)
		},
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "Emit the grouped JSON document")

	addCmd := &cobra.Command{
		Use:   "add <name>...",
		Short: "Put ingredients on the shopping list",
		Long: `Put one or more ingredients on the shopping list. Adding an ingredient
already on the list raises its amount by one. Unknown ingredients are
registered on the fly with fallback category and store.`,
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var list *model.ShoppingList
			for _, name := range args {
				var err error
				list, err = components.ShoppingList.AddItem(name)
				if err != nil {
					// The in-memory list is still updated; report and
					// keep going so the remaining names get added.
					var perr *repository.PersistenceError
					if list != nil && errors.As(err, &perr) {
						warn(err)
						continue
					}
					exitOnError(err)
				}
			}
			printShoppingList(list)
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <name>...",
		Short: "Take ingredients off the shopping list",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var list *model.ShoppingList
			for _, name := range args {
				var err error
				list, err = components.ShoppingList.RemoveItem(name)
				if err != nil {
					exitOnError(err)
				}
			}
			printShoppingList(list)
		},
	}

	cmd.AddCommand(showCmd, addCmd, removeCmd)
	return cmd
}

func printShoppingList(list *model.ShoppingList) {
	items := list.Items()
	if len(items) == 0 {
		fmt.Println("Shopping list is empty")
		return
	}

	var curStore model.StoreLocation
	var curCategory model.Category
	first := true
	for _, item := range items {
		ing := item.Ingredient
		if first || ing.Store != curStore {
			fmt.Println(color.GreenString(ing.Store.Label()))
			curStore = ing.Store
			curCategory = ing.Category
			fmt.Println("  " + color.CyanString(curCategory.Label()))
		} else if ing.Category != curCategory {
			curCategory = ing.Category
			fmt.Println("  " + color.CyanString(curCategory.Label()))
		}
		first = false

		if item.Amount > 1 {
			fmt.Printf("    %s  x%d\n", ing.Name, item.Amount)
		} else {
			fmt.Printf("    %s\n", ing.Name)
		}
	}
}
