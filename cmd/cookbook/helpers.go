package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// exitOnError prints the error to stderr and exits.
func exitOnError(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.RedString("Error:"), err)
	os.Exit(1)
}

// warn prints a non-fatal problem to stderr and keeps going.
func warn(err error) {
	fmt.Fprintf(os.Stderr, "%s %v\n", color.YellowString("Warning:"), err)
}

// printIngredient writes one registry entry in export order.
func printIngredient(ing model.Ingredient) {
	fmt.Printf("%-24s %-14s %s\n",
		ing.Name,
		color.CyanString(ing.Category.Label()),
		color.HiBlackString(ing.Store.Label()),
	)
}

// printRecipe writes a recipe with its ingredient lines and tags.
func printRecipe(r model.Recipe) {
	fmt.Println(color.GreenString(r.Name))

	items := make([]model.RecipeIngredient, 0, len(r.Ingredients))
	for _, item := range r.Ingredients {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Ingredient.Name < items[j].Ingredient.Name
	})

	for _, item := range items {
		line := "  " + item.Ingredient.Name
		if item.Amount > 0 {
			line += fmt.Sprintf("  %d", item.Amount)
			if item.Unit != "" {
				line += " " + item.Unit
			}
		}
		fmt.Println(line)
	}
	if tags := r.TagList(); len(tags) > 0 {
		fmt.Println("  " + color.HiBlackString(strings.Join(tags, " ")))
	}
}
