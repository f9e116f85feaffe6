package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

func recipesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "recipes",
		Aliases: []string{"recipe"},
		Short:   "Browse and search recipes",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all recipes",
		Run: func(cmd *cobra.Command, args []string) {
			recipes, err := components.Recipes.List()
			if err != nil {
				exitOnError(err)
			}
			printRecipes(mapToSorted(recipes))
		},
	}

	var byName, byIngredients, byTags string
	findCmd := &cobra.Command{
		Use:   "find",
		Short: "Search recipes by name, ingredients or tags",
		Long: `Search recipes. Exactly one filter applies per invocation, checked in
the order name, ingredients, tags.

Ingredient tokens are comma separated; prefix a token with '!' to
exclude recipes using that ingredient ("!Salami" keeps only recipes
without Salami). Tags match with or without the leading '#'.`,
		Run: func(cmd *cobra.Command, args []string) {
			var (
				recipes []model.Recipe
				err     error
			)
			switch {
			case byName != "":
				recipes, err = components.Recipes.FindByName(byName)
			case byIngredients != "":
				recipes, err = components.Recipes.FindByIngredients(strings.Split(byIngredients, ","))
			case byTags != "":
				recipes, err = components.Recipes.FindByTags(byTags)
			default:
				exitOnError(fmt.Errorf("one of --name, --ingredients or --tags is required"))
			}
			if err != nil {
				exitOnError(err)
			}
			printRecipes(recipes)
		},
	}
	findCmd.Flags().StringVarP(&byName, "name", "n", "", "Substring of the recipe name (case sensitive)")
	findCmd.Flags().StringVarP(&byIngredients, "ingredients", "i", "", "Comma-separated ingredient names, '!' excludes")
	findCmd.Flags().StringVarP(&byTags, "tags", "t", "", "Comma-separated tags")

	cmd.AddCommand(listCmd, findCmd)
	return cmd
}

func mapToSorted(recipes map[string]model.Recipe) []model.Recipe {
	result := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func printRecipes(recipes []model.Recipe) {
	if len(recipes) == 0 {
		fmt.Println("No recipes found")
		return
	}
	for i, r := range recipes {
		if i > 0 {
			fmt.Println()
		}
		printRecipe(r)
	}
}
