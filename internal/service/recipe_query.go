// Package service implements the cookbook business operations on top of
// the repository layer: recipe filtering, ingredient registry upkeep,
// and the load-mutate-persist shopping list cycle.
package service

import (
	"strings"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// The recipe query engine is a set of pure functions over an externally
// supplied recipe collection; it does not own or load data. Result
// order follows map iteration and is unspecified.

// ByNameContains returns the recipes whose name contains substr.
// The match is case-sensitive.
func ByNameContains(recipes map[string]model.Recipe, substr string) []model.Recipe {
	matched := make([]model.Recipe, 0, len(recipes))
	for name, recipe := range recipes {
		if strings.Contains(name, substr) {
			matched = append(matched, recipe)
		}
	}
	return matched
}

// ByIngredients returns the recipes that use at least one of the
// included ingredient names (or all recipes when included is empty) and
// none of the excluded ones. Both filters match on ingredient names.
// A name listed in both filters excludes the recipe: exclusion is
// checked per ingredient regardless of the include state and
// short-circuits the whole recipe.
func ByIngredients(recipes map[string]model.Recipe, included, excluded []string) []model.Recipe {
	matched := make([]model.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		isIncluded := len(included) == 0
		isExcluded := false
		for name := range recipe.Ingredients {
			if !isIncluded && contains(included, name) {
				isIncluded = true
			}
			if contains(excluded, name) {
				isExcluded = true
				break
			}
		}
		if isIncluded && !isExcluded {
			matched = append(matched, recipe)
		}
	}
	return matched
}

// SplitIncludeExclude partitions filter tokens: a token prefixed with
// '!' is stripped of the prefix and excluded, all others are included.
func SplitIncludeExclude(tokens []string) (included, excluded []string) {
	for _, token := range tokens {
		if strings.HasPrefix(token, "!") {
			excluded = append(excluded, token[1:])
		} else {
			included = append(included, token)
		}
	}
	return included, excluded
}

// ByTags returns the recipes whose tag set intersects tags. The tags
// must already be normalized by the caller (see model.UnifyTags).
func ByTags(recipes map[string]model.Recipe, tags []string) []model.Recipe {
	matched := make([]model.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		if recipe.HasAnyTag(tags) {
			matched = append(matched, recipe)
		}
	}
	return matched
}

func contains(values []string, v string) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
