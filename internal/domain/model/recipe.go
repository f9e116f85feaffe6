package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// RecipeIngredient is one ingredient entry of a recipe: the ingredient
// itself plus the amount and free-form unit the recipe calls for.
type RecipeIngredient struct {
	Ingredient Ingredient
	Amount     uint16
	Unit       string
}

// Recipe is a named collection of ingredient entries keyed by
// ingredient name, plus a set of free-form tags. Recipes are parsed
// once at load time and are immutable afterwards.
type Recipe struct {
	Name        string
	Ingredients map[string]RecipeIngredient
	Tags        map[string]struct{}
}

// ParseRecipeRecord builds a Recipe from a persisted line of the form
// name;clause;clause;... where each clause is either a tag (starting
// with '#') or an ingredient clause name[,amount[,unit]].
//
// A missing or non-numeric amount degrades to 0 and a missing unit to
// the empty string; the parse never fails on a malformed clause.
//
// Ingredient clauses are resolved against known. Names absent from
// known are auto-created with fallback category and store; the created
// ingredients are inserted into known and returned so the caller can
// persist them.
func ParseRecipeRecord(line string, known map[string]Ingredient) (Recipe, []Ingredient) {
	clauses := strings.Split(line, ";")

	recipe := Recipe{
		Name:        clauses[0],
		Ingredients: make(map[string]RecipeIngredient),
		Tags:        make(map[string]struct{}),
	}

	var created []Ingredient
	for _, clause := range clauses[1:] {
		if strings.HasPrefix(clause, "#") {
			recipe.Tags[clause] = struct{}{}
			continue
		}

		parts := strings.Split(clause, ",")
		name := parts[0]

		var amount uint16
		if len(parts) > 1 {
			if n, err := strconv.ParseUint(parts[1], 10, 16); err == nil {
				amount = uint16(n)
			}
		}
		unit := ""
		if len(parts) > 2 {
			unit = parts[2]
		}

		ing, ok := known[name]
		if !ok {
			ing = NewIngredient(name)
			known[name] = ing
			created = append(created, ing)
		}

		recipe.Ingredients[name] = RecipeIngredient{
			Ingredient: ing,
			Amount:     amount,
			Unit:       unit,
		}
	}

	return recipe, created
}

// HasAnyTag reports whether the recipe's tag set intersects tags.
func (r Recipe) HasAnyTag(tags []string) bool {
	for _, tag := range tags {
		if _, ok := r.Tags[tag]; ok {
			return true
		}
	}
	return false
}

// TagList returns the recipe's tags as a sorted slice.
func (r Recipe) TagList() []string {
	tags := make([]string, 0, len(r.Tags))
	for tag := range r.Tags {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// MarshalJSON serializes the recipe with ingredient entries sorted by
// ingredient name for a deterministic wire shape.
func (r Recipe) MarshalJSON() ([]byte, error) {
	type entry struct {
		Name   string `json:"name"`
		Amount uint16 `json:"amount"`
		Unit   string `json:"unit,omitempty"`
	}

	names := make([]string, 0, len(r.Ingredients))
	for name := range r.Ingredients {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]entry, 0, len(names))
	for _, name := range names {
		ri := r.Ingredients[name]
		entries = append(entries, entry{Name: name, Amount: ri.Amount, Unit: ri.Unit})
	}

	return json.Marshal(struct {
		Name        string   `json:"name"`
		Ingredients []entry  `json:"ingredients"`
		Tags        []string `json:"tags"`
	}{
		Name:        r.Name,
		Ingredients: entries,
		Tags:        r.TagList(),
	})
}

// UnifyTags normalizes a comma-separated user input list into tag form:
// any token not already starting with '#' is prefixed with it. The
// normalization is applied to user-supplied filter sets at query time
// only; stored tags keep whatever form was written in the record.
func UnifyTags(input string) []string {
	tokens := strings.Split(strings.TrimSpace(input), ",")
	tags := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.HasPrefix(token, "#") {
			tags = append(tags, token)
		} else {
			tags = append(tags, "#"+token)
		}
	}
	return tags
}
