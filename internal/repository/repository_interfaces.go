// Package repository provides flat-file persistence for the cookbook
// domain. Every repository treats the backing file as the source of
// truth: loads return a full snapshot and saves rewrite the full state.
package repository

import (
	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// IngredientRepository persists the ingredient registry.
type IngredientRepository interface {
	// Load returns all persisted ingredients keyed by name. A missing
	// backing file yields an empty registry, not an error.
	Load() (map[string]model.Ingredient, error)

	// SaveAll rewrites the full registry.
	SaveAll(ingredients []model.Ingredient) error

	// Append persists a single new ingredient without rewriting the
	// rest of the registry.
	Append(ingredient model.Ingredient) error
}

// RecipeRepository loads the persisted recipe collection.
//
// Recipe records may reference ingredients absent from the registry;
// those are auto-created with fallback category and store. Load inserts
// them into known and returns them so the caller can persist them.
type RecipeRepository interface {
	Load(known map[string]model.Ingredient) (map[string]model.Recipe, []model.Ingredient, error)
}

// ShoppingListRepository persists the shopping list.
type ShoppingListRepository interface {
	// Load returns the persisted shopping list. Entries naming unknown
	// ingredients auto-create them, mirroring RecipeRepository.Load.
	Load(known map[string]model.Ingredient) (*model.ShoppingList, []model.Ingredient, error)

	// Save rewrites the full shopping list.
	Save(list *model.ShoppingList) error
}
