package service

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/metrics"
	"github.com/guttosm/cookbook-service/internal/repository"
)

// RecipeService loads the recipe collection and runs the query engine
// over it. Recipes are read-only; loading may auto-create ingredients
// referenced by recipes but missing from the registry, and those are
// persisted as a side effect.
type RecipeService interface {
	// List returns all recipes keyed by name.
	List() (map[string]model.Recipe, error)

	// FindByName returns the recipes whose name contains substr.
	FindByName(substr string) ([]model.Recipe, error)

	// FindByIngredients filters recipes by ingredient-name tokens; a
	// token prefixed with '!' excludes recipes using that ingredient.
	FindByIngredients(tokens []string) ([]model.Recipe, error)

	// FindByTags returns the recipes tagged with at least one of the
	// tags in the comma-separated input. Bare words are normalized to
	// '#' tag form before matching.
	FindByTags(input string) ([]model.Recipe, error)
}

type recipeService struct {
	recipes     repository.RecipeRepository
	ingredients repository.IngredientRepository
}

// NewRecipeService creates a RecipeService backed by the given
// repositories.
func NewRecipeService(recipes repository.RecipeRepository, ingredients repository.IngredientRepository) RecipeService {
	return &recipeService{recipes: recipes, ingredients: ingredients}
}

func (s *recipeService) List() (map[string]model.Recipe, error) {
	return s.load()
}

func (s *recipeService) FindByName(substr string) ([]model.Recipe, error) {
	recipes, err := s.load()
	if err != nil {
		return nil, err
	}
	metrics.RecordRecipeQuery("name")
	return ByNameContains(recipes, substr), nil
}

func (s *recipeService) FindByIngredients(tokens []string) ([]model.Recipe, error) {
	recipes, err := s.load()
	if err != nil {
		return nil, err
	}
	included, excluded := SplitIncludeExclude(tokens)
	metrics.RecordRecipeQuery("ingredients")
	return ByIngredients(recipes, included, excluded), nil
}

func (s *recipeService) FindByTags(input string) ([]model.Recipe, error) {
	recipes, err := s.load()
	if err != nil {
		return nil, err
	}
	metrics.RecordRecipeQuery("tags")
	return ByTags(recipes, model.UnifyTags(input)), nil
}

// load reads the registry and the recipe collection, persisting any
// ingredients the recipe records auto-created. A failed append is
// logged and does not fail the load: the in-memory ingredient is still
// attached to its recipe.
func (s *recipeService) load() (map[string]model.Recipe, error) {
	registry, err := s.ingredients.Load()
	if err != nil {
		return nil, err
	}

	recipes, created, err := s.recipes.Load(registry)
	if err != nil {
		return nil, err
	}

	for _, ing := range created {
		if err := s.ingredients.Append(ing); err != nil {
			metrics.RecordPersistenceFailure("ingredients")
			log.Error().Err(err).Str("ingredient", ing.Name).Msg("Failed to persist auto-created ingredient")
		}
	}
	return recipes, nil
}
