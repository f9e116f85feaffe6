package service

import (
	"fmt"

	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/repository"
)

// IngredientService defines operations over the ingredient registry.
// Every operation follows the load-mutate-persist cycle: the registry
// is reloaded from storage, mutated once, and written back in full.
type IngredientService interface {
	// List returns all ingredients sorted by (store, category, name).
	List() ([]model.Ingredient, error)

	// Upsert updates the category and store of an existing ingredient,
	// or creates it when absent. Unknown codes degrade to the fallback
	// variants.
	Upsert(name string, categoryCode, storeCode int) (model.Ingredient, error)

	// Delete removes an ingredient from the registry. Returns
	// model.ErrNotFound when no ingredient with that name exists.
	Delete(name string) error

	// CreateIfMissing returns the named ingredient, creating and
	// persisting it with fallback category and store when absent. The
	// registry file gains the new ingredient only when the write
	// succeeds.
	CreateIfMissing(name string) (model.Ingredient, error)
}

type ingredientService struct {
	repo repository.IngredientRepository
}

// NewIngredientService creates an IngredientService backed by repo.
func NewIngredientService(repo repository.IngredientRepository) IngredientService {
	return &ingredientService{repo: repo}
}

func (s *ingredientService) List() ([]model.Ingredient, error) {
	registry, err := s.repo.Load()
	if err != nil {
		return nil, err
	}

	ingredients := make([]model.Ingredient, 0, len(registry))
	for _, ing := range registry {
		ingredients = append(ingredients, ing)
	}
	model.SortIngredients(ingredients)
	return ingredients, nil
}

func (s *ingredientService) Upsert(name string, categoryCode, storeCode int) (model.Ingredient, error) {
	registry, err := s.repo.Load()
	if err != nil {
		return model.Ingredient{}, err
	}

	ing := model.Ingredient{
		Name:     name,
		Category: model.CategoryByCode(categoryCode),
		Store:    model.StoreByCode(storeCode),
	}
	registry[name] = ing

	if err := s.saveRegistry(registry); err != nil {
		return model.Ingredient{}, err
	}
	return ing, nil
}

func (s *ingredientService) Delete(name string) error {
	registry, err := s.repo.Load()
	if err != nil {
		return err
	}

	if _, ok := registry[name]; !ok {
		return fmt.Errorf("ingredient %q: %w", name, model.ErrNotFound)
	}
	delete(registry, name)

	return s.saveRegistry(registry)
}

func (s *ingredientService) CreateIfMissing(name string) (model.Ingredient, error) {
	registry, err := s.repo.Load()
	if err != nil {
		return model.Ingredient{}, err
	}

	if ing, ok := registry[name]; ok {
		return ing, nil
	}

	ing := model.NewIngredient(name)
	if err := s.repo.Append(ing); err != nil {
		return model.Ingredient{}, err
	}
	return ing, nil
}

func (s *ingredientService) saveRegistry(registry map[string]model.Ingredient) error {
	ingredients := make([]model.Ingredient, 0, len(registry))
	for _, ing := range registry {
		ingredients = append(ingredients, ing)
	}
	return s.repo.SaveAll(ingredients)
}
