package service

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/metrics"
	"github.com/guttosm/cookbook-service/internal/repository"
)

// ShoppingListService defines the shopping list operations. Every
// mutation follows the load-mutate-persist cycle: the full list is
// loaded from storage, mutated once, and written back. Persistence is
// best-effort: when the write fails, the returned list already reflects
// the mutation and the write error is returned alongside it.
type ShoppingListService interface {
	// Get returns the current shopping list.
	Get() (*model.ShoppingList, error)

	// AddItem puts the named ingredient on the list (add-or-increment).
	// An unknown ingredient is created and persisted first.
	AddItem(name string) (*model.ShoppingList, error)

	// RemoveItem takes the named ingredient off the list. Returns
	// model.ErrNotFound when the ingredient is not in the registry;
	// removing a known ingredient that is not on the list is a no-op.
	RemoveItem(name string) (*model.ShoppingList, error)
}

type shoppingListService struct {
	ingredients repository.IngredientRepository
	lists       repository.ShoppingListRepository
}

// NewShoppingListService creates a ShoppingListService backed by the
// given repositories.
func NewShoppingListService(ingredients repository.IngredientRepository, lists repository.ShoppingListRepository) ShoppingListService {
	return &shoppingListService{ingredients: ingredients, lists: lists}
}

func (s *shoppingListService) Get() (*model.ShoppingList, error) {
	registry, err := s.ingredients.Load()
	if err != nil {
		return nil, err
	}

	list, created, err := s.lists.Load(registry)
	if err != nil {
		return nil, err
	}
	s.persistCreated(created)
	return list, nil
}

func (s *shoppingListService) AddItem(name string) (*model.ShoppingList, error) {
	registry, err := s.ingredients.Load()
	if err != nil {
		return nil, err
	}

	ing, ok := registry[name]
	if !ok {
		ing = model.NewIngredient(name)
		if err := s.ingredients.Append(ing); err != nil {
			metrics.RecordPersistenceFailure("ingredients")
			return nil, err
		}
		registry[name] = ing
	}

	list, created, err := s.lists.Load(registry)
	if err != nil {
		return nil, err
	}
	s.persistCreated(created)

	list.Add(ing)
	metrics.RecordShoppingListMutation("add")

	if err := s.lists.Save(list); err != nil {
		metrics.RecordPersistenceFailure("shopping_list")
		return list, err
	}
	return list, nil
}

func (s *shoppingListService) RemoveItem(name string) (*model.ShoppingList, error) {
	registry, err := s.ingredients.Load()
	if err != nil {
		return nil, err
	}

	ing, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("ingredient %q: %w", name, model.ErrNotFound)
	}

	list, created, err := s.lists.Load(registry)
	if err != nil {
		return nil, err
	}
	s.persistCreated(created)

	list.Remove(ing)
	metrics.RecordShoppingListMutation("remove")

	if err := s.lists.Save(list); err != nil {
		metrics.RecordPersistenceFailure("shopping_list")
		return list, err
	}
	return list, nil
}

// persistCreated appends ingredients auto-created during a load to the
// registry file. Failures are logged and do not fail the operation that
// triggered the load.
func (s *shoppingListService) persistCreated(created []model.Ingredient) {
	for _, ing := range created {
		if err := s.ingredients.Append(ing); err != nil {
			metrics.RecordPersistenceFailure("ingredients")
			log.Error().Err(err).Str("ingredient", ing.Name).Msg("Failed to persist auto-created ingredient")
		}
	}
}
