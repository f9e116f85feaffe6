package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/mocks"
	"github.com/guttosm/cookbook-service/internal/repository"
)

func listFixture(ingredients ...model.Ingredient) *model.ShoppingList {
	list := model.NewShoppingList()
	for _, ing := range ingredients {
		list.Add(ing)
	}
	return list
}

// TestShoppingListServiceGet verifies the load path and that
// auto-created ingredients from the list file get persisted.
func TestShoppingListServiceGet(t *testing.T) {
	t.Run("returns the loaded list", func(t *testing.T) {
		gurke := model.Ingredient{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe}
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(listFixture(gurke), nil, nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, 1, list.Len())
	})

	t.Run("persists ingredients created during load", func(t *testing.T) {
		created := model.NewIngredient("Tomate")
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{}, nil)
		ingredients.On("Append", created).Return(nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(listFixture(created), []model.Ingredient{created}, nil)

		svc := NewShoppingListService(ingredients, lists)
		_, err := svc.Get()
		require.NoError(t, err)
		ingredients.AssertExpectations(t)
	})

	t.Run("a failed append does not fail the read", func(t *testing.T) {
		created := model.NewIngredient("Tomate")
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{}, nil)
		ingredients.On("Append", created).Return(errors.New("read-only fs"))
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(listFixture(created), []model.Ingredient{created}, nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.Get()
		require.NoError(t, err)
		assert.Equal(t, 1, list.Len())
	})
}

// TestShoppingListServiceAddItem tests add-or-increment, on-the-fly
// registration, and the best-effort save contract.
func TestShoppingListServiceAddItem(t *testing.T) {
	gurke := model.Ingredient{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe}

	t.Run("known ingredient is added and saved", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(model.NewShoppingList(), nil, nil)
		lists.On("Save", mock.MatchedBy(func(list *model.ShoppingList) bool {
			amount, ok := list.Amount(gurke)
			return ok && amount == 1
		})).Return(nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.AddItem("Gurke")
		require.NoError(t, err)
		amount, _ := list.Amount(gurke)
		assert.Equal(t, uint16(1), amount)
		lists.AssertExpectations(t)
	})

	t.Run("adding twice increments", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(listFixture(gurke), nil, nil)
		lists.On("Save", mock.Anything).Return(nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.AddItem("Gurke")
		require.NoError(t, err)
		amount, _ := list.Amount(gurke)
		assert.Equal(t, uint16(2), amount)
	})

	t.Run("unknown ingredient is registered first", func(t *testing.T) {
		tomate := model.NewIngredient("Tomate")
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{}, nil)
		ingredients.On("Append", tomate).Return(nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(model.NewShoppingList(), nil, nil)
		lists.On("Save", mock.Anything).Return(nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.AddItem("Tomate")
		require.NoError(t, err)
		amount, _ := list.Amount(tomate)
		assert.Equal(t, uint16(1), amount)
		ingredients.AssertExpectations(t)
	})

	t.Run("registration failure aborts the add", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{}, nil)
		appendErr := repository.PersistenceError{Op: "append ingredient", Path: "x", Err: errors.New("denied")}
		ingredients.On("Append", mock.Anything).Return(&appendErr)
		lists := new(mocks.MockShoppingListRepository)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.AddItem("Tomate")
		assert.Error(t, err)
		assert.Nil(t, list)
		lists.AssertNotCalled(t, "Load", mock.Anything)
	})

	t.Run("failed save still returns the mutated list", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(model.NewShoppingList(), nil, nil)
		saveErr := &repository.PersistenceError{Op: "write shopping list", Path: "x", Err: errors.New("disk full")}
		lists.On("Save", mock.Anything).Return(saveErr)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.AddItem("Gurke")
		assert.Error(t, err)
		require.NotNil(t, list)
		amount, ok := list.Amount(gurke)
		assert.True(t, ok)
		assert.Equal(t, uint16(1), amount)
	})
}

// TestShoppingListServiceRemoveItem tests removal semantics.
func TestShoppingListServiceRemoveItem(t *testing.T) {
	gurke := model.Ingredient{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe}

	t.Run("listed ingredient is removed and saved", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(listFixture(gurke), nil, nil)
		lists.On("Save", mock.MatchedBy(func(list *model.ShoppingList) bool {
			return list.Len() == 0
		})).Return(nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.RemoveItem("Gurke")
		require.NoError(t, err)
		assert.Zero(t, list.Len())
		lists.AssertExpectations(t)
	})

	t.Run("removing an unlisted known ingredient is a no-op", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{"Gurke": gurke}, nil)
		lists := new(mocks.MockShoppingListRepository)
		lists.On("Load", mock.Anything).Return(model.NewShoppingList(), nil, nil)
		lists.On("Save", mock.Anything).Return(nil)

		svc := NewShoppingListService(ingredients, lists)
		list, err := svc.RemoveItem("Gurke")
		require.NoError(t, err)
		assert.Zero(t, list.Len())
	})

	t.Run("unknown ingredient yields ErrNotFound", func(t *testing.T) {
		ingredients := new(mocks.MockIngredientRepository)
		ingredients.On("Load").Return(map[string]model.Ingredient{}, nil)
		lists := new(mocks.MockShoppingListRepository)

		svc := NewShoppingListService(ingredients, lists)
		_, err := svc.RemoveItem("Caviar")
		assert.ErrorIs(t, err, model.ErrNotFound)
		lists.AssertNotCalled(t, "Load", mock.Anything)
	})
}
