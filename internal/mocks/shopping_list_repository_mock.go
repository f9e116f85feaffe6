// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

type MockShoppingListRepository struct {
	mock.Mock
}

func (m *MockShoppingListRepository) Load(known map[string]model.Ingredient) (*model.ShoppingList, []model.Ingredient, error) {
	args := m.Called(known)
	var list *model.ShoppingList
	if args.Get(0) != nil {
		list = args.Get(0).(*model.ShoppingList)
	}
	var created []model.Ingredient
	if args.Get(1) != nil {
		created = args.Get(1).([]model.Ingredient)
	}
	return list, created, args.Error(2)
}

func (m *MockShoppingListRepository) Save(list *model.ShoppingList) error {
	args := m.Called(list)
	return args.Error(0)
}
