// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

type MockIngredientRepository struct {
	mock.Mock
}

func (m *MockIngredientRepository) Load() (map[string]model.Ingredient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]model.Ingredient), args.Error(1)
}

func (m *MockIngredientRepository) SaveAll(ingredients []model.Ingredient) error {
	args := m.Called(ingredients)
	return args.Error(0)
}

func (m *MockIngredientRepository) Append(ingredient model.Ingredient) error {
	args := m.Called(ingredient)
	return args.Error(0)
}
