// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

type MockRecipeRepository struct {
	mock.Mock
}

func (m *MockRecipeRepository) Load(known map[string]model.Ingredient) (map[string]model.Recipe, []model.Ingredient, error) {
	args := m.Called(known)
	var recipes map[string]model.Recipe
	if args.Get(0) != nil {
		recipes = args.Get(0).(map[string]model.Recipe)
	}
	var created []model.Ingredient
	if args.Get(1) != nil {
		created = args.Get(1).([]model.Ingredient)
	}
	return recipes, created, args.Error(2)
}
