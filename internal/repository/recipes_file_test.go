package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// TestFileRecipeRepositoryLoad tests recipe parsing and auto-creation
// of ingredients missing from the registry.
func TestFileRecipeRepositoryLoad(t *testing.T) {
	t.Run("missing file yields an empty collection", func(t *testing.T) {
		repo := NewFileRecipeRepository(t.TempDir())
		recipes, created, err := repo.Load(map[string]model.Ingredient{})
		require.NoError(t, err)
		assert.Empty(t, recipes)
		assert.Empty(t, created)
	})

	t.Run("parses recipes against the registry", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, RecipesFileName,
			"# recipes\nWaffles;Egg,2,piece;Flour,250,g;#breakfast\nSoup;Water\n")

		egg := model.Ingredient{Name: "Egg", Category: model.CategoryFrozen, Store: model.StoreLidl}
		known := map[string]model.Ingredient{"Egg": egg}

		repo := NewFileRecipeRepository(dir)
		recipes, created, err := repo.Load(known)
		require.NoError(t, err)

		assert.Len(t, recipes, 2)
		waffles := recipes["Waffles"]
		assert.Equal(t, egg, waffles.Ingredients["Egg"].Ingredient)
		assert.Equal(t, uint16(250), waffles.Ingredients["Flour"].Amount)
		assert.Contains(t, waffles.Tags, "#breakfast")

		// Flour and Water were unknown: created with fallbacks and
		// added to the registry map.
		assert.ElementsMatch(t, []model.Ingredient{
			model.NewIngredient("Flour"),
			model.NewIngredient("Water"),
		}, created)
		assert.Contains(t, known, "Flour")
		assert.Contains(t, known, "Water")
	})

	t.Run("an ingredient shared across recipes is created once", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, RecipesFileName, "A;Flour,100,g\nB;Flour,200,g\n")

		repo := NewFileRecipeRepository(dir)
		_, created, err := repo.Load(map[string]model.Ingredient{})
		require.NoError(t, err)
		assert.Len(t, created, 1)
	})
}
