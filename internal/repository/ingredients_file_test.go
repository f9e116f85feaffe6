package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func readDataFile(t *testing.T, dir, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(content)
}

// TestFileIngredientRepositoryLoad tests record parsing, comment
// skipping, and the missing-file case.
func TestFileIngredientRepositoryLoad(t *testing.T) {
	t.Run("missing file yields an empty registry", func(t *testing.T) {
		repo := NewFileIngredientRepository(t.TempDir())
		registry, err := repo.Load()
		require.NoError(t, err)
		assert.Empty(t, registry)
	})

	t.Run("parses records and skips comments and blank lines", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, IngredientsFileName,
			"# registry\nGurke;0;2\n\nSalami;asd\nAlufolie;-1;-1\n")

		repo := NewFileIngredientRepository(dir)
		registry, err := repo.Load()
		require.NoError(t, err)

		assert.Len(t, registry, 3)
		assert.Equal(t, model.Ingredient{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe}, registry["Gurke"])
		assert.Equal(t, model.NewIngredient("Salami"), registry["Salami"])
		assert.Equal(t, model.NewIngredient("Alufolie"), registry["Alufolie"])
	})

	t.Run("handles CRLF line endings", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, IngredientsFileName, "Gurke;0;2\r\n")

		repo := NewFileIngredientRepository(dir)
		registry, err := repo.Load()
		require.NoError(t, err)
		assert.Contains(t, registry, "Gurke")
	})

	t.Run("duplicate names keep the last record", func(t *testing.T) {
		dir := t.TempDir()
		writeDataFile(t, dir, IngredientsFileName, "Gurke;0;2\nGurke;1;3\n")

		repo := NewFileIngredientRepository(dir)
		registry, err := repo.Load()
		require.NoError(t, err)
		assert.Len(t, registry, 1)
		assert.Equal(t, model.CategoryFruit, registry["Gurke"].Category)
	})
}

// TestFileIngredientRepositorySaveAll verifies the rewritten file is
// sorted and round-trips.
func TestFileIngredientRepositorySaveAll(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileIngredientRepository(dir)

	ingredients := []model.Ingredient{
		model.NewIngredient("Alufolie"),
		{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe},
		{Name: "Apfel", Category: model.CategoryFruit, Store: model.StoreLidl},
	}
	require.NoError(t, repo.SaveAll(ingredients))

	assert.Equal(t, "Apfel;1;0\nGurke;0;2\nAlufolie;-1;-1\n",
		readDataFile(t, dir, IngredientsFileName))

	registry, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, registry, 3)
}

// TestFileIngredientRepositoryAppend tests file creation and appending.
func TestFileIngredientRepositoryAppend(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileIngredientRepository(dir)

	require.NoError(t, repo.Append(model.NewIngredient("Tomate")))
	require.NoError(t, repo.Append(model.Ingredient{Name: "Gurke", Category: model.CategoryVegetable, Store: model.StoreRewe}))

	assert.Equal(t, "Tomate;-1;-1\nGurke;0;2\n", readDataFile(t, dir, IngredientsFileName))
}

// TestFileIngredientRepositorySaveAllError verifies a typed persistence
// error comes back when the write fails.
func TestFileIngredientRepositorySaveAllError(t *testing.T) {
	repo := NewFileIngredientRepository(filepath.Join(t.TempDir(), "missing-subdir"))

	err := repo.SaveAll([]model.Ingredient{model.NewIngredient("Gurke")})
	require.Error(t, err)

	var perr *PersistenceError
	assert.ErrorAs(t, err, &perr)
	assert.Equal(t, "write ingredients", perr.Op)
}
