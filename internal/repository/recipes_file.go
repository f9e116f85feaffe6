package repository

import (
	"path/filepath"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// RecipesFileName is the recipe collection file inside the data directory.
const RecipesFileName = "recipes.csv"

// FileRecipeRepository loads recipes from ;-delimited records, one per
// line: name;clause;clause;... (see model.ParseRecipeRecord). Recipes
// are edited by hand in the file and are read-only for the service, so
// the repository has no save operation.
type FileRecipeRepository struct {
	path string
}

// NewFileRecipeRepository creates a repository backed by recipes.csv
// inside dataDir.
func NewFileRecipeRepository(dataDir string) *FileRecipeRepository {
	return &FileRecipeRepository{path: filepath.Join(dataDir, RecipesFileName)}
}

// Load reads all recipes keyed by name. Ingredients referenced by a
// recipe but absent from known are auto-created, added to known, and
// returned so the caller can persist them.
func (r *FileRecipeRepository) Load(known map[string]model.Ingredient) (map[string]model.Recipe, []model.Ingredient, error) {
	recipes := make(map[string]model.Recipe)

	lines, err := readRecordLines(r.path)
	if err != nil {
		return nil, nil, err
	}

	var created []model.Ingredient
	for _, line := range lines {
		recipe, newIngredients := model.ParseRecipeRecord(line, known)
		recipes[recipe.Name] = recipe
		created = append(created, newIngredients...)
	}
	return recipes, created, nil
}
