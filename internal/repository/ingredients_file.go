package repository

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// IngredientsFileName is the ingredient registry file inside the data directory.
const IngredientsFileName = "ingredients.csv"

// FileIngredientRepository stores the ingredient registry as
// ;-delimited records, one per line: name;categoryCode;storeCode.
type FileIngredientRepository struct {
	path string
}

// NewFileIngredientRepository creates a repository backed by
// ingredients.csv inside dataDir.
func NewFileIngredientRepository(dataDir string) *FileIngredientRepository {
	return &FileIngredientRepository{path: filepath.Join(dataDir, IngredientsFileName)}
}

// Load reads the full registry. A missing file yields an empty registry.
// Malformed category or store codes degrade to the fallback variants;
// a bad record never fails the load.
func (r *FileIngredientRepository) Load() (map[string]model.Ingredient, error) {
	ingredients := make(map[string]model.Ingredient)

	lines, err := readRecordLines(r.path)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		ing := model.ParseIngredientRecord(strings.Split(line, ";"))
		ingredients[ing.Name] = ing
	}
	return ingredients, nil
}

// SaveAll rewrites the registry file with the given ingredients.
func (r *FileIngredientRepository) SaveAll(ingredients []model.Ingredient) error {
	sorted := make([]model.Ingredient, len(ingredients))
	copy(sorted, ingredients)
	model.SortIngredients(sorted)

	var b strings.Builder
	for _, ing := range sorted {
		b.WriteString(ing.Record())
		b.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return newPersistenceError("write ingredients", r.path, err)
	}
	return nil
}

// Append adds a single ingredient record to the end of the file,
// creating the file if it does not exist yet.
func (r *FileIngredientRepository) Append(ingredient model.Ingredient) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return newPersistenceError("open ingredients", r.path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(ingredient.Record() + "\n"); err != nil {
		return newPersistenceError("append ingredient", r.path, err)
	}
	return nil
}

// readRecordLines reads all non-empty, non-comment lines of a record
// file. A missing file is not an error; it reads as empty.
func readRecordLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, newPersistenceError("read", path, err)
	}

	var lines []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, nil
}
