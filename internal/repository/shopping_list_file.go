package repository

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/guttosm/cookbook-service/internal/domain/model"
)

// ShoppingListFileName is the shopping list file inside the data directory.
const ShoppingListFileName = "shoppingList.csv"

// FileShoppingListRepository stores the shopping list as ;-delimited
// records, one per line: ingredientName;amount.
type FileShoppingListRepository struct {
	path string
}

// NewFileShoppingListRepository creates a repository backed by
// shoppingList.csv inside dataDir.
func NewFileShoppingListRepository(dataDir string) *FileShoppingListRepository {
	return &FileShoppingListRepository{path: filepath.Join(dataDir, ShoppingListFileName)}
}

// Load reads the persisted shopping list. A missing or non-numeric
// amount degrades to 1. Entries naming ingredients absent from known
// auto-create them with fallback category and store; the created
// ingredients are inserted into known and returned for persisting.
func (r *FileShoppingListRepository) Load(known map[string]model.Ingredient) (*model.ShoppingList, []model.Ingredient, error) {
	list := model.NewShoppingList()

	lines, err := readRecordLines(r.path)
	if err != nil {
		return nil, nil, err
	}

	var created []model.Ingredient
	for _, line := range lines {
		fields := strings.Split(line, ";")
		name := fields[0]

		amount := uint16(1)
		if len(fields) > 1 {
			if n, err := strconv.ParseUint(strings.TrimSpace(fields[1]), 10, 16); err == nil && n > 0 {
				amount = uint16(n)
			}
		}

		ing, ok := known[name]
		if !ok {
			ing = model.NewIngredient(name)
			known[name] = ing
			created = append(created, ing)
		}
		list.Set(ing, amount)
	}
	return list, created, nil
}

// Save rewrites the shopping list file. Entries are written in the
// list's export order so the file content is deterministic.
func (r *FileShoppingListRepository) Save(list *model.ShoppingList) error {
	var b strings.Builder
	for _, item := range list.Items() {
		b.WriteString(item.Ingredient.Name)
		b.WriteByte(';')
		b.WriteString(strconv.FormatUint(uint64(item.Amount), 10))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return newPersistenceError("write shopping list", r.path, err)
	}
	return nil
}
