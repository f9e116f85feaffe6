package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Ingredient is a named grocery item with a category and a preferred
// store. It is a value type: equality is structural over all three
// fields, so it can be used directly as a map key.
type Ingredient struct {
	Name     string
	Category Category
	Store    StoreLocation
}

// NewIngredient creates an ingredient with only a name, defaulting the
// category to CategoryOther and the store to StoreAny.
func NewIngredient(name string) Ingredient {
	return Ingredient{
		Name:     name,
		Category: CategoryOther,
		Store:    StoreAny,
	}
}

// ParseIngredientRecord builds an Ingredient from the fields of a
// persisted record: name, optional category code, optional store code.
// A missing or non-numeric code degrades to the fallback variant; the
// parse itself never fails. An empty name field yields an ingredient
// with an empty name.
func ParseIngredientRecord(fields []string) Ingredient {
	ing := NewIngredient("")
	if len(fields) > 0 {
		ing.Name = fields[0]
	}
	if len(fields) > 1 {
		if code, err := strconv.Atoi(strings.TrimSpace(fields[1])); err == nil {
			ing.Category = CategoryByCode(code)
		}
	}
	if len(fields) > 2 {
		if code, err := strconv.Atoi(strings.TrimSpace(fields[2])); err == nil {
			ing.Store = StoreByCode(code)
		}
	}
	return ing
}

// Compare orders ingredients by (store, category, name), each ascending
// by its own ordering. Fallback variants sort after all named variants.
func (i Ingredient) Compare(other Ingredient) int {
	if r := i.Store.sortRank() - other.Store.sortRank(); r != 0 {
		return r
	}
	if r := i.Category.sortRank() - other.Category.sortRank(); r != 0 {
		return r
	}
	return strings.Compare(i.Name, other.Name)
}

// Less reports whether i sorts before other.
func (i Ingredient) Less(other Ingredient) bool {
	return i.Compare(other) < 0
}

// Record returns the flat-file representation of the ingredient:
// name;categoryCode;storeCode.
func (i Ingredient) Record() string {
	return i.Name + ";" + strconv.Itoa(i.Category.Code()) + ";" + strconv.Itoa(i.Store.Code())
}

// MarshalJSON serializes the ingredient with display labels instead of
// numeric codes.
func (i Ingredient) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Name     string `json:"name"`
		Category string `json:"category"`
		Store    string `json:"store"`
	}{
		Name:     i.Name,
		Category: i.Category.Label(),
		Store:    i.Store.Label(),
	})
}

// SortIngredients sorts the slice in place by the ingredient ordering.
// Compare breaks all ties by name, so the result is deterministic
// regardless of input order.
func SortIngredients(ingredients []Ingredient) {
	sort.Slice(ingredients, func(a, b int) bool {
		return ingredients[a].Less(ingredients[b])
	})
}
