package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ShoppingList maps ingredients to the amount still to buy. Present
// entries always have an amount of at least 1; removal is explicit.
type ShoppingList struct {
	toBuy map[Ingredient]uint16
}

// ShoppingItem is one entry of a shopping list in export order.
type ShoppingItem struct {
	Ingredient Ingredient
	Amount     uint16
}

// NewShoppingList creates an empty shopping list.
func NewShoppingList() *ShoppingList {
	return &ShoppingList{toBuy: make(map[Ingredient]uint16)}
}

// Add inserts the ingredient with amount 1, or increments the amount if
// the ingredient is already on the list.
func (l *ShoppingList) Add(ing Ingredient) {
	l.toBuy[ing]++
}

// Set upserts the ingredient with an explicit amount, bypassing the
// increment semantics. Used when loading from storage. Amounts below 1
// are stored as 1 to preserve the list invariant.
func (l *ShoppingList) Set(ing Ingredient, amount uint16) {
	if amount < 1 {
		amount = 1
	}
	l.toBuy[ing] = amount
}

// Remove deletes the ingredient from the list. Removing an absent
// ingredient is a no-op.
func (l *ShoppingList) Remove(ing Ingredient) {
	delete(l.toBuy, ing)
}

// Amount returns the amount to buy for the ingredient and whether the
// ingredient is on the list.
func (l *ShoppingList) Amount(ing Ingredient) (uint16, bool) {
	amount, ok := l.toBuy[ing]
	return amount, ok
}

// Len returns the number of entries on the list.
func (l *ShoppingList) Len() int {
	return len(l.toBuy)
}

// Items returns the list entries sorted by the ingredient ordering
// (store, then category, then name).
func (l *ShoppingList) Items() []ShoppingItem {
	ingredients := make([]Ingredient, 0, len(l.toBuy))
	for ing := range l.toBuy {
		ingredients = append(ingredients, ing)
	}
	SortIngredients(ingredients)

	items := make([]ShoppingItem, 0, len(ingredients))
	for _, ing := range ingredients {
		items = append(items, ShoppingItem{Ingredient: ing, Amount: l.toBuy[ing]})
	}
	return items
}

// GroupedJSON serializes the list as a JSON object nested first by
// store display label, then by category display label, each leaf a JSON
// array of {"name": ...} objects carrying an "amount" field only when
// the amount exceeds 1.
//
// The entries are pre-sorted by (store, category, name), so every store
// group and category subgroup is contiguous and the whole document is
// emitted in a single linear pass: a store boundary closes the current
// category array and store object, a category boundary inside the same
// store closes only the category array.
func (l *ShoppingList) GroupedJSON() string {
	if len(l.toBuy) == 0 {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')

	var curStore StoreLocation
	var curCategory Category
	for idx, item := range l.Items() {
		newStore := idx == 0 || item.Ingredient.Store != curStore
		newCategory := newStore || item.Ingredient.Category != curCategory

		if newStore {
			if idx > 0 {
				b.WriteString("]},")
			}
			writeJSONString(&b, item.Ingredient.Store.Label())
			b.WriteString(":{")
			curStore = item.Ingredient.Store
		}
		if newCategory {
			if !newStore {
				b.WriteString("],")
			}
			writeJSONString(&b, item.Ingredient.Category.Label())
			b.WriteString(":[")
			curCategory = item.Ingredient.Category
		} else {
			b.WriteByte(',')
		}

		b.WriteString(`{"name":`)
		writeJSONString(&b, item.Ingredient.Name)
		if item.Amount > 1 {
			b.WriteString(`,"amount":`)
			b.WriteString(strconv.FormatUint(uint64(item.Amount), 10))
		}
		b.WriteByte('}')
	}

	b.WriteString("]}}")
	return b.String()
}

// writeJSONString writes s to b as a JSON string literal.
func writeJSONString(b *strings.Builder, s string) {
	data, err := json.Marshal(s)
	if err != nil {
		// Marshaling a string cannot fail; keep the document well formed.
		b.WriteString(`""`)
		return
	}
	b.Write(data)
}
