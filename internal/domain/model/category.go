// Package model defines the core domain entities for the cookbook service.
package model

// Category classifies an ingredient into a grocery department.
//
// Categories carry a stable integer code used in the flat-file records.
// Codes 0..10 map to named departments; every other code resolves to
// CategoryOther, whose code is a sentinel outside the valid range.
type Category int8

const (
	CategoryVegetable Category = 0
	CategoryFruit     Category = 1
	CategoryFrozen    Category = 2
	CategoryCanned    Category = 3
	CategoryBeverage  Category = 4
	CategoryBaking    Category = 5
	CategoryPasta     Category = 6
	CategoryLegume    Category = 7
	CategorySpice     Category = 8
	CategorySnacks    Category = 9
	CategorySweets    Category = 10

	// CategoryOther is the fallback for unknown, absent, or malformed codes.
	CategoryOther Category = categoryCodeOther
)

// categoryCodeOther is the persisted sentinel code for CategoryOther.
const categoryCodeOther = -1

// categoryCount is the number of non-fallback categories.
const categoryCount = 11

var categoryLabels = map[Category]string{
	CategoryVegetable: "Gemüse",
	CategoryFruit:     "Obst",
	CategoryFrozen:    "Kühlung",
	CategoryCanned:    "Konserve",
	CategoryBeverage:  "Getränk",
	CategoryBaking:    "Backzutat",
	CategoryPasta:     "Nudeln",
	CategoryLegume:    "Hülsenfrucht",
	CategorySpice:     "Gewürz",
	CategorySnacks:    "Knabberei",
	CategorySweets:    "Süßes",
	CategoryOther:     "Anderes",
}

// CategoryByCode maps a persisted code to its Category.
// Any code outside the valid range, including negative values, resolves
// to CategoryOther. It never fails.
func CategoryByCode(code int) Category {
	if code >= 0 && code < categoryCount {
		return Category(code)
	}
	return CategoryOther
}

// Code returns the stable integer code persisted for this category.
// CategoryOther encodes as the sentinel value -1.
func (c Category) Code() int {
	return int(c)
}

// Label returns the human-readable display label for the category.
func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

// String implements fmt.Stringer using the display label.
func (c Category) String() string {
	return c.Label()
}

// sortRank orders categories by declared code with CategoryOther last.
func (c Category) sortRank() int {
	if c == CategoryOther {
		return categoryCount
	}
	return int(c)
}

// Categories returns all categories in declaration order, fallback last.
func Categories() []Category {
	return []Category{
		CategoryVegetable,
		CategoryFruit,
		CategoryFrozen,
		CategoryCanned,
		CategoryBeverage,
		CategoryBaking,
		CategoryPasta,
		CategoryLegume,
		CategorySpice,
		CategorySnacks,
		CategorySweets,
		CategoryOther,
	}
}

// CategoryLabels returns the display labels of all categories in
// declaration order, fallback last. The slice index of a non-fallback
// label equals its code.
func CategoryLabels() []string {
	categories := Categories()
	labels := make([]string, 0, len(categories))
	for _, c := range categories {
		labels = append(labels, c.Label())
	}
	return labels
}
