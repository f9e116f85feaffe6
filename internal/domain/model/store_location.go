package model

// StoreLocation identifies the physical store where an ingredient is
// preferentially purchased. It follows the same code/label/lookup
// contract as Category: codes 0..6 name a store, everything else
// resolves to StoreAny.
type StoreLocation int8

const (
	StoreLidl     StoreLocation = 0
	StoreALDI     StoreLocation = 1
	StoreRewe     StoreLocation = 2
	StoreDM       StoreLocation = 3
	StoreDenz     StoreLocation = 4
	StoreNetto    StoreLocation = 5
	StoreKaufland StoreLocation = 6

	// StoreAny is the "no preference" fallback.
	StoreAny StoreLocation = storeCodeAny
)

const storeCodeAny = -1

const storeCount = 7

var storeLabels = map[StoreLocation]string{
	StoreLidl:     "Lidl",
	StoreALDI:     "ALDI",
	StoreRewe:     "Rewe",
	StoreDM:       "DM",
	StoreDenz:     "Denz",
	StoreNetto:    "Netto",
	StoreKaufland: "Kaufland",
	StoreAny:      "Any",
}

// StoreByCode maps a persisted code to its StoreLocation.
// Codes outside the valid range resolve to StoreAny. It never fails.
func StoreByCode(code int) StoreLocation {
	if code >= 0 && code < storeCount {
		return StoreLocation(code)
	}
	return StoreAny
}

// Code returns the stable integer code persisted for this store.
// StoreAny encodes as the sentinel value -1.
func (s StoreLocation) Code() int {
	return int(s)
}

// Label returns the display label for the store.
func (s StoreLocation) Label() string {
	if label, ok := storeLabels[s]; ok {
		return label
	}
	return storeLabels[StoreAny]
}

// String implements fmt.Stringer using the display label.
func (s StoreLocation) String() string {
	return s.Label()
}

// sortRank orders stores by declared code with StoreAny last.
func (s StoreLocation) sortRank() int {
	if s == StoreAny {
		return storeCount
	}
	return int(s)
}

// Stores returns all store locations in declaration order, fallback last.
func Stores() []StoreLocation {
	return []StoreLocation{
		StoreLidl,
		StoreALDI,
		StoreRewe,
		StoreDM,
		StoreDenz,
		StoreNetto,
		StoreKaufland,
		StoreAny,
	}
}

// StoreLabels returns the display labels of all stores in declaration
// order, fallback last. The slice index of a non-fallback label equals
// its code.
func StoreLabels() []string {
	stores := Stores()
	labels := make([]string, 0, len(stores))
	for _, s := range stores {
		labels = append(labels, s.Label())
	}
	return labels
}
