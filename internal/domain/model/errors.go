package model

import "errors"

// ErrNotFound is returned when an ingredient or recipe is requested by a
// key that is absent from the supplied collection.
var ErrNotFound = errors.New("not found")
