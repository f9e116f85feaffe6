// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model, providing
// validation and serialization for API communication.
package dto

// RecipeQueryRequest carries the optional filters of a recipe query.
// At most one filter is applied; precedence is name, then ingredients,
// then tags.
type RecipeQueryRequest struct {
	// Name filters recipes by case-sensitive substring match.
	Name string `form:"name"`
	// Ingredients is a comma-separated list of ingredient names;
	// a '!' prefix excludes recipes using that ingredient.
	Ingredients string `form:"ingredients"`
	// Tags is a comma-separated list of tags; bare words are matched
	// as '#'-prefixed tags.
	Tags string `form:"tags"`
}

// UpsertIngredientRequest is the JSON body for creating or updating an
// ingredient. Category and store codes outside the valid range resolve
// to the fallback variants.
type UpsertIngredientRequest struct {
	Name     string `json:"name" binding:"required"`
	Category int    `json:"category"`
	Store    int    `json:"store"`
}

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// ErrEmptyIngredientName is returned when an ingredient name is missing.
var ErrEmptyIngredientName = &ValidationError{
	Field:   "name",
	Message: "must not be empty",
}

// Validate performs custom validation on the request.
func (r *UpsertIngredientRequest) Validate() error {
	if r.Name == "" {
		return ErrEmptyIngredientName
	}
	return nil
}

// Error returns the error message for ValidationError.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
