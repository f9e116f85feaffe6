// Package http provides the gin handlers and routing for the cookbook service.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cookbook-service/internal/domain/dto"
	"github.com/guttosm/cookbook-service/internal/domain/model"
	"github.com/guttosm/cookbook-service/internal/i18n"
	"github.com/guttosm/cookbook-service/internal/repository"
	"github.com/guttosm/cookbook-service/internal/service"
)

// Handler provides the HTTP handlers for the cookbook routes.
type Handler struct {
	ingredients service.IngredientService
	shopping    service.ShoppingListService
	recipes     service.RecipeService
}

// NewHandler creates a new Handler instance.
func NewHandler(ingredients service.IngredientService, shopping service.ShoppingListService, recipes service.RecipeService) *Handler {
	return &Handler{
		ingredients: ingredients,
		shopping:    shopping,
		recipes:     recipes,
	}
}

// ListStores handles GET /store. It returns the store display labels in
// code order with the fallback last; the index of a non-fallback label
// equals its code.
func (h *Handler) ListStores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": model.StoreLabels()})
}

// ListCategories handles GET /category, the category counterpart of
// ListStores.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": model.CategoryLabels()})
}

// ListIngredients handles GET /ingredient. It returns all ingredients
// as a flat JSON array sorted by (store, category, name).
func (h *Handler) ListIngredients(c *gin.Context) {
	ingredients, err := h.ingredients.List()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, ingredients)
}

// AddToShoppingList handles PUT /ingredient/:name. The named ingredient
// is put on the shopping list, auto-created in the registry first when
// unknown. Responds with the updated grouped shopping list.
func (h *Handler) AddToShoppingList(c *gin.Context) {
	list, err := h.shopping.AddItem(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.groupedList(c, list)
}

// UpsertIngredient handles PUT /ingredient/:name/:category/:store.
// Malformed or out-of-range codes degrade to the fallback variants
// rather than failing the request.
func (h *Handler) UpsertIngredient(c *gin.Context) {
	categoryCode := codeParam(c, "category")
	storeCode := codeParam(c, "store")

	if _, err := h.ingredients.Upsert(c.Param("name"), categoryCode, storeCode); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveFromShoppingList handles DELETE /ingredient/:name. Removing an
// ingredient that is not on the list is a no-op; an ingredient missing
// from the registry is a 404. Responds with the updated grouped list.
func (h *Handler) RemoveFromShoppingList(c *gin.Context) {
	list, err := h.shopping.RemoveItem(c.Param("name"))
	if err != nil {
		h.fail(c, err)
		return
	}
	h.groupedList(c, list)
}

// GetShoppingList handles GET /shopping_list. It returns the shopping
// list grouped by store, then category.
func (h *Handler) GetShoppingList(c *gin.Context) {
	list, err := h.shopping.Get()
	if err != nil {
		h.fail(c, err)
		return
	}
	h.groupedList(c, list)
}

// QueryRecipes handles GET /api/recipes with optional name, ingredients,
// and tags query filters. Without a filter it returns all recipes.
func (h *Handler) QueryRecipes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.RecipeQueryRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, err)
		return
	}

	recipes, err := h.queryRecipes(req)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyPersistence, err)
		return
	}
	builder.SuccessOK(recipes)
}

// CreateIngredient handles PUT /api/ingredients with a JSON body.
func (h *Handler) CreateIngredient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpsertIngredientRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	ing, err := h.ingredients.Upsert(req.Name, req.Category, req.Store)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyPersistence, err)
		return
	}
	builder.SuccessCreated(ing)
}

// DeleteIngredient handles DELETE /api/ingredients/:name. It removes
// the ingredient from the registry entirely.
func (h *Handler) DeleteIngredient(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if err := h.ingredients.Delete(c.Param("name")); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyIngredientNotFound, err)
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyPersistence, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) queryRecipes(req dto.RecipeQueryRequest) ([]model.Recipe, error) {
	switch {
	case req.Name != "":
		return h.recipes.FindByName(req.Name)
	case req.Ingredients != "":
		return h.recipes.FindByIngredients(strings.Split(req.Ingredients, ","))
	case req.Tags != "":
		return h.recipes.FindByTags(req.Tags)
	default:
		recipes, err := h.recipes.List()
		if err != nil {
			return nil, err
		}
		all := make([]model.Recipe, 0, len(recipes))
		for _, recipe := range recipes {
			all = append(all, recipe)
		}
		return all, nil
	}
}

// groupedList writes the grouped shopping list JSON document.
func (h *Handler) groupedList(c *gin.Context, list *model.ShoppingList) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(list.GroupedJSON()))
}

// fail maps service errors to HTTP responses on the legacy routes.
func (h *Handler) fail(c *gin.Context, err error) {
	builder := NewResponseBuilder(c)

	var persistErr *repository.PersistenceError
	switch {
	case errors.Is(err, model.ErrNotFound):
		builder.Error(http.StatusNotFound, i18n.ErrKeyIngredientNotFound, err)
	case errors.As(err, &persistErr):
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyPersistence, err)
	default:
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
	}
}

// codeParam reads an integer path parameter, degrading malformed input
// to the fallback sentinel.
func codeParam(c *gin.Context, name string) int {
	code, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return -1
	}
	return code
}
