// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/cookbook-service/config"
	"github.com/guttosm/cookbook-service/internal/http"
	"github.com/guttosm/cookbook-service/internal/repository"
	"github.com/guttosm/cookbook-service/internal/service"
)

// Components holds the wired application dependencies, exposed so the
// CLI can reuse the same services without going through HTTP.
type Components struct {
	Ingredients  service.IngredientService
	ShoppingList service.ShoppingListService
	Recipes      service.RecipeService
}

// InitializeServices wires the flat-file repositories into the domain
// services for the given data directory.
func InitializeServices(storageCfg config.StorageConfig) Components {
	ingredients := repository.NewFileIngredientRepository(storageCfg.DataDir)
	recipes := repository.NewFileRecipeRepository(storageCfg.DataDir)
	shoppingList := repository.NewFileShoppingListRepository(storageCfg.DataDir)

	return Components{
		Ingredients:  service.NewIngredientService(ingredients),
		ShoppingList: service.NewShoppingListService(ingredients, shoppingList),
		Recipes:      service.NewRecipeService(recipes, ingredients),
	}
}

// InitializeApp creates and wires all application dependencies and
// returns the configured HTTP router.
func InitializeApp(cfg config.Config) *gin.Engine {
	components := InitializeServices(cfg.Storage)

	handler := http.NewHandler(components.Ingredients, components.ShoppingList, components.Recipes)

	healthHandler := http.NewHealthHandler()
	healthHandler.RegisterChecker("storage", http.HealthCheckFunc(func() error {
		return repository.CheckDataDir(cfg.Storage.DataDir)
	}))

	routerCfg := http.RouterConfig{
		RateLimit:   cfg.Server.RateLimit,
		RateWindow:  cfg.Server.RateWindow,
		CORSOrigins: cfg.Server.CORSOrigins,
		StaticDir:   cfg.Server.StaticDir,
	}

	return http.NewRouter(handler, healthHandler, routerCfg)
}
