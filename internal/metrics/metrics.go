// Package metrics provides Prometheus metrics collection for the cookbook service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// RecipeQueriesTotal tracks recipe queries by filter kind.
	RecipeQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recipe_queries_total",
			Help: "Total number of recipe queries",
		},
		[]string{"filter"},
	)

	// ShoppingListMutationsTotal tracks shopping list mutations by operation.
	ShoppingListMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "shopping_list_mutations_total",
			Help: "Total number of shopping list mutations",
		},
		[]string{"operation"},
	)

	// PersistenceFailuresTotal tracks failed writes to the flat-file store.
	PersistenceFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "persistence_failures_total",
			Help: "Total number of failed flat-file writes",
		},
		[]string{"file"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordRecipeQuery records a recipe query for the given filter kind.
func RecordRecipeQuery(filter string) {
	RecipeQueriesTotal.WithLabelValues(filter).Inc()
}

// RecordShoppingListMutation records a shopping list mutation.
func RecordShoppingListMutation(operation string) {
	ShoppingListMutationsTotal.WithLabelValues(operation).Inc()
}

// RecordPersistenceFailure records a failed write to the given file.
func RecordPersistenceFailure(file string) {
	PersistenceFailuresTotal.WithLabelValues(file).Inc()
}
