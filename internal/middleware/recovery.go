package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cookbook-service/internal/domain/dto"
	"github.com/guttosm/cookbook-service/internal/logger"
)

// Recovery converts handler panics into a 500 response so a single bad
// request cannot take the server down.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log := logger.Logger()
			log.Error().
				Str("request_id", GetRequestID(c)).
				Str("path", c.Request.URL.Path).
				Interface("panic", r).
				Msg("Recovered from handler panic")

			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   dto.ErrCodeInternal,
				Message: "An unexpected error occurred",
			})
		}()
		c.Next()
	}
}
