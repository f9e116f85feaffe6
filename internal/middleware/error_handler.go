package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/cookbook-service/internal/domain/dto"
	"github.com/guttosm/cookbook-service/internal/i18n"
	"github.com/guttosm/cookbook-service/internal/logger"
)

// ErrorHandler logs errors attached to the gin context after the chain
// runs. Handlers that attached an error without writing a response get
// a generic localized 500; responses already written are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		requestID := GetRequestID(c)

		log := logger.Logger()
		log.Error().
			Str("request_id", requestID).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("error", err.Error()).
			Msg("Request failed")

		if c.Writer.Written() {
			return
		}
		locale := i18n.GetLocale(c)
		message := i18n.GetTranslator().Translate(i18n.ErrKeyInternalError, locale)
		c.JSON(http.StatusInternalServerError,
			dto.NewError(dto.ErrCodeInternal, message).WithRequestID(requestID))
	}
}
