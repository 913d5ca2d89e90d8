package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/devlinkhq/devlink/pkg/apperror"
	"github.com/devlinkhq/devlink/pkg/logger"
)

// ErrorMiddleware turns errors attached by handlers into responses. The
// validation kind answers with the per-field errors array; anything
// unrecognized answers 500 with a plain string body.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)

			if errors.Is(appErr, apperror.ErrValidation) {
				c.JSON(status, gin.H{"errors": appErr.Fields})
				return
			}
			if status == http.StatusInternalServerError {
				log.Error("request failed", appErr, zap.String("path", c.FullPath()))
				c.String(status, "Server Error")
				return
			}
			c.JSON(status, gin.H{"msg": appErr.Message})
			return
		}

		log.Error("unhandled request error", err, zap.String("path", c.FullPath()))
		c.String(http.StatusInternalServerError, "Server Error")
	}
}
