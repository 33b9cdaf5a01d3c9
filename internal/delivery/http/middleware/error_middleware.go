package middleware

import (
	"errors"
	"net/http"

	"grh-backend/internal/delivery/http/response"
	"grh-backend/pkg/apperror"
	"grh-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the uniform
// response envelope. Unexpected errors are logged server-side and the client
// only sees a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Err != nil {
					logger.Log.Error("Request failed", "error", appErr.Err, "path", c.FullPath())
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Internal server error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
