package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/userhub/internal/api/dto"
)

// ErrorHandlerMiddleware handles panics and unconsumed gin errors
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "Internal Server Error",
					Message: "An unexpected error occurred",
					Code:    http.StatusInternalServerError,
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) > 0 {
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error:   "Internal Server Error",
				Message: c.Errors.Last().Error(),
				Code:    http.StatusInternalServerError,
			})
		}
	}
}
