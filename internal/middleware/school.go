package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/gin-gonic/gin"
)

// RequireSchool is a middleware that checks the ":school" path parameter
// against the school this server serves.
func RequireSchool(school string) gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.Param("school")
		if requested != school {
			c.AbortWithStatusJSON(http.StatusNotFound, models.NewAPIError(models.ErrCodeNotFound,
				"Unknown school", map[string]interface{}{"school": requested}))
			return
		}
		c.Next()
	}
}
