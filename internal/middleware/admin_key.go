package middleware

import (
	"net/http"

	"github.com/franciscosanchezn/uplate-admin/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// HashAdminKey hashes the shared admin key for AdminKey. An empty key yields
// a nil hash, which makes AdminKey refuse every request.
func HashAdminKey(key string, cost int) ([]byte, error) {
	if key == "" {
		return nil, nil
	}
	return bcrypt.GenerateFromPassword([]byte(key), cost)
}

// AdminKey guards mutating routes with the shared admin key carried in the
// "key" query parameter. It compares against a bcrypt hash so the plain key
// is not kept in memory by the router.
func AdminKey(hash []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(hash) == 0 {
			respondUnauthorized(c, "Admin key is not configured on this server")
			return
		}

		key := c.Query("key")
		if key == "" {
			respondUnauthorized(c, "Missing admin key. Pass it as the 'key' query parameter")
			return
		}

		if err := bcrypt.CompareHashAndPassword(hash, []byte(key)); err != nil {
			log.WithField("path", c.FullPath()).Warn("Rejected request with invalid admin key")
			respondUnauthorized(c, "Invalid admin key")
			return
		}

		c.Next()
	}
}

func respondUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.NewAPIError(models.ErrCodeUnauthorized, message))
}
