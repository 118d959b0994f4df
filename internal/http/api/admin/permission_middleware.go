package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/permissions"
)

// RequirePermission gates a route on a statically bound permission
// string, e.g. "projects.delete". It must run after
// TokenAuthMiddleware; without an attached account the request fails
// with 401 rather than 403.
func RequirePermission(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentAdmin(c)
		if !ok {
			response.AbortError(c, http.StatusUnauthorized, "Authentication required")
			return
		}

		var list []string
		if user.Role != nil {
			list = permissions.Parse(user.Role.Permissions)
		}
		if !permissions.Granted(list, required) {
			response.AbortError(c, http.StatusForbidden, "Insufficient permissions")
			return
		}

		c.Next()
	}
}
