// Package admin wires the token-authenticated management API: session
// middleware, the per-route permission gate and the route table.
package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/datheory/portfolio-api/internal/auth"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
)

// TokenHeader carries the admin bearer token on every gated request.
const TokenHeader = "X-ADMIN-TOKEN"

// adminUserKey is the gin context key holding the authenticated account.
const adminUserKey = "adminUser"

// TokenAuthMiddleware resolves the caller's account from the token
// header on every request. Validity is re-checked against the store
// each time, so logout and deactivation take effect on the next
// request.
func TokenAuthMiddleware(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(TokenHeader)
		user, errAuth := svc.Authenticate(c.Request.Context(), token, c.ClientIP())
		if errAuth == nil {
			c.Set(adminUserKey, user)
			c.Next()
			return
		}

		switch {
		case errors.Is(errAuth, auth.ErrTokenRequired):
			response.AbortError(c, http.StatusUnauthorized, "Token required")
		case errors.Is(errAuth, auth.ErrTokenExpired):
			response.AbortError(c, http.StatusUnauthorized, "Token expired")
		case errors.Is(errAuth, auth.ErrUnauthorized):
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized")
		default:
			log.Errorf("token authentication failed: %v", errAuth)
			response.AbortError(c, http.StatusInternalServerError, "Authentication service error")
		}
	}
}

// CurrentAdmin returns the account attached by TokenAuthMiddleware.
func CurrentAdmin(c *gin.Context) (*models.AdminUser, bool) {
	value, ok := c.Get(adminUserKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*models.AdminUser)
	return user, ok && user != nil
}
