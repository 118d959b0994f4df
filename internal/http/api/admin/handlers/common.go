package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/datheory/portfolio-api/internal/models"
)

// currentAdmin extracts the authenticated account placed in the gin
// context by the token middleware.
func currentAdmin(c *gin.Context) (*models.AdminUser, bool) {
	value, exists := c.Get("adminUser")
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.AdminUser)
	return user, ok && user != nil
}
