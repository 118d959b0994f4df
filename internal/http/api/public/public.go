// Package public mounts the unauthenticated portfolio API.
package public

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/http/api/public/handlers"
)

// RegisterRoutes mounts the public endpoints onto the /api route group.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB) {
	profileHandler := handlers.NewProfileHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	skillHandler := handlers.NewSkillHandler(db)
	healthHandler := handlers.NewHealthHandler(db)

	api.GET("/profile", profileHandler.Show)
	api.GET("/projects", projectHandler.List)
	api.GET("/projects/:slug", projectHandler.Show)
	api.GET("/project-types", projectHandler.Types)
	api.GET("/skills", skillHandler.List)
	api.GET("/skill-categories", skillHandler.Categories)
	api.GET("/health", healthHandler.Health)
}
