package admin

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/auth"
	"github.com/datheory/portfolio-api/internal/http/api/admin/handlers"
)

// RegisterRoutes mounts the admin API onto the /api route group.
//
// Login and logout sit outside the token middleware; everything else
// runs through it, and each mutation additionally carries its
// resource.action permission gate.
func RegisterRoutes(api *gin.RouterGroup, db *gorm.DB, svc *auth.Service) {
	authHandler := handlers.NewAuthHandler(svc)
	userHandler := handlers.NewAdminUserHandler(db)
	projectHandler := handlers.NewProjectHandler(db)
	skillHandler := handlers.NewSkillHandler(db)
	profileHandler := handlers.NewProfileHandler(db)

	api.POST("/admin/login", authHandler.Login)
	api.POST("/admin/logout", authHandler.Logout)

	gated := api.Group("")
	gated.Use(TokenAuthMiddleware(svc))

	gated.GET("/admin/me", authHandler.Me)

	gated.GET("/projects-all", projectHandler.ListAll)
	gated.GET("/projects-archived", projectHandler.ListArchived)
	gated.POST("/projects", RequirePermission("projects.create"), projectHandler.Create)
	gated.PUT("/projects/:id", RequirePermission("projects.edit"), projectHandler.Update)
	gated.DELETE("/projects/:id", RequirePermission("projects.delete"), projectHandler.Delete)
	gated.DELETE("/projects/:id/force", RequirePermission("projects.delete"), projectHandler.ForceDelete)
	gated.PATCH("/projects/:id/toggle-status", RequirePermission("projects.edit"), projectHandler.ToggleStatus)
	gated.PATCH("/projects/:id/restore", RequirePermission("projects.edit"), projectHandler.Restore)

	gated.POST("/skills", RequirePermission("skills.create"), skillHandler.Create)
	gated.PUT("/skills/:id", RequirePermission("skills.edit"), skillHandler.Update)
	gated.DELETE("/skills/:id", RequirePermission("skills.delete"), skillHandler.Delete)

	gated.PUT("/profile", RequirePermission("profile.edit"), profileHandler.Update)

	gated.GET("/admin-users", RequirePermission("users.view"), userHandler.List)
	gated.POST("/admin-users", RequirePermission("users.create"), userHandler.Create)
	gated.GET("/admin-users/:id", RequirePermission("users.view"), userHandler.Get)
	gated.PUT("/admin-users/:id", RequirePermission("users.edit"), userHandler.Update)
	gated.DELETE("/admin-users/:id", RequirePermission("users.delete"), userHandler.Delete)
}
