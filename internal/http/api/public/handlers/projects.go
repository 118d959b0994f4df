// Package handlers serves the unauthenticated portfolio endpoints.
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
)

// ProjectHandler serves the public project endpoints.
type ProjectHandler struct {
	db *gorm.DB
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

// List returns published projects, optionally filtered by type or
// featured flag.
func (h *ProjectHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Where("is_published = ?", true).
		Order("display_order ASC").Order("created_at DESC")

	if projectType := c.Query("type"); projectType != "" && models.ValidProjectType(projectType) {
		q = q.Where("project_type = ?", projectType)
	}
	if c.Query("featured") == "true" {
		q = q.Where("featured = ?", true)
	}

	var rows []models.Project
	if errFind := q.Find(&rows).Error; errFind != nil {
		log.Errorf("list public projects failed: %v", errFind)
		response.ServerError(c, "Failed to list projects")
		return
	}
	response.OK(c, render.Projects(rows))
}

// Show returns a single project by slug.
func (h *ProjectHandler) Show(c *gin.Context) {
	slug := c.Param("slug")
	var project models.Project
	if errFind := h.db.WithContext(c.Request.Context()).Where("slug = ?", slug).First(&project).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		log.Errorf("load project failed: %v", errFind)
		response.ServerError(c, "Failed to load project")
		return
	}
	response.OK(c, render.Project(&project))
}

// Types returns the project type options for dropdowns.
func (h *ProjectHandler) Types(c *gin.Context) {
	response.OK(c, render.ProjectTypeOptions())
}
