package handlers

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/db"
	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
)

// ProjectHandler manages project admin endpoints.
type ProjectHandler struct {
	db *gorm.DB
}

// NewProjectHandler constructs a ProjectHandler.
func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{db: db}
}

// orderedProjects applies the canonical project ordering.
func orderedProjects(q *gorm.DB) *gorm.DB {
	return q.Order("display_order ASC").Order("created_at DESC")
}

// encodeJSONField marshals an optional request field into a JSON
// column value. nil input leaves the column untouched.
func encodeJSONField(value any) (datatypes.JSON, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// ListAll returns every project for the admin panel, drafts included.
func (h *ProjectHandler) ListAll(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.Project{})
	if c.Query("with_trashed") == "true" {
		q = q.Unscoped()
	}
	if published := c.Query("published"); published != "" {
		q = q.Where("is_published = ?", published == "true")
	}
	if projectType := c.Query("type"); projectType != "" && models.ValidProjectType(projectType) {
		q = q.Where("project_type = ?", projectType)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		pattern := db.NormalizeLikePattern(h.db, "%"+search+"%")
		q = q.Where(
			h.db.Where(db.CaseInsensitiveLikeExpr(h.db, "title"), pattern).
				Or(db.CaseInsensitiveLikeExpr(h.db, "slug"), pattern),
		)
	}

	var rows []models.Project
	if errFind := orderedProjects(q).Find(&rows).Error; errFind != nil {
		log.Errorf("list projects failed: %v", errFind)
		response.ServerError(c, "Failed to list projects")
		return
	}
	response.OK(c, render.Projects(rows))
}

// ListArchived returns soft-deleted projects only.
func (h *ProjectHandler) ListArchived(c *gin.Context) {
	var rows []models.Project
	errFind := orderedProjects(
		h.db.WithContext(c.Request.Context()).Unscoped().Where("deleted_at IS NOT NULL"),
	).Find(&rows).Error
	if errFind != nil {
		log.Errorf("list archived projects failed: %v", errFind)
		response.ServerError(c, "Failed to list archived projects")
		return
	}
	response.OK(c, render.Projects(rows))
}

// projectRequest defines the request body for project creation and
// updates. Pointer fields distinguish "absent" from zero values.
type projectRequest struct {
	Title            *string            `json:"title"`
	Slug             *string            `json:"slug"`
	ProjectType      *string            `json:"project_type"`
	ShortDescription *string            `json:"short_description"`
	Description      *string            `json:"description"`
	TechStack        *[]string          `json:"tech_stack"`
	ToolsUsed        *[]string          `json:"tools_used"`
	GithubURL        *string            `json:"github_url"`
	DemoURL          *string            `json:"demo_url"`
	NotebookURL      *string            `json:"notebook_url"`
	ThumbnailURL     *string            `json:"thumbnail_url"`
	IsPublished      *bool              `json:"is_published"`
	Featured         *bool              `json:"featured"`
	DisplayOrder     *int               `json:"display_order"`
	Metadata         *map[string]any    `json:"metadata"`
	DatasetInfo      *map[string]string `json:"dataset_info"`
	Metrics          *map[string]any    `json:"metrics"`
}

// validateCreate checks the required fields for a new project.
func (b *projectRequest) validateCreate() gin.H {
	fieldErrors := gin.H{}
	if b.Title == nil || strings.TrimSpace(*b.Title) == "" {
		fieldErrors["title"] = "title is required"
	}
	if b.Slug == nil || strings.TrimSpace(*b.Slug) == "" {
		fieldErrors["slug"] = "slug is required"
	}
	if b.ProjectType == nil || !models.ValidProjectType(*b.ProjectType) {
		fieldErrors["project_type"] = "project_type must be one of " + strings.Join(models.ProjectTypes, ", ")
	}
	if b.ShortDescription == nil || strings.TrimSpace(*b.ShortDescription) == "" {
		fieldErrors["short_description"] = "short_description is required"
	}
	if b.Description == nil || strings.TrimSpace(*b.Description) == "" {
		fieldErrors["description"] = "description is required"
	}
	return fieldErrors
}

// Create creates a new project.
func (h *ProjectHandler) Create(c *gin.Context) {
	var body projectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if fieldErrors := body.validateCreate(); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	slug := strings.TrimSpace(*body.Slug)
	var existing models.Project
	errCheck := h.db.WithContext(c.Request.Context()).Unscoped().Where("slug = ?", slug).First(&existing).Error
	if errCheck == nil {
		response.ValidationError(c, gin.H{"slug": "slug already in use"})
		return
	} else if !errors.Is(errCheck, gorm.ErrRecordNotFound) {
		log.Errorf("check slug failed: %v", errCheck)
		response.ServerError(c, "Failed to create project")
		return
	}

	project := models.Project{
		Title:            strings.TrimSpace(*body.Title),
		Slug:             slug,
		ProjectType:      *body.ProjectType,
		ShortDescription: strings.TrimSpace(*body.ShortDescription),
		Description:      *body.Description,
	}
	if errApply := applyProjectFields(&project, &body); errApply != nil {
		log.Errorf("encode project fields failed: %v", errApply)
		response.ServerError(c, "Failed to create project")
		return
	}

	if errCreate := h.db.WithContext(c.Request.Context()).Create(&project).Error; errCreate != nil {
		log.Errorf("create project failed: %v", errCreate)
		response.ServerError(c, "Failed to create project")
		return
	}
	response.Created(c, render.Project(&project), "Project created successfully")
}

// applyProjectFields copies optional request fields onto the model.
func applyProjectFields(project *models.Project, body *projectRequest) error {
	if body.GithubURL != nil {
		project.GithubURL = *body.GithubURL
	}
	if body.DemoURL != nil {
		project.DemoURL = *body.DemoURL
	}
	if body.NotebookURL != nil {
		project.NotebookURL = *body.NotebookURL
	}
	if body.ThumbnailURL != nil {
		project.ThumbnailURL = *body.ThumbnailURL
	}
	if body.IsPublished != nil {
		project.IsPublished = *body.IsPublished
	}
	if body.Featured != nil {
		project.Featured = *body.Featured
	}
	if body.DisplayOrder != nil {
		project.DisplayOrder = *body.DisplayOrder
	}
	for _, field := range []struct {
		src any
		dst *datatypes.JSON
	}{
		{body.TechStack, &project.TechStack},
		{body.ToolsUsed, &project.ToolsUsed},
		{body.Metadata, &project.Metadata},
		{body.DatasetInfo, &project.DatasetInfo},
		{body.Metrics, &project.Metrics},
	} {
		switch v := field.src.(type) {
		case *[]string:
			if v == nil {
				continue
			}
			raw, err := encodeJSONField(*v)
			if err != nil {
				return err
			}
			*field.dst = raw
		case *map[string]any:
			if v == nil {
				continue
			}
			raw, err := encodeJSONField(*v)
			if err != nil {
				return err
			}
			*field.dst = raw
		case *map[string]string:
			if v == nil {
				continue
			}
			raw, err := encodeJSONField(*v)
			if err != nil {
				return err
			}
			*field.dst = raw
		}
	}
	return nil
}

// Update modifies an existing project.
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body projectRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var project models.Project
	if errFind := h.db.WithContext(c.Request.Context()).First(&project, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		log.Errorf("query project failed: %v", errFind)
		response.ServerError(c, "Failed to update project")
		return
	}

	if body.Title != nil {
		title := strings.TrimSpace(*body.Title)
		if title == "" {
			response.ValidationError(c, gin.H{"title": "title cannot be empty"})
			return
		}
		project.Title = title
	}
	if body.Slug != nil {
		slug := strings.TrimSpace(*body.Slug)
		if slug == "" {
			response.ValidationError(c, gin.H{"slug": "slug cannot be empty"})
			return
		}
		var existing models.Project
		errCheck := h.db.WithContext(c.Request.Context()).Unscoped().Where("slug = ? AND id <> ?", slug, id).First(&existing).Error
		if errCheck == nil {
			response.ValidationError(c, gin.H{"slug": "slug already in use"})
			return
		} else if !errors.Is(errCheck, gorm.ErrRecordNotFound) {
			log.Errorf("check slug failed: %v", errCheck)
			response.ServerError(c, "Failed to update project")
			return
		}
		project.Slug = slug
	}
	if body.ProjectType != nil {
		if !models.ValidProjectType(*body.ProjectType) {
			response.ValidationError(c, gin.H{"project_type": "unknown project_type"})
			return
		}
		project.ProjectType = *body.ProjectType
	}
	if body.ShortDescription != nil {
		project.ShortDescription = *body.ShortDescription
	}
	if body.Description != nil {
		project.Description = *body.Description
	}
	if errApply := applyProjectFields(&project, &body); errApply != nil {
		log.Errorf("encode project fields failed: %v", errApply)
		response.ServerError(c, "Failed to update project")
		return
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&project).Error; errSave != nil {
		log.Errorf("update project failed: %v", errSave)
		response.ServerError(c, "Failed to update project")
		return
	}
	response.OKWithMessage(c, render.Project(&project), "Project updated successfully")
}

// Delete archives a project (soft delete).
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Project{}, id)
	if res.Error != nil {
		log.Errorf("archive project failed: %v", res.Error)
		response.ServerError(c, "Failed to archive project")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Project not found")
		return
	}
	response.Message(c, "Project archived successfully")
}

// Restore brings an archived project back.
func (h *ProjectHandler) Restore(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var project models.Project
	if errFind := h.db.WithContext(c.Request.Context()).Unscoped().First(&project, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		log.Errorf("query archived project failed: %v", errFind)
		response.ServerError(c, "Failed to restore project")
		return
	}

	if errRestore := h.db.WithContext(c.Request.Context()).Unscoped().Model(&project).Update("deleted_at", nil).Error; errRestore != nil {
		log.Errorf("restore project failed: %v", errRestore)
		response.ServerError(c, "Failed to restore project")
		return
	}
	project.DeletedAt = gorm.DeletedAt{}
	response.OKWithMessage(c, render.Project(&project), "Project restored successfully")
}

// ToggleStatus flips the published flag.
func (h *ProjectHandler) ToggleStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var project models.Project
	if errFind := h.db.WithContext(c.Request.Context()).First(&project, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Project not found")
			return
		}
		log.Errorf("query project failed: %v", errFind)
		response.ServerError(c, "Failed to update project status")
		return
	}

	newStatus := !project.IsPublished
	if errUpdate := h.db.WithContext(c.Request.Context()).Model(&project).Update("is_published", newStatus).Error; errUpdate != nil {
		log.Errorf("toggle project status failed: %v", errUpdate)
		response.ServerError(c, "Failed to update project status")
		return
	}
	response.OKWithMessage(c, gin.H{"id": project.ID, "is_published": newStatus}, "Project status updated successfully")
}

// ForceDelete permanently removes a project, archived or not.
func (h *ProjectHandler) ForceDelete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Unscoped().Delete(&models.Project{}, id)
	if res.Error != nil {
		log.Errorf("force delete project failed: %v", res.Error)
		response.ServerError(c, "Failed to delete project")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Project not found")
		return
	}
	response.Message(c, "Project permanently deleted")
}
