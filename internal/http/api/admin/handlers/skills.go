package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
)

// SkillHandler manages skill admin endpoints.
type SkillHandler struct {
	db *gorm.DB
}

// NewSkillHandler constructs a SkillHandler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{db: db}
}

// skillRequest defines the request body for skill creation and updates.
type skillRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	SkillType       *string  `json:"skill_type"`
	Level           *string  `json:"level"`
	Proficiency     *int     `json:"proficiency"`
	YearsExperience *float64 `json:"years_experience"`
	IconURL         *string  `json:"icon_url"`
	DisplayOrder    *int     `json:"display_order"`
	IsFeatured      *bool    `json:"is_featured"`
}

// applySkillFields copies optional request fields onto the model,
// returning field errors for out-of-range values.
func applySkillFields(skill *models.Skill, body *skillRequest) gin.H {
	fieldErrors := gin.H{}
	if body.Proficiency != nil {
		if *body.Proficiency < 0 || *body.Proficiency > 100 {
			fieldErrors["proficiency"] = "proficiency must be between 0 and 100"
		} else {
			skill.Proficiency = *body.Proficiency
		}
	}
	if body.YearsExperience != nil {
		if *body.YearsExperience < 0 || *body.YearsExperience > 50 {
			fieldErrors["years_experience"] = "years_experience must be between 0 and 50"
		} else {
			skill.YearsExperience = body.YearsExperience
		}
	}
	if body.SkillType != nil {
		skill.SkillType = *body.SkillType
	}
	if body.Level != nil {
		skill.Level = *body.Level
	}
	if body.IconURL != nil {
		skill.IconURL = *body.IconURL
	}
	if body.DisplayOrder != nil {
		skill.DisplayOrder = *body.DisplayOrder
	}
	if body.IsFeatured != nil {
		skill.IsFeatured = *body.IsFeatured
	}
	return fieldErrors
}

// Create creates a new skill.
func (h *SkillHandler) Create(c *gin.Context) {
	var body skillRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := gin.H{}
	if body.Name == nil || strings.TrimSpace(*body.Name) == "" {
		fieldErrors["name"] = "name is required"
	}
	if body.Category == nil || !models.ValidSkillCategory(*body.Category) {
		fieldErrors["category"] = "category must be one of " + strings.Join(models.SkillCategories, ", ")
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	skill := models.Skill{
		Name:     strings.TrimSpace(*body.Name),
		Category: *body.Category,
	}
	if fieldErrors := applySkillFields(&skill, &body); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	if errCreate := h.db.WithContext(c.Request.Context()).Create(&skill).Error; errCreate != nil {
		log.Errorf("create skill failed: %v", errCreate)
		response.ServerError(c, "Failed to create skill")
		return
	}
	response.Created(c, render.Skill(&skill), "Skill created successfully")
}

// Update modifies an existing skill.
func (h *SkillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body skillRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var skill models.Skill
	if errFind := h.db.WithContext(c.Request.Context()).First(&skill, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Skill not found")
			return
		}
		log.Errorf("query skill failed: %v", errFind)
		response.ServerError(c, "Failed to update skill")
		return
	}

	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			response.ValidationError(c, gin.H{"name": "name cannot be empty"})
			return
		}
		skill.Name = name
	}
	if body.Category != nil {
		if !models.ValidSkillCategory(*body.Category) {
			response.ValidationError(c, gin.H{"category": "unknown category"})
			return
		}
		skill.Category = *body.Category
	}
	if fieldErrors := applySkillFields(&skill, &body); len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&skill).Error; errSave != nil {
		log.Errorf("update skill failed: %v", errSave)
		response.ServerError(c, "Failed to update skill")
		return
	}
	response.OKWithMessage(c, render.Skill(&skill), "Skill updated successfully")
}

// Delete removes a skill.
func (h *SkillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res := h.db.WithContext(c.Request.Context()).Delete(&models.Skill{}, id)
	if res.Error != nil {
		log.Errorf("delete skill failed: %v", res.Error)
		response.ServerError(c, "Failed to delete skill")
		return
	}
	if res.RowsAffected == 0 {
		response.NotFound(c, "Skill not found")
		return
	}
	response.Message(c, "Skill deleted successfully")
}
