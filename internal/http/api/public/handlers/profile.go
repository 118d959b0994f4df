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

// ProfileHandler serves the public profile endpoint.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// Show returns the portfolio owner's profile.
func (h *ProfileHandler) Show(c *gin.Context) {
	var profile models.Profile
	if errFind := h.db.WithContext(c.Request.Context()).Order("id ASC").First(&profile).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Profile not found")
			return
		}
		log.Errorf("load profile failed: %v", errFind)
		response.ServerError(c, "Failed to load profile")
		return
	}
	response.OK(c, render.Profile(&profile))
}
