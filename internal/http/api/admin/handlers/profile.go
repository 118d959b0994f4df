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

// ProfileHandler manages the singleton profile record.
type ProfileHandler struct {
	db *gorm.DB
}

// NewProfileHandler constructs a ProfileHandler.
func NewProfileHandler(db *gorm.DB) *ProfileHandler {
	return &ProfileHandler{db: db}
}

// profileRequest defines the request body for profile updates.
type profileRequest struct {
	FullName    *string            `json:"full_name"`
	Title       *string            `json:"title"`
	Bio         *string            `json:"bio"`
	Email       *string            `json:"email"`
	Phone       *string            `json:"phone"`
	URL         *string            `json:"url"`
	AvatarURL   *string            `json:"avatar_url"`
	Location    *string            `json:"location"`
	SocialLinks *map[string]string `json:"social_links"`
}

// Update modifies the profile, creating it on first use.
func (h *ProfileHandler) Update(c *gin.Context) {
	var body profileRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	var profile models.Profile
	errFind := h.db.WithContext(c.Request.Context()).Order("id ASC").First(&profile).Error
	creating := errors.Is(errFind, gorm.ErrRecordNotFound)
	if errFind != nil && !creating {
		log.Errorf("query profile failed: %v", errFind)
		response.ServerError(c, "Failed to update profile")
		return
	}

	if creating && (body.FullName == nil || strings.TrimSpace(*body.FullName) == "") {
		response.ValidationError(c, gin.H{"full_name": "full_name is required"})
		return
	}

	if body.FullName != nil {
		name := strings.TrimSpace(*body.FullName)
		if name == "" {
			response.ValidationError(c, gin.H{"full_name": "full_name cannot be empty"})
			return
		}
		profile.FullName = name
	}
	if body.Title != nil {
		profile.Title = *body.Title
	}
	if body.Bio != nil {
		profile.Bio = *body.Bio
	}
	if body.Email != nil {
		email := strings.TrimSpace(*body.Email)
		if email != "" && !strings.Contains(email, "@") {
			response.ValidationError(c, gin.H{"email": "a valid email is required"})
			return
		}
		profile.Email = email
	}
	if body.Phone != nil {
		profile.Phone = *body.Phone
	}
	if body.URL != nil {
		profile.URL = *body.URL
	}
	if body.AvatarURL != nil {
		profile.AvatarURL = *body.AvatarURL
	}
	if body.Location != nil {
		profile.Location = *body.Location
	}
	if body.SocialLinks != nil {
		raw, errEncode := encodeJSONField(*body.SocialLinks)
		if errEncode != nil {
			log.Errorf("encode social links failed: %v", errEncode)
			response.ServerError(c, "Failed to update profile")
			return
		}
		profile.SocialLinks = raw
	}

	if errSave := h.db.WithContext(c.Request.Context()).Save(&profile).Error; errSave != nil {
		log.Errorf("save profile failed: %v", errSave)
		response.ServerError(c, "Failed to update profile")
		return
	}
	response.OKWithMessage(c, render.Profile(&profile), "Profile updated successfully")
}
