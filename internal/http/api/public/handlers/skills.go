package handlers

import (
	"sort"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
)

// SkillHandler serves the public skill endpoints.
type SkillHandler struct {
	db *gorm.DB
}

// NewSkillHandler constructs a SkillHandler.
func NewSkillHandler(db *gorm.DB) *SkillHandler {
	return &SkillHandler{db: db}
}

// List returns skills, optionally filtered by category or featured
// flag, or grouped per category with grouped=true.
func (h *SkillHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Order("display_order ASC").Order("proficiency DESC")

	if category := c.Query("category"); category != "" && models.ValidSkillCategory(category) {
		q = q.Where("category = ?", category)
	}
	if c.Query("featured") == "true" {
		q = q.Where("is_featured = ?", true)
	}

	var rows []models.Skill
	if errFind := q.Find(&rows).Error; errFind != nil {
		log.Errorf("list skills failed: %v", errFind)
		response.ServerError(c, "Failed to list skills")
		return
	}

	if c.Query("grouped") == "true" {
		response.OK(c, groupByCategory(rows))
		return
	}
	response.OK(c, render.Skills(rows))
}

// groupByCategory buckets skills by category in display order.
func groupByCategory(rows []models.Skill) []gin.H {
	buckets := make(map[string][]models.Skill)
	for _, skill := range rows {
		buckets[skill.Category] = append(buckets[skill.Category], skill)
	}

	categories := make([]string, 0, len(buckets))
	for category := range buckets {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool {
		oi, oj := models.SkillCategoryOrder(categories[i]), models.SkillCategoryOrder(categories[j])
		if oi != oj {
			return oi < oj
		}
		return categories[i] < categories[j]
	})

	out := make([]gin.H, 0, len(categories))
	for _, category := range categories {
		out = append(out, gin.H{
			"category":       category,
			"category_label": models.SkillCategoryLabel(category),
			"skills":         render.Skills(buckets[category]),
		})
	}
	return out
}

// Categories returns the skill category options.
func (h *SkillHandler) Categories(c *gin.Context) {
	response.OK(c, render.SkillCategoryOptions())
}
