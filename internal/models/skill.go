package models

import "time"

// Skill category values.
const (
	SkillCategoryProgramming   = "programming"
	SkillCategoryDataTools     = "data_tools"
	SkillCategoryDatabase      = "database"
	SkillCategoryCloud         = "cloud"
	SkillCategoryVisualization = "visualization"
	SkillCategoryMLAI          = "ml_ai"
	SkillCategoryOther         = "other"
)

// SkillCategories lists the valid skill category values.
var SkillCategories = []string{
	SkillCategoryProgramming,
	SkillCategoryDataTools,
	SkillCategoryDatabase,
	SkillCategoryCloud,
	SkillCategoryVisualization,
	SkillCategoryMLAI,
	SkillCategoryOther,
}

// ValidSkillCategory reports whether value is a known skill category.
func ValidSkillCategory(value string) bool {
	for _, c := range SkillCategories {
		if c == value {
			return true
		}
	}
	return false
}

// SkillCategoryLabel returns the display label for a category value.
func SkillCategoryLabel(value string) string {
	switch value {
	case SkillCategoryProgramming:
		return "Programming Languages"
	case SkillCategoryDataTools:
		return "Data Tools & Frameworks"
	case SkillCategoryDatabase:
		return "Databases"
	case SkillCategoryCloud:
		return "Cloud & Infrastructure"
	case SkillCategoryVisualization:
		return "Visualization"
	case SkillCategoryMLAI:
		return "Machine Learning & AI"
	case SkillCategoryOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// SkillCategoryOrder returns the display sort order for a category value.
func SkillCategoryOrder(value string) int {
	switch value {
	case SkillCategoryProgramming:
		return 1
	case SkillCategoryDataTools:
		return 2
	case SkillCategoryMLAI:
		return 3
	case SkillCategoryDatabase:
		return 4
	case SkillCategoryCloud:
		return 5
	case SkillCategoryVisualization:
		return 6
	default:
		return 99
	}
}

// Skill is a technical skill entry shown on the portfolio.
type Skill struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name     string `gorm:"type:text;not null"` // Skill name.
	Category string `gorm:"type:text;not null"` // One of the SkillCategory* values.

	SkillType string `gorm:"type:text"` // Fine-grained kind, e.g. "language", "framework".
	Level     string `gorm:"type:text"` // Free-form level label.

	Proficiency     int      `gorm:"not null;default:0"` // Proficiency percentage, 0-100.
	YearsExperience *float64 // Years of experience, one decimal.

	IconURL string `gorm:"type:text"` // Icon image link.

	DisplayOrder int  `gorm:"not null;default:0"`     // Manual sort order, ascending.
	IsFeatured   bool `gorm:"not null;default:false"` // Highlighted on the public site when true.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
