package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project type values.
const (
	// ProjectTypeDataScience covers machine learning and statistical modeling work.
	ProjectTypeDataScience = "data_science"
	// ProjectTypeDataAnalysis covers business intelligence and exploratory analysis work.
	ProjectTypeDataAnalysis = "data_analysis"
	// ProjectTypeDataEngineering covers pipelines, ETL and infrastructure work.
	ProjectTypeDataEngineering = "data_engineering"
)

// ProjectTypes lists the valid project type values in display order.
var ProjectTypes = []string{ProjectTypeDataScience, ProjectTypeDataAnalysis, ProjectTypeDataEngineering}

// ValidProjectType reports whether value is a known project type.
func ValidProjectType(value string) bool {
	for _, t := range ProjectTypes {
		if t == value {
			return true
		}
	}
	return false
}

// ProjectTypeLabel returns the display label for a project type value.
func ProjectTypeLabel(value string) string {
	switch value {
	case ProjectTypeDataScience:
		return "Data Science"
	case ProjectTypeDataAnalysis:
		return "Data Analysis"
	case ProjectTypeDataEngineering:
		return "Data Engineering"
	default:
		return "Unknown"
	}
}

// ProjectTypeDescription returns the description for a project type value.
func ProjectTypeDescription(value string) string {
	switch value {
	case ProjectTypeDataScience:
		return "Machine learning, predictive modeling, and statistical analysis projects"
	case ProjectTypeDataAnalysis:
		return "Business intelligence, dashboards, and exploratory data analysis"
	case ProjectTypeDataEngineering:
		return "Data pipelines, ETL processes, and infrastructure projects"
	default:
		return ""
	}
}

// Project is a portfolio project entry.
type Project struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Title string `gorm:"type:text;not null"`             // Project title.
	Slug  string `gorm:"type:text;not null;uniqueIndex"` // Unique URL slug.

	ProjectType string `gorm:"type:text;not null;default:data_science"` // One of the ProjectType* values.

	ShortDescription string `gorm:"type:text;not null"` // Summary for list views.
	Description      string `gorm:"type:text;not null"` // Full description.

	TechStack datatypes.JSON `` // Technology names in JSON.
	ToolsUsed datatypes.JSON `` // Tool names in JSON.

	GithubURL    string `gorm:"type:text"` // Repository link.
	DemoURL      string `gorm:"type:text"` // Live demo link.
	NotebookURL  string `gorm:"type:text"` // Notebook link.
	ThumbnailURL string `gorm:"type:text"` // Thumbnail image link.

	IsPublished  bool `gorm:"not null;default:false"` // Visible on the public site when true.
	Featured     bool `gorm:"not null;default:false"` // Highlighted on the public site when true.
	DisplayOrder int  `gorm:"not null;default:0"`     // Manual sort order, ascending.

	Metadata    datatypes.JSON `` // Free-form metadata in JSON.
	DatasetInfo datatypes.JSON `` // Dataset name/source/size/format in JSON.
	Metrics     datatypes.JSON `` // Outcome metrics in JSON.

	CreatedAt time.Time      `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime"` // Last update timestamp.
	DeletedAt gorm.DeletedAt `gorm:"index"`                   // Soft-delete marker (archived projects).
}
