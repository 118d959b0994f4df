package models

import (
	"time"

	"gorm.io/datatypes"
)

// AdminRole is a named permission bundle assigned to admin accounts.
type AdminRole struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name        string `gorm:"type:text;not null;uniqueIndex"` // Unique role key, e.g. "admin".
	DisplayName string `gorm:"type:text;not null"`             // Human-readable role name.
	Description string `gorm:"type:text"`                      // Optional description.

	Permissions datatypes.JSON `gorm:"not null;default:'[]'"` // Permission strings in JSON.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
