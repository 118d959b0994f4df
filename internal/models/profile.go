package models

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is the single public profile record for the portfolio owner.
type Profile struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	FullName string `gorm:"type:text;not null"` // Full display name.
	Title    string `gorm:"type:text"`          // Professional title.
	Bio      string `gorm:"type:text"`          // Biography text.

	Email string `gorm:"type:text"` // Public contact email.
	Phone string `gorm:"type:text"` // Public contact phone.
	URL   string `gorm:"type:text"` // Personal website link.

	AvatarURL string `gorm:"type:text"` // Avatar image link.
	Location  string `gorm:"type:text"` // Location label.

	SocialLinks datatypes.JSON // Social profile links in JSON.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
