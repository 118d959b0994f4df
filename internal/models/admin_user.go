package models

import "time"

// AdminUser is an administrator account stored in the database.
//
// Every account carries exactly one role; the relation is non-nullable
// at the storage layer so an account can never authenticate without
// one.
type AdminUser struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Name     string `gorm:"type:text;not null"`             // Display name.
	Email    string `gorm:"type:text;not null;uniqueIndex"` // Unique login email.
	Password string `gorm:"type:text;not null"`             // Bcrypt password hash.

	RoleID uint64     `gorm:"not null;index"`     // Owning role ID.
	Role   *AdminRole `gorm:"foreignKey:RoleID"`  // Owning role.

	IsActive    bool `gorm:"not null;default:true"`  // Whether the account can sign in.
	IsProtected bool `gorm:"not null;default:false"` // Protects the primary admin from deletion.

	LastLoginAt *time.Time // Last authenticated activity.
	LastLoginIP string     `gorm:"type:text"` // Caller address of the last activity.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
