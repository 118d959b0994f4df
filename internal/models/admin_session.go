package models

import "time"

// AdminSession is an active bearer session for an admin account.
//
// The unique index on AdminUserID keeps at most one live session per
// account: a new login replaces the previous row, invalidating the
// prior token. Deleting the row clears the token and its expiry
// together.
type AdminSession struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Token string `gorm:"type:text;not null;uniqueIndex"` // Opaque bearer token.

	AdminUserID uint64     `gorm:"not null;uniqueIndex"`    // Owning account ID.
	AdminUser   *AdminUser `gorm:"foreignKey:AdminUserID"`  // Owning account.

	ExpiresAt time.Time `gorm:"not null"` // Fixed expiry set at issuance.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Issuance timestamp.
}
