package db

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/models"
	"github.com/datheory/portfolio-api/internal/permissions"
	"github.com/datheory/portfolio-api/internal/security"
)

// Migrate creates or updates the schema for all models.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.AdminRole{},
		&models.AdminUser{},
		&models.AdminSession{},
		&models.Project{},
		&models.Skill{},
		&models.Profile{},
	)
}

// seedRole describes a role created at seed time.
type seedRole struct {
	name        string
	displayName string
	description string
	permissions []string
}

// defaultRoles returns the roles seeded on first boot.
func defaultRoles() []seedRole {
	return []seedRole{
		{
			name:        "admin",
			displayName: "Administrator",
			description: "Full access to all admin features",
			permissions: []string{"*"},
		},
		{
			name:        "editor",
			displayName: "Editor",
			description: "Can manage content but not users",
			permissions: []string{"projects.*", "skills.*", "profile.*", "users.view"},
		},
		{
			name:        "viewer",
			displayName: "Viewer",
			description: "Read-only access to admin panel",
			permissions: []string{"dashboard.view", "projects.view", "skills.view"},
		},
	}
}

// Seed inserts the default roles and the protected primary admin
// account when they do not exist yet. Existing rows are left alone, so
// seeding on every boot is safe.
func Seed(conn *gorm.DB, adminEmail, adminPassword string) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}

	var adminRole models.AdminRole
	for _, role := range defaultRoles() {
		raw, errMarshal := permissions.Marshal(role.permissions)
		if errMarshal != nil {
			return fmt.Errorf("db: marshal role permissions: %w", errMarshal)
		}
		var existing models.AdminRole
		errFind := conn.Where("name = ?", role.name).First(&existing).Error
		switch {
		case errFind == nil:
			// Keep admin-edited roles as they are.
		case errors.Is(errFind, gorm.ErrRecordNotFound):
			existing = models.AdminRole{
				Name:        role.name,
				DisplayName: role.displayName,
				Description: role.description,
				Permissions: raw,
			}
			if errCreate := conn.Create(&existing).Error; errCreate != nil {
				return fmt.Errorf("db: seed role %s: %w", role.name, errCreate)
			}
			log.Infof("seeded role %s", role.name)
		default:
			return fmt.Errorf("db: query role %s: %w", role.name, errFind)
		}
		if role.name == "admin" {
			adminRole = existing
		}
	}

	var count int64
	if errCount := conn.Model(&models.AdminUser{}).Where("email = ?", adminEmail).Count(&count).Error; errCount != nil {
		return fmt.Errorf("db: count admin users: %w", errCount)
	}
	if count > 0 {
		return nil
	}

	hash, errHash := security.HashPassword(adminPassword)
	if errHash != nil {
		return fmt.Errorf("db: hash admin password: %w", errHash)
	}
	admin := models.AdminUser{
		Name:        "System Admin",
		Email:       adminEmail,
		Password:    hash,
		RoleID:      adminRole.ID,
		IsActive:    true,
		IsProtected: true,
	}
	if errCreate := conn.Create(&admin).Error; errCreate != nil {
		return fmt.Errorf("db: seed admin user: %w", errCreate)
	}
	log.Infof("seeded admin user %s", adminEmail)
	return nil
}
