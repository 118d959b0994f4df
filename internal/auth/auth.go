// Package auth implements admin credential exchange and per-request
// bearer token authentication against the session store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/models"
	"github.com/datheory/portfolio-api/internal/security"
)

// TokenTTL is the fixed session lifetime from issuance. Activity does
// not extend it.
const TokenTTL = 24 * time.Hour

// Authentication failures. Handlers map these onto HTTP statuses.
var (
	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoRoleAssigned rejects accounts whose role row is missing.
	ErrNoRoleAssigned = errors.New("no role assigned")
	// ErrTokenRequired rejects requests without a token header.
	ErrTokenRequired = errors.New("token required")
	// ErrUnauthorized rejects unknown or revoked tokens.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTokenExpired rejects tokens past their fixed expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Service performs logins, logouts and token authentication.
type Service struct {
	db  *gorm.DB
	now func() time.Time
}

// NewService constructs a Service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

// NewServiceWithClock constructs a Service with a fixed clock source.
// Used by tests that need deterministic expiry.
func NewServiceWithClock(db *gorm.DB, now func() time.Time) *Service {
	return &Service{db: db, now: now}
}

// Login exchanges credentials for a fresh session.
//
// Unknown email and wrong password both fail with
// ErrInvalidCredentials so callers cannot enumerate accounts. An
// account without a live role row fails with ErrNoRoleAssigned. On
// success any previous session for the account is replaced, so at most
// one token per account is ever valid.
func (s *Service) Login(ctx context.Context, email, password, ip string) (*models.AdminUser, *models.AdminSession, error) {
	var user models.AdminUser
	errFind := s.db.WithContext(ctx).
		Preload("Role").
		Where("email = ? AND is_active = ?", email, true).
		First(&user).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("auth: query account: %w", errFind)
	}

	if !security.CheckPassword(user.Password, password) {
		return nil, nil, ErrInvalidCredentials
	}
	if user.Role == nil {
		return nil, nil, ErrNoRoleAssigned
	}

	token, errToken := security.GenerateSessionToken()
	if errToken != nil {
		return nil, nil, fmt.Errorf("auth: generate token: %w", errToken)
	}

	now := s.now().UTC()
	session := models.AdminSession{
		Token:       token,
		AdminUserID: user.ID,
		ExpiresAt:   now.Add(TokenTTL),
	}
	errTx := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if errDelete := tx.Where("admin_user_id = ?", user.ID).Delete(&models.AdminSession{}).Error; errDelete != nil {
			return errDelete
		}
		if errCreate := tx.Create(&session).Error; errCreate != nil {
			return errCreate
		}
		return tx.Model(&models.AdminUser{}).Where("id = ?", user.ID).
			Updates(map[string]any{"last_login_at": now, "last_login_ip": ip}).Error
	})
	if errTx != nil {
		return nil, nil, fmt.Errorf("auth: issue session: %w", errTx)
	}

	user.LastLoginAt = &now
	user.LastLoginIP = ip
	return &user, &session, nil
}

// Authenticate resolves the account behind a request token.
//
// An expired token is burned: its session row is deleted before the
// failure is returned, so the same token fails with ErrUnauthorized on
// the next attempt. On success the account's activity fields are
// updated; the expiry itself is fixed at issuance.
func (s *Service) Authenticate(ctx context.Context, token, ip string) (*models.AdminUser, error) {
	if token == "" {
		return nil, ErrTokenRequired
	}

	var session models.AdminSession
	errFind := s.db.WithContext(ctx).
		Preload("AdminUser").
		Preload("AdminUser.Role").
		Where("token = ?", token).
		First(&session).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("auth: query session: %w", errFind)
	}

	user := session.AdminUser
	if user == nil || !user.IsActive {
		return nil, ErrUnauthorized
	}

	now := s.now().UTC()
	if now.After(session.ExpiresAt) {
		if errDelete := s.db.WithContext(ctx).Delete(&models.AdminSession{}, session.ID).Error; errDelete != nil {
			return nil, fmt.Errorf("auth: burn expired session: %w", errDelete)
		}
		return nil, ErrTokenExpired
	}

	if errUpdate := s.db.WithContext(ctx).Model(&models.AdminUser{}).Where("id = ?", user.ID).
		Updates(map[string]any{"last_login_at": now, "last_login_ip": ip}).Error; errUpdate != nil {
		return nil, fmt.Errorf("auth: record activity: %w", errUpdate)
	}
	user.LastLoginAt = &now
	user.LastLoginIP = ip
	return user, nil
}

// Logout revokes the session matching token. Unknown tokens are not an
// error; logout is idempotent.
func (s *Service) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if errDelete := s.db.WithContext(ctx).Where("token = ?", token).Delete(&models.AdminSession{}).Error; errDelete != nil {
		return fmt.Errorf("auth: revoke session: %w", errDelete)
	}
	return nil
}
