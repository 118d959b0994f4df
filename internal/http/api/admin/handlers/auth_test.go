package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/auth"
	"github.com/datheory/portfolio-api/internal/models"
	"github.com/datheory/portfolio-api/internal/permissions"
	"github.com/datheory/portfolio-api/internal/security"
)

const testPassword = "secret-password"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	conn, errOpen := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if errOpen != nil {
		t.Fatalf("open sqlite: %v", errOpen)
	}
	errMigrate := conn.AutoMigrate(
		&models.AdminRole{},
		&models.AdminUser{},
		&models.AdminSession{},
		&models.Project{},
		&models.Skill{},
		&models.Profile{},
	)
	if errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return conn
}

func createRole(t *testing.T, conn *gorm.DB, name string, perms []string) models.AdminRole {
	t.Helper()

	raw, errMarshal := permissions.Marshal(perms)
	if errMarshal != nil {
		t.Fatalf("marshal permissions: %v", errMarshal)
	}
	role := models.AdminRole{Name: name, DisplayName: name, Permissions: raw}
	if errCreate := conn.Create(&role).Error; errCreate != nil {
		t.Fatalf("create role: %v", errCreate)
	}
	return role
}

func createAccount(t *testing.T, conn *gorm.DB, email string, roleID uint64) models.AdminUser {
	t.Helper()

	hash, errHash := security.HashPassword(testPassword)
	if errHash != nil {
		t.Fatalf("hash: %v", errHash)
	}
	user := models.AdminUser{
		Name:     "Test Admin",
		Email:    email,
		Password: hash,
		RoleID:   roleID,
		IsActive: true,
	}
	if errCreate := conn.Create(&user).Error; errCreate != nil {
		t.Fatalf("create user: %v", errCreate)
	}
	return user
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, errMarshal := json.Marshal(payload)
	if errMarshal != nil {
		t.Fatalf("marshal payload: %v", errMarshal)
	}
	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func decodeBody(t *testing.T, responseRecorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var decoded map[string]any
	if errDecode := json.Unmarshal(responseRecorder.Body.Bytes(), &decoded); errDecode != nil {
		t.Fatalf("decode response: %v", errDecode)
	}
	return decoded
}

func buildLoginRouter(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAuthHandler(svc)
	router.POST("/admin/login", handler.Login)
	router.POST("/admin/logout", handler.Logout)
	return router
}

func TestLoginReturnsOpaqueTokenWithFixedExpiry(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "admin", []string{"*"})
	createAccount(t, conn, "root@example.test", role.ID)

	before := time.Now()
	svc := auth.NewService(conn)
	router := buildLoginRouter(svc)
	responseRecorder := postJSON(t, router, "/admin/login", gin.H{"email": "root@example.test", "password": testPassword})
	if responseRecorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", responseRecorder.Code, responseRecorder.Body.String())
	}

	decoded := decodeBody(t, responseRecorder)
	token, _ := decoded["token"].(string)
	if len(token) != security.SessionTokenLength {
		t.Fatalf("expected %d-char token, got %d", security.SessionTokenLength, len(token))
	}
	expiresAt, _ := decoded["expires_at"].(float64)
	gotExpiry := time.Unix(int64(expiresAt), 0)
	wantExpiry := before.Add(auth.TokenTTL)
	if gotExpiry.Before(wantExpiry.Add(-time.Minute)) || gotExpiry.After(wantExpiry.Add(time.Minute)) {
		t.Fatalf("expected expiry near %v, got %v", wantExpiry, gotExpiry)
	}

	userPayload, _ := decoded["user"].(map[string]any)
	if userPayload == nil {
		t.Fatalf("expected user payload in response")
	}
	if userPayload["email"] != "root@example.test" {
		t.Fatalf("expected user email in payload, got %v", userPayload["email"])
	}
}

func TestLoginWrongPasswordAndUnknownEmailAreIndistinguishable(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "admin", []string{"*"})
	createAccount(t, conn, "root@example.test", role.ID)

	svc := auth.NewService(conn)
	router := buildLoginRouter(svc)

	wrongPassword := postJSON(t, router, "/admin/login", gin.H{"email": "root@example.test", "password": "not-it"})
	unknownEmail := postJSON(t, router, "/admin/login", gin.H{"email": "ghost@example.test", "password": testPassword})

	if wrongPassword.Code != http.StatusUnauthorized || unknownEmail.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for both, got %d and %d", wrongPassword.Code, unknownEmail.Code)
	}
	if wrongPassword.Body.String() != unknownEmail.Body.String() {
		t.Fatalf("expected identical error bodies, got %s vs %s", wrongPassword.Body.String(), unknownEmail.Body.String())
	}
}

func TestLoginAccountWithMissingRoleIsForbidden(t *testing.T) {
	conn := setupDB(t)
	createAccount(t, conn, "orphan@example.test", 999)

	svc := auth.NewService(conn)
	router := buildLoginRouter(svc)
	responseRecorder := postJSON(t, router, "/admin/login", gin.H{"email": "orphan@example.test", "password": testPassword})
	if responseRecorder.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", responseRecorder.Code)
	}
	decoded := decodeBody(t, responseRecorder)
	if decoded["message"] != "No role assigned" {
		t.Fatalf("expected no-role message, got %v", decoded["message"])
	}
}

func TestSecondLoginReplacesExistingSession(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "admin", []string{"*"})
	createAccount(t, conn, "root@example.test", role.ID)

	svc := auth.NewService(conn)
	router := buildLoginRouter(svc)

	first := decodeBody(t, postJSON(t, router, "/admin/login", gin.H{"email": "root@example.test", "password": testPassword}))
	second := decodeBody(t, postJSON(t, router, "/admin/login", gin.H{"email": "root@example.test", "password": testPassword}))
	if first["token"] == second["token"] {
		t.Fatalf("expected distinct tokens per login")
	}

	var count int64
	if errCount := conn.Model(&models.AdminSession{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count sessions: %v", errCount)
	}
	if count != 1 {
		t.Fatalf("expected a single active session, got %d", count)
	}
}

func TestLogoutWithUnknownTokenStillSucceeds(t *testing.T) {
	conn := setupDB(t)
	svc := auth.NewService(conn)
	router := buildLoginRouter(svc)

	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.Header.Set("X-ADMIN-TOKEN", "never-issued")
	router.ServeHTTP(responseRecorder, req)

	if responseRecorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", responseRecorder.Code)
	}
	decoded := decodeBody(t, responseRecorder)
	if decoded["success"] != true {
		t.Fatalf("expected success envelope, got %s", responseRecorder.Body.String())
	}
}
