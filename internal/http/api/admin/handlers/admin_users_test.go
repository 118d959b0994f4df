package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/models"
)

func buildUserRouter(conn *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	handler := NewAdminUserHandler(conn)
	router.GET("/admin-users", handler.List)
	router.GET("/admin-users/:id", handler.Get)
	router.POST("/admin-users", handler.Create)
	router.PUT("/admin-users/:id", handler.Update)
	router.DELETE("/admin-users/:id", handler.Delete)
	return router
}

func doRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	responseRecorder := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	router.ServeHTTP(responseRecorder, req)
	return responseRecorder
}

func TestDeleteProtectedAdminIsForbidden(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "admin", []string{"*"})
	user := createAccount(t, conn, "root@example.test", role.ID)
	if errUpdate := conn.Model(&user).Update("is_protected", true).Error; errUpdate != nil {
		t.Fatalf("mark protected: %v", errUpdate)
	}

	router := buildUserRouter(conn)
	responseRecorder := doRequest(router, http.MethodDelete, fmt.Sprintf("/admin-users/%d", user.ID))
	if responseRecorder.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", responseRecorder.Code)
	}

	var count int64
	if errCount := conn.Model(&models.AdminUser{}).Count(&count).Error; errCount != nil {
		t.Fatalf("count users: %v", errCount)
	}
	if count != 1 {
		t.Fatalf("expected the protected user to survive, count=%d", count)
	}
}

func TestDeleteAdminRemovesSessions(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "editor", []string{"projects.*"})
	user := createAccount(t, conn, "editor@example.test", role.ID)
	session := models.AdminSession{
		Token:       "token-editor",
		AdminUserID: user.ID,
		ExpiresAt:   time.Now().Add(time.Hour),
	}
	if errCreate := conn.Create(&session).Error; errCreate != nil {
		t.Fatalf("create session: %v", errCreate)
	}

	router := buildUserRouter(conn)
	responseRecorder := doRequest(router, http.MethodDelete, fmt.Sprintf("/admin-users/%d", user.ID))
	if responseRecorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", responseRecorder.Code, responseRecorder.Body.String())
	}

	var sessions int64
	if errCount := conn.Model(&models.AdminSession{}).Count(&sessions).Error; errCount != nil {
		t.Fatalf("count sessions: %v", errCount)
	}
	if sessions != 0 {
		t.Fatalf("expected sessions to be removed with the account, got %d", sessions)
	}
}

func TestDeleteMissingAdminIsNotFound(t *testing.T) {
	conn := setupDB(t)
	router := buildUserRouter(conn)

	responseRecorder := doRequest(router, http.MethodDelete, "/admin-users/42")
	if responseRecorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", responseRecorder.Code)
	}
}

func TestCreateAdminValidatesInput(t *testing.T) {
	conn := setupDB(t)
	router := buildUserRouter(conn)

	responseRecorder := postJSON(t, router, "/admin-users", gin.H{
		"name":     "",
		"email":    "not-an-email",
		"password": "short",
	})
	if responseRecorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", responseRecorder.Code)
	}

	decoded := decodeBody(t, responseRecorder)
	fieldErrors, _ := decoded["errors"].(map[string]any)
	for _, field := range []string{"name", "email", "password", "role_id"} {
		if _, ok := fieldErrors[field]; !ok {
			t.Fatalf("expected validation error for %s, got %v", field, fieldErrors)
		}
	}
}

func TestCreateAdminRejectsDuplicateEmail(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "admin", []string{"*"})
	createAccount(t, conn, "root@example.test", role.ID)
	router := buildUserRouter(conn)

	responseRecorder := postJSON(t, router, "/admin-users", gin.H{
		"name":     "Second Admin",
		"email":    "root@example.test",
		"password": "long-enough-password",
		"role_id":  role.ID,
	})
	if responseRecorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", responseRecorder.Code)
	}
}

func TestCreateAndGetAdmin(t *testing.T) {
	conn := setupDB(t)
	role := createRole(t, conn, "viewer", []string{"dashboard.view"})
	router := buildUserRouter(conn)

	created := postJSON(t, router, "/admin-users", gin.H{
		"name":     "New Viewer",
		"email":    "viewer@example.test",
		"password": "long-enough-password",
		"role_id":  role.ID,
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", created.Code, created.Body.String())
	}
	decoded := decodeBody(t, created)
	data, _ := decoded["data"].(map[string]any)
	if data["email"] != "viewer@example.test" {
		t.Fatalf("expected created email in payload, got %v", data["email"])
	}

	id := uint64(data["id"].(float64))
	fetched := doRequest(router, http.MethodGet, fmt.Sprintf("/admin-users/%d", id))
	if fetched.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", fetched.Code)
	}
	fetchedBody := decodeBody(t, fetched)
	fetchedData, _ := fetchedBody["data"].(map[string]any)
	roleData, _ := fetchedData["role"].(map[string]any)
	if roleData["name"] != "viewer" {
		t.Fatalf("expected preloaded role, got %v", fetchedData["role"])
	}
}
