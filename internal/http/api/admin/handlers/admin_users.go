package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
	"github.com/datheory/portfolio-api/internal/models"
	"github.com/datheory/portfolio-api/internal/security"
)

// minPasswordLength applies to created and updated admin passwords.
const minPasswordLength = 8

// AdminUserHandler manages admin account endpoints.
type AdminUserHandler struct {
	db *gorm.DB
}

// NewAdminUserHandler constructs an AdminUserHandler.
func NewAdminUserHandler(db *gorm.DB) *AdminUserHandler {
	return &AdminUserHandler{db: db}
}

// parseID reads a numeric path parameter.
func parseID(c *gin.Context) (uint64, bool) {
	id, errParse := strconv.ParseUint(strings.TrimSpace(c.Param("id")), 10, 64)
	if errParse != nil {
		response.BadRequest(c, "Invalid id")
		return 0, false
	}
	return id, true
}

// List returns all admin accounts with their roles.
func (h *AdminUserHandler) List(c *gin.Context) {
	var rows []models.AdminUser
	if errFind := h.db.WithContext(c.Request.Context()).Preload("Role").Order("id ASC").Find(&rows).Error; errFind != nil {
		log.Errorf("list admin users failed: %v", errFind)
		response.ServerError(c, "Failed to list admin users")
		return
	}
	response.OK(c, render.AdminUsers(rows))
}

// Get returns a single admin account.
func (h *AdminUserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.AdminUser
	if errFind := h.db.WithContext(c.Request.Context()).Preload("Role").First(&user, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Admin user not found")
			return
		}
		log.Errorf("get admin user failed: %v", errFind)
		response.ServerError(c, "Failed to load admin user")
		return
	}
	response.OK(c, render.AdminUser(&user))
}

// createAdminUserRequest defines the request body for account creation.
type createAdminUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	RoleID   uint64 `json:"role_id"`
	IsActive *bool  `json:"is_active"`
}

// Create creates a new admin account bound to an existing role.
func (h *AdminUserHandler) Create(c *gin.Context) {
	var body createAdminUserRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	fieldErrors := gin.H{}
	name := strings.TrimSpace(body.Name)
	email := strings.TrimSpace(body.Email)
	if name == "" {
		fieldErrors["name"] = "name is required"
	}
	if email == "" || !strings.Contains(email, "@") {
		fieldErrors["email"] = "a valid email is required"
	}
	if len(body.Password) < minPasswordLength {
		fieldErrors["password"] = "password must be at least 8 characters"
	}
	if body.RoleID == 0 {
		fieldErrors["role_id"] = "role_id is required"
	}
	if len(fieldErrors) > 0 {
		response.ValidationError(c, fieldErrors)
		return
	}

	var role models.AdminRole
	if errFind := h.db.WithContext(c.Request.Context()).First(&role, body.RoleID).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.ValidationError(c, gin.H{"role_id": "role does not exist"})
			return
		}
		log.Errorf("query role failed: %v", errFind)
		response.ServerError(c, "Failed to create admin user")
		return
	}

	var existing models.AdminUser
	if errCheck := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&existing).Error; errCheck == nil {
		response.ValidationError(c, gin.H{"email": "email already in use"})
		return
	} else if !errors.Is(errCheck, gorm.ErrRecordNotFound) {
		log.Errorf("check email failed: %v", errCheck)
		response.ServerError(c, "Failed to create admin user")
		return
	}

	hash, errHash := security.HashPassword(body.Password)
	if errHash != nil {
		log.Errorf("hash password failed: %v", errHash)
		response.ServerError(c, "Failed to create admin user")
		return
	}

	user := models.AdminUser{
		Name:     name,
		Email:    email,
		Password: hash,
		RoleID:   role.ID,
		IsActive: true,
	}
	if body.IsActive != nil {
		user.IsActive = *body.IsActive
	}
	if errCreate := h.db.WithContext(c.Request.Context()).Create(&user).Error; errCreate != nil {
		log.Errorf("create admin user failed: %v", errCreate)
		response.ServerError(c, "Failed to create admin user")
		return
	}
	user.Role = &role
	response.Created(c, render.AdminUser(&user), "Admin user created successfully")
}

// updateAdminUserRequest defines the request body for account updates.
// Pointer fields distinguish "absent" from zero values.
type updateAdminUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	RoleID   *uint64 `json:"role_id"`
	IsActive *bool   `json:"is_active"`
}

// Update modifies an admin account.
func (h *AdminUserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body updateAdminUserRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	updates := map[string]any{}
	if body.Name != nil {
		name := strings.TrimSpace(*body.Name)
		if name == "" {
			response.ValidationError(c, gin.H{"name": "name cannot be empty"})
			return
		}
		updates["name"] = name
	}
	if body.Email != nil {
		email := strings.TrimSpace(*body.Email)
		if email == "" || !strings.Contains(email, "@") {
			response.ValidationError(c, gin.H{"email": "a valid email is required"})
			return
		}
		var existing models.AdminUser
		errCheck := h.db.WithContext(c.Request.Context()).Where("email = ? AND id <> ?", email, id).First(&existing).Error
		if errCheck == nil {
			response.ValidationError(c, gin.H{"email": "email already in use"})
			return
		} else if !errors.Is(errCheck, gorm.ErrRecordNotFound) {
			log.Errorf("check email failed: %v", errCheck)
			response.ServerError(c, "Failed to update admin user")
			return
		}
		updates["email"] = email
	}
	if body.Password != nil && *body.Password != "" {
		if len(*body.Password) < minPasswordLength {
			response.ValidationError(c, gin.H{"password": "password must be at least 8 characters"})
			return
		}
		hash, errHash := security.HashPassword(*body.Password)
		if errHash != nil {
			log.Errorf("hash password failed: %v", errHash)
			response.ServerError(c, "Failed to update admin user")
			return
		}
		updates["password"] = hash
	}
	if body.RoleID != nil {
		var role models.AdminRole
		if errFind := h.db.WithContext(c.Request.Context()).First(&role, *body.RoleID).Error; errFind != nil {
			if errors.Is(errFind, gorm.ErrRecordNotFound) {
				response.ValidationError(c, gin.H{"role_id": "role does not exist"})
				return
			}
			log.Errorf("query role failed: %v", errFind)
			response.ServerError(c, "Failed to update admin user")
			return
		}
		updates["role_id"] = role.ID
	}
	if body.IsActive != nil {
		updates["is_active"] = *body.IsActive
	}

	if len(updates) > 0 {
		res := h.db.WithContext(c.Request.Context()).Model(&models.AdminUser{}).Where("id = ?", id).Updates(updates)
		if res.Error != nil {
			log.Errorf("update admin user failed: %v", res.Error)
			response.ServerError(c, "Failed to update admin user")
			return
		}
		if res.RowsAffected == 0 {
			response.NotFound(c, "Admin user not found")
			return
		}
	}

	var user models.AdminUser
	if errFind := h.db.WithContext(c.Request.Context()).Preload("Role").First(&user, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Admin user not found")
			return
		}
		log.Errorf("reload admin user failed: %v", errFind)
		response.ServerError(c, "Failed to update admin user")
		return
	}
	response.OKWithMessage(c, render.AdminUser(&user), "Admin user updated successfully")
}

// Delete removes an admin account. The protected primary admin is
// never deletable, regardless of the caller's permissions.
func (h *AdminUserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var user models.AdminUser
	if errFind := h.db.WithContext(c.Request.Context()).First(&user, id).Error; errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			response.NotFound(c, "Admin user not found")
			return
		}
		log.Errorf("query admin user failed: %v", errFind)
		response.ServerError(c, "Failed to delete admin user")
		return
	}
	if user.IsProtected {
		response.Forbidden(c, "Cannot delete the primary admin user")
		return
	}

	errTx := h.db.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if errSessions := tx.Where("admin_user_id = ?", user.ID).Delete(&models.AdminSession{}).Error; errSessions != nil {
			return errSessions
		}
		return tx.Delete(&models.AdminUser{}, user.ID).Error
	})
	if errTx != nil {
		log.Errorf("delete admin user failed: %v", errTx)
		response.ServerError(c, "Failed to delete admin user")
		return
	}
	response.Message(c, "Admin user deleted successfully")
}
