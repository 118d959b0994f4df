package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/datheory/portfolio-api/internal/auth"
	"github.com/datheory/portfolio-api/internal/http/api/render"
	"github.com/datheory/portfolio-api/internal/http/response"
)

// tokenHeader mirrors the middleware's token header name. Logout
// accepts the token directly because it is reachable without the
// middleware.
const tokenHeader = "X-ADMIN-TOKEN"

// AuthHandler handles admin login, logout and identity endpoints.
type AuthHandler struct {
	svc *auth.Service
}

// NewAuthHandler constructs an AuthHandler.
func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// loginRequest defines the request body for admin login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	email := strings.TrimSpace(body.Email)
	if email == "" || body.Password == "" {
		response.BadRequest(c, "Email and password are required")
		return
	}

	user, session, errLogin := h.svc.Login(c.Request.Context(), email, body.Password, c.ClientIP())
	if errLogin != nil {
		switch {
		case errors.Is(errLogin, auth.ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
		case errors.Is(errLogin, auth.ErrNoRoleAssigned):
			response.Error(c, http.StatusForbidden, "No role assigned")
		default:
			log.Errorf("admin login failed: %v", errLogin)
			response.ServerError(c, "Login failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"token":      session.Token,
		"user":       render.AdminAccount(user),
		"expires_at": session.ExpiresAt.Unix(),
	})
}

// Logout revokes the caller's session. It always reports success, even
// when the token is absent or unknown.
func (h *AuthHandler) Logout(c *gin.Context) {
	token := c.GetHeader(tokenHeader)
	if errLogout := h.svc.Logout(c.Request.Context(), token); errLogout != nil {
		log.Errorf("admin logout failed: %v", errLogout)
		response.ServerError(c, "Logout failed")
		return
	}
	response.Message(c, "Logged out successfully")
}

// Me returns the authenticated account summary.
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := currentAdmin(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "Unauthorized")
		return
	}
	if user.Role == nil {
		response.Error(c, http.StatusForbidden, "No role assigned")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    render.AdminAccount(user),
	})
}
