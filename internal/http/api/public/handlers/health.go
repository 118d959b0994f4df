package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// serviceVersion is reported by the health endpoint.
const serviceVersion = "1.0.0"

// HealthHandler reports service and database status.
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health returns liveness information including database connectivity.
func (h *HealthHandler) Health(c *gin.Context) {
	database := "connected"
	sqlDB, errDB := h.db.DB()
	if errDB != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		database = "disconnected"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "portfolio-api",
		"version":   serviceVersion,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"database":  database,
	})
}
