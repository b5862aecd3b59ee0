package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/rentops/backend/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// HealthHandler reports service liveness and readiness
type HealthHandler struct {
	BaseHandler
	db      *persistence.Database
	appName string
	version string
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *persistence.Database, appName, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		appName: appName,
		version: version,
	}
}

// RegisterRoutes registers health endpoints
func (h *HealthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
	rg.GET("/ready", h.Ready)
}

// Health returns liveness information
func (h *HealthHandler) Health(c *gin.Context) {
	h.Success(c, gin.H{
		"status":  "ok",
		"service": h.appName,
		"version": h.version,
		"time":    time.Now().UTC(),
	})
}

// Ready checks that the database connection is usable
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unavailable",
			"reason": "database unreachable",
		})
		return
	}

	h.Success(c, gin.H{"status": "ready"})
}
