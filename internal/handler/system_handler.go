package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler serves liveness and readiness probes
type SystemHandler struct {
	serviceName string
	db          Pinger
	log         zerolog.Logger
}

func NewSystemHandler(serviceName string, db Pinger, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{serviceName: serviceName, db: db, log: log}
}

// Status reports that the process is up without touching the database
func (h *SystemHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": h.serviceName})
}

// Health checks database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
}

// NotFound is the fallback for unmatched routes
func (h *SystemHandler) NotFound(c *gin.Context) {
	respondError(c, http.StatusNotFound, "Route not found")
}

func (h *SystemHandler) RegisterSystemRoutes(r gin.IRoutes) {
	r.GET("/status", h.Status)
	r.GET("/health", h.Health)
}
