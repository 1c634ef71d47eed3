package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medreportz/internal/reference"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	table *reference.Table
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(table *reference.Table) *HealthHandler {
	return &HealthHandler{table: table}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.table == nil || h.table.Size() == 0 {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "reference table not loaded"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "reference_tests": h.table.Size()})
}
