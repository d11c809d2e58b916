package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler serves the liveness endpoint.
type HealthHandler struct {
	environment string
}

// NewHealthHandler creates a HealthHandler reporting the given environment.
func NewHealthHandler(environment string) *HealthHandler {
	return &HealthHandler{environment: environment}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "UP",
		"timestamp":   time.Now().UTC().Format(time.RFC3339),
		"environment": h.environment,
	})
}
