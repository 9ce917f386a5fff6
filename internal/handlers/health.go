package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles service health checks
type HealthHandler struct{}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status string `json:"status"`
}

// GetHealth godoc
// @Summary Health check
// @Description Returns service liveness
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
