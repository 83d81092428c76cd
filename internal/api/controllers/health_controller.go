package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthCheck reports whether the backing store is reachable.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	check HealthCheck
}

func NewHealthController(check HealthCheck) *HealthController {
	return &HealthController{check: check}
}

func (h *HealthController) Health(c *gin.Context) {
	dbStatus := "ok"
	if h.check == nil {
		dbStatus = "not initialized"
	} else if err := h.check(c.Request.Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   "Raahi API",
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
