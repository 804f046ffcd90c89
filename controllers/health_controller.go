package controllers

import (
	"context"
	"net/http"
	"time"

	"fooddelivery/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/atomic"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthController answers liveness and readiness probes. The server flips
// ready on once routes are registered and off when shutdown begins.
type HealthController struct {
	store Pinger
	ready *atomic.Bool
}

func NewHealthController(store Pinger, ready *atomic.Bool) *HealthController {
	return &HealthController{store: store, ready: ready}
}

func (hc *HealthController) Root(c *gin.Context) {
	c.String(http.StatusOK, "server started!")
}

func (hc *HealthController) Livez(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (hc *HealthController) Readyz(c *gin.Context) {
	if !hc.ready.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := hc.store.Ping(ctx); err != nil {
		l := middleware.Logger(c)
		l.Warn().Err(err).Msg("readiness ping failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "store unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
