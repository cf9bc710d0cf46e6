package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Version is reported by the API info endpoint.
var Version = "1.0.0"

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemController struct {
	artifacts *services.ArtifactService
	db        Pinger
	backend   string
}

func NewSystemController(artifacts *services.ArtifactService, db Pinger, backend string) *SystemController {
	return &SystemController{artifacts: artifacts, db: db, backend: backend}
}

func (c *SystemController) Info(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message": "Archaeology Catalog API",
		"version": Version,
		"status":  "running",
		"endpoints": gin.H{
			"login":     "/api/login",
			"catalogs":  "/api/catalogs",
			"artifacts": "/api/artifacts",
			"stats":     "/api/stats",
			"health":    "/healthz",
		},
	})
}

func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()
	if err := c.db.Ping(pingCtx); err != nil {
		log.Warn().Err(err).Msg("health check: database unreachable")
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "database": c.backend})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "database": c.backend})
}

func (c *SystemController) GetStats(ctx *gin.Context) {
	stats, err := c.artifacts.GetStats(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, "Stats not available")
		return
	}
	ctx.JSON(http.StatusOK, stats)
}
