package routes

import (
	"github.com/ARQAP/ARQAP-Catalog/src/controllers"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

func SetupSystemRoutes(router *gin.Engine, artifacts *services.ArtifactService, db controllers.Pinger, backend string) {
	controller := controllers.NewSystemController(artifacts, db, backend)

	router.GET("/", controller.Info)
	router.GET("/healthz", controller.Health)
	router.GET("/api/stats", controller.GetStats)
}
