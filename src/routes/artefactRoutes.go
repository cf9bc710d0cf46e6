package routes

import (
	"github.com/ARQAP/ARQAP-Catalog/src/controllers"
	"github.com/ARQAP/ARQAP-Catalog/src/middleware"
	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

func SetupArtifactRoutes(router *gin.Engine, service *services.ArtifactService) {
	controller := controllers.NewArtifactController(service)

	// Public routes
	artifactGroup := router.Group("/api/artifacts")
	{
		artifactGroup.GET("", controller.GetAllArtifacts)
		artifactGroup.GET("/by-barcode/:barcode", controller.GetArtifactByBarcode)
		artifactGroup.GET("/:id", controller.GetArtifactByID)
	}

	// Editor routes; the role check runs before the body is read
	editor := router.Group("/api/artifacts")
	editor.Use(middleware.RequireCapability(models.CapEditArtifacts))
	{
		editor.POST("", controller.CreateArtifact)
		editor.PUT("/:id", controller.UpdateArtifact)
		editor.DELETE("/:id", controller.DeleteArtifact)
	}
}
