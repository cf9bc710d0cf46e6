package routes

import (
	"github.com/ARQAP/ARQAP-Catalog/src/controllers"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(router *gin.Engine, catalogs *services.CatalogService, artifacts *services.ArtifactService, exporter *services.ExportService) {
	controller := controllers.NewCatalogController(catalogs, artifacts, exporter)

	catalogGroup := router.Group("/api/catalogs")
	{
		catalogGroup.GET("", controller.GetCatalogs)
		catalogGroup.GET("/:id", controller.GetCatalog)
		catalogGroup.GET("/:id/artifacts", controller.GetCatalogArtifacts)
		catalogGroup.GET("/:id/export", controller.ExportCatalog)
		catalogGroup.POST("", controller.CreateCatalog)
		catalogGroup.PUT("/:id", controller.UpdateCatalog)
		catalogGroup.DELETE("/:id", controller.DeleteCatalog)
	}
}
