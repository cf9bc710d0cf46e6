package routes

import (
	"github.com/ARQAP/ARQAP-Catalog/src/controllers"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.Engine, service *services.UserService) {
	userController := controllers.NewUserController(service)

	router.POST("/api/login", userController.AuthenticateUser)
}
