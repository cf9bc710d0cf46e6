package controllers

import (
	"errors"
	"net/http"

	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

// AuthenticateUser handles login and returns a signed role token
func (c *UserController) AuthenticateUser(ctx *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(ctx, &req) {
		return
	}

	resp, err := c.service.AuthenticateUser(req.Username, req.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		respondError(ctx, err, "User not found")
		return
	}
	ctx.JSON(http.StatusOK, resp)
}
