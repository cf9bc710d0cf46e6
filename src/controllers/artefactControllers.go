package controllers

import (
	"net/http"

	"github.com/ARQAP/ARQAP-Catalog/src/dtos"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

const artifactNotFound = "Artifact not found"

type ArtifactController struct {
	service *services.ArtifactService
}

func NewArtifactController(service *services.ArtifactService) *ArtifactController {
	return &ArtifactController{service: service}
}

func (c *ArtifactController) GetAllArtifacts(ctx *gin.Context) {
	artifacts, err := c.service.GetAllArtifacts(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewArtifactResponses(artifacts))
}

// GetArtifactByID looks the artifact up by id, then by barcode
func (c *ArtifactController) GetArtifactByID(ctx *gin.Context) {
	artifact, err := c.service.GetArtifactByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewArtifactResponse(artifact))
}

func (c *ArtifactController) GetArtifactByBarcode(ctx *gin.Context) {
	artifact, err := c.service.GetArtifactByBarcode(ctx.Request.Context(), ctx.Param("barcode"))
	if err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewArtifactResponse(artifact))
}

func (c *ArtifactController) CreateArtifact(ctx *gin.Context) {
	var req dtos.ArtifactCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	artifact, err := c.service.CreateArtifact(ctx.Request.Context(), req.Model())
	if err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, dtos.NewArtifactResponse(artifact))
}

// UpdateArtifact replaces every mutable field of the artifact
func (c *ArtifactController) UpdateArtifact(ctx *gin.Context) {
	var req dtos.ArtifactUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}

	id := ctx.Param("id")
	artifact, err := c.service.UpdateArtifact(ctx.Request.Context(), id, req.Model(id))
	if err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewArtifactResponse(artifact))
}

func (c *ArtifactController) DeleteArtifact(ctx *gin.Context) {
	if err := c.service.DeleteArtifact(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, artifactNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
