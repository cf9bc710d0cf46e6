package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/ARQAP/ARQAP-Catalog/src/dtos"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/gin-gonic/gin"
)

const (
	catalogNotFound = "Catalog not found"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type CatalogController struct {
	service   *services.CatalogService
	artifacts *services.ArtifactService
	exporter  *services.ExportService
}

func NewCatalogController(service *services.CatalogService, artifacts *services.ArtifactService, exporter *services.ExportService) *CatalogController {
	return &CatalogController{service: service, artifacts: artifacts, exporter: exporter}
}

// GetCatalogs handles GET requests to retrieve all catalogs
func (c *CatalogController) GetCatalogs(ctx *gin.Context) {
	catalogs, err := c.service.GetAllCatalogs(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.JSON(http.StatusOK, catalogs)
}

// GetCatalog handles GET requests for a single catalog
func (c *CatalogController) GetCatalog(ctx *gin.Context) {
	catalog, err := c.service.GetCatalogByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.JSON(http.StatusOK, catalog)
}

// GetCatalogArtifacts lists the artifacts filed under a catalog
func (c *CatalogController) GetCatalogArtifacts(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.service.GetCatalogByID(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	artifacts, err := c.artifacts.GetArtifactsByCatalog(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.JSON(http.StatusOK, dtos.NewArtifactResponses(artifacts))
}

// ExportCatalog sends the catalog's artifacts as an XLSX workbook
func (c *CatalogController) ExportCatalog(ctx *gin.Context) {
	id := ctx.Param("id")
	var buf bytes.Buffer
	if err := c.exporter.ExportCatalog(ctx.Request.Context(), id, &buf); err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="catalog-%s.xlsx"`, id))
	ctx.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// CreateCatalog handles POST requests to create a new catalog
func (c *CatalogController) CreateCatalog(ctx *gin.Context) {
	var req dtos.CatalogCreateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	catalog, err := c.service.CreateCatalog(ctx.Request.Context(), req.Model())
	if err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.JSON(http.StatusCreated, catalog)
}

// UpdateCatalog handles PUT requests to update an existing catalog
func (c *CatalogController) UpdateCatalog(ctx *gin.Context) {
	var req dtos.CatalogUpdateRequest
	if !bindJSON(ctx, &req) {
		return
	}
	description := ""
	if req.Description != nil {
		description = *req.Description
	}
	catalog, err := c.service.UpdateCatalog(ctx.Request.Context(), ctx.Param("id"), req.Name, description, req.LastModified)
	if err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.JSON(http.StatusOK, catalog)
}

// DeleteCatalog handles DELETE requests to remove a catalog
func (c *CatalogController) DeleteCatalog(ctx *gin.Context) {
	if err := c.service.DeleteCatalog(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err, catalogNotFound)
		return
	}
	ctx.Status(http.StatusNoContent)
}
