package dtos

import "github.com/ARQAP/ARQAP-Catalog/src/models"

type CatalogCreateRequest struct {
	ID           string  `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	CreationDate string  `json:"creationDate" binding:"required"`
	LastModified string  `json:"lastModified" binding:"required"`
}

func (r *CatalogCreateRequest) Model() *models.CatalogModel {
	return &models.CatalogModel{
		ID:           r.ID,
		Name:         r.Name,
		Description:  deref(r.Description),
		CreationDate: r.CreationDate,
		LastModified: r.LastModified,
	}
}

type CatalogUpdateRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  *string `json:"description"`
	LastModified string  `json:"lastModified" binding:"required"`
}

// StatsDTO summarizes the catalog contents.
type StatsDTO struct {
	TotalCatalogs   int64 `json:"totalCatalogs"`
	TotalArtifacts  int64 `json:"totalArtifacts"`
	RecentAdditions int64 `json:"recentAdditions"`
}
