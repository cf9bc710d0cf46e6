package dtos

import "github.com/ARQAP/ARQAP-Catalog/src/models"

// ArtifactResponse is an artifact as clients see it: images decoded and an
// always-empty comment list.
type ArtifactResponse struct {
	models.ArtifactModel
	Images2D []string         `json:"images2D"`
	Comments []models.Comment `json:"comments"`
}

func NewArtifactResponse(a *models.ArtifactModel) ArtifactResponse {
	return ArtifactResponse{
		ArtifactModel: *a,
		Images2D:      a.Images(),
		Comments:      []models.Comment{},
	}
}

func NewArtifactResponses(artifacts []models.ArtifactModel) []ArtifactResponse {
	out := make([]ArtifactResponse, 0, len(artifacts))
	for i := range artifacts {
		out = append(out, NewArtifactResponse(&artifacts[i]))
	}
	return out
}

// ArtifactUpdateRequest carries every mutable artifact field; updates replace the whole record.
type ArtifactUpdateRequest struct {
	CatalogID     string   `json:"catalogId" binding:"required"`
	SubCatalogID  *string  `json:"subCatalogId"`
	Name          string   `json:"name" binding:"required"`
	Barcode       string   `json:"barcode" binding:"required"`
	Details       *string  `json:"details" binding:"required"`
	Length        *string  `json:"length"`
	HeightDepth   *string  `json:"heightDepth"`
	Width         *string  `json:"width"`
	LocationFound *string  `json:"locationFound" binding:"required"`
	DateFound     *string  `json:"dateFound" binding:"required"`
	Images2D      []string `json:"images2D" binding:"required"`
	Image3D       *string  `json:"image3D"`
	Video         *string  `json:"video"`
	LastModified  *string  `json:"lastModified" binding:"required"`
}

type ArtifactCreateRequest struct {
	ID string `json:"id" binding:"required"`
	ArtifactUpdateRequest
	CreationDate *string `json:"creationDate" binding:"required"`
}

// Model builds the row to store for id.
func (r *ArtifactUpdateRequest) Model(id string) *models.ArtifactModel {
	a := &models.ArtifactModel{
		ID:            id,
		CatalogID:     r.CatalogID,
		SubCatalogID:  r.SubCatalogID,
		Name:          r.Name,
		Barcode:       r.Barcode,
		Details:       deref(r.Details),
		Length:        r.Length,
		HeightDepth:   r.HeightDepth,
		Width:         r.Width,
		LocationFound: deref(r.LocationFound),
		DateFound:     deref(r.DateFound),
		Image3D:       r.Image3D,
		Video:         r.Video,
		LastModified:  deref(r.LastModified),
	}
	a.SetImages(r.Images2D)
	return a
}

func (r *ArtifactCreateRequest) Model() *models.ArtifactModel {
	a := r.ArtifactUpdateRequest.Model(r.ID)
	a.CreationDate = deref(r.CreationDate)
	return a
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
