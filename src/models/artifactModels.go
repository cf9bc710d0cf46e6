package models

import "encoding/json"

// ArtifactModel is one row of the artifacts table. Images2DJSON holds the
// JSON-encoded list of image data URIs.
type ArtifactModel struct {
	ID            string  `json:"id" gorm:"column:id;primaryKey"`
	CatalogID     string  `json:"catalogId" gorm:"column:catalogId;not null"`
	SubCatalogID  *string `json:"subCatalogId" gorm:"column:subCatalogId"`
	Name          string  `json:"name" gorm:"column:name;not null"`
	Barcode       string  `json:"barcode" gorm:"column:barcode;not null;unique"`
	Details       string  `json:"details" gorm:"column:details;not null"`
	Length        *string `json:"length" gorm:"column:length"`
	HeightDepth   *string `json:"heightDepth" gorm:"column:heightDepth"`
	Width         *string `json:"width" gorm:"column:width"`
	LocationFound string  `json:"locationFound" gorm:"column:locationFound;not null"`
	DateFound     string  `json:"dateFound" gorm:"column:dateFound;not null"`
	Images2DJSON  string  `json:"-" gorm:"column:images2D;not null"`
	Image3D       *string `json:"image3D" gorm:"column:image3D"`
	Video         *string `json:"video" gorm:"column:video"`
	CreationDate  string  `json:"creationDate" gorm:"column:creationDate;not null"`
	LastModified  string  `json:"lastModified" gorm:"column:lastModified;not null"`
}

func (ArtifactModel) TableName() string {
	return "artifacts"
}

// Images decodes the stored image list. A null or malformed column reads as empty.
func (a *ArtifactModel) Images() []string {
	images := []string{}
	if a.Images2DJSON == "" {
		return images
	}
	if err := json.Unmarshal([]byte(a.Images2DJSON), &images); err != nil || images == nil {
		return []string{}
	}
	return images
}

// SetImages encodes images into the stored column, keeping their order.
func (a *ArtifactModel) SetImages(images []string) {
	if images == nil {
		images = []string{}
	}
	b, _ := json.Marshal(images)
	a.Images2DJSON = string(b)
}

// Comment is part of the artifact shape exposed to clients; comments are not persisted.
type Comment struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Author string `json:"author"`
	Date   string `json:"date"`
}
