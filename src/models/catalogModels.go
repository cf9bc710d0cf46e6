package models

import "time"

type CatalogModel struct {
	ID           string `json:"id" gorm:"column:id;primaryKey"`
	Name         string `json:"name" gorm:"column:name;not null"`
	Description  string `json:"description" gorm:"column:description;not null"`
	CreationDate string `json:"creationDate" gorm:"column:creationDate;not null"`
	LastModified string `json:"lastModified" gorm:"column:lastModified;not null"`
}

func (CatalogModel) TableName() string {
	return "catalogs"
}

// Timestamp formats t the way the catalog stores dates: ISO-8601 in UTC with milliseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
