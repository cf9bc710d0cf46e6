package services

import (
	"context"
	"errors"

	"github.com/ARQAP/ARQAP-Catalog/src/db"
	"github.com/ARQAP/ARQAP-Catalog/src/db/dberror"
	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CatalogService struct {
	conn *db.Conn
	db   *gorm.DB
}

// NewCatalogService creates a new instance of CatalogService
func NewCatalogService(conn *db.Conn) *CatalogService {
	return &CatalogService{conn: conn, db: conn.Gorm()}
}

var byCreation = clause.OrderBy{Columns: []clause.OrderByColumn{
	{Column: clause.Column{Name: "creationDate"}},
	{Column: clause.Column{Name: "id"}},
}}

// GetAllCatalogs retrieves every catalog, oldest first
func (s *CatalogService) GetAllCatalogs(ctx context.Context) ([]models.CatalogModel, error) {
	catalogs := []models.CatalogModel{}
	if err := s.db.WithContext(ctx).Clauses(byCreation).Find(&catalogs).Error; err != nil {
		return nil, err
	}
	return catalogs, nil
}

// GetCatalogByID retrieves a catalog or ErrNotFound
func (s *CatalogService) GetCatalogByID(ctx context.Context, id string) (*models.CatalogModel, error) {
	var catalog models.CatalogModel
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&catalog).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &catalog, nil
}

// FirstCatalog returns the first stored catalog, or nil when there is none
func (s *CatalogService) FirstCatalog(ctx context.Context) (*models.CatalogModel, error) {
	var catalogs []models.CatalogModel
	if err := s.db.WithContext(ctx).Clauses(byCreation).Limit(1).Find(&catalogs).Error; err != nil {
		return nil, err
	}
	if len(catalogs) == 0 {
		return nil, nil
	}
	return &catalogs[0], nil
}

// CreateCatalog inserts a new catalog
func (s *CatalogService) CreateCatalog(ctx context.Context, catalog *models.CatalogModel) (*models.CatalogModel, error) {
	if err := s.db.WithContext(ctx).Create(catalog).Error; err != nil {
		v := dberror.Classify(err)
		if v.Is(dberror.Unique, "id") {
			return nil, conflictf("Catalog with id %q already exists", catalog.ID)
		}
		if v.Kind != dberror.None {
			return nil, &ConflictError{Message: "Database constraint violation", Detail: v.Detail}
		}
		return nil, err
	}
	return catalog, nil
}

// UpdateCatalog replaces name, description and lastModified of a catalog
func (s *CatalogService) UpdateCatalog(ctx context.Context, id, name, description, lastModified string) (*models.CatalogModel, error) {
	result := s.db.WithContext(ctx).Model(&models.CatalogModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":         name,
		"description":  description,
		"lastModified": lastModified,
	})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetCatalogByID(ctx, id)
}

// DeleteCatalog removes a catalog that no artifact references
func (s *CatalogService) DeleteCatalog(ctx context.Context, id string) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.ArtifactModel{}).Where(clause.Eq{Column: clause.Column{Name: "catalogId"}, Value: id}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &CatalogInUseError{CatalogID: id, Artifacts: count}
	}

	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.CatalogModel{})
	if result.Error != nil {
		if dberror.Classify(result.Error).Kind == dberror.ForeignKey {
			return &CatalogInUseError{CatalogID: id}
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
