package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/db"
	"github.com/ARQAP/ARQAP-Catalog/src/db/dberror"
	"github.com/ARQAP/ARQAP-Catalog/src/dtos"
	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecentWindow is how far back GetStats counts recent additions.
const RecentWindow = 7 * 24 * time.Hour

type ArtifactService struct {
	conn *db.Conn
	db   *gorm.DB
	now  func() time.Time
}

func NewArtifactService(conn *db.Conn) *ArtifactService {
	return &ArtifactService{conn: conn, db: conn.Gorm(), now: time.Now}
}

func (s *ArtifactService) GetAllArtifacts(ctx context.Context) ([]models.ArtifactModel, error) {
	artifacts := []models.ArtifactModel{}
	if err := s.db.WithContext(ctx).Clauses(byCreation).Find(&artifacts).Error; err != nil {
		return nil, err
	}
	return artifacts, nil
}

// GetArtifactsByCatalog lists the artifacts of one catalog ordered by name.
func (s *ArtifactService) GetArtifactsByCatalog(ctx context.Context, catalogID string) ([]models.ArtifactModel, error) {
	artifacts := []models.ArtifactModel{}
	err := s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "catalogId"}, Value: catalogID}).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}}).
		Find(&artifacts).Error
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}

// GetArtifactByID looks the artifact up by id and, failing that, by barcode,
// since scanned codes may carry either value.
func (s *ArtifactService) GetArtifactByID(ctx context.Context, id string) (*models.ArtifactModel, error) {
	artifact, err := s.findOne(ctx, clause.Eq{Column: clause.Column{Name: "id"}, Value: id})
	if !errors.Is(err, ErrNotFound) {
		return artifact, err
	}
	return s.findOne(ctx, clause.Eq{Column: clause.Column{Name: "barcode"}, Value: id})
}

// GetArtifactByBarcode matches the barcode exactly, then case-insensitively.
func (s *ArtifactService) GetArtifactByBarcode(ctx context.Context, barcode string) (*models.ArtifactModel, error) {
	artifact, err := s.findOne(ctx, clause.Eq{Column: clause.Column{Name: "barcode"}, Value: barcode})
	if !errors.Is(err, ErrNotFound) {
		return artifact, err
	}
	return s.findOne(ctx, clause.Expr{SQL: "LOWER(barcode) = LOWER(?)", Vars: []interface{}{barcode}})
}

func (s *ArtifactService) findOne(ctx context.Context, cond clause.Expression) (*models.ArtifactModel, error) {
	var artifact models.ArtifactModel
	err := s.db.WithContext(ctx).Where(cond).Take(&artifact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &artifact, nil
}

// CreateArtifact inserts the row directly and relies on the store's
// constraints; violations come back as a ConflictError naming the value.
func (s *ArtifactService) CreateArtifact(ctx context.Context, artifact *models.ArtifactModel) (*models.ArtifactModel, error) {
	if err := s.db.WithContext(ctx).Create(artifact).Error; err != nil {
		return nil, s.translateArtifactError(ctx, err, artifact, true)
	}
	return artifact, nil
}

// UpdateArtifact replaces every mutable field of the artifact with id.
func (s *ArtifactService) UpdateArtifact(ctx context.Context, id string, artifact *models.ArtifactModel) (*models.ArtifactModel, error) {
	result := s.db.WithContext(ctx).Model(&models.ArtifactModel{}).Where("id = ?", id).Updates(map[string]interface{}{
		"catalogId":     artifact.CatalogID,
		"subCatalogId":  artifact.SubCatalogID,
		"name":          artifact.Name,
		"barcode":       artifact.Barcode,
		"details":       artifact.Details,
		"length":        artifact.Length,
		"heightDepth":   artifact.HeightDepth,
		"width":         artifact.Width,
		"locationFound": artifact.LocationFound,
		"dateFound":     artifact.DateFound,
		"images2D":      artifact.Images2DJSON,
		"image3D":       artifact.Image3D,
		"video":         artifact.Video,
		"lastModified":  artifact.LastModified,
	})
	if result.Error != nil {
		return nil, s.translateArtifactError(ctx, result.Error, artifact, false)
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.findOne(ctx, clause.Eq{Column: clause.Column{Name: "id"}, Value: id})
}

func (s *ArtifactService) DeleteArtifact(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.ArtifactModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountArtifacts returns the number of stored artifacts.
func (s *ArtifactService) CountArtifacts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.ArtifactModel{}).Count(&count).Error
	return count, err
}

type countRow struct {
	Count int64 `gorm:"column:count"`
}

// GetStats counts catalogs, artifacts and artifacts created in the last seven days.
// Dates are stored as ISO-8601 text, so the cutoff is compared as text.
func (s *ArtifactService) GetStats(ctx context.Context) (*dtos.StatsDTO, error) {
	cutoff := models.Timestamp(s.now().Add(-RecentWindow))
	queries := []struct {
		dst   *int64
		query string
		args  []any
	}{
		{query: "SELECT COUNT(*) AS count FROM catalogs"},
		{query: "SELECT COUNT(*) AS count FROM artifacts"},
		{query: fmt.Sprintf("SELECT COUNT(*) AS count FROM artifacts WHERE %s > ?", s.conn.Ident("creationDate")), args: []any{cutoff}},
	}
	stats := &dtos.StatsDTO{}
	queries[0].dst = &stats.TotalCatalogs
	queries[1].dst = &stats.TotalArtifacts
	queries[2].dst = &stats.RecentAdditions

	for _, q := range queries {
		var row countRow
		if _, err := s.conn.Prepare(q.query).Get(ctx, &row, q.args...); err != nil {
			return nil, err
		}
		*q.dst = row.Count
	}
	return stats, nil
}

// translateArtifactError turns a constraint violation into a message naming the
// offending value. A write can break several constraints while the store reports
// only one, so the cause is resolved in a fixed order: missing catalog, taken
// barcode, then taken id (creates only).
func (s *ArtifactService) translateArtifactError(ctx context.Context, err error, artifact *models.ArtifactModel, creating bool) error {
	v := dberror.Classify(err)
	if v.Kind == dberror.None {
		return err
	}

	if exists, lookupErr := s.exists(ctx, &models.CatalogModel{}, clause.Eq{Column: clause.Column{Name: "id"}, Value: artifact.CatalogID}); lookupErr == nil && !exists {
		return conflictf("Catalog with id %q does not exist", artifact.CatalogID)
	}
	barcodeTaken := clause.And(
		clause.Eq{Column: clause.Column{Name: "barcode"}, Value: artifact.Barcode},
		clause.Neq{Column: clause.Column{Name: "id"}, Value: artifact.ID},
	)
	if exists, lookupErr := s.exists(ctx, &models.ArtifactModel{}, barcodeTaken); lookupErr == nil && exists {
		return conflictf("Artifact with barcode %q already exists", artifact.Barcode)
	}
	if creating {
		if exists, lookupErr := s.exists(ctx, &models.ArtifactModel{}, clause.Eq{Column: clause.Column{Name: "id"}, Value: artifact.ID}); lookupErr == nil && exists {
			return conflictf("Artifact with id %q already exists", artifact.ID)
		}
	}

	switch {
	case v.Kind == dberror.ForeignKey:
		return conflictf("Catalog with id %q does not exist", artifact.CatalogID)
	case v.Is(dberror.Unique, "barcode"):
		return conflictf("Artifact with barcode %q already exists", artifact.Barcode)
	case v.Is(dberror.Unique, "id"):
		return conflictf("Artifact with id %q already exists", artifact.ID)
	default:
		return &ConflictError{Message: "Database constraint violation", Detail: v.Detail}
	}
}

func (s *ArtifactService) exists(ctx context.Context, model interface{}, cond clause.Expression) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(model).Where(cond).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
