package services

import (
	"context"
	"fmt"
	"io"

	"github.com/ARQAP/ARQAP-Catalog/src/models"
	excelize "github.com/xuri/excelize/v2"
)

const exportSheet = "Artifacts"

var exportHeader = []interface{}{
	"ID", "Barcode", "Name", "Details", "Length", "Height/Depth", "Width",
	"Location Found", "Date Found", "Sub-catalog", "Images", "Created", "Last Modified",
}

type ExportService struct {
	catalogs  *CatalogService
	artifacts *ArtifactService
}

func NewExportService(catalogs *CatalogService, artifacts *ArtifactService) *ExportService {
	return &ExportService{catalogs: catalogs, artifacts: artifacts}
}

// ExportCatalog writes an XLSX workbook with one row per artifact of the catalog.
func (s *ExportService) ExportCatalog(ctx context.Context, catalogID string, w io.Writer) error {
	if _, err := s.catalogs.GetCatalogByID(ctx, catalogID); err != nil {
		return err
	}
	artifacts, err := s.artifacts.GetArtifactsByCatalog(ctx, catalogID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeader); err != nil {
		return err
	}
	for i := range artifacts {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := exportRow(&artifacts[i])
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return fmt.Errorf("artifact %s: %w", artifacts[i].ID, err)
		}
	}
	return f.Write(w)
}

func exportRow(a *models.ArtifactModel) []interface{} {
	return []interface{}{
		a.ID,
		a.Barcode,
		a.Name,
		a.Details,
		optional(a.Length),
		optional(a.HeightDepth),
		optional(a.Width),
		a.LocationFound,
		a.DateFound,
		optional(a.SubCatalogID),
		len(a.Images()),
		a.CreationDate,
		a.LastModified,
	}
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
