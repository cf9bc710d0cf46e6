// Package seed fills an empty store with a sample catalog and artifacts.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ARQAP/ARQAP-Catalog/src/models"
	"github.com/ARQAP/ARQAP-Catalog/src/services"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultCatalogName        = "Historical Artifacts Collection"
	defaultCatalogDescription = "A collection of archaeological artifacts from human history"
	barcodeAlphabet           = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Options configures a seeding run. Fetcher is optional; without it every
// artifact gets an SVG placeholder.
type Options struct {
	Fetcher ImageFetcher
	Now     func() time.Time
	Rand    *rand.Rand
}

// Result reports what a run did.
type Result struct {
	Skipped   bool
	CatalogID string
	Created   int
	Failed    int
}

// Run seeds the store when it holds no artifacts. A failed artifact insert is
// logged and skipped.
func Run(ctx context.Context, catalogs *services.CatalogService, artifacts *services.ArtifactService, opts Options) (*Result, error) {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	artifactCount, err := artifacts.CountArtifacts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count artifacts: %w", err)
	}
	if artifactCount > 0 {
		all, err := catalogs.GetAllCatalogs(ctx)
		if err != nil {
			return nil, fmt.Errorf("list catalogs: %w", err)
		}
		log.Info().Int("catalogs", len(all)).Int64("artifacts", artifactCount).Msg("database already has data, skipping seed")
		return &Result{Skipped: true}, nil
	}

	log.Info().Msg("database is empty, seeding")
	catalog, err := defaultCatalog(ctx, catalogs, opts.Now)
	if err != nil {
		return nil, err
	}

	res := &Result{CatalogID: catalog.ID}
	for i, s := range samples {
		barcode := Barcode(opts.Now(), opts.Rand, i+1)
		artifact := s.model(catalog.ID, barcode, models.Timestamp(opts.Now()))
		artifact.SetImages([]string{sampleImage(ctx, opts.Fetcher, s.Name, i)})

		if _, err := artifacts.CreateArtifact(ctx, artifact); err != nil {
			log.Error().Err(err).Str("name", s.Name).Msg("seed artifact failed")
			res.Failed++
			continue
		}
		log.Debug().Str("name", s.Name).Str("barcode", barcode).Msg("seed artifact created")
		res.Created++
	}

	log.Info().Str("catalog", catalog.Name).Int("created", res.Created).Int("failed", res.Failed).Msg("seed complete")
	return res, nil
}

// RunInBackground runs the seed and only logs errors, so a broken seed never
// stops the server.
func RunInBackground(ctx context.Context, catalogs *services.CatalogService, artifacts *services.ArtifactService, opts Options) {
	go func() {
		if _, err := Run(ctx, catalogs, artifacts, opts); err != nil {
			log.Error().Err(err).Msg("auto-seed failed")
		}
	}()
}

func defaultCatalog(ctx context.Context, catalogs *services.CatalogService, now func() time.Time) (*models.CatalogModel, error) {
	existing, err := catalogs.FirstCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("find catalog: %w", err)
	}
	if existing != nil {
		log.Info().Str("catalog", existing.Name).Msg("seeding into existing catalog")
		return existing, nil
	}

	ts := models.Timestamp(now())
	catalog, err := catalogs.CreateCatalog(ctx, &models.CatalogModel{
		ID:           uuid.NewString(),
		Name:         defaultCatalogName,
		Description:  defaultCatalogDescription,
		CreationDate: ts,
		LastModified: ts,
	})
	if err != nil {
		return nil, fmt.Errorf("create catalog: %w", err)
	}
	log.Info().Str("catalog", catalog.Name).Msg("created catalog")
	return catalog, nil
}

func sampleImage(ctx context.Context, fetcher ImageFetcher, name string, index int) string {
	if fetcher != nil {
		img, err := fetcher.Fetch(ctx, index+1)
		if err == nil {
			return img
		}
		log.Warn().Err(err).Str("name", name).Msg("image fetch failed, using placeholder")
	}
	return PlaceholderImage(name, index)
}

// Barcode builds "A" + the last 8 digits of the unix millisecond clock + 4
// random upper-case alphanumerics + the zero-padded index.
func Barcode(now time.Time, rnd *rand.Rand, index int) string {
	ms := fmt.Sprintf("%08d", now.UnixMilli())
	ms = ms[len(ms)-8:]

	var b strings.Builder
	b.WriteString("A")
	b.WriteString(ms)
	for i := 0; i < 4; i++ {
		b.WriteByte(barcodeAlphabet[rnd.IntN(len(barcodeAlphabet))])
	}
	fmt.Fprintf(&b, "%04d", index)
	return b.String()
}

func (s sample) model(catalogID, barcode, ts string) *models.ArtifactModel {
	return &models.ArtifactModel{
		ID:            uuid.NewString(),
		CatalogID:     catalogID,
		Name:          s.Name,
		Barcode:       barcode,
		Details:       s.Details,
		Length:        optional(s.Length),
		HeightDepth:   optional(s.HeightDepth),
		Width:         optional(s.Width),
		LocationFound: s.LocationFound,
		DateFound:     s.DateFound,
		CreationDate:  ts,
		LastModified:  ts,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
