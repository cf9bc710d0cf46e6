package db

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/rs/zerolog/log"
)

// DimensionColumns are nullable columns added after the first release.
var DimensionColumns = []string{"length", "heightDepth", "width"}

// Rand is the random source used for generated placeholder dimensions.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// SchemaScript returns the CREATE TABLE statements in the active dialect.
func (c *Conn) SchemaScript() string {
	q := c.Ident
	return fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS catalogs (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  description TEXT NOT NULL,
  %[1]s TEXT NOT NULL,
  %[2]s TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS artifacts (
  id TEXT PRIMARY KEY,
  %[3]s TEXT NOT NULL,
  %[4]s TEXT,
  name TEXT NOT NULL,
  barcode TEXT NOT NULL UNIQUE,
  details TEXT NOT NULL,
  length TEXT,
  %[5]s TEXT,
  width TEXT,
  %[6]s TEXT NOT NULL,
  %[7]s TEXT NOT NULL,
  %[8]s TEXT NOT NULL,
  %[9]s TEXT,
  video TEXT,
  %[1]s TEXT NOT NULL,
  %[2]s TEXT NOT NULL,
  FOREIGN KEY (%[3]s) REFERENCES catalogs(id)
);
`,
		q("creationDate"), q("lastModified"), q("catalogId"), q("subCatalogId"),
		q("heightDepth"), q("locationFound"), q("dateFound"), q("images2D"), q("image3D"))
}

// Migrate creates the tables, adds missing dimension columns and backfills
// placeholder dimensions. Only schema failures are returned; backfill
// failures are logged.
func Migrate(ctx context.Context, c *Conn) error {
	return MigrateWithRand(ctx, c, globalRand{})
}

// MigrateWithRand is Migrate with an explicit random source.
func MigrateWithRand(ctx context.Context, c *Conn, rnd Rand) error {
	if err := c.Exec(ctx, c.SchemaScript()); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err := c.ensureDimensionColumns(ctx); err != nil {
		return fmt.Errorf("add dimension columns: %w", err)
	}

	updated, err := BackfillDimensions(ctx, c, rnd)
	if err != nil {
		log.Warn().Err(err).Msg("dimension backfill failed (non-critical)")
		return nil
	}
	if updated > 0 {
		log.Info().Int("artifacts", updated).Msg("backfilled missing dimensions")
	}
	return nil
}

func (c *Conn) ensureDimensionColumns(ctx context.Context) error {
	migrator := c.db.WithContext(ctx).Migrator()
	for _, col := range DimensionColumns {
		if migrator.HasColumn("artifacts", col) {
			continue
		}
		stmt := fmt.Sprintf("ALTER TABLE artifacts ADD COLUMN %s TEXT", c.Ident(col))
		if err := c.Exec(ctx, stmt); err != nil {
			return err
		}
		log.Info().Str("column", col).Msg("added artifacts column")
	}
	return nil
}

type dimensionRow struct {
	ID          string  `gorm:"column:id"`
	Length      *string `gorm:"column:length"`
	HeightDepth *string `gorm:"column:heightDepth"`
	Width       *string `gorm:"column:width"`
}

// BackfillDimensions gives every artifact missing a dimension a generated
// "<5..20> cm" value for each missing field. Complete rows are left alone.
// It returns the number of rows rewritten.
func BackfillDimensions(ctx context.Context, c *Conn, rnd Rand) (int, error) {
	var rows []dimensionRow
	selectRows := c.Prepare(fmt.Sprintf("SELECT id, length, %s, width FROM artifacts", c.Ident("heightDepth")))
	if err := selectRows.All(ctx, &rows); err != nil {
		return 0, err
	}

	update := c.Prepare(fmt.Sprintf("UPDATE artifacts SET length = ?, %s = ?, width = ? WHERE id = ?", c.Ident("heightDepth")))
	updated := 0
	for _, row := range rows {
		length, lok := present(row.Length)
		height, hok := present(row.HeightDepth)
		width, wok := present(row.Width)
		if lok && hok && wok {
			continue
		}
		if !lok {
			length = RandomDimension(rnd)
		}
		if !hok {
			height = RandomDimension(rnd)
		}
		if !wok {
			width = RandomDimension(rnd)
		}
		if _, err := update.Run(ctx, length, height, width, row.ID); err != nil {
			return updated, fmt.Errorf("update artifact %s: %w", row.ID, err)
		}
		updated++
	}
	return updated, nil
}

// RandomDimension returns "<n> cm" with n in [5,20].
func RandomDimension(rnd Rand) string {
	return fmt.Sprintf("%d cm", rnd.IntN(16)+5)
}

func present(v *string) (string, bool) {
	if v == nil {
		return "", false
	}
	s := strings.TrimSpace(*v)
	return s, s != ""
}
