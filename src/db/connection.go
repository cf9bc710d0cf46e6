package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Dialect names the physical store behind a Conn.
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Options selects and configures the backend.
type Options struct {
	// DatabaseURL selects PostgreSQL when it is a postgres:// or postgresql:// URL.
	DatabaseURL string
	// SQLitePath is used when DatabaseURL does not select PostgreSQL.
	SQLitePath string
	Logger     gormlogger.Interface
}

// IsPostgresURL reports whether url selects the networked backend.
func IsPostgresURL(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Connect opens the backend chosen by opts. It is called once per process and
// the returned Conn is shared by every component.
func Connect(opts Options) (*Conn, error) {
	cfg := &gorm.Config{Logger: opts.Logger}
	if cfg.Logger == nil {
		cfg.Logger = gormlogger.Discard
	}

	if IsPostgresURL(opts.DatabaseURL) {
		dsn := opts.DatabaseURL
		if strings.HasPrefix(dsn, "postgresql://") {
			dsn = "postgres://" + strings.TrimPrefix(dsn, "postgresql://")
		}
		gdb, err := gorm.Open(postgres.Open(dsn), cfg)
		if err != nil {
			return nil, fmt.Errorf("connect postgres: %w", err)
		}
		log.Info().Str("backend", string(Postgres)).Msg("database connected")
		return New(gdb), nil
	}

	gdb, err := gorm.Open(sqlite.Open(SQLiteDSN(opts.SQLitePath)), cfg)
	if err != nil {
		return nil, fmt.Errorf("connect sqlite: %w", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	// SQLite has a single writer; one connection serializes every statement.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	log.Info().Str("backend", string(SQLite)).Str("path", opts.SQLitePath).Msg("database connected")
	return New(gdb), nil
}

// SQLiteDSN adds the pragmas the schema relies on to a SQLite path or URI.
func SQLiteDSN(path string) string {
	if path == "" {
		path = "data.sqlite"
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=1&_journal_mode=WAL&_busy_timeout=5000"
}

// New wraps an already opened gorm handle.
func New(gdb *gorm.DB) *Conn {
	dialect := SQLite
	if gdb.Dialector.Name() == "postgres" {
		dialect = Postgres
	}
	return &Conn{db: gdb, dialect: dialect}
}

// Ping checks that the backend is reachable.
func (c *Conn) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying pool.
func (c *Conn) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
