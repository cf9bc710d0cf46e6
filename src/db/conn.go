// Package db is the storage adapter of the catalog: one query contract over an
// embedded SQLite file or a PostgreSQL server, plus idempotent schema setup.
//
// Query templates use positional ? placeholders. The active dialect renders
// them ($1..$n on PostgreSQL) and quotes identifiers through Ident, so the same
// template runs unchanged on both backends.
package db

import (
	"context"
	"strings"

	"gorm.io/gorm"
)

// Conn is the process-wide database handle.
type Conn struct {
	db      *gorm.DB
	dialect Dialect
}

// Result describes the effect of a write.
type Result struct {
	RowsAffected int64
}

// Statement is a parameterized query bound to a Conn. It may be run any
// number of times with different arguments.
type Statement struct {
	conn  *Conn
	query string
}

// Dialect reports which backend is active.
func (c *Conn) Dialect() Dialect {
	return c.dialect
}

// Gorm exposes the shared gorm handle for model-level access.
func (c *Conn) Gorm() *gorm.DB {
	return c.db
}

// Ident quotes name as an identifier of the active dialect.
func (c *Conn) Ident(name string) string {
	var b strings.Builder
	c.db.Dialector.QuoteTo(&b, name)
	return b.String()
}

// Prepare binds a query template to the connection.
func (c *Conn) Prepare(query string) *Statement {
	return &Statement{conn: c, query: query}
}

// Run executes a write and reports the affected rows.
func (s *Statement) Run(ctx context.Context, args ...any) (Result, error) {
	tx := s.conn.db.WithContext(ctx).Exec(s.query, args...)
	if tx.Error != nil {
		return Result{}, tx.Error
	}
	return Result{RowsAffected: tx.RowsAffected}, nil
}

// Get scans the first row into dest. It reports false when no row matched.
func (s *Statement) Get(ctx context.Context, dest any, args ...any) (bool, error) {
	tx := s.conn.db.WithContext(ctx).Raw(s.query, args...).Scan(dest)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// All scans every row into dest, which must point to a slice.
func (s *Statement) All(ctx context.Context, dest any, args ...any) error {
	return s.conn.db.WithContext(ctx).Raw(s.query, args...).Scan(dest).Error
}

// Exec runs a batch of ;-separated statements. PostgreSQL receives them one
// by one and "already exists" failures are skipped; SQLite runs the batch as is.
func (c *Conn) Exec(ctx context.Context, script string) error {
	if c.dialect != Postgres {
		return c.db.WithContext(ctx).Exec(script).Error
	}
	for _, stmt := range SplitStatements(script) {
		if err := c.db.WithContext(ctx).Exec(stmt).Error; err != nil {
			if strings.Contains(err.Error(), "already exists") {
				continue
			}
			return err
		}
	}
	return nil
}

// SplitStatements splits a script on ; and drops empty statements.
func SplitStatements(script string) []string {
	var out []string
	for _, s := range strings.Split(script, ";") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
