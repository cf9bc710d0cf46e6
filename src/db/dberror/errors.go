// Package dberror classifies backend constraint violations so callers can
// turn them into specific messages without knowing which backend is active.
package dberror

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type Kind int

const (
	None Kind = iota
	Unique
	ForeignKey
	NotNull
	Other
)

func (k Kind) String() string {
	switch k {
	case Unique:
		return "unique"
	case ForeignKey:
		return "foreign key"
	case NotNull:
		return "not null"
	case Other:
		return "constraint"
	default:
		return "none"
	}
}

// Violation describes a constraint failure. Column is empty when the backend
// does not name it.
type Violation struct {
	Kind   Kind
	Column string
	Detail string
}

// Is reports whether v is a violation of kind k on column (any column when empty).
func (v Violation) Is(k Kind, column string) bool {
	return v.Kind == k && (column == "" || strings.EqualFold(v.Column, column))
}

// Classify inspects err for a PostgreSQL or SQLite constraint violation.
func Classify(err error) Violation {
	if err == nil {
		return Violation{}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr)
	}

	var sqErr sqlite3.Error
	if errors.As(err, &sqErr) {
		return classifySQLite(sqErr)
	}
	return Violation{}
}

func classifyPostgres(e *pgconn.PgError) Violation {
	v := Violation{Detail: e.Message}
	switch e.Code {
	case "23505":
		v.Kind = Unique
	case "23503":
		v.Kind = ForeignKey
	case "23502":
		v.Kind = NotNull
		v.Column = e.ColumnName
		return v
	default:
		if strings.HasPrefix(e.Code, "23") {
			v.Kind = Other
			return v
		}
		return Violation{}
	}
	if e.Detail != "" {
		v.Detail = e.Detail
	}
	// Detail reads `Key (barcode)=(B1) already exists.`
	if col, ok := keyColumn(e.Detail); ok {
		v.Column = col
	} else {
		v.Column = constraintColumn(e.ConstraintName, e.TableName)
	}
	return v
}

func keyColumn(detail string) (string, bool) {
	start := strings.Index(detail, "Key (")
	if start < 0 {
		return "", false
	}
	rest := detail[start+len("Key ("):]
	end := strings.Index(rest, ")=")
	if end <= 0 {
		return "", false
	}
	return strings.Trim(rest[:end], `"`), true
}

// constraintColumn recovers the column from default constraint names such as
// artifacts_barcode_key, artifacts_pkey or artifacts_catalogId_fkey.
func constraintColumn(name, table string) string {
	switch {
	case strings.HasSuffix(name, "_pkey"):
		return "id"
	case strings.HasSuffix(name, "_key"):
		name = strings.TrimSuffix(name, "_key")
	case strings.HasSuffix(name, "_fkey"):
		name = strings.TrimSuffix(name, "_fkey")
	default:
		return ""
	}
	return strings.TrimPrefix(name, table+"_")
}

func classifySQLite(e sqlite3.Error) Violation {
	if e.Code != sqlite3.ErrConstraint {
		return Violation{}
	}
	msg := e.Error()
	v := Violation{Detail: msg}
	switch e.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		v.Kind = Unique
	case sqlite3.ErrConstraintForeignKey:
		v.Kind = ForeignKey
	case sqlite3.ErrConstraintNotNull:
		v.Kind = NotNull
	default:
		v.Kind = Other
	}
	// Messages read `UNIQUE constraint failed: artifacts.barcode`.
	if i := strings.LastIndex(msg, "failed: "); i >= 0 {
		col := msg[i+len("failed: "):]
		if first, _, found := strings.Cut(col, ","); found {
			col = first
		}
		if dot := strings.LastIndex(col, "."); dot >= 0 {
			col = col[dot+1:]
		}
		v.Column = strings.TrimSpace(col)
	}
	return v
}
