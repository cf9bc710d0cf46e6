package dberror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassify_Postgres(t *testing.T) {
	tests := []struct {
		name   string
		err    *pgconn.PgError
		kind   Kind
		column string
	}{
		{
			name:   "duplicate barcode from detail",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "artifacts_barcode_key", TableName: "artifacts", Detail: "Key (barcode)=(B1) already exists."},
			kind:   Unique,
			column: "barcode",
		},
		{
			name:   "duplicate primary key without detail",
			err:    &pgconn.PgError{Code: "23505", ConstraintName: "artifacts_pkey", TableName: "artifacts"},
			kind:   Unique,
			column: "id",
		},
		{
			name:   "missing catalog",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "artifacts_catalogId_fkey", TableName: "artifacts", Detail: `Key ("catalogId")=(c9) is not present in table "catalogs".`},
			kind:   ForeignKey,
			column: "catalogId",
		},
		{
			name:   "foreign key from constraint name",
			err:    &pgconn.PgError{Code: "23503", ConstraintName: "artifacts_catalogId_fkey", TableName: "artifacts"},
			kind:   ForeignKey,
			column: "catalogId",
		},
		{
			name:   "not null",
			err:    &pgconn.PgError{Code: "23502", ColumnName: "name"},
			kind:   NotNull,
			column: "name",
		},
		{
			name: "check violation",
			err:  &pgconn.PgError{Code: "23514"},
			kind: Other,
		},
		{
			name: "syntax error is not a violation",
			err:  &pgconn.PgError{Code: "42601"},
			kind: None,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Classify(fmt.Errorf("insert: %w", tt.err))
			assert.Equal(t, tt.kind, v.Kind)
			assert.Equal(t, tt.column, v.Column)
		})
	}
}

func TestClassify_Plain(t *testing.T) {
	assert.Equal(t, None, Classify(nil).Kind)
	assert.Equal(t, None, Classify(errors.New("connection refused")).Kind)
}

func TestViolationIs(t *testing.T) {
	v := Violation{Kind: Unique, Column: "Barcode"}
	assert.True(t, v.Is(Unique, "barcode"))
	assert.True(t, v.Is(Unique, ""))
	assert.False(t, v.Is(Unique, "id"))
	assert.False(t, v.Is(ForeignKey, ""))
}
