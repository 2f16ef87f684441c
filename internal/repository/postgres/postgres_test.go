package postgres

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "github.com/baharkarakas/estate-api/internal/repository"
)

func TestMapErr(t *testing.T) {
	other := errors.New("connection reset")
	fk := &pgconn.PgError{Code: "23503"}

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", pgx.ErrNoRows, repo.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), repo.ErrNotFound},
		{"unique violation", &pgconn.PgError{Code: "23505"}, repo.ErrDuplicate},
		{"wrapped unique violation", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), repo.ErrDuplicate},
		{"invalid text representation", &pgconn.PgError{Code: "22P02"}, repo.ErrNotFound},
		{"other pg error passes through", fk, fk},
		{"other error passes through", other, other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapErr(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

// stubRow fills Scan destinations from vals in order.
type stubRow struct {
	vals []any
	err  error
}

func (r stubRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.vals) {
		return fmt.Errorf("scan: %d destinations, %d values", len(dest), len(r.vals))
	}
	for i, d := range dest {
		reflect.ValueOf(d).Elem().Set(reflect.ValueOf(r.vals[i]))
	}
	return nil
}

func TestScanProperty(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	p, err := scanProperty(stubRow{vals: []any{
		"p1", "Sea view flat", "two rooms", 1500.0, "Izmir", "u1", created, updated,
		"Alice", "alice@example.com",
	}})
	require.NoError(t, err)

	assert.Equal(t, "p1", p.ID)
	assert.Equal(t, "Sea view flat", p.Title)
	assert.Equal(t, "two rooms", p.Description)
	assert.Equal(t, 1500.0, p.Price)
	assert.Equal(t, "Izmir", p.Location)
	assert.Equal(t, "u1", p.OwnerID)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, updated, p.UpdatedAt)
	require.NotNil(t, p.Owner)
	assert.Equal(t, "u1", p.Owner.ID)
	assert.Equal(t, "Alice", p.Owner.Name)
	assert.Equal(t, "alice@example.com", p.Owner.Email)
}

func TestScanProperty_NoRows(t *testing.T) {
	p, err := scanProperty(stubRow{err: pgx.ErrNoRows})
	require.Error(t, err)
	assert.Nil(t, p.Owner)
	assert.ErrorIs(t, mapErr(err), repo.ErrNotFound)
}
