//go:build unit

package pgconv_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"delivery-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestTimeFromPgtype(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	in := time.Date(2025, 6, 2, 18, 0, 0, 0, tokyo)

	got := pgconv.TimeFromPgtype(pgtype.Timestamptz{Time: in, Valid: true})
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, got.Equal(in))

	assert.True(t, pgconv.TimeFromPgtype(pgtype.Timestamptz{}).IsZero())
}

func TestErrorClassifiers(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}

	assert.True(t, pgconv.IsUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, pgconv.IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, pgconv.IsUniqueViolation(errors.New("plain")))

	assert.True(t, pgconv.IsNoRows(fmt.Errorf("scan: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(dup))
}
