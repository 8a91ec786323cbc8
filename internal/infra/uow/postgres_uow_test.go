//go:build unit

package uow

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx overrides only what runInTxWithOptions touches; other methods panic via the nil embed.
type fakeTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.commitErr != nil {
		return t.commitErr
	}
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.committed {
		return pgx.ErrTxClosed
	}
	t.rolledBack = true
	return nil
}

type fakePool struct {
	pgx.Tx // satisfies DBTX methods; never called in these tests
	begun  []*fakeTx
	next   func() *fakeTx
	begErr error
}

func (p *fakePool) Begin(ctx context.Context) (pgx.Tx, error) {
	return p.BeginTx(ctx, pgx.TxOptions{})
}

func (p *fakePool) BeginTx(context.Context, pgx.TxOptions) (pgx.Tx, error) {
	if p.begErr != nil {
		return nil, p.begErr
	}
	tx := &fakeTx{}
	if p.next != nil {
		tx = p.next()
	}
	p.begun = append(p.begun, tx)
	return tx, nil
}

func TestWithin(t *testing.T) {
	ctx := context.Background()

	t.Run("commits on success", func(t *testing.T) {
		pool := &fakePool{}
		u := NewPostgresUoW(pool)

		err := u.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			assert.NotNil(t, tx.TimeSlots())
			assert.NotNil(t, tx.Bookings())
			return nil
		})
		require.NoError(t, err)
		require.Len(t, pool.begun, 1)
		assert.True(t, pool.begun[0].committed)
	})

	t.Run("rolls back and returns fn error", func(t *testing.T) {
		pool := &fakePool{}
		u := NewPostgresUoW(pool)
		boom := errors.New("insert failed")

		err := u.Within(ctx, func(context.Context, shared.Tx) error { return boom })
		require.ErrorIs(t, err, boom)
		require.Len(t, pool.begun, 1)
		assert.True(t, pool.begun[0].rolledBack)
	})

	t.Run("retries serialization failures", func(t *testing.T) {
		pool := &fakePool{}
		u := NewPostgresUoW(pool)

		calls := 0
		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			calls++
			if calls == 1 {
				return &pgconn.PgError{Code: pgErrCodeSerializationFailure}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.Len(t, pool.begun, 2)
	})

	t.Run("marks commit failures", func(t *testing.T) {
		pool := &fakePool{next: func() *fakeTx { return &fakeTx{commitErr: errors.New("connection lost")} }}
		u := NewPostgresUoW(pool)

		err := u.Within(ctx, func(context.Context, shared.Tx) error { return nil })
		require.Error(t, err)
		assert.True(t, errs.Is(err, errTransactionCommit))
	})

	t.Run("begin failure", func(t *testing.T) {
		u := NewPostgresUoW(&fakePool{begErr: errors.New("pool closed")})

		err := u.Within(ctx, func(context.Context, shared.Tx) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.True(t, errs.Is(err, errTransactionBegin))
	})
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, isRetryableError(&pgconn.PgError{Code: pgErrCodeSerializationFailure}))
	assert.True(t, isRetryableError(errs.Wrap(&pgconn.PgError{Code: pgErrCodeDeadlockDetected}, "update")))
	assert.False(t, isRetryableError(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isRetryableError(errors.New("plain")))
}

func TestCalculateBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	for attempt := range 3 {
		got := calculateBackoff(attempt, base)
		floor := time.Duration(1<<attempt) * base
		assert.GreaterOrEqual(t, got, floor)
		assert.Less(t, got, floor+floor/5+time.Nanosecond)
	}
}
