//go:build unit

package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
	"delivery-booking/internal/infra/repository"
	"delivery-booking/internal/testutil/builder"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDBTX struct {
	mock.Mock
}

func (m *MockDBTX) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgconn.CommandTag), called.Error(1)
}

func (m *MockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	called := m.Called(ctx, sql, args)
	rows, _ := called.Get(0).(pgx.Rows)
	return rows, called.Error(1)
}

func (m *MockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	called := m.Called(ctx, sql, args)
	return called.Get(0).(pgx.Row)
}

// fakeRow copies values into the scan destinations in order.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	if len(dest) != len(r.values) {
		return errors.New("scan arity mismatch")
	}
	for i, v := range r.values {
		switch d := dest[i].(type) {
		case *int64:
			*d = v.(int64)
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case *pgtype.Timestamptz:
			*d = pgtype.Timestamptz{Time: v.(time.Time), Valid: true}
		default:
			return errors.New("unsupported scan destination")
		}
	}
	return nil
}

func slotValues(id int64, method string, available bool) []any {
	return []any{id, method, builder.BaseTime, builder.BaseTime.Add(time.Hour), available}
}

func TestTimeSlotRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name       string
		row        fakeRow
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: fakeRow{values: slotValues(4, "DRIVE", true)}},
		{name: "not found", row: fakeRow{err: pgx.ErrNoRows}, expectKind: infra.KindNotFound},
		{name: "driver failure", row: fakeRow{err: errors.New("conn closed")}, expectKind: infra.KindDBFailure},
		{name: "unknown method in row", row: fakeRow{values: slotValues(4, "ZEPPELIN", true)}, expectKind: infra.KindDecodeFailed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{int64(4)}).Return(tc.row)

			slot, err := repository.NewTimeSlotRepository(dbtx).FindByID(ctx, 4)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(4), slot.ID())
			assert.Equal(t, delivery.MethodDrive, slot.Method())
			assert.Equal(t, time.Hour, slot.Duration())
			dbtx.AssertExpectations(t)
		})
	}
}

func TestTimeSlotRepository_TrySetUnavailable(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name      string
		tag       string
		execErr   error
		expectOK  bool
		expectErr bool
	}{
		{name: "row updated", tag: "UPDATE 1", expectOK: true},
		{name: "already unavailable or missing", tag: "UPDATE 0", expectOK: false},
		{name: "exec failure", execErr: errors.New("deadlock"), expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).
				Return(pgconn.NewCommandTag(tc.tag), tc.execErr)

			ok, err := repository.NewTimeSlotRepository(dbtx).TrySetUnavailable(ctx, 9)
			if tc.expectErr {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, infra.KindDBFailure))
				assert.False(t, ok)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectOK, ok)
		})
	}
}

func TestBookingRepository_Save(t *testing.T) {
	ctx := context.Background()
	booking, err := builder.NewBookingBuilder().BuildNew()
	require.NoError(t, err)

	testCases := []struct {
		name       string
		row        fakeRow
		expectKind infra.RepositoryErrorKind
	}{
		{name: "success", row: fakeRow{values: []any{int64(11)}}},
		{
			name:       "slot already has a booking",
			row:        fakeRow{err: &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}},
			expectKind: infra.KindDuplicateKey,
		},
		{name: "driver failure", row: fakeRow{err: errors.New("broken pipe")}, expectKind: infra.KindDBFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dbtx := new(MockDBTX)
			dbtx.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(tc.row)

			saved, err := repository.NewBookingRepository(dbtx).Save(ctx, booking)
			if tc.expectKind != "" {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(11), saved.ID())
			assert.Equal(t, booking.CustomerName(), saved.CustomerName())
		})
	}
}

func TestBookingRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the slot", func(t *testing.T) {
		values := append([]any{int64(2), "DELIVERY", "Jane", "Pending", builder.BaseTime}, slotValues(8, "DELIVERY_TODAY", false)...)
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", ctx, mock.AnythingOfType("string"), []any{int64(2)}).Return(fakeRow{values: values})

		got, err := repository.NewBookingRepository(dbtx).FindByID(ctx, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID())
		assert.Equal(t, delivery.MethodDelivery, got.Method())
		assert.Equal(t, delivery.StatusPending, got.Status())
		assert.Equal(t, int64(8), got.TimeSlotID())
		assert.Equal(t, delivery.MethodDeliveryToday, got.TimeSlot().Method())
		assert.False(t, got.TimeSlot().IsAvailable())
	})

	t.Run("not found", func(t *testing.T) {
		dbtx := new(MockDBTX)
		dbtx.On("QueryRow", ctx, mock.AnythingOfType("string"), mock.Anything).Return(fakeRow{err: pgx.ErrNoRows})

		_, err := repository.NewBookingRepository(dbtx).FindByID(ctx, 2)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}
