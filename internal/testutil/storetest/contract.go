//go:build unit || e2e

// Package storetest holds the behaviour every store backend must share, run against
// memory in unit tests and against Postgres and Redis in e2e tests.
package storetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
	"delivery-booking/internal/pkg/clock"
	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/testutil/builder"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/commands"
	"delivery-booking/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Backend interface {
	shared.UnitOfWork
	Provisioner() shared.TimeSlotProvisioner
}

// Factory returns an empty backend; each subtest gets its own.
type Factory func(t *testing.T) Backend

const concurrentCallers = 32

func provision(t *testing.T, b Backend, sb *builder.TimeSlotBuilder) *delivery.TimeSlot {
	t.Helper()
	slot, err := sb.BuildNew()
	require.NoError(t, err)
	stored, err := b.Provisioner().Provision(context.Background(), slot)
	require.NoError(t, err)
	require.NotZero(t, stored.ID())
	return stored
}

func ids(slots []*delivery.TimeSlot) []int64 {
	out := make([]int64, len(slots))
	for i, s := range slots {
		out[i] = s.ID()
	}
	return out
}

func RunContract(t *testing.T, newBackend Factory) {
	ctx := context.Background()

	t.Run("provisioned slot round-trips", func(t *testing.T) {
		b := newBackend(t)
		stored := provision(t, b, builder.NewTimeSlotBuilder().WithMethod(delivery.MethodDrive))

		got, err := b.TimeSlots().FindByID(ctx, stored.ID())
		require.NoError(t, err)
		assert.Equal(t, stored.ID(), got.ID())
		assert.Equal(t, delivery.MethodDrive, got.Method())
		assert.True(t, got.Start().Equal(builder.BaseTime), "start %v", got.Start())
		assert.True(t, got.End().Equal(builder.BaseTime.Add(2*time.Hour)), "end %v", got.End())
		assert.True(t, got.IsAvailable())
	})

	t.Run("unknown slot is NOT_FOUND", func(t *testing.T) {
		b := newBackend(t)
		_, err := b.TimeSlots().FindByID(ctx, 424242)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("FindAvailable filters by method and orders by start then id", func(t *testing.T) {
		b := newBackend(t)
		late := provision(t, b, builder.NewTimeSlotBuilder().WithStartOffset(4*time.Hour))
		early := provision(t, b, builder.NewTimeSlotBuilder().WithStartOffset(0))
		sameStart := provision(t, b, builder.NewTimeSlotBuilder().WithStartOffset(0))
		provision(t, b, builder.NewTimeSlotBuilder().WithMethod(delivery.MethodDrive))

		got, err := b.TimeSlots().FindAvailable(ctx, delivery.MethodDelivery)
		require.NoError(t, err)
		assert.Equal(t, []int64{early.ID(), sameStart.ID(), late.ID()}, ids(got))

		none, err := b.TimeSlots().FindAvailable(ctx, delivery.MethodDeliveryASAP)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("TrySetUnavailable flips exactly once", func(t *testing.T) {
		b := newBackend(t)
		stored := provision(t, b, builder.NewTimeSlotBuilder())

		err := b.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.TimeSlots().TrySetUnavailable(ctx, stored.ID())
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = tx.TimeSlots().TrySetUnavailable(ctx, stored.ID())
			require.NoError(t, err)
			assert.False(t, ok)

			ok, err = tx.TimeSlots().TrySetUnavailable(ctx, 424242)
			require.NoError(t, err)
			assert.False(t, ok)
			return nil
		})
		require.NoError(t, err)

		got, err := b.TimeSlots().FindByID(ctx, stored.ID())
		require.NoError(t, err)
		assert.False(t, got.IsAvailable())

		open, err := b.TimeSlots().FindAvailable(ctx, delivery.MethodDelivery)
		require.NoError(t, err)
		assert.Empty(t, open)
	})

	t.Run("saved booking round-trips", func(t *testing.T) {
		b := newBackend(t)
		stored := provision(t, b, builder.NewTimeSlotBuilder())

		booking, err := delivery.NewBooking(delivery.MethodDelivery, stored.Reserved(), "John Doe", builder.BaseTime.Add(-time.Hour))
		require.NoError(t, err)

		var saved *delivery.Booking
		err = b.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			ok, err := tx.TimeSlots().TrySetUnavailable(ctx, stored.ID())
			if err != nil || !ok {
				return fmt.Errorf("reserve: ok=%v err=%v", ok, err)
			}
			saved, err = tx.Bookings().Save(ctx, booking)
			return err
		})
		require.NoError(t, err)
		require.NotZero(t, saved.ID())

		got, err := b.Bookings().FindByID(ctx, saved.ID())
		require.NoError(t, err)
		assert.Equal(t, saved.ID(), got.ID())
		assert.Equal(t, "John Doe", got.CustomerName())
		assert.Equal(t, delivery.MethodDelivery, got.Method())
		assert.Equal(t, delivery.StatusPending, got.Status())
		assert.Equal(t, stored.ID(), got.TimeSlotID())
		assert.False(t, got.TimeSlot().IsAvailable())
		assert.True(t, got.CreatedAt().Equal(builder.BaseTime.Add(-time.Hour)), "created at %v", got.CreatedAt())

		_, err = b.Bookings().FindByID(ctx, saved.ID()+1000)
		assert.True(t, infra.IsKind(err, infra.KindNotFound), "got %v", err)
	})

	t.Run("concurrent bookings for one slot have exactly one winner", func(t *testing.T) {
		b := newBackend(t)
		stored := provision(t, b, builder.NewTimeSlotBuilder())
		cmd := commands.NewBookingCommands(b, clock.NewMockClock(builder.BaseTime.Add(-time.Hour)), commands.BookingOptions{})

		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			winners []*delivery.Booking
			losers  []error
			start   = make(chan struct{})
		)
		for i := 0; i < concurrentCallers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				booking, err := cmd.BookDelivery(ctx, commands.BookDeliveryParams{
					CustomerName: fmt.Sprintf("Customer %02d", i),
					Method:       delivery.MethodDelivery,
					TimeSlotID:   stored.ID(),
				})
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					losers = append(losers, err)
					return
				}
				winners = append(winners, booking)
			}(i)
		}
		close(start)
		wg.Wait()

		require.Len(t, winners, 1, "losers: %v", losers)
		assert.Len(t, losers, concurrentCallers-1)
		for _, err := range losers {
			assert.True(t, errs.Is(err, usecase.ErrSlotAlreadyBooked), "unexpected error: %v", err)
		}

		got, err := b.Bookings().FindByID(ctx, winners[0].ID())
		require.NoError(t, err)
		assert.Equal(t, winners[0].CustomerName(), got.CustomerName())
	})
}
