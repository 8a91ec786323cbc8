package shared

import (
	"context"

	"delivery-booking/internal/domain/delivery"
)

//go:generate mockgen -source=uow.go -destination=../../testutil/mock/sharedmock/uow.go -package=sharedmock

type UnitOfWork interface {
	// Within runs fn so that everything written through tx commits or fails together,
	// as far as the backing store can guarantee it.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads outside any transaction; used for advisory checks before Within.
	TimeSlots() TimeSlotReader
	Bookings() BookingReader
}

type Tx interface {
	TimeSlots() TimeSlotRepository
	Bookings() BookingRepository
}

type TimeSlotReader interface {
	// FindAvailable returns available slots for method ordered by start time, then ID.
	FindAvailable(ctx context.Context, method delivery.Method) ([]*delivery.TimeSlot, error)
	// FindByID returns an infra NOT_FOUND error when the slot does not exist.
	FindByID(ctx context.Context, id int64) (*delivery.TimeSlot, error)
}

type TimeSlotRepository interface {
	TimeSlotReader
	// TrySetUnavailable atomically flips availability true->false. It reports false when
	// the slot was already unavailable or does not exist.
	TrySetUnavailable(ctx context.Context, id int64) (bool, error)
}

type TimeSlotProvisioner interface {
	Provision(ctx context.Context, slot *delivery.TimeSlot) (*delivery.TimeSlot, error)
}

type BookingReader interface {
	FindByID(ctx context.Context, id int64) (*delivery.Booking, error)
}

type BookingRepository interface {
	// Save assigns the booking ID. The returned booking is the persisted one.
	Save(ctx context.Context, booking *delivery.Booking) (*delivery.Booking, error)
}
