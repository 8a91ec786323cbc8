package redisstore

import (
	"context"

	"delivery-booking/internal/usecase/shared"
)

// UoW passes writes straight to Redis. The reserve script is atomic on its own; there is
// no rollback, so a failed Save after a successful reserve leaves the slot unavailable.
type UoW struct {
	stores *Stores
}

func NewUoW(stores *Stores) *UoW {
	return &UoW{stores: stores}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, redisTx{stores: u.stores})
}

func (u *UoW) TimeSlots() shared.TimeSlotReader { return u.stores.Slots }
func (u *UoW) Bookings() shared.BookingReader   { return u.stores.Bookings }

func (u *UoW) Provisioner() shared.TimeSlotProvisioner { return u.stores.Slots }

type redisTx struct {
	stores *Stores
}

func (t redisTx) TimeSlots() shared.TimeSlotRepository { return t.stores.Slots }
func (t redisTx) Bookings() shared.BookingRepository   { return t.stores.Bookings }
