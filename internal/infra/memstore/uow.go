package memstore

import (
	"context"

	"delivery-booking/internal/usecase/shared"
)

// UoW runs fn directly against the in-memory stores. There is no rollback: a slot
// reserved before a failing Save stays reserved.
type UoW struct {
	slots    *TimeSlotStore
	bookings *BookingStore
}

func NewUoW(slots *TimeSlotStore, bookings *BookingStore) *UoW {
	return &UoW{slots: slots, bookings: bookings}
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, memTx{u: u})
}

func (u *UoW) TimeSlots() shared.TimeSlotReader { return u.slots }
func (u *UoW) Bookings() shared.BookingReader   { return u.bookings }

func (u *UoW) Provisioner() shared.TimeSlotProvisioner { return u.slots }

type memTx struct {
	u *UoW
}

func (t memTx) TimeSlots() shared.TimeSlotRepository { return t.u.slots }
func (t memTx) Bookings() shared.BookingRepository   { return t.u.bookings }
