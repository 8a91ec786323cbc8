package repository

import (
	"delivery-booking/internal/domain/delivery"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
)

const (
	dialectPostgres = "postgres"

	tableTimeSlots = "time_slots"
	tableBookings  = "bookings"

	colID          = "id"
	colMethod      = "delivery_method"
	colStartTime   = "start_time"
	colEndTime     = "end_time"
	colIsAvailable = "is_available"
	colTimeSlotID  = "time_slot_id"
	colCustomer    = "customer_name"
	colStatus      = "status"
	colCreatedAt   = "created_at"

	aliasBooking = "b"
	aliasSlot    = "s"
)

var dialect = goqu.Dialect(dialectPostgres)

func slotColumns() []any {
	return []any{colID, colMethod, colStartTime, colEndTime, colIsAvailable}
}

func selectAvailableSlotsSQL(method delivery.Method) (string, []any, error) {
	return dialect.From(tableTimeSlots).Prepared(true).
		Select(slotColumns()...).
		Where(
			goqu.C(colMethod).Eq(method.String()),
			goqu.C(colIsAvailable).IsTrue(),
		).
		Order(goqu.C(colStartTime).Asc(), goqu.C(colID).Asc()).
		ToSQL()
}

func selectSlotByIDSQL(id int64) (string, []any, error) {
	return dialect.From(tableTimeSlots).Prepared(true).
		Select(slotColumns()...).
		Where(goqu.C(colID).Eq(id)).
		ToSQL()
}

// reserveSlotSQL is the compare-and-set: it only matches while the row is still available.
func reserveSlotSQL(id int64) (string, []any, error) {
	return dialect.Update(tableTimeSlots).Prepared(true).
		Set(goqu.Record{colIsAvailable: false}).
		Where(
			goqu.C(colID).Eq(id),
			goqu.C(colIsAvailable).IsTrue(),
		).
		ToSQL()
}

func insertSlotSQL(slot *delivery.TimeSlot) (string, []any, error) {
	return dialect.Insert(tableTimeSlots).Prepared(true).
		Rows(goqu.Record{
			colMethod:      slot.Method().String(),
			colStartTime:   slot.Start(),
			colEndTime:     slot.End(),
			colIsAvailable: slot.IsAvailable(),
		}).
		Returning(colID).
		ToSQL()
}

func insertBookingSQL(b *delivery.Booking) (string, []any, error) {
	return dialect.Insert(tableBookings).Prepared(true).
		Rows(goqu.Record{
			colMethod:     b.Method().String(),
			colTimeSlotID: b.TimeSlotID(),
			colCustomer:   b.CustomerName(),
			colStatus:     b.Status().String(),
			colCreatedAt:  b.CreatedAt(),
		}).
		Returning(colID).
		ToSQL()
}

func selectBookingByIDSQL(id int64) (string, []any, error) {
	b := func(col string) any { return goqu.T(aliasBooking).Col(col) }
	s := func(col string) any { return goqu.T(aliasSlot).Col(col) }

	return dialect.From(goqu.T(tableBookings).As(aliasBooking)).Prepared(true).
		Join(
			goqu.T(tableTimeSlots).As(aliasSlot),
			goqu.On(goqu.T(aliasSlot).Col(colID).Eq(goqu.T(aliasBooking).Col(colTimeSlotID))),
		).
		Select(
			b(colID), b(colMethod), b(colCustomer), b(colStatus), b(colCreatedAt),
			s(colID), s(colMethod), s(colStartTime), s(colEndTime), s(colIsAvailable),
		).
		Where(goqu.T(aliasBooking).Col(colID).Eq(id)).
		ToSQL()
}
