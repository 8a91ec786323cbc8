package converter

import (
	"fmt"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

type TimeSlotRow struct {
	ID          int64
	Method      string
	StartTime   pgtype.Timestamptz
	EndTime     pgtype.Timestamptz
	IsAvailable bool
}

// ScanTargets lists the fields in slot column order.
func (r *TimeSlotRow) ScanTargets() []any {
	return []any{&r.ID, &r.Method, &r.StartTime, &r.EndTime, &r.IsAvailable}
}

type BookingRow struct {
	ID           int64
	Method       string
	CustomerName string
	Status       string
	CreatedAt    pgtype.Timestamptz
	Slot         TimeSlotRow
}

func (r *BookingRow) ScanTargets() []any {
	return append([]any{&r.ID, &r.Method, &r.CustomerName, &r.Status, &r.CreatedAt}, r.Slot.ScanTargets()...)
}

func TimeSlotFromRow(row TimeSlotRow) (*delivery.TimeSlot, error) {
	method, err := delivery.ParseMethod(row.Method)
	if err != nil {
		return nil, fmt.Errorf("time slot %d: %w", row.ID, err)
	}
	return delivery.RestoreTimeSlot(
		row.ID,
		method,
		pgconv.TimeFromPgtype(row.StartTime),
		pgconv.TimeFromPgtype(row.EndTime),
		row.IsAvailable,
	), nil
}

func BookingFromRow(row BookingRow) (*delivery.Booking, error) {
	slot, err := TimeSlotFromRow(row.Slot)
	if err != nil {
		return nil, err
	}
	method, err := delivery.ParseMethod(row.Method)
	if err != nil {
		return nil, fmt.Errorf("booking %d: %w", row.ID, err)
	}
	status := delivery.Status(row.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("booking %d: unknown status %q", row.ID, row.Status)
	}
	return delivery.RestoreBooking(row.ID, method, slot, row.CustomerName, status, pgconv.TimeFromPgtype(row.CreatedAt)), nil
}
