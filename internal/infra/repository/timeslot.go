package repository

import (
	"context"
	"fmt"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
	"delivery-booking/internal/infra/db"
	"delivery-booking/internal/infra/repository/converter"
	"delivery-booking/internal/pkg/pgconv"
)

type TimeSlotRepository struct {
	db db.DBTX
}

func NewTimeSlotRepository(db db.DBTX) *TimeSlotRepository {
	return &TimeSlotRepository{db: db}
}

func (r *TimeSlotRepository) FindAvailable(ctx context.Context, method delivery.Method) ([]*delivery.TimeSlot, error) {
	query, args, err := selectAvailableSlotsSQL(method)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build available slots query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query available slots", err)
	}
	defer rows.Close()

	slots := make([]*delivery.TimeSlot, 0)
	for rows.Next() {
		var row converter.TimeSlotRow
		if err := rows.Scan(row.ScanTargets()...); err != nil {
			return nil, infra.WrapRepoErr("failed to scan time slot", err)
		}
		slot, err := converter.TimeSlotFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to decode time slot", err, infra.KindDecodeFailed)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate time slots", err)
	}

	return slots, nil
}

func (r *TimeSlotRepository) FindByID(ctx context.Context, id int64) (*delivery.TimeSlot, error) {
	query, args, err := selectSlotByIDSQL(id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build time slot query", err)
	}

	var row converter.TimeSlotRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound(fmt.Sprintf("time slot %d not found", id))
		}
		return nil, infra.WrapRepoErr("failed to find time slot", err)
	}

	slot, err := converter.TimeSlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode time slot", err, infra.KindDecodeFailed)
	}
	return slot, nil
}

// TrySetUnavailable relies on the row lock taken by the conditional UPDATE: a concurrent
// caller blocks until the winner commits, then re-evaluates is_available and matches nothing.
func (r *TimeSlotRepository) TrySetUnavailable(ctx context.Context, id int64) (bool, error) {
	query, args, err := reserveSlotSQL(id)
	if err != nil {
		return false, infra.WrapRepoErr("failed to build reserve statement", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, infra.WrapRepoErr("failed to reserve time slot", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *TimeSlotRepository) Provision(ctx context.Context, slot *delivery.TimeSlot) (*delivery.TimeSlot, error) {
	query, args, err := insertSlotSQL(slot)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build time slot insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, infra.WrapRepoErr("failed to insert time slot", err)
	}
	return slot.WithID(id), nil
}
