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

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(db db.DBTX) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Save(ctx context.Context, booking *delivery.Booking) (*delivery.Booking, error) {
	query, args, err := insertBookingSQL(booking)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking insert", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if pgconv.IsUniqueViolation(err) {
			return nil, infra.WrapRepoErr("time slot already has a booking", err, infra.KindDuplicateKey)
		}
		return nil, infra.WrapRepoErr("failed to insert booking", err)
	}
	return booking.WithID(id), nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*delivery.Booking, error) {
	query, args, err := selectBookingByIDSQL(id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build booking query", err)
	}

	var row converter.BookingRow
	if err := r.db.QueryRow(ctx, query, args...).Scan(row.ScanTargets()...); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NotFound(fmt.Sprintf("booking %d not found", id))
		}
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}

	booking, err := converter.BookingFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDecodeFailed)
	}
	return booking, nil
}
