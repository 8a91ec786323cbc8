package queries

import (
	"context"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/shared"
)

//go:generate mockgen -source=delivery.go -destination=../../testutil/mock/queriesmock/delivery.go -package=queriesmock

type DeliveryQueries interface {
	ListMethods(ctx context.Context) []delivery.Method
	GetAvailableTimeSlots(ctx context.Context, method delivery.Method) ([]*delivery.TimeSlot, error)
	GetBooking(ctx context.Context, id int64) (*delivery.Booking, error)
}

type deliveryQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewDeliveryQueries(uow shared.UnitOfWork) DeliveryQueries {
	return &deliveryQueriesImpl{uow: uow}
}

func (q *deliveryQueriesImpl) ListMethods(_ context.Context) []delivery.Method {
	return delivery.Methods()
}

// GetAvailableTimeSlots reports an empty result as ErrNoAvailability rather than an empty list.
func (q *deliveryQueriesImpl) GetAvailableTimeSlots(ctx context.Context, method delivery.Method) ([]*delivery.TimeSlot, error) {
	if !method.IsValid() {
		return nil, errs.Mark(delivery.ErrUnknownMethod, usecase.ErrInvalidMethod)
	}

	slots, err := q.uow.TimeSlots().FindAvailable(ctx, method)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrDatabaseOperationFailed)
	}
	if len(slots) == 0 {
		return nil, usecase.ErrNoAvailability
	}

	return slots, nil
}

func (q *deliveryQueriesImpl) GetBooking(ctx context.Context, id int64) (*delivery.Booking, error) {
	booking, err := q.uow.Bookings().FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, usecase.ErrBookingNotFound)
		}
		return nil, errs.Mark(err, usecase.ErrDatabaseOperationFailed)
	}
	return booking, nil
}
