package commands

import (
	"context"
	"log/slog"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
	"delivery-booking/internal/pkg/clock"
	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/shared"
)

//go:generate mockgen -source=booking.go -destination=../../testutil/mock/commandsmock/booking.go -package=commandsmock

type BookDeliveryParams struct {
	CustomerName string
	Method       delivery.Method
	TimeSlotID   int64
}

type BookingOptions struct {
	// StrictMethod rejects a booking whose method differs from the slot's method.
	StrictMethod bool
}

type BookingCommands interface {
	BookDelivery(ctx context.Context, params BookDeliveryParams) (*delivery.Booking, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	opts  BookingOptions
}

func NewBookingCommands(uow shared.UnitOfWork, clock clock.Clock, opts BookingOptions) BookingCommands {
	return &bookingCommandsImpl{
		uow:   uow,
		clock: clock,
		opts:  opts,
	}
}

// BookDelivery reserves the slot and records the booking. The read and availability
// check up front only reject early; TrySetUnavailable is the single point that decides
// which concurrent caller wins the slot.
func (c *bookingCommandsImpl) BookDelivery(ctx context.Context, params BookDeliveryParams) (*delivery.Booking, error) {
	if !params.Method.IsValid() {
		return nil, errs.Mark(delivery.ErrUnknownMethod, usecase.ErrInvalidMethod)
	}
	name, err := delivery.NormalizeCustomerName(params.CustomerName)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrInvalidCustomerName)
	}

	slot, err := c.loadBookableSlot(ctx, params)
	if err != nil {
		return nil, err
	}

	// built before anything is mutated so a domain error cannot strand a reserved slot
	booking, err := delivery.NewBooking(params.Method, slot.Reserved(), name, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrInvalidCustomerName)
	}

	saved, err := c.reserveAndSave(ctx, booking)
	if err != nil {
		return nil, err
	}

	slog.Info("delivery booked",
		"booking_id", saved.ID(),
		"time_slot_id", saved.TimeSlotID(),
		"method", saved.Method().String())

	return saved, nil
}

func (c *bookingCommandsImpl) loadBookableSlot(ctx context.Context, params BookDeliveryParams) (*delivery.TimeSlot, error) {
	slot, err := c.uow.TimeSlots().FindByID(ctx, params.TimeSlotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, usecase.ErrSlotNotFound)
		}
		return nil, errs.Mark(err, usecase.ErrDatabaseOperationFailed)
	}

	if !slot.IsAvailable() {
		return nil, errs.Wrapf(usecase.ErrSlotAlreadyBooked, "time slot %d", slot.ID())
	}

	if c.opts.StrictMethod && slot.Method() != params.Method {
		return nil, errs.Wrapf(usecase.ErrMethodMismatch, "time slot %d is offered for %s", slot.ID(), slot.Method())
	}

	return slot, nil
}

func (c *bookingCommandsImpl) reserveAndSave(ctx context.Context, booking *delivery.Booking) (*delivery.Booking, error) {
	slotID := booking.TimeSlotID()

	var (
		saved    *delivery.Booking
		reserved bool
	)
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		// Within may re-run fn on retryable transaction errors
		saved, reserved = nil, false

		ok, err := tx.TimeSlots().TrySetUnavailable(ctx, slotID)
		if err != nil {
			return errs.Mark(err, usecase.ErrDatabaseOperationFailed)
		}
		if !ok {
			return errs.Wrapf(usecase.ErrSlotAlreadyBooked, "time slot %d", slotID)
		}
		reserved = true

		saved, err = tx.Bookings().Save(ctx, booking)
		if err != nil {
			return errs.Mark(err, usecase.ErrBookingPersistence)
		}
		return nil
	})
	if err == nil {
		return saved, nil
	}

	switch {
	case errs.Is(err, usecase.ErrSlotAlreadyBooked):
		slog.Warn("time slot taken by a concurrent booking", "time_slot_id", slotID)
		return nil, err
	case errs.Is(err, usecase.ErrBookingPersistence):
	case reserved:
		// commit failed after both writes went through
		err = errs.Mark(err, usecase.ErrBookingPersistence)
	case errs.Is(err, usecase.ErrDatabaseOperationFailed):
		return nil, err
	default:
		return nil, errs.Mark(err, usecase.ErrDatabaseOperationFailed)
	}

	// stores without rollback keep the slot reserved; the log line is the reconciliation record
	slog.Error("booking was not saved after reserving time slot",
		"time_slot_id", slotID,
		"customer_name", booking.CustomerName(),
		"error", err.Error(),
		"stack", errs.ExtractStackLines(err, 8))
	return nil, err
}
