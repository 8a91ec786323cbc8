package commands

import (
	"context"
	"log/slog"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/pkg/clock"
	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/shared"
)

type ProvisionSlotParams struct {
	Method delivery.Method
	Start  time.Time
	End    time.Time
}

type SlotCommands interface {
	ProvisionSlot(ctx context.Context, params ProvisionSlotParams) (*delivery.TimeSlot, error)
	// SeedDemo provisions a sample schedule for the next days days, starting today.
	SeedDemo(ctx context.Context, days int) ([]*delivery.TimeSlot, error)
}

type slotCommandsImpl struct {
	provisioner shared.TimeSlotProvisioner
	clock       clock.Clock
}

func NewSlotCommands(provisioner shared.TimeSlotProvisioner, clock clock.Clock) SlotCommands {
	return &slotCommandsImpl{provisioner: provisioner, clock: clock}
}

func (c *slotCommandsImpl) ProvisionSlot(ctx context.Context, params ProvisionSlotParams) (*delivery.TimeSlot, error) {
	slot, err := delivery.NewTimeSlot(params.Method, params.Start.UTC(), params.End.UTC())
	if err != nil {
		if errs.Is(err, delivery.ErrUnknownMethod) {
			return nil, errs.Mark(err, usecase.ErrInvalidMethod)
		}
		return nil, errs.Mark(err, usecase.ErrInvalidTimeWindow)
	}

	stored, err := c.provisioner.Provision(ctx, slot)
	if err != nil {
		return nil, errs.Mark(err, usecase.ErrDatabaseOperationFailed)
	}
	return stored, nil
}

type window struct {
	method     delivery.Method
	startHour  int
	lengthHour int
}

// daily windows in UTC; DELIVERY_TODAY and DELIVERY_ASAP are added for the current day only
var demoWindows = []window{
	{method: delivery.MethodDrive, startHour: 10, lengthHour: 2},
	{method: delivery.MethodDrive, startHour: 14, lengthHour: 2},
	{method: delivery.MethodDelivery, startHour: 9, lengthHour: 2},
	{method: delivery.MethodDelivery, startHour: 13, lengthHour: 2},
	{method: delivery.MethodDelivery, startHour: 17, lengthHour: 2},
}

var todayWindows = []window{
	{method: delivery.MethodDeliveryToday, startHour: 18, lengthHour: 2},
	{method: delivery.MethodDeliveryToday, startHour: 20, lengthHour: 2},
}

func (c *slotCommandsImpl) SeedDemo(ctx context.Context, days int) ([]*delivery.TimeSlot, error) {
	if days < 1 {
		days = 1
	}

	now := c.clock.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var params []ProvisionSlotParams
	for d := 0; d < days; d++ {
		day := today.AddDate(0, 0, d)
		ws := demoWindows
		if d == 0 {
			ws = append(append([]window{}, demoWindows...), todayWindows...)
		}
		for _, w := range ws {
			start := day.Add(time.Duration(w.startHour) * time.Hour)
			params = append(params, ProvisionSlotParams{
				Method: w.method,
				Start:  start,
				End:    start.Add(time.Duration(w.lengthHour) * time.Hour),
			})
		}
	}

	asapStart := now.Truncate(time.Hour).Add(time.Hour)
	params = append(params, ProvisionSlotParams{
		Method: delivery.MethodDeliveryASAP,
		Start:  asapStart,
		End:    asapStart.Add(time.Hour),
	})

	slots := make([]*delivery.TimeSlot, 0, len(params))
	for _, p := range params {
		slot, err := c.ProvisionSlot(ctx, p)
		if err != nil {
			return slots, err
		}
		slots = append(slots, slot)
	}

	slog.Info("demo time slots provisioned", "count", len(slots), "days", days)
	return slots, nil
}
