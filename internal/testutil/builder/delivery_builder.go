//go:build unit || e2e

package builder

import (
	"time"

	"delivery-booking/internal/domain/delivery"
)

var BaseTime = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

type TimeSlotBuilder struct {
	ID        int64
	Method    delivery.Method
	Start     time.Time
	End       time.Time
	Available bool
}

func NewTimeSlotBuilder() *TimeSlotBuilder {
	return &TimeSlotBuilder{
		ID:        1,
		Method:    delivery.MethodDelivery,
		Start:     BaseTime,
		End:       BaseTime.Add(2 * time.Hour),
		Available: true,
	}
}

func (b *TimeSlotBuilder) With(mutate func(*TimeSlotBuilder)) *TimeSlotBuilder {
	mutate(b)
	return b
}

func (b *TimeSlotBuilder) WithID(id int64) *TimeSlotBuilder {
	b.ID = id
	return b
}

func (b *TimeSlotBuilder) WithMethod(m delivery.Method) *TimeSlotBuilder {
	b.Method = m
	return b
}

// WithStartOffset shifts the window so it starts offset after BaseTime, keeping its length.
func (b *TimeSlotBuilder) WithStartOffset(offset time.Duration) *TimeSlotBuilder {
	length := b.End.Sub(b.Start)
	b.Start = BaseTime.Add(offset)
	b.End = b.Start.Add(length)
	return b
}

func (b *TimeSlotBuilder) Unavailable() *TimeSlotBuilder {
	b.Available = false
	return b
}

// BuildNew goes through the validating constructor; the result has no ID yet.
func (b *TimeSlotBuilder) BuildNew() (*delivery.TimeSlot, error) {
	return delivery.NewTimeSlot(b.Method, b.Start, b.End)
}

func (b *TimeSlotBuilder) BuildStored() *delivery.TimeSlot {
	return delivery.RestoreTimeSlot(b.ID, b.Method, b.Start, b.End, b.Available)
}

type BookingBuilder struct {
	ID           int64
	Method       delivery.Method
	Slot         *TimeSlotBuilder
	CustomerName string
	Status       delivery.Status
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:           1,
		Method:       delivery.MethodDelivery,
		Slot:         NewTimeSlotBuilder().Unavailable(),
		CustomerName: "Alice",
		Status:       delivery.StatusPending,
		CreatedAt:    BaseTime.Add(-24 * time.Hour),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildNew() (*delivery.Booking, error) {
	return delivery.NewBooking(b.Method, b.Slot.BuildStored(), b.CustomerName, b.CreatedAt)
}

func (b *BookingBuilder) BuildStored() *delivery.Booking {
	return delivery.RestoreBooking(b.ID, b.Method, b.Slot.BuildStored(), b.CustomerName, b.Status, b.CreatedAt)
}
