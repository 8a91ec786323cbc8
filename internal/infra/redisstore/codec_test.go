//go:build unit

package redisstore

import (
	"testing"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/testutil/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeys(t *testing.T) {
	k := buildKeys([]Option{WithKeyPrefix(":shop:")})

	assert.Equal(t, "shop:slot:seq", k.slotSeq())
	assert.Equal(t, "shop:slot:12", k.slot(12))
	assert.Equal(t, "shop:slots:DRIVE:available", k.available("DRIVE"))
	assert.Equal(t, "shop:booking:3", k.booking(3))
	assert.Equal(t, "shop:slot:12:booking", k.slotBooking(12))

	assert.Equal(t, "delivery:slot:seq", buildKeys(nil).slotSeq())
	assert.Equal(t, "delivery:slot:seq", buildKeys([]Option{WithKeyPrefix("::")}).slotSeq())
}

func TestSlotCodec(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	slot := builder.NewTimeSlotBuilder().With(func(b *builder.TimeSlotBuilder) {
		b.Start = time.Date(2025, 6, 2, 9, 0, 0, 500, jst)
		b.End = b.Start.Add(90 * time.Minute)
	}).WithID(4).BuildStored()

	fields := map[string]string{}
	for k, v := range encodeSlot(slot) {
		fields[k] = v.(string)
	}
	assert.Equal(t, "1", fields[fieldAvailable])

	got, err := decodeSlot(4, fields)
	require.NoError(t, err)
	assert.True(t, got.Start().Equal(slot.Start()))
	assert.Equal(t, 90*time.Minute, got.Duration())
	assert.True(t, got.IsAvailable())

	delete(fields, fieldEnd)
	_, err = decodeSlot(4, fields)
	assert.ErrorIs(t, err, errMissingSlotField)
}

func TestBookingCodec(t *testing.T) {
	original := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.ID = 9
		b.Method = delivery.MethodDeliveryASAP
		b.CustomerName = "Zoë"
	}).BuildStored()

	payload, err := encodeBooking(original)
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"customerName":"Zoë"`)

	got, err := decodeBooking(payload)
	require.NoError(t, err)
	assert.Equal(t, original.ID(), got.ID())
	assert.Equal(t, original.Method(), got.Method())
	assert.Equal(t, original.TimeSlotID(), got.TimeSlotID())
	assert.Equal(t, original.Status(), got.Status())
	assert.True(t, original.CreatedAt().Equal(got.CreatedAt()))

	_, err = decodeBooking([]byte(`{"id":1,"method":"SUBMARINE","status":"Pending","slot":{"method":"DRIVE"}}`))
	assert.ErrorIs(t, err, delivery.ErrUnknownMethod)
}
