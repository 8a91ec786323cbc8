package redisstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"
)

type slotRecord struct {
	ID        int64     `json:"id"`
	Method    string    `json:"method"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type bookingRecord struct {
	ID           int64      `json:"id"`
	Method       string     `json:"method"`
	CustomerName string     `json:"customerName"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	Slot         slotRecord `json:"slot"`
}

type BookingStore struct {
	rdb  redis.UniversalClient
	keys keys
}

// Save claims the slot's booking marker with SETNX before writing the record, so a
// slot never ends up with two bookings even if a caller skips TrySetUnavailable.
func (s *BookingStore) Save(ctx context.Context, booking *delivery.Booking) (*delivery.Booking, error) {
	id, err := s.rdb.Incr(ctx, s.keys.bookingSeq()).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to allocate booking id", err)
	}
	saved := booking.WithID(id)

	payload, err := encodeBooking(saved)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to encode booking", err)
	}

	claimed, err := s.rdb.SetNX(ctx, s.keys.slotBooking(saved.TimeSlotID()), id, 0).Result()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim time slot for booking", err)
	}
	if !claimed {
		return nil, infra.WrapRepoErr("time slot already has a booking",
			fmt.Errorf("slot %d", saved.TimeSlotID()), infra.KindDuplicateKey)
	}

	if err := s.rdb.Set(ctx, s.keys.booking(id), payload, 0).Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to store booking", err)
	}
	return saved, nil
}

func (s *BookingStore) FindByID(ctx context.Context, id int64) (*delivery.Booking, error) {
	payload, err := s.rdb.Get(ctx, s.keys.booking(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, infra.NotFound(fmt.Sprintf("booking %d not found", id))
		}
		return nil, infra.WrapRepoErr("failed to load booking", err)
	}

	booking, err := decodeBooking(payload)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode booking", err, infra.KindDecodeFailed)
	}
	return booking, nil
}

func encodeBooking(b *delivery.Booking) ([]byte, error) {
	slot := b.TimeSlot()
	return jsoniter.ConfigFastest.Marshal(bookingRecord{
		ID:           b.ID(),
		Method:       b.Method().String(),
		CustomerName: b.CustomerName(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt().UTC(),
		Slot: slotRecord{
			ID:        slot.ID(),
			Method:    slot.Method().String(),
			Start:     slot.Start().UTC(),
			End:       slot.End().UTC(),
			Available: slot.IsAvailable(),
		},
	})
}

func decodeBooking(payload []byte) (*delivery.Booking, error) {
	var rec bookingRecord
	if err := jsoniter.ConfigFastest.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}

	method, err := delivery.ParseMethod(rec.Method)
	if err != nil {
		return nil, err
	}
	slotMethod, err := delivery.ParseMethod(rec.Slot.Method)
	if err != nil {
		return nil, err
	}
	status := delivery.Status(rec.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("unknown status %q", rec.Status)
	}

	slot := delivery.RestoreTimeSlot(rec.Slot.ID, slotMethod, rec.Slot.Start, rec.Slot.End, rec.Slot.Available)
	return delivery.RestoreBooking(rec.ID, method, slot, rec.CustomerName, status, rec.CreatedAt), nil
}
