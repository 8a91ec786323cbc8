package memstore

import (
	"context"
	"fmt"
	"sync"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
)

type BookingStore struct {
	mu       sync.RWMutex
	bookings map[int64]*delivery.Booking
	nextID   int64

	// failNext makes the next Save calls fail; tests use it to simulate storage faults.
	failNext int
	failErr  error
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		bookings: make(map[int64]*delivery.Booking),
	}
}

func (s *BookingStore) Save(_ context.Context, booking *delivery.Booking) (*delivery.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failNext > 0 {
		s.failNext--
		return nil, infra.WrapRepoErr("failed to save booking", s.failErr)
	}

	s.nextID++
	saved := booking.WithID(s.nextID)
	s.bookings[saved.ID()] = saved
	return saved, nil
}

func (s *BookingStore) FindByID(_ context.Context, id int64) (*delivery.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	booking, ok := s.bookings[id]
	if !ok {
		return nil, infra.NotFound(fmt.Sprintf("booking %d not found", id))
	}
	return booking, nil
}

// CountForSlot reports how many bookings reference the slot.
func (s *BookingStore) CountForSlot(slotID int64) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, b := range s.bookings {
		if b.TimeSlotID() == slotID {
			n++
		}
	}
	return n
}

func (s *BookingStore) FailNextSaves(n int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = n
	s.failErr = err
}
