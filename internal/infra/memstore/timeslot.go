package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/infra"
)

// TimeSlotStore keeps slots in process memory. One mutex guards every slot, which makes
// TrySetUnavailable linearizable per ID.
type TimeSlotStore struct {
	mu     sync.RWMutex
	slots  map[int64]*delivery.TimeSlot
	nextID int64
}

func NewTimeSlotStore() *TimeSlotStore {
	return &TimeSlotStore{
		slots: make(map[int64]*delivery.TimeSlot),
	}
}

func (s *TimeSlotStore) Provision(_ context.Context, slot *delivery.TimeSlot) (*delivery.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	stored := delivery.RestoreTimeSlot(s.nextID, slot.Method(), slot.Start(), slot.End(), slot.IsAvailable())
	s.slots[stored.ID()] = stored
	return stored, nil
}

func (s *TimeSlotStore) FindAvailable(_ context.Context, method delivery.Method) ([]*delivery.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*delivery.TimeSlot, 0)
	for _, slot := range s.slots {
		if slot.Method() == method && slot.IsAvailable() {
			result = append(result, slot)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].Start().Equal(result[j].Start()) {
			return result[i].Start().Before(result[j].Start())
		}
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

func (s *TimeSlotStore) FindByID(_ context.Context, id int64) (*delivery.TimeSlot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	slot, ok := s.slots[id]
	if !ok {
		return nil, infra.NotFound(fmt.Sprintf("time slot %d not found", id))
	}
	return slot, nil
}

func (s *TimeSlotStore) TrySetUnavailable(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot, ok := s.slots[id]
	if !ok || !slot.IsAvailable() {
		return false, nil
	}
	// slots are immutable values; swap in the reserved copy
	s.slots[id] = slot.Reserved()
	return true, nil
}
