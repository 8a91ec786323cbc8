package delivery

import (
	"errors"
	"time"
)

var ErrInvalidTimeWindow = errors.New("end time must be after start time")

type TimeSlot struct {
	id        int64
	method    Method
	start     time.Time
	end       time.Time
	available bool
}

// NewTimeSlot builds an unsaved, available slot. The store assigns the ID on provisioning.
func NewTimeSlot(method Method, start, end time.Time) (*TimeSlot, error) {
	if !method.IsValid() {
		return nil, ErrUnknownMethod
	}
	if !end.After(start) {
		return nil, ErrInvalidTimeWindow
	}
	return &TimeSlot{
		method:    method,
		start:     start,
		end:       end,
		available: true,
	}, nil
}

// RestoreTimeSlot rebuilds a persisted slot without re-running creation checks.
func RestoreTimeSlot(id int64, method Method, start, end time.Time, available bool) *TimeSlot {
	return &TimeSlot{
		id:        id,
		method:    method,
		start:     start,
		end:       end,
		available: available,
	}
}

func (ts *TimeSlot) ID() int64         { return ts.id }
func (ts *TimeSlot) Method() Method    { return ts.method }
func (ts *TimeSlot) Start() time.Time  { return ts.start }
func (ts *TimeSlot) End() time.Time    { return ts.end }
func (ts *TimeSlot) IsAvailable() bool { return ts.available }

func (ts *TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// WithID returns a copy carrying the store-assigned identifier.
func (ts *TimeSlot) WithID(id int64) *TimeSlot {
	cp := *ts
	cp.id = id
	return &cp
}

// Reserved returns a copy flagged unavailable. It does not touch any store.
func (ts *TimeSlot) Reserved() *TimeSlot {
	cp := *ts
	cp.available = false
	return &cp
}
