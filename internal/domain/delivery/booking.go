package delivery

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

var (
	ErrEmptyCustomerName   = errors.New("customer name cannot be empty")
	ErrCustomerNameTooLong = errors.New("customer name is too long (max 255 characters)")
	ErrMissingTimeSlot     = errors.New("booking requires a time slot")
)

const (
	MaxCustomerNameLength = 255
)

type Booking struct {
	id           int64
	method       Method
	timeSlot     *TimeSlot
	customerName string
	status       Status
	createdAt    time.Time
}

// NewBooking creates a Pending booking for slot. The method is taken as given by the
// caller and is not compared with the slot's own method.
func NewBooking(method Method, slot *TimeSlot, customerName string, now time.Time) (*Booking, error) {
	if !method.IsValid() {
		return nil, ErrUnknownMethod
	}
	if slot == nil {
		return nil, ErrMissingTimeSlot
	}
	name, err := NormalizeCustomerName(customerName)
	if err != nil {
		return nil, err
	}

	return &Booking{
		method:       method,
		timeSlot:     slot,
		customerName: name,
		status:       StatusPending,
		createdAt:    now,
	}, nil
}

func RestoreBooking(id int64, method Method, slot *TimeSlot, customerName string, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:           id,
		method:       method,
		timeSlot:     slot,
		customerName: customerName,
		status:       status,
		createdAt:    createdAt,
	}
}

func NormalizeCustomerName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyCustomerName
	}
	if utf8.RuneCountInString(name) > MaxCustomerNameLength {
		return "", ErrCustomerNameTooLong
	}
	return name, nil
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) Method() Method       { return b.method }
func (b *Booking) TimeSlot() *TimeSlot  { return b.timeSlot }
func (b *Booking) TimeSlotID() int64    { return b.timeSlot.ID() }
func (b *Booking) CustomerName() string { return b.customerName }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) WithID(id int64) *Booking {
	cp := *b
	cp.id = id
	return &cp
}
