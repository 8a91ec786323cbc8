package usecase

import "delivery-booking/internal/pkg/errs"

// Error kinds exposed by the delivery use cases. Callers match them with errs.Is;
// the original cause stays attached through errs.Mark.
var (
	// No slot matched the requested method. A business outcome, not a fault.
	ErrNoAvailability = errs.New("no available time slots for the selected delivery method")
	// The referenced slot does not exist.
	ErrSlotNotFound = errs.New("the selected time slot is not available")
	// The slot exists but is, or just became, unavailable.
	ErrSlotAlreadyBooked = errs.New("the selected time slot is already booked")
	// The slot was reserved but the booking record could not be saved.
	ErrBookingPersistence = errs.New("failed to book the delivery")

	ErrBookingNotFound         = errs.New("booking not found")
	ErrInvalidCustomerName     = errs.New("invalid customer name")
	ErrInvalidMethod           = errs.New("invalid delivery method")
	ErrMethodMismatch          = errs.New("delivery method does not match the time slot")
	ErrInvalidTimeWindow       = errs.New("invalid time slot window")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
