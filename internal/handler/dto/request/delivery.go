package request

import (
	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/usecase/commands"
)

type TimeSlotsQuery struct {
	Method string `form:"method" binding:"required"`
}

func (q TimeSlotsQuery) ToDomain() (delivery.Method, error) {
	return delivery.ParseMethod(q.Method)
}

// BookDeliveryQuery is read from the query string; the booking endpoint takes no body.
type BookDeliveryQuery struct {
	CustomerName string `form:"customerName" binding:"required"`
	Method       string `form:"method" binding:"required"`
	TimeSlotID   int64  `form:"timeSlotId" binding:"required,min=1"`
}

func (q BookDeliveryQuery) ToParams() (commands.BookDeliveryParams, error) {
	method, err := delivery.ParseMethod(q.Method)
	if err != nil {
		return commands.BookDeliveryParams{}, err
	}
	return commands.BookDeliveryParams{
		CustomerName: q.CustomerName,
		Method:       method,
		TimeSlotID:   q.TimeSlotID,
	}, nil
}

type BookingURI struct {
	ID int64 `uri:"id" binding:"required,min=1"`
}
