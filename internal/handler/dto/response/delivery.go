package response

import (
	"net/url"
	"strconv"
	"time"

	"delivery-booking/internal/domain/delivery"
)

const (
	BasePath = "/api/delivery"

	RelSelf              = "self"
	RelBookDelivery      = "book-delivery"
	RelGetDeliveryStatus = "get-delivery-status"
)

type Link struct {
	Href string `json:"href"`
}

type Links map[string]Link

type DeliveryMethodsResponse struct {
	Methods []string `json:"methods"`
	Links   Links    `json:"_links"`
}

type TimeSlotResponse struct {
	ID        int64     `json:"id"`
	Method    string    `json:"method"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
	Links     Links     `json:"_links,omitempty"`
}

type TimeSlotsResponse struct {
	TimeSlots []TimeSlotResponse `json:"timeSlots"`
	Links     Links              `json:"_links"`
}

type BookingResponse struct {
	ID           int64            `json:"id"`
	Method       string           `json:"method"`
	TimeSlot     TimeSlotResponse `json:"timeSlot"`
	CustomerName string           `json:"customerName"`
	Status       string           `json:"status"`
	CreatedAt    time.Time        `json:"createdAt"`
	Links        Links            `json:"_links"`
}

func MethodsLink() string {
	return BasePath + "/delivery-methods"
}

func TimeSlotsLink(method delivery.Method) string {
	return BasePath + "/time-slots?" + url.Values{"method": {method.String()}}.Encode()
}

// BookLink leaves customerName empty unless given; the client fills it in.
func BookLink(customerName string, method delivery.Method, slotID int64) string {
	q := url.Values{
		"customerName": {customerName},
		"method":       {method.String()},
		"timeSlotId":   {strconv.FormatInt(slotID, 10)},
	}
	return BasePath + "/book?" + q.Encode()
}

func BookingLink(id int64) string {
	return BasePath + "/bookings/" + strconv.FormatInt(id, 10)
}

func FromMethods(methods []delivery.Method) *DeliveryMethodsResponse {
	names := make([]string, len(methods))
	for i, m := range methods {
		names[i] = m.String()
	}
	return &DeliveryMethodsResponse{
		Methods: names,
		Links:   Links{RelSelf: {Href: MethodsLink()}},
	}
}

func fromTimeSlot(s *delivery.TimeSlot) TimeSlotResponse {
	return TimeSlotResponse{
		ID:        s.ID(),
		Method:    s.Method().String(),
		StartTime: s.Start(),
		EndTime:   s.End(),
		Available: s.IsAvailable(),
	}
}

// FromTimeSlots links each slot for booking under the requested method, which may differ
// from the slot's own method only if the store returned a mismatched slot.
func FromTimeSlots(method delivery.Method, slots []*delivery.TimeSlot) *TimeSlotsResponse {
	items := make([]TimeSlotResponse, len(slots))
	for i, s := range slots {
		items[i] = fromTimeSlot(s)
		items[i].Links = Links{RelBookDelivery: {Href: BookLink("", method, s.ID())}}
	}
	return &TimeSlotsResponse{
		TimeSlots: items,
		Links:     Links{RelSelf: {Href: TimeSlotsLink(method)}},
	}
}

// FromBooking sets self to selfHref when given, otherwise to the booking's status URL.
func FromBooking(b *delivery.Booking, selfHref string) *BookingResponse {
	status := BookingLink(b.ID())
	if selfHref == "" {
		selfHref = status
	}
	return &BookingResponse{
		ID:           b.ID(),
		Method:       b.Method().String(),
		TimeSlot:     fromTimeSlot(b.TimeSlot()),
		CustomerName: b.CustomerName(),
		Status:       b.Status().String(),
		CreatedAt:    b.CreatedAt(),
		Links: Links{
			RelSelf:              {Href: selfHref},
			RelGetDeliveryStatus: {Href: status},
		},
	}
}
