//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"net/url"
	"testing"
	"time"

	"delivery-booking/internal/domain/delivery"
	"delivery-booking/internal/handler/api"
	resdto "delivery-booking/internal/handler/dto/response"
	"delivery-booking/internal/pkg/errs"
	"delivery-booking/internal/testutil/builder"
	"delivery-booking/internal/testutil/httptest"
	"delivery-booking/internal/testutil/mock/commandsmock"
	"delivery-booking/internal/testutil/mock/queriesmock"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeliveryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockDeliveryQueries
	handler      *api.DeliveryHandler
}

func (s *DeliveryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockDeliveryQueries(s.mockCtrl)
	s.handler = api.NewDeliveryHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/delivery")
	g.GET("/delivery-methods", s.handler.ListMethods)
	g.GET("/time-slots", s.handler.GetTimeSlots)
	g.POST("/book", s.handler.Book)
	g.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *DeliveryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDeliveryHandlerSuite(t *testing.T) {
	suite.Run(t, new(DeliveryHandlerTestSuite))
}

// ================================================================================
// TestListMethods
// ================================================================================

func (s *DeliveryHandlerTestSuite) TestListMethods() {
	s.Run("success: lists every method with a self link", func() {
		s.mockQueries.EXPECT().ListMethods(gomock.Any()).Return(delivery.Methods()).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/delivery-methods", nil)

		var body resdto.DeliveryMethodsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal([]string{"DRIVE", "DELIVERY", "DELIVERY_TODAY", "DELIVERY_ASAP"}, body.Methods)
		s.Equal("/api/delivery/delivery-methods", body.Links[resdto.RelSelf].Href)
	})
}

// ================================================================================
// TestGetTimeSlots
// ================================================================================

func (s *DeliveryHandlerTestSuite) TestGetTimeSlots() {
	path := "/api/delivery/time-slots"

	s.Run("success: slots carry a book-delivery link", func() {
		slots := []*delivery.TimeSlot{
			builder.NewTimeSlotBuilder().WithID(1).BuildStored(),
			builder.NewTimeSlotBuilder().WithID(2).WithStartOffset(3 * time.Hour).BuildStored(),
		}
		s.mockQueries.EXPECT().GetAvailableTimeSlots(gomock.Any(), delivery.MethodDelivery).
			Return(slots, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, url.Values{"method": {"DELIVERY"}})

		var body resdto.TimeSlotsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.TimeSlots, 2)
		s.Equal(int64(1), body.TimeSlots[0].ID)
		s.True(body.TimeSlots[0].Available)
		s.Equal("/api/delivery/book?customerName=&method=DELIVERY&timeSlotId=2",
			body.TimeSlots[1].Links[resdto.RelBookDelivery].Href)
		s.Equal("/api/delivery/time-slots?method=DELIVERY", body.Links[resdto.RelSelf].Href)
	})

	s.Run("error: 400 on missing or unknown method", func() {
		for _, q := range []url.Values{nil, {"method": {"BICYCLE"}}, {"method": {"delivery"}}} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, q)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "no availability",
				queriesError:   usecase.ErrNoAvailability,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "no available time slots",
			},
			{
				name:           "store failure",
				queriesError:   errs.Mark(errors.New("connection refused"), usecase.ErrDatabaseOperationFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetAvailableTimeSlots(gomock.Any(), delivery.MethodDrive).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, path, url.Values{"method": {"DRIVE"}})
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestBook
// ================================================================================

func (s *DeliveryHandlerTestSuite) TestBook() {
	path := "/api/delivery/book"
	validQuery := func() url.Values {
		return url.Values{
			"customerName": {"Alice"},
			"method":       {"DELIVERY"},
			"timeSlotId":   {"1"},
		}
	}

	s.Run("success: returns the booking with self and status links", func() {
		booking := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 42 }).BuildStored()
		s.mockCommands.EXPECT().BookDelivery(gomock.Any(), commands.BookDeliveryParams{
			CustomerName: "Alice",
			Method:       delivery.MethodDelivery,
			TimeSlotID:   1,
		}).Return(booking, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, validQuery())

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(42), body.ID)
		s.Equal("Alice", body.CustomerName)
		s.Equal("Pending", body.Status)
		s.Equal(int64(1), body.TimeSlot.ID)
		s.False(body.TimeSlot.Available)
		s.Equal("/api/delivery/book?customerName=Alice&method=DELIVERY&timeSlotId=1", body.Links[resdto.RelSelf].Href)
		s.Equal("/api/delivery/bookings/42", body.Links[resdto.RelGetDeliveryStatus].Href)
	})

	s.Run("error: 400 on invalid parameters", func() {
		testCases := []struct {
			name   string
			mutate func(q url.Values)
		}{
			{name: "missing customerName", mutate: func(q url.Values) { q.Del("customerName") }},
			{name: "missing method", mutate: func(q url.Values) { q.Del("method") }},
			{name: "unknown method", mutate: func(q url.Values) { q.Set("method", "TELEPORT") }},
			{name: "missing timeSlotId", mutate: func(q url.Values) { q.Del("timeSlotId") }},
			{name: "non-numeric timeSlotId", mutate: func(q url.Values) { q.Set("timeSlotId", "abc") }},
			{name: "zero timeSlotId", mutate: func(q url.Values) { q.Set("timeSlotId", "0") }},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				q := validQuery()
				tc.mutate(q)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, q)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "slot not found",
				commandsError:  usecase.ErrSlotNotFound,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "the selected time slot is not available",
			},
			{
				name:           "slot already booked",
				commandsError:  errs.Wrapf(usecase.ErrSlotAlreadyBooked, "time slot %d", 1),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already booked",
			},
			{
				name:           "method mismatch",
				commandsError:  usecase.ErrMethodMismatch,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "does not match",
			},
			{
				name:           "invalid customer name",
				commandsError:  errs.Mark(delivery.ErrEmptyCustomerName, usecase.ErrInvalidCustomerName),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "invalid customer name",
			},
			{
				name:           "booking persistence failure",
				commandsError:  errs.Mark(errors.New("disk full"), usecase.ErrBookingPersistence),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "failed to book the delivery",
			},
			{
				name:           "unclassified error",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().BookDelivery(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, validQuery())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGetBooking
// ================================================================================

func (s *DeliveryHandlerTestSuite) TestGetBooking() {
	s.Run("success: self points at the status URL", func() {
		booking := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 7 }).BuildStored()
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), int64(7)).Return(booking, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/bookings/7", nil)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.ID)
		s.Equal("/api/delivery/bookings/7", body.Links[resdto.RelSelf].Href)
		s.Equal("/api/delivery/bookings/7", body.Links[resdto.RelGetDeliveryStatus].Href)
	})

	s.Run("error: 404 when the booking does not exist", func() {
		s.mockQueries.EXPECT().GetBooking(gomock.Any(), int64(99)).
			Return(nil, usecase.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/bookings/99", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})

	s.Run("error: 400 on a malformed id", func() {
		for _, id := range []string{"abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/bookings/"+id, nil)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		}
	})
}
