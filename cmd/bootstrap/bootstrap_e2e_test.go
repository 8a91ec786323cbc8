//go:build e2e

package bootstrap_test

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"delivery-booking/cmd/bootstrap"
	"delivery-booking/cmd/bootstrap/components"
	resdto "delivery-booking/internal/handler/dto/response"
	"delivery-booking/internal/pkg/config"
	"delivery-booking/internal/testutil/containers"
	"delivery-booking/internal/testutil/httptest"
	"delivery-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

type DeliveryE2ESuite struct {
	suite.Suite
	backend  string
	router   *gin.Engine
	slotCmds commands.SlotCommands
}

func (s *DeliveryE2ESuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	t := s.T()

	cfg := config.NewTestConfig()
	cfg.Store.Backend = s.backend
	switch s.backend {
	case config.BackendPostgres:
		_, cfg.DB = containers.NewPostgresDB(t)
		cfg.DB.AutoMigrate = true
	case config.BackendRedis:
		_, cfg.Redis = containers.NewRedisClient(t)
	}

	app := fx.New(
		bootstrap.CoreModule(cfg),
		components.HandlerModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.Populate(&s.router, &s.slotCmds),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx))

	t.Cleanup(func() {
		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer stopCancel()
		_ = app.Stop(stopCtx)
	})
}

func TestDeliveryE2E(t *testing.T) {
	for _, backend := range []string{config.BackendPostgres, config.BackendRedis} {
		t.Run(backend, func(t *testing.T) {
			suite.Run(t, &DeliveryE2ESuite{backend: backend})
		})
	}
}

func (s *DeliveryE2ESuite) TestBookingFlow() {
	_, err := s.slotCmds.SeedDemo(context.Background(), 1)
	s.Require().NoError(err)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/delivery-methods", nil)
	var methods resdto.DeliveryMethodsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &methods)
	s.Len(methods.Methods, 4)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/time-slots", url.Values{"method": {"DELIVERY"}})
	var slots resdto.TimeSlotsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &slots)
	s.Require().NotEmpty(slots.TimeSlots)
	first := slots.TimeSlots[0]

	bookQuery := url.Values{
		"customerName": {"John Doe"},
		"method":       {"DELIVERY"},
		"timeSlotId":   {strconv.FormatInt(first.ID, 10)},
	}
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/delivery/book", bookQuery)
	var booking resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &booking)
	s.Equal("Pending", booking.Status)
	s.Equal(first.ID, booking.TimeSlot.ID)

	statusHref := booking.Links[resdto.RelGetDeliveryStatus].Href
	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, statusHref, nil)
	var fetched resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &fetched)
	s.Equal(booking.ID, fetched.ID)
	s.Equal("John Doe", fetched.CustomerName)

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/delivery/book", bookQuery)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "already booked")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/time-slots", url.Values{"method": {"DELIVERY"}})
	var after resdto.TimeSlotsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &after)
	for _, slot := range after.TimeSlots {
		s.NotEqual(first.ID, slot.ID)
	}
}

func (s *DeliveryE2ESuite) TestErrors() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/time-slots", url.Values{"method": {"DRIVE"}})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "no available time slots")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/delivery/book", url.Values{
		"customerName": {"John Doe"},
		"method":       {"DRIVE"},
		"timeSlotId":   {"987654"},
	})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "not available")

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/delivery/bookings/987654", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
}
