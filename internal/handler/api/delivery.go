package api

import (
	"net/http"

	reqdto "delivery-booking/internal/handler/dto/request"
	resdto "delivery-booking/internal/handler/dto/response"
	"delivery-booking/internal/handler/httperr"
	"delivery-booking/internal/usecase"
	"delivery-booking/internal/usecase/commands"
	"delivery-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DeliveryHandler struct {
	cmds commands.BookingCommands
	q    queries.DeliveryQueries
}

func NewDeliveryHandler(cmds commands.BookingCommands, q queries.DeliveryQueries) *DeliveryHandler {
	return &DeliveryHandler{cmds: cmds, q: q}
}

// @Summary Get available delivery methods
// @Description Returns the supported delivery methods: DRIVE, DELIVERY, DELIVERY_TODAY, DELIVERY_ASAP
// @Tags delivery
// @Produce json
// @Success 200 {object} resdto.DeliveryMethodsResponse
// @Failure 500 {object} httperr.Response
// @Router /api/delivery/delivery-methods [get]
func (h *DeliveryHandler) ListMethods(c *gin.Context) {
	methods := h.q.ListMethods(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromMethods(methods))
}

// @Summary Get available time slots
// @Description Returns the open time slots for a delivery method, earliest first
// @Tags delivery
// @Produce json
// @Param method query string true "Delivery method" Enums(DRIVE, DELIVERY, DELIVERY_TODAY, DELIVERY_ASAP)
// @Success 200 {object} resdto.TimeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/delivery/time-slots [get]
func (h *DeliveryHandler) GetTimeSlots(c *gin.Context) {
	var query reqdto.TimeSlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	method, err := query.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid delivery method", nil)
		return
	}

	slots, err := h.q.GetAvailableTimeSlots(c.Request.Context(), method)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromTimeSlots(method, slots))
}

// @Summary Book a delivery
// @Description Reserves a time slot for a customer. A slot can be booked only once.
// @Tags delivery
// @Produce json
// @Param customerName query string true "Customer name" example(John Doe)
// @Param method query string true "Delivery method" Enums(DRIVE, DELIVERY, DELIVERY_TODAY, DELIVERY_ASAP)
// @Param timeSlotId query int true "Time slot ID" minimum(1)
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/delivery/book [post]
func (h *DeliveryHandler) Book(c *gin.Context) {
	var query reqdto.BookDeliveryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	params, err := query.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid delivery method", nil)
		return
	}

	booking, err := h.cmds.BookDelivery(c.Request.Context(), params)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	self := resdto.BookLink(query.CustomerName, params.Method, params.TimeSlotID)
	c.JSON(http.StatusOK, resdto.FromBooking(booking, self))
}

// @Summary Get delivery status
// @Description Returns a booking and its current status
// @Tags delivery
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/delivery/bookings/{id} [get]
func (h *DeliveryHandler) GetBooking(c *gin.Context) {
	var uri reqdto.BookingURI
	if err := c.ShouldBindUri(&uri); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	booking, err := h.q.GetBooking(c.Request.Context(), uri.ID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBooking(booking, ""))
}

// ordered: the first matching sentinel decides the status
var usecaseErrorRules = []httperr.Rule{
	{Target: usecase.ErrNoAvailability, Status: http.StatusNotFound},
	{Target: usecase.ErrBookingNotFound, Status: http.StatusNotFound},
	{Target: usecase.ErrSlotNotFound, Status: http.StatusBadRequest},
	{Target: usecase.ErrSlotAlreadyBooked, Status: http.StatusBadRequest},
	{Target: usecase.ErrMethodMismatch, Status: http.StatusBadRequest},
	{Target: usecase.ErrInvalidCustomerName, Status: http.StatusBadRequest},
	{Target: usecase.ErrInvalidMethod, Status: http.StatusBadRequest},
	{Target: usecase.ErrBookingPersistence, Status: http.StatusInternalServerError},
}

func abortWithUsecaseError(c *gin.Context, err error) {
	httperr.AbortWithRules(c, err, usecaseErrorRules)
}
