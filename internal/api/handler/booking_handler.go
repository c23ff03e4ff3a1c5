package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oceanbook/booking-system/internal/api/metrics"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// BookingHandler handles HTTP requests for booking operations. Domain errors
// are returned as-is and mapped centrally by the API error handler.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /v1/bookings.
//
// @Summary      Create a booking request
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      bookingRequest  true  "Booking details"
// @Success      201   {object}  ports.BookingAggregate
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	agg, err := h.service.Create(c.Request().Context(), toBookingRequest(req))
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, agg)
}

// Get handles GET /v1/bookings/:reference.
//
// @Summary      Get the active booking version by reference
// @Tags         bookings
// @Produce      json
// @Param        reference  path      string  true  "Carrier booking request reference"
// @Success      200        {object}  ports.BookingAggregate
// @Failure      404        {object}  errorResponse
// @Router       /v1/bookings/{reference} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	agg, err := h.service.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agg)
}

// Update handles PUT /v1/bookings/:reference. The request replaces the whole
// aggregate: child collections absent from the payload are cleared.
//
// @Summary      Replace the active booking version by reference
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        reference  path      string          true  "Carrier booking request reference"
// @Param        body       body      bookingRequest  true  "Booking details"
// @Success      200        {object}  ports.BookingAggregate
// @Failure      400        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /v1/bookings/{reference} [put]
func (h *BookingHandler) Update(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	agg, err := h.service.UpdateByReference(c.Request().Context(), c.Param("reference"), toBookingRequest(req))
	if err != nil {
		return err
	}

	metrics.BookingsUpdatedTotal.Inc()
	return c.JSON(http.StatusOK, agg)
}

// Cancel handles POST /v1/bookings/:reference/cancel.
//
// @Summary      Cancel the active booking version by reference
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        reference  path      string                true  "Carrier booking request reference"
// @Param        body       body      cancelBookingRequest  true  "Cancellation reason"
// @Success      200        {object}  ports.BookingAggregate
// @Failure      404        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /v1/bookings/{reference}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	var req cancelBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	agg, err := h.service.CancelByReference(c.Request().Context(), c.Param("reference"), ports.CancelBookingRequest{Reason: req.Reason})
	if err != nil {
		return err
	}

	metrics.BookingsCancelledTotal.Inc()
	return c.JSON(http.StatusOK, agg)
}
