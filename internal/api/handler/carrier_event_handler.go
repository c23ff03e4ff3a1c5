package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/oceanbook/booking-system/internal/core/ports"
)

// EventDispatcher is the interface the handler uses to enqueue carrier
// events.
type EventDispatcher interface {
	Enqueue(event ports.CarrierEventInput)
	EnqueueBatch(events []ports.CarrierEventInput)
}

// CarrierEventHandler handles carrier-side document status event ingestion.
type CarrierEventHandler struct {
	dispatcher EventDispatcher
}

func NewCarrierEventHandler(dispatcher EventDispatcher) *CarrierEventHandler {
	return &CarrierEventHandler{dispatcher: dispatcher}
}

type carrierEventRequest struct {
	Reference               string    `json:"carrier_booking_request_reference" validate:"required"`
	Status                  string    `json:"document_status"                   validate:"required,oneof=PENDING_UPDATE PENDING_CONFIRMATION CONFIRMED PENDING_CANCELLATION CANCELLED DECLINED REJECTED COMPLETED"`
	Timestamp               time.Time `json:"event_date_time"                   validate:"required"`
	Source                  string    `json:"source"                            validate:"required"`
	Reason                  string    `json:"reason"`
	CarrierBookingReference string    `json:"carrier_booking_reference"`
	TermsAndConditions      string    `json:"terms_and_conditions"`
}

type acceptedResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count,omitempty"`
}

// Receive handles POST /v1/carrier-events — enqueues a single event, returns 202.
//
// @Summary      Ingest a single carrier document-status event
// @Tags         carrier-events
// @Accept       json
// @Produce      json
// @Param        body  body      carrierEventRequest  true  "Carrier event"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/carrier-events [post]
func (h *CarrierEventHandler) Receive(c echo.Context) error {
	var req carrierEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	h.dispatcher.Enqueue(toCarrierEventInput(req))
	return c.JSON(http.StatusAccepted, acceptedResponse{Message: "event accepted"})
}

// ReceiveBatch handles POST /v1/carrier-events/batch — enqueues a batch, returns 202.
//
// @Summary      Ingest a batch of carrier document-status events
// @Tags         carrier-events
// @Accept       json
// @Produce      json
// @Param        body  body      []carrierEventRequest  true  "Array of carrier events"
// @Success      202   {object}  acceptedResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/carrier-events/batch [post]
func (h *CarrierEventHandler) ReceiveBatch(c echo.Context) error {
	var reqs []carrierEventRequest
	if err := c.Bind(&reqs); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if len(reqs) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "batch cannot be empty")
	}

	inputs := make([]ports.CarrierEventInput, 0, len(reqs))
	for i, req := range reqs {
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusUnprocessableEntity,
				fmt.Sprintf("event[%d]: %s", i, err.Error()))
		}
		inputs = append(inputs, toCarrierEventInput(req))
	}

	h.dispatcher.EnqueueBatch(inputs)
	return c.JSON(http.StatusAccepted, acceptedResponse{
		Message: "events accepted",
		Count:   len(inputs),
	})
}

// toCarrierEventInput maps the HTTP request to the service DTO.
func toCarrierEventInput(r carrierEventRequest) ports.CarrierEventInput {
	return ports.CarrierEventInput{
		Reference:               r.Reference,
		Status:                  r.Status,
		Source:                  r.Source,
		Timestamp:               r.Timestamp,
		Reason:                  r.Reason,
		CarrierBookingReference: r.CarrierBookingReference,
		TermsAndConditions:      r.TermsAndConditions,
	}
}
