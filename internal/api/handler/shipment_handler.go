package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/oceanbook/booking-system/internal/core/ports"
)

// ShipmentHandler exposes the shipment read side.
type ShipmentHandler struct {
	service ports.ShipmentService
}

func NewShipmentHandler(service ports.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{service: service}
}

// Get handles GET /v1/shipments/:reference.
//
// @Summary      Get a confirmed shipment by carrier booking reference
// @Tags         shipments
// @Produce      json
// @Param        reference  path      string  true  "Carrier booking reference"
// @Success      200        {object}  ports.ShipmentAggregate
// @Failure      404        {object}  errorResponse
// @Router       /v1/shipments/{reference} [get]
func (h *ShipmentHandler) Get(c echo.Context) error {
	agg, err := h.service.GetByReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, agg)
}
