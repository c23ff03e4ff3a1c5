package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

func TestHTTPErrorHandler_StatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"booking not found", domain.ErrBookingNotFound, http.StatusNotFound},
		{"shipment not found", domain.ErrShipmentNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get booking: %w", domain.ErrBookingNotFound), http.StatusNotFound},
		{"vessel not found", domain.ErrVesselNotFound, http.StatusBadRequest},
		{"vessel name mismatch", domain.ErrVesselNameMismatch, http.StatusBadRequest},
		{"vessel ambiguous", domain.ErrVesselAmbiguous, http.StatusBadRequest},
		{"cancellation not allowed", domain.ErrCancellationNotAllowed, http.StatusUnprocessableEntity},
		{"invalid transition", domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{"concurrent modification", domain.ErrConcurrentModification, http.StatusConflict},
		{"echo http error", echo.NewHTTPError(http.StatusTeapot, "short and stout"), http.StatusTeapot},
		{"unexpected error", fmt.Errorf("mongo exploded"), http.StatusInternalServerError},
	}

	handler := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler(tc.err, c)

			if rec.Code != tc.code {
				t.Errorf("got %d, want %d", rec.Code, tc.code)
			}
		})
	}
}

func TestHTTPErrorHandler_ValidationErrorCarriesFields(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(&domain.ValidationError{Fields: []domain.FieldError{
		{Field: "importLicenseReference", Message: "importLicenseReference cannot be null if isImportLicenseRequired is true"},
		{Field: "expectedArrivalAtPlaceOfDeliveryEndDate", Message: "must not precede start date"},
	}}, c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var resp struct {
		Error  string              `json:"error"`
		Fields []domain.FieldError `json:"fields"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Fields) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(resp.Fields))
	}
	if resp.Fields[0].Field != "importLicenseReference" {
		t.Errorf("unexpected first field: %+v", resp.Fields[0])
	}
}

func TestHTTPErrorHandler_InternalErrorIsOpaque(t *testing.T) {
	handler := NewHTTPErrorHandler(zerolog.Nop())

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler(fmt.Errorf("connection string mongodb://secret@host"), c)

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "internal server error" {
		t.Errorf("internal details must not leak: %v", resp["error"])
	}
}
