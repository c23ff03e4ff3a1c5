package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

type stubBookingService struct {
	createFn func(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error)
	updateFn func(ctx context.Context, reference string, req ports.BookingRequest) (*ports.BookingAggregate, error)
	getFn    func(ctx context.Context, reference string) (*ports.BookingAggregate, error)
	cancelFn func(ctx context.Context, reference string, req ports.CancelBookingRequest) (*ports.BookingAggregate, error)
}

func (s *stubBookingService) Create(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error) {
	return s.createFn(ctx, req)
}

func (s *stubBookingService) UpdateByReference(ctx context.Context, reference string, req ports.BookingRequest) (*ports.BookingAggregate, error) {
	return s.updateFn(ctx, reference, req)
}

func (s *stubBookingService) GetByReference(ctx context.Context, reference string) (*ports.BookingAggregate, error) {
	return s.getFn(ctx, reference)
}

func (s *stubBookingService) CancelByReference(ctx context.Context, reference string, req ports.CancelBookingRequest) (*ports.BookingAggregate, error) {
	return s.cancelFn(ctx, reference, req)
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

const validBookingBody = `{
	"receipt_type_at_origin": "CY",
	"delivery_type_at_destination": "CY",
	"cargo_movement_type_at_origin": "FCL",
	"cargo_movement_type_at_destination": "FCL",
	"service_contract_reference": "SC-12345",
	"communication_channel_code": "AO",
	"expected_departure_date": "2026-09-15T00:00:00Z"
}`

func TestBookingHandler_Create_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error) {
			if req.ServiceContractReference != "SC-12345" {
				t.Fatalf("unexpected request: %+v", req)
			}
			if req.Commodities != nil {
				t.Fatal("absent commodities must stay nil through binding")
			}
			return &ports.BookingAggregate{
				Booking: domain.Booking{
					ID:                             "b1",
					CarrierBookingRequestReference: "OBK-00000001",
					DocumentStatus:                 domain.StatusReceived,
				},
				Commodities: []domain.Commodity{},
			}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["carrier_booking_request_reference"] != "OBK-00000001" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
	if resp["document_status"] != "RECEIVED" {
		t.Fatalf("unexpected status: %+v", resp["document_status"])
	}
}

func TestBookingHandler_Create_MissingRequiredField(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(`{"receipt_type_at_origin":"CY"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBookingHandler_Create_InvalidPayload(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{})

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader("not-json"))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := handler.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestBookingHandler_Create_DomainErrorPassesThrough(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		createFn: func(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error) {
			return nil, domain.ErrVesselAmbiguous
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", strings.NewReader(validBookingBody))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Domain errors are not translated here; the central error handler owns
	// the status mapping.
	if err := handler.Create(c); !errors.Is(err, domain.ErrVesselAmbiguous) {
		t.Fatalf("expected ErrVesselAmbiguous passthrough, got %v", err)
	}
}

func TestBookingHandler_Get_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		getFn: func(ctx context.Context, reference string) (*ports.BookingAggregate, error) {
			if reference != "OBK-00000001" {
				t.Fatalf("unexpected reference: %s", reference)
			}
			return &ports.BookingAggregate{Booking: domain.Booking{CarrierBookingRequestReference: reference}}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/bookings/OBK-00000001", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("OBK-00000001")

	if err := handler.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestBookingHandler_Cancel_RequiresReason(t *testing.T) {
	e := newTestEcho()
	handler := NewBookingHandler(&stubBookingService{
		cancelFn: func(ctx context.Context, reference string, req ports.CancelBookingRequest) (*ports.BookingAggregate, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/OBK-1/cancel", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("OBK-1")

	err := handler.Cancel(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestBookingHandler_Cancel_Success(t *testing.T) {
	e := newTestEcho()
	stub := &stubBookingService{
		cancelFn: func(ctx context.Context, reference string, req ports.CancelBookingRequest) (*ports.BookingAggregate, error) {
			if req.Reason != "cargo not ready" {
				t.Fatalf("reason not forwarded: %q", req.Reason)
			}
			return &ports.BookingAggregate{Booking: domain.Booking{
				CarrierBookingRequestReference: reference,
				DocumentStatus:                 domain.StatusCancelled,
			}}, nil
		},
	}
	handler := NewBookingHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings/OBK-1/cancel", strings.NewReader(`{"reason":"cargo not ready"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("reference")
	c.SetParamValues("OBK-1")

	if err := handler.Cancel(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["document_status"] != "CANCELLED" {
		t.Fatalf("unexpected status: %+v", resp["document_status"])
	}
}
