package service

import (
	"errors"
	"testing"
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

func TestValidateBookingRequest_CollectsAllViolations(t *testing.T) {
	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)
	req := ports.BookingRequest{
		IsImportLicenseRequired:     boolPtr(true),
		IsExportDeclarationRequired: boolPtr(true),
		ExpectedArrivalStartDate:    &start,
		ExpectedArrivalEndDate:      &end,
	}

	err := validateBookingRequest(req)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// Both license rules plus the inverted arrival window; the
	// at-least-one-date rule is satisfied by the arrival dates.
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(ve.Fields), ve.Fields)
	}

	seen := map[string]bool{}
	for _, fe := range ve.Fields {
		seen[fe.Field] = true
	}
	for _, want := range []string{"importLicenseReference", "exportDeclarationReference", "expectedArrivalAtPlaceOfDeliveryEndDate"} {
		if !seen[want] {
			t.Errorf("missing field error for %s", want)
		}
	}
}

func TestValidateBookingRequest_VoyageIdentificationAlternatives(t *testing.T) {
	voyage := "2104E"
	imo := "9074729"
	now := time.Now()

	tests := []struct {
		name string
		req  ports.BookingRequest
		ok   bool
	}{
		{"nothing set", ports.BookingRequest{}, false},
		{"imo number suffices", ports.BookingRequest{VesselIMONumber: &imo}, true},
		{"export voyage number suffices", ports.BookingRequest{ExportVoyageNumber: &voyage}, true},
		{"departure date suffices", ports.BookingRequest{ExpectedDepartureDate: &now}, true},
		{"arrival start suffices", ports.BookingRequest{ExpectedArrivalStartDate: &now}, true},
		{"arrival end suffices", ports.BookingRequest{ExpectedArrivalEndDate: &now}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validateBookingRequest(tc.req)
			if tc.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestValidateBookingRequest_EqualArrivalWindowIsValid(t *testing.T) {
	at := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	req := ports.BookingRequest{
		ExpectedArrivalStartDate: &at,
		ExpectedArrivalEndDate:   &at,
	}
	if err := validateBookingRequest(req); err != nil {
		t.Errorf("equal start and end must be valid: %v", err)
	}
}
