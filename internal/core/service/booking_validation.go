package service

import (
	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// validateBookingRequest checks the conditional cross-field rules that
// field-level validation cannot express. It collects every violation instead
// of stopping at the first one and runs before any persistence, so a failed
// request has no side effects.
func validateBookingRequest(req ports.BookingRequest) error {
	var fields []domain.FieldError

	if req.IsImportLicenseRequired != nil && *req.IsImportLicenseRequired && req.ImportLicenseReference == nil {
		fields = append(fields, domain.FieldError{
			Field:   "importLicenseReference",
			Message: "importLicenseReference cannot be null if isImportLicenseRequired is true",
		})
	}

	if req.IsExportDeclarationRequired != nil && *req.IsExportDeclarationRequired && req.ExportDeclarationReference == nil {
		fields = append(fields, domain.FieldError{
			Field:   "exportDeclarationReference",
			Message: "exportDeclarationReference cannot be null if isExportDeclarationRequired is true",
		})
	}

	if req.VesselIMONumber == nil &&
		req.ExportVoyageNumber == nil &&
		req.ExpectedDepartureDate == nil &&
		req.ExpectedArrivalStartDate == nil &&
		req.ExpectedArrivalEndDate == nil {
		fields = append(fields, domain.FieldError{
			Field:   "expectedDepartureDate",
			Message: "at least one of vesselIMONumber, exportVoyageNumber, expectedDepartureDate, expectedArrivalAtPlaceOfDeliveryStartDate or expectedArrivalAtPlaceOfDeliveryEndDate must be provided",
		})
	}

	if req.ExpectedArrivalStartDate != nil && req.ExpectedArrivalEndDate != nil &&
		req.ExpectedArrivalEndDate.Before(*req.ExpectedArrivalStartDate) {
		fields = append(fields, domain.FieldError{
			Field:   "expectedArrivalAtPlaceOfDeliveryEndDate",
			Message: "expectedArrivalAtPlaceOfDeliveryEndDate must not precede expectedArrivalAtPlaceOfDeliveryStartDate",
		})
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
