package handler

import "github.com/oceanbook/booking-system/internal/core/ports"

// toBookingRequest maps the HTTP request to the service DTO. Server-owned
// fields (status, timestamps, ids) have no request counterpart: a caller
// cannot smuggle them in.
func toBookingRequest(r bookingRequest) ports.BookingRequest {
	return ports.BookingRequest{
		ReceiptTypeAtOrigin:            r.ReceiptTypeAtOrigin,
		DeliveryTypeAtDestination:      r.DeliveryTypeAtDestination,
		CargoMovementTypeAtOrigin:      r.CargoMovementTypeAtOrigin,
		CargoMovementTypeAtDest:        r.CargoMovementTypeAtDest,
		ServiceContractReference:       r.ServiceContractReference,
		CommunicationChannelCode:       r.CommunicationChannelCode,
		PaymentTermCode:                r.PaymentTermCode,
		IsPartialLoadAllowed:           r.IsPartialLoadAllowed,
		IsExportDeclarationRequired:    r.IsExportDeclarationRequired,
		ExportDeclarationReference:     r.ExportDeclarationReference,
		IsImportLicenseRequired:        r.IsImportLicenseRequired,
		ImportLicenseReference:         r.ImportLicenseReference,
		IsAMSACIFilingRequired:         r.IsAMSACIFilingRequired,
		IsDestinationFilingRequired:    r.IsDestinationFilingRequired,
		ContractQuotationReference:     r.ContractQuotationReference,
		IncoTerms:                      r.IncoTerms,
		ExpectedDepartureDate:          r.ExpectedDepartureDate,
		ExpectedArrivalStartDate:       r.ExpectedArrivalStartDate,
		ExpectedArrivalEndDate:         r.ExpectedArrivalEndDate,
		TransportDocumentTypeCode:      r.TransportDocumentTypeCode,
		TransportDocumentReference:     r.TransportDocumentReference,
		BookingChannelReference:        r.BookingChannelReference,
		IsEquipmentSubstitutionAllowed: r.IsEquipmentSubstitutionAllowed,
		DeclaredValue:                  r.DeclaredValue,
		DeclaredValueCurrency:          r.DeclaredValueCurrency,
		ExportVoyageNumber:             r.ExportVoyageNumber,
		PreCarriageModeOfTransport:     r.PreCarriageModeOfTransport,
		VesselName:                     r.VesselName,
		VesselIMONumber:                r.VesselIMONumber,
		InvoicePayableAt:               r.InvoicePayableAt,
		PlaceOfIssue:                   r.PlaceOfIssue,
		Commodities:                    r.Commodities,
		ValueAddedServices:             r.ValueAddedServices,
		References:                     r.References,
		RequestedEquipment:             r.RequestedEquipment,
		DocumentParties:                r.DocumentParties,
	}
}
