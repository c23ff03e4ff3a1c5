package handler

import (
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// bookingRequest is the flat inbound shape for create and update. Optional
// scalars are pointers and child collections are slices: a field absent from
// the JSON stays nil, which is semantically distinct from an empty value and
// preserved through to the storage decision.
type bookingRequest struct {
	ReceiptTypeAtOrigin       string `json:"receipt_type_at_origin" validate:"required"`
	DeliveryTypeAtDestination string `json:"delivery_type_at_destination" validate:"required"`
	CargoMovementTypeAtOrigin string `json:"cargo_movement_type_at_origin" validate:"required"`
	CargoMovementTypeAtDest   string `json:"cargo_movement_type_at_destination" validate:"required"`
	ServiceContractReference  string `json:"service_contract_reference" validate:"required"`
	CommunicationChannelCode  string `json:"communication_channel_code" validate:"required"`

	PaymentTermCode                *string    `json:"payment_term_code"`
	IsPartialLoadAllowed           *bool      `json:"is_partial_load_allowed"`
	IsExportDeclarationRequired    *bool      `json:"is_export_declaration_required"`
	ExportDeclarationReference     *string    `json:"export_declaration_reference"`
	IsImportLicenseRequired        *bool      `json:"is_import_license_required"`
	ImportLicenseReference         *string    `json:"import_license_reference"`
	IsAMSACIFilingRequired         *bool      `json:"is_ams_aci_filing_required"`
	IsDestinationFilingRequired    *bool      `json:"is_destination_filing_required"`
	ContractQuotationReference     *string    `json:"contract_quotation_reference"`
	IncoTerms                      *string    `json:"inco_terms"`
	ExpectedDepartureDate          *time.Time `json:"expected_departure_date"`
	ExpectedArrivalStartDate       *time.Time `json:"expected_arrival_at_place_of_delivery_start_date"`
	ExpectedArrivalEndDate         *time.Time `json:"expected_arrival_at_place_of_delivery_end_date"`
	TransportDocumentTypeCode      *string    `json:"transport_document_type_code"`
	TransportDocumentReference     *string    `json:"transport_document_reference"`
	BookingChannelReference        *string    `json:"booking_channel_reference"`
	IsEquipmentSubstitutionAllowed *bool      `json:"is_equipment_substitution_allowed"`
	DeclaredValue                  *float64   `json:"declared_value"`
	DeclaredValueCurrency          *string    `json:"declared_value_currency"`
	ExportVoyageNumber             *string    `json:"export_voyage_number"`
	PreCarriageModeOfTransport     *string    `json:"pre_carriage_mode_of_transport_code"`

	VesselName      *string `json:"vessel_name"`
	VesselIMONumber *string `json:"vessel_imo_number"`

	InvoicePayableAt *domain.Location `json:"invoice_payable_at"`
	PlaceOfIssue     *domain.Location `json:"place_of_issue"`

	Commodities        []domain.Commodity                `json:"commodities"`
	ValueAddedServices []domain.ValueAddedServiceRequest `json:"value_added_service_requests"`
	References         []domain.Reference                `json:"references"`
	RequestedEquipment []domain.RequestedEquipment       `json:"requested_equipments"`
	DocumentParties    []domain.DocumentParty            `json:"document_parties"`
}

// cancelBookingRequest carries the shipper's cancellation reason.
type cancelBookingRequest struct {
	Reason string `json:"reason" validate:"required"`
}
