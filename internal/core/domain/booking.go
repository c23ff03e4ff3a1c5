package domain

import (
	"errors"
	"time"
)

// DocumentStatus represents the lifecycle state of a booking document.
type DocumentStatus string

const (
	StatusReceived            DocumentStatus = "RECEIVED"
	StatusPendingUpdate       DocumentStatus = "PENDING_UPDATE"
	StatusPendingConfirmation DocumentStatus = "PENDING_CONFIRMATION"
	StatusConfirmed           DocumentStatus = "CONFIRMED"
	StatusPendingCancellation DocumentStatus = "PENDING_CANCELLATION"
	StatusCancelled           DocumentStatus = "CANCELLED"
	StatusDeclined            DocumentStatus = "DECLINED"
	StatusRejected            DocumentStatus = "REJECTED"
	StatusCompleted           DocumentStatus = "COMPLETED"
)

// carrierTransitions defines the transitions a carrier-side event may apply.
// Cancellation has its own rule set (see CancellableStatuses) because it is
// driven by the shipper through the cancel operation, not by carrier events.
var carrierTransitions = map[DocumentStatus][]DocumentStatus{
	StatusReceived:            {StatusPendingUpdate, StatusPendingConfirmation, StatusConfirmed, StatusDeclined, StatusRejected},
	StatusPendingUpdate:       {StatusPendingConfirmation, StatusConfirmed, StatusDeclined},
	StatusPendingConfirmation: {StatusConfirmed, StatusDeclined},
	StatusConfirmed:           {StatusPendingCancellation, StatusCompleted},
	StatusPendingCancellation: {StatusCancelled},
}

// CancellableStatuses lists every status from which the shipper may cancel.
var CancellableStatuses = []DocumentStatus{
	StatusReceived,
	StatusPendingUpdate,
	StatusConfirmed,
	StatusPendingCancellation,
}

var ErrBookingNotFound = errors.New("booking not found")
var ErrShipmentNotFound = errors.New("shipment not found")
var ErrVesselNotFound = errors.New("no vessel found with the given IMO number")
var ErrVesselNameMismatch = errors.New("provided vessel name does not match vessel name of existing vesselIMONumber")
var ErrVesselAmbiguous = errors.New("unable to identify unique vessel, please provide an IMO number")
var ErrLocationNotFound = errors.New("location not found")
var ErrInvalidTransition = errors.New("invalid document status transition")
var ErrCancellationNotAllowed = errors.New("booking cannot be cancelled from its current status")
var ErrConcurrentModification = errors.New("booking was modified concurrently, cancellation failed")
var ErrEventNotificationFailed = errors.New("lifecycle event could not be published")

// CanTransitionTo reports whether a carrier event may move the document from
// s to next.
func (s DocumentStatus) CanTransitionTo(next DocumentStatus) bool {
	for _, allowed := range carrierTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsCancellable reports whether the shipper may cancel a booking in status s.
func (s DocumentStatus) IsCancellable() bool {
	for _, allowed := range CancellableStatuses {
		if allowed == s {
			return true
		}
	}
	return false
}

// Booking is the root aggregate of a booking request. A booking is never
// updated in place: each update inserts a fresh row and stamps ValidUntil on
// the previous one, so the row with ValidUntil == nil is the active version.
type Booking struct {
	ID                             string         `json:"id" bson:"_id,omitempty"`
	CarrierBookingRequestReference string         `json:"carrier_booking_request_reference" bson:"carrier_booking_request_reference"`
	DocumentStatus                 DocumentStatus `json:"document_status" bson:"document_status"`
	CreatedAt                      time.Time      `json:"created_at" bson:"created_at"`
	UpdatedAt                      time.Time      `json:"updated_at" bson:"updated_at"`
	ValidUntil                     *time.Time     `json:"-" bson:"valid_until"`

	ReceiptTypeAtOrigin       string `json:"receipt_type_at_origin" bson:"receipt_type_at_origin"`
	DeliveryTypeAtDestination string `json:"delivery_type_at_destination" bson:"delivery_type_at_destination"`
	CargoMovementTypeAtOrigin string `json:"cargo_movement_type_at_origin" bson:"cargo_movement_type_at_origin"`
	CargoMovementTypeAtDest   string `json:"cargo_movement_type_at_destination" bson:"cargo_movement_type_at_destination"`
	ServiceContractReference  string `json:"service_contract_reference" bson:"service_contract_reference"`
	CommunicationChannelCode  string `json:"communication_channel_code" bson:"communication_channel_code"`

	PaymentTermCode                *string    `json:"payment_term_code,omitempty" bson:"payment_term_code,omitempty"`
	IsPartialLoadAllowed           *bool      `json:"is_partial_load_allowed,omitempty" bson:"is_partial_load_allowed,omitempty"`
	IsExportDeclarationRequired    *bool      `json:"is_export_declaration_required,omitempty" bson:"is_export_declaration_required,omitempty"`
	ExportDeclarationReference     *string    `json:"export_declaration_reference,omitempty" bson:"export_declaration_reference,omitempty"`
	IsImportLicenseRequired        *bool      `json:"is_import_license_required,omitempty" bson:"is_import_license_required,omitempty"`
	ImportLicenseReference         *string    `json:"import_license_reference,omitempty" bson:"import_license_reference,omitempty"`
	IsAMSACIFilingRequired         *bool      `json:"is_ams_aci_filing_required,omitempty" bson:"is_ams_aci_filing_required,omitempty"`
	IsDestinationFilingRequired    *bool      `json:"is_destination_filing_required,omitempty" bson:"is_destination_filing_required,omitempty"`
	ContractQuotationReference     *string    `json:"contract_quotation_reference,omitempty" bson:"contract_quotation_reference,omitempty"`
	IncoTerms                      *string    `json:"inco_terms,omitempty" bson:"inco_terms,omitempty"`
	ExpectedDepartureDate          *time.Time `json:"expected_departure_date,omitempty" bson:"expected_departure_date,omitempty"`
	ExpectedArrivalStartDate       *time.Time `json:"expected_arrival_at_place_of_delivery_start_date,omitempty" bson:"expected_arrival_start_date,omitempty"`
	ExpectedArrivalEndDate         *time.Time `json:"expected_arrival_at_place_of_delivery_end_date,omitempty" bson:"expected_arrival_end_date,omitempty"`
	TransportDocumentTypeCode      *string    `json:"transport_document_type_code,omitempty" bson:"transport_document_type_code,omitempty"`
	TransportDocumentReference     *string    `json:"transport_document_reference,omitempty" bson:"transport_document_reference,omitempty"`
	BookingChannelReference        *string    `json:"booking_channel_reference,omitempty" bson:"booking_channel_reference,omitempty"`
	IsEquipmentSubstitutionAllowed *bool      `json:"is_equipment_substitution_allowed,omitempty" bson:"is_equipment_substitution_allowed,omitempty"`
	DeclaredValue                  *float64   `json:"declared_value,omitempty" bson:"declared_value,omitempty"`
	DeclaredValueCurrency          *string    `json:"declared_value_currency,omitempty" bson:"declared_value_currency,omitempty"`
	ExportVoyageNumber             *string    `json:"export_voyage_number,omitempty" bson:"export_voyage_number,omitempty"`
	PreCarriageModeOfTransport     *string    `json:"pre_carriage_mode_of_transport_code,omitempty" bson:"pre_carriage_mode_of_transport_code,omitempty"`

	VesselID           *string `json:"-" bson:"vessel_id,omitempty"`
	InvoicePayableAtID *string `json:"-" bson:"invoice_payable_at_id,omitempty"`
	PlaceOfIssueID     *string `json:"-" bson:"place_of_issue_id,omitempty"`
}
