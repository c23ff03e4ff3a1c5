package ports

import (
	"context"
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// BookingRequest carries all data of a create or update booking call. Every
// optional scalar is a pointer and every child collection is a slice whose
// nil-ness is meaningful: nil = absent (skipped on create, cleared on
// update), non-nil empty = explicitly empty.
type BookingRequest struct {
	ReceiptTypeAtOrigin       string
	DeliveryTypeAtDestination string
	CargoMovementTypeAtOrigin string
	CargoMovementTypeAtDest   string
	ServiceContractReference  string
	CommunicationChannelCode  string

	PaymentTermCode                *string
	IsPartialLoadAllowed           *bool
	IsExportDeclarationRequired    *bool
	ExportDeclarationReference     *string
	IsImportLicenseRequired        *bool
	ImportLicenseReference         *string
	IsAMSACIFilingRequired         *bool
	IsDestinationFilingRequired    *bool
	ContractQuotationReference     *string
	IncoTerms                      *string
	ExpectedDepartureDate          *time.Time
	ExpectedArrivalStartDate       *time.Time
	ExpectedArrivalEndDate         *time.Time
	TransportDocumentTypeCode      *string
	TransportDocumentReference     *string
	BookingChannelReference        *string
	IsEquipmentSubstitutionAllowed *bool
	DeclaredValue                  *float64
	DeclaredValueCurrency          *string
	ExportVoyageNumber             *string
	PreCarriageModeOfTransport     *string

	VesselName      *string
	VesselIMONumber *string

	InvoicePayableAt *domain.Location
	PlaceOfIssue     *domain.Location

	Commodities        []domain.Commodity
	ValueAddedServices []domain.ValueAddedServiceRequest
	References         []domain.Reference
	RequestedEquipment []domain.RequestedEquipment
	DocumentParties    []domain.DocumentParty
}

// CancelBookingRequest carries the shipper's cancellation intent.
type CancelBookingRequest struct {
	Reason string
}

// LocationDetail is a location with its optional Address and Facility
// resolved inline (the "deep" read shape).
type LocationDetail struct {
	domain.Location `json:",inline" bson:",inline"`
	Address         *domain.Address  `json:"address,omitempty"`
	Facility        *domain.Facility `json:"facility,omitempty"`
}

// BookingAggregate is the full nested response tree rooted at a booking.
// List-typed collections are always non-nil (empty when no rows exist);
// object-typed relations are nil when absent.
type BookingAggregate struct {
	domain.Booking     `json:",inline"`
	Vessel             *domain.Vessel                    `json:"vessel,omitempty"`
	InvoicePayableAt   *LocationDetail                   `json:"invoice_payable_at,omitempty"`
	PlaceOfIssue       *LocationDetail                   `json:"place_of_issue,omitempty"`
	Commodities        []domain.Commodity                `json:"commodities"`
	ValueAddedServices []domain.ValueAddedServiceRequest `json:"value_added_service_requests"`
	References         []domain.Reference                `json:"references"`
	RequestedEquipment []domain.RequestedEquipment       `json:"requested_equipments"`
	DocumentParties    []domain.DocumentParty            `json:"document_parties"`
}

// BookingService defines the aggregate orchestration operations.
type BookingService interface {
	Create(ctx context.Context, req BookingRequest) (*BookingAggregate, error)
	UpdateByReference(ctx context.Context, reference string, req BookingRequest) (*BookingAggregate, error)
	GetByReference(ctx context.Context, reference string) (*BookingAggregate, error)
	CancelByReference(ctx context.Context, reference string, req CancelBookingRequest) (*BookingAggregate, error)
}
