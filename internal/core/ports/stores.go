package ports

import (
	"context"
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// BookingRepository persists booking versions. A booking is append-only: the
// row with valid_until == nil is the active version for its reference.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	// FindActiveByReference returns the single active version for reference,
	// or domain.ErrBookingNotFound when no active version exists.
	FindActiveByReference(ctx context.Context, reference string) (*domain.Booking, error)
	// Supersede stamps valid_until on the active version of reference.
	// Returns false when no active version was matched (concurrent supersede).
	Supersede(ctx context.Context, reference string, at time.Time) (bool, error)
	// SetLocationLinks attaches the resolved invoice-payable-at and
	// place-of-issue location ids to an already persisted booking row.
	SetLocationLinks(ctx context.Context, id string, invoicePayableAtID, placeOfIssueID *string) error
	// ConditionalUpdateStatus performs a compare-and-swap status write on the
	// active version of reference: the write only applies when the current
	// status is one of expected (nil expected = unconditional). Returns false
	// when zero rows changed.
	ConditionalUpdateStatus(ctx context.Context, reference string, expected []domain.DocumentStatus, next domain.DocumentStatus, at time.Time) (bool, error)
}

// ShipmentRepository persists confirmed shipments.
type ShipmentRepository interface {
	Create(ctx context.Context, s *domain.Shipment) error
	FindByCarrierBookingReference(ctx context.Context, reference string) (*domain.Shipment, error)
	FindByBookingID(ctx context.Context, bookingID string) (*domain.Shipment, error)
}

// VesselRepository looks vessels up for resolution. FindByIMONumber returns
// domain.ErrVesselNotFound when no vessel carries the number.
type VesselRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Vessel, error)
	FindByIMONumber(ctx context.Context, imoNumber string) (*domain.Vessel, error)
	FindAllByName(ctx context.Context, name string) ([]domain.Vessel, error)
}

// LocationRepository backs find-or-create location resolution.
type LocationRepository interface {
	Create(ctx context.Context, l *domain.Location) error
	FindByID(ctx context.Context, id string) (*domain.Location, error)
	// FindMatch returns an existing location whose identifying fields equal
	// candidate's, or domain.ErrLocationNotFound.
	FindMatch(ctx context.Context, candidate *domain.Location) (*domain.Location, error)
}

// AddressRepository and FacilityRepository load location sub-objects on deep
// reads.
type AddressRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Address, error)
}

type FacilityRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Facility, error)
}

// EventRepository is the audit trail of applied lifecycle transitions.
type EventRepository interface {
	Insert(ctx context.Context, e *domain.LifecycleEvent) error
	FindByReference(ctx context.Context, reference string) ([]domain.LifecycleEvent, error)
}

// ChildStore persists one optional child collection keyed by its owning
// aggregate id. Replace implements replacement semantics: the previous rows
// for ownerID are dropped and items inserted, so an empty items clears the
// collection.
type ChildStore[T any] interface {
	Replace(ctx context.Context, ownerID string, items []T) error
	FindByOwner(ctx context.Context, ownerID string) ([]T, error)
}

// BookingStores groups the child stores owned by a booking id.
type BookingStores struct {
	Commodities        ChildStore[domain.Commodity]
	ValueAddedServices ChildStore[domain.ValueAddedServiceRequest]
	References         ChildStore[domain.Reference]
	RequestedEquipment ChildStore[domain.RequestedEquipment]
	DocumentParties    ChildStore[domain.DocumentParty]
}

// ShipmentStores groups the child stores owned by a shipment id.
type ShipmentStores struct {
	Locations          ChildStore[domain.ShipmentLocation]
	CutOffTimes        ChildStore[domain.ShipmentCutOffTime]
	CarrierClauses     ChildStore[domain.CarrierClause]
	Charges            ChildStore[domain.Charge]
	Transports         ChildStore[domain.Transport]
	ConfirmedEquipment ChildStore[domain.ConfirmedEquipment]
}
