package ports

import (
	"context"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

// TransportDetail is a transport leg with its load/discharge locations and
// vessel joined in.
type TransportDetail struct {
	domain.Transport  `json:",inline"`
	LoadLocation      *LocationDetail `json:"load_location,omitempty"`
	DischargeLocation *LocationDetail `json:"discharge_location,omitempty"`
	Vessel            *domain.Vessel  `json:"vessel,omitempty"`
}

// ShipmentAggregate is the full nested response tree rooted at a shipment,
// including the booking it confirms.
type ShipmentAggregate struct {
	domain.Shipment    `json:",inline"`
	Booking            *BookingAggregate           `json:"booking,omitempty"`
	ShipmentLocations  []ShipmentLocationDetail    `json:"shipment_locations"`
	CutOffTimes        []domain.ShipmentCutOffTime `json:"shipment_cut_off_times"`
	CarrierClauses     []domain.CarrierClause      `json:"carrier_clauses"`
	Charges            []domain.Charge             `json:"charges"`
	Transports         []TransportDetail           `json:"transports"`
	ConfirmedEquipment []domain.ConfirmedEquipment `json:"confirmed_equipments"`
}

// ShipmentLocationDetail is a shipment location with its location resolved
// deep.
type ShipmentLocationDetail struct {
	domain.ShipmentLocation `json:",inline"`
	Location                *LocationDetail `json:"location,omitempty"`
}

// ShipmentService exposes the shipment read side.
type ShipmentService interface {
	GetByReference(ctx context.Context, carrierBookingReference string) (*ShipmentAggregate, error)
}
