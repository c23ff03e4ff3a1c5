package domain

import "time"

// Shipment is created once the carrier confirms a booking. It links 1:1 to
// the confirmed booking version and owns the carrier-side child collections
// (shipment locations, cut-off times, clauses, charges, transports,
// confirmed equipment).
type Shipment struct {
	ID                      string    `json:"id" bson:"_id,omitempty"`
	BookingID               string    `json:"-" bson:"booking_id"`
	CarrierBookingReference string    `json:"carrier_booking_reference" bson:"carrier_booking_reference"`
	TermsAndConditions      string    `json:"terms_and_conditions" bson:"terms_and_conditions"`
	ShipmentCreatedDateTime time.Time `json:"shipment_created_date_time" bson:"shipment_created_date_time"`
}

// ShipmentLocation ties a resolved location to a shipment with a role code
// (e.g. PRE for place of receipt, POL for port of loading).
type ShipmentLocation struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	ShipmentID    string     `json:"-" bson:"shipment_id"`
	LocationID    string     `json:"-" bson:"location_id"`
	LocationType  string     `json:"shipment_location_type_code" bson:"shipment_location_type_code"`
	DisplayedName string     `json:"displayed_name,omitempty" bson:"displayed_name,omitempty"`
	EventDateTime *time.Time `json:"event_date_time,omitempty" bson:"event_date_time,omitempty"`
}

// ShipmentCutOffTime is a carrier-communicated deadline for the shipment.
type ShipmentCutOffTime struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	ShipmentID     string    `json:"-" bson:"shipment_id"`
	CutOffTimeCode string    `json:"cut_off_date_time_code" bson:"cut_off_date_time_code"`
	CutOffDateTime time.Time `json:"cut_off_date_time" bson:"cut_off_date_time"`
}

// CarrierClause is a free-text clause the carrier attaches to the shipment.
type CarrierClause struct {
	ID            string `json:"id" bson:"_id,omitempty"`
	ShipmentID    string `json:"-" bson:"shipment_id"`
	ClauseContent string `json:"clause_content" bson:"clause_content"`
}

// Charge is a single freight or surcharge line on the shipment.
type Charge struct {
	ID               string  `json:"id" bson:"_id,omitempty"`
	ShipmentID       string  `json:"-" bson:"shipment_id"`
	ChargeType       string  `json:"charge_type" bson:"charge_type"`
	CurrencyAmount   float64 `json:"currency_amount" bson:"currency_amount"`
	CurrencyCode     string  `json:"currency_code" bson:"currency_code"`
	PaymentTermCode  string  `json:"payment_term_code" bson:"payment_term_code"`
	CalculationBasis string  `json:"calculation_basis" bson:"calculation_basis"`
	UnitPrice        float64 `json:"unit_price" bson:"unit_price"`
	Quantity         float64 `json:"quantity" bson:"quantity"`
}
