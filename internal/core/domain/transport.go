package domain

import "time"

// Transport is one leg of the planned transport on a confirmed shipment.
// Import and export voyage numbers may legitimately differ for the same leg
// and both are kept.
type Transport struct {
	ID                   string    `json:"id" bson:"_id,omitempty"`
	ShipmentID           string    `json:"-" bson:"shipment_id"`
	PlanStage            string    `json:"transport_plan_stage" bson:"transport_plan_stage"`
	PlanStageSequence    int       `json:"transport_plan_stage_sequence_number" bson:"transport_plan_stage_sequence_number"`
	ModeOfTransport      string    `json:"mode_of_transport" bson:"mode_of_transport"`
	LoadLocationID       string    `json:"-" bson:"load_location_id"`
	DischargeLocationID  string    `json:"-" bson:"discharge_location_id"`
	PlannedDepartureDate time.Time `json:"planned_departure_date" bson:"planned_departure_date"`
	PlannedArrivalDate   time.Time `json:"planned_arrival_date" bson:"planned_arrival_date"`
	VesselID             *string   `json:"-" bson:"vessel_id,omitempty"`
	ImportVoyageNumber   *string   `json:"import_voyage_number,omitempty" bson:"import_voyage_number,omitempty"`
	ExportVoyageNumber   *string   `json:"export_voyage_number,omitempty" bson:"export_voyage_number,omitempty"`
}
