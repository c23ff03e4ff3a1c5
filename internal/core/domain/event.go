package domain

import "time"

// Document types carried on lifecycle events.
const (
	DocumentTypeBooking  = "BKG"
	DocumentTypeShipment = "SHI"
)

// LifecycleEvent records a document-status change for publication and audit.
type LifecycleEvent struct {
	ID            string         `json:"id" bson:"_id,omitempty"`
	DocumentType  string         `json:"document_type" bson:"document_type"`
	DocumentID    string         `json:"document_id" bson:"document_id"`
	Reference     string         `json:"carrier_booking_request_reference" bson:"carrier_booking_request_reference"`
	Status        DocumentStatus `json:"document_status" bson:"document_status"`
	Reason        string         `json:"reason,omitempty" bson:"reason,omitempty"`
	EventDateTime time.Time      `json:"event_date_time" bson:"event_date_time"`
}

// CarrierEvent is a document-status update received from the carrier side.
// On CONFIRMED events the carrier also supplies the shipment fields.
type CarrierEvent struct {
	Reference               string
	Status                  DocumentStatus
	Source                  string
	Timestamp               time.Time
	Reason                  string
	CarrierBookingReference string
	TermsAndConditions      string
}
