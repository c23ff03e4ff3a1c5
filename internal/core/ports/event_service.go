package ports

import (
	"context"
	"time"
)

// CarrierEventInput is a carrier-side document-status update as accepted by
// the ingestion endpoint.
type CarrierEventInput struct {
	Reference               string
	Status                  string
	Source                  string
	Timestamp               time.Time
	Reason                  string
	CarrierBookingReference string
	TermsAndConditions      string
}

// CarrierEventService applies carrier-side status events to bookings.
type CarrierEventService interface {
	Process(ctx context.Context, in CarrierEventInput) error
}
