package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store (Redis).
type DedupChecker interface {
	IsDuplicate(ctx context.Context, reference, status string, ts time.Time) (bool, error)
	Mark(ctx context.Context, reference, status string, ts time.Time) error
}

type carrierEventService struct {
	bookings  ports.BookingRepository
	shipments ports.ShipmentRepository
	events    ports.EventRepository
	notifier  ports.EventNotifier
	dedup     DedupChecker
	log       zerolog.Logger
}

// NewCarrierEventService returns a CarrierEventService implementation.
func NewCarrierEventService(
	bookings ports.BookingRepository,
	shipments ports.ShipmentRepository,
	events ports.EventRepository,
	notifier ports.EventNotifier,
	dedup DedupChecker,
	log zerolog.Logger,
) ports.CarrierEventService {
	return &carrierEventService{
		bookings:  bookings,
		shipments: shipments,
		events:    events,
		notifier:  notifier,
		dedup:     dedup,
		log:       log,
	}
}

// Process validates, deduplicates, and applies a single carrier-side document
// status event. A CONFIRMED event additionally creates the shipment row.
func (s *carrierEventService) Process(ctx context.Context, in ports.CarrierEventInput) error {
	next := domain.DocumentStatus(in.Status)

	// 1. Idempotency check — silently skip duplicates.
	isDup, err := s.dedup.IsDuplicate(ctx, in.Reference, in.Status, in.Timestamp)
	if err != nil {
		s.log.Warn().Err(err).Str("reference", in.Reference).Msg("dedup check failed, processing anyway")
	} else if isDup {
		s.log.Debug().Str("reference", in.Reference).Str("status", in.Status).Msg("duplicate carrier event skipped")
		return nil
	}

	// 2. Find the active booking version.
	booking, err := s.bookings.FindActiveByReference(ctx, in.Reference)
	if err != nil {
		return fmt.Errorf("process carrier event: %w", err)
	}

	// 3. Validate the state machine transition.
	if !booking.DocumentStatus.CanTransitionTo(next) {
		return fmt.Errorf("process carrier event: %w (from %s to %s)", domain.ErrInvalidTransition, booking.DocumentStatus, next)
	}

	// 4. Mark as processed before writing (prevents duplicate processing on retry).
	if markErr := s.dedup.Mark(ctx, in.Reference, in.Status, in.Timestamp); markErr != nil {
		s.log.Warn().Err(markErr).Str("reference", in.Reference).Msg("failed to set dedup key")
	}

	// 5. Apply the transition with a compare-and-swap on the current status.
	ok, err := s.bookings.ConditionalUpdateStatus(ctx, in.Reference, []domain.DocumentStatus{booking.DocumentStatus}, next, in.Timestamp)
	if err != nil {
		return fmt.Errorf("process carrier event: update status: %w", err)
	}
	if !ok {
		return fmt.Errorf("process carrier event: %w", domain.ErrConcurrentModification)
	}

	// 6. A confirmation creates the shipment the carrier now owns.
	if next == domain.StatusConfirmed {
		shipment := &domain.Shipment{
			ID:                      uuid.NewString(),
			BookingID:               booking.ID,
			CarrierBookingReference: in.CarrierBookingReference,
			TermsAndConditions:      in.TermsAndConditions,
			ShipmentCreatedDateTime: in.Timestamp,
		}
		if err := s.shipments.Create(ctx, shipment); err != nil {
			return fmt.Errorf("process carrier event: create shipment: %w", err)
		}
	}

	event := domain.LifecycleEvent{
		ID:            uuid.NewString(),
		DocumentType:  domain.DocumentTypeBooking,
		DocumentID:    booking.ID,
		Reference:     in.Reference,
		Status:        next,
		Reason:        in.Reason,
		EventDateTime: in.Timestamp,
	}

	// 7. Insert into the audit trail (non-fatal on failure).
	if err := s.events.Insert(ctx, &event); err != nil {
		s.log.Warn().Err(err).Str("reference", in.Reference).Msg("failed to insert audit event")
	}

	// 8. Publish the lifecycle event.
	if err := s.notifier.Notify(ctx, event); err != nil {
		return fmt.Errorf("process carrier event: %w: %v", domain.ErrEventNotificationFailed, err)
	}

	s.log.Info().
		Str("reference", in.Reference).
		Str("status", in.Status).
		Str("source", in.Source).
		Msg("carrier event processed")

	return nil
}
