package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// BookingService orchestrates the booking aggregate: it validates conditional
// business rules, resolves vessels and locations, fans out persistence of the
// optional child collections, and reassembles the nested response tree. It is
// stateless per call; the "one active version per reference" invariant is
// enforced by conditional writes at the storage layer.
type BookingService struct {
	bookings  ports.BookingRepository
	stores    ports.BookingStores
	events    ports.EventRepository
	notifier  ports.EventNotifier
	vessels   *VesselResolver
	locations *LocationResolver
	log       zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	stores ports.BookingStores,
	events ports.EventRepository,
	notifier ports.EventNotifier,
	vessels *VesselResolver,
	locations *LocationResolver,
	log zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		stores:    stores,
		events:    events,
		notifier:  notifier,
		vessels:   vessels,
		locations: locations,
		log:       log,
	}
}

// Create validates the request, resolves the vessel, persists the booking and
// its child collections, publishes the "booking received" event, and returns
// the re-read aggregate. Status and timestamps are always server-owned; any
// caller-supplied value is discarded.
func (s *BookingService) Create(ctx context.Context, req ports.BookingRequest) (*ports.BookingAggregate, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	vessel, err := s.vessels.Resolve(ctx, req.VesselIMONumber, req.VesselName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := bookingFromRequest(req)
	booking.ID = uuid.NewString()
	booking.CarrierBookingRequestReference = generateBookingReference()
	booking.DocumentStatus = domain.StatusReceived
	booking.CreatedAt = now
	booking.UpdatedAt = now
	if vessel != nil {
		booking.VesselID = &vessel.ID
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.linkLocations(ctx, booking, req); err != nil {
		return nil, err
	}

	// Child collections are independent of each other: write them
	// concurrently, first failure wins. Absent (nil) collections are
	// skipped entirely, not persisted as empty.
	if err := s.persistChildren(ctx, booking.ID, req, false); err != nil {
		return nil, err
	}

	if err := s.publishEvent(ctx, booking, domain.StatusReceived, ""); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reference", booking.CarrierBookingRequestReference).
		Str("booking_id", booking.ID).
		Msg("booking created")

	return s.assemble(ctx, booking)
}

// UpdateByReference supersedes the active version of reference with a new one
// built from req. Every request field replaces the persisted state: child
// collections absent from the request are cleared, not merged.
func (s *BookingService) UpdateByReference(ctx context.Context, reference string, req ports.BookingRequest) (*ports.BookingAggregate, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}

	current, err := s.bookings.FindActiveByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	vessel, err := s.vessels.Resolve(ctx, req.VesselIMONumber, req.VesselName)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	superseded, err := s.bookings.Supersede(ctx, reference, now)
	if err != nil {
		return nil, fmt.Errorf("update booking %s: %w", reference, err)
	}
	if !superseded {
		return nil, domain.ErrConcurrentModification
	}

	// The new version keeps the business key, status, and creation
	// timestamp of the version it replaces.
	booking := bookingFromRequest(req)
	booking.ID = uuid.NewString()
	booking.CarrierBookingRequestReference = reference
	booking.DocumentStatus = current.DocumentStatus
	booking.CreatedAt = current.CreatedAt
	booking.UpdatedAt = now
	if vessel != nil {
		booking.VesselID = &vessel.ID
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking %s: %w", reference, err)
	}

	if err := s.linkLocations(ctx, booking, req); err != nil {
		return nil, err
	}

	if err := s.persistChildren(ctx, booking.ID, req, true); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reference", reference).
		Str("booking_id", booking.ID).
		Str("superseded_id", current.ID).
		Msg("booking updated")

	return s.assemble(ctx, booking)
}

// GetByReference returns the assembled aggregate for the active version of
// reference.
func (s *BookingService) GetByReference(ctx context.Context, reference string) (*ports.BookingAggregate, error) {
	booking, err := s.bookings.FindActiveByReference(ctx, reference)
	if err != nil {
		return nil, err
	}
	return s.assemble(ctx, booking)
}

// CancelByReference transitions the active version of reference to CANCELLED.
// The status write is a compare-and-swap conditioned on the current status
// still being cancellable; zero rows affected surfaces as a conflict, never
// a crash.
func (s *BookingService) CancelByReference(ctx context.Context, reference string, req ports.CancelBookingRequest) (*ports.BookingAggregate, error) {
	booking, err := s.bookings.FindActiveByReference(ctx, reference)
	if err != nil {
		return nil, err
	}

	if !booking.DocumentStatus.IsCancellable() {
		return nil, fmt.Errorf("%w: status is %s, cancellable statuses are %v",
			domain.ErrCancellationNotAllowed, booking.DocumentStatus, domain.CancellableStatuses)
	}

	now := time.Now().UTC()
	ok, err := s.bookings.ConditionalUpdateStatus(ctx, reference, domain.CancellableStatuses, domain.StatusCancelled, now)
	if err != nil {
		return nil, fmt.Errorf("cancel booking %s: %w", reference, err)
	}
	if !ok {
		return nil, domain.ErrConcurrentModification
	}

	booking.DocumentStatus = domain.StatusCancelled
	booking.UpdatedAt = now

	if err := s.publishEvent(ctx, booking, domain.StatusCancelled, req.Reason); err != nil {
		return nil, err
	}

	s.log.Info().
		Str("reference", reference).
		Str("reason", req.Reason).
		Msg("booking cancelled")

	return s.assemble(ctx, booking)
}

// linkLocations resolves invoicePayableAt and placeOfIssue (find-or-create)
// and attaches their ids to the persisted booking row. Both resolutions are
// independent and run concurrently.
func (s *BookingService) linkLocations(ctx context.Context, booking *domain.Booking, req ports.BookingRequest) error {
	if req.InvoicePayableAt == nil && req.PlaceOfIssue == nil {
		return nil
	}

	var invoicePayableAtID, placeOfIssueID *string
	g, gctx := errgroup.WithContext(ctx)
	if req.InvoicePayableAt != nil {
		g.Go(func() error {
			loc, err := s.locations.Ensure(gctx, req.InvoicePayableAt)
			if err != nil {
				return fmt.Errorf("invoicePayableAt: %w", err)
			}
			invoicePayableAtID = &loc.ID
			return nil
		})
	}
	if req.PlaceOfIssue != nil {
		g.Go(func() error {
			loc, err := s.locations.Ensure(gctx, req.PlaceOfIssue)
			if err != nil {
				return fmt.Errorf("placeOfIssue: %w", err)
			}
			placeOfIssueID = &loc.ID
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.bookings.SetLocationLinks(ctx, booking.ID, invoicePayableAtID, placeOfIssueID); err != nil {
		return fmt.Errorf("link locations: %w", err)
	}
	booking.InvoicePayableAtID = invoicePayableAtID
	booking.PlaceOfIssueID = placeOfIssueID
	return nil
}

// persistChildren fans the five booking-owned child collections out to their
// stores. With replaceAbsent (the update path) a nil collection still calls
// Replace, clearing previously stored rows; on create a nil collection is
// skipped.
func (s *BookingService) persistChildren(ctx context.Context, bookingID string, req ports.BookingRequest, replaceAbsent bool) error {
	g, gctx := errgroup.WithContext(ctx)

	writeChildren(g, gctx, s.stores.Commodities, bookingID, req.Commodities, replaceAbsent, stampCommodity)
	writeChildren(g, gctx, s.stores.ValueAddedServices, bookingID, req.ValueAddedServices, replaceAbsent, stampValueAddedService)
	writeChildren(g, gctx, s.stores.References, bookingID, req.References, replaceAbsent, stampReference)
	writeChildren(g, gctx, s.stores.RequestedEquipment, bookingID, req.RequestedEquipment, replaceAbsent, stampRequestedEquipment)
	writeChildren(g, gctx, s.stores.DocumentParties, bookingID, req.DocumentParties, replaceAbsent, stampDocumentParty)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("persist booking children: %w", err)
	}
	return nil
}

// writeChildren schedules one child-collection write on the group. stamp
// assigns the owner id and a fresh row id to each item.
func writeChildren[T any](g *errgroup.Group, ctx context.Context, store ports.ChildStore[T], ownerID string, items []T, replaceAbsent bool, stamp func(*T, string)) {
	if items == nil && !replaceAbsent {
		return
	}
	g.Go(func() error {
		stamped := make([]T, len(items))
		for i := range items {
			stamped[i] = items[i]
			stamp(&stamped[i], ownerID)
		}
		return store.Replace(ctx, ownerID, stamped)
	})
}

func stampCommodity(c *domain.Commodity, ownerID string) {
	c.ID = uuid.NewString()
	c.BookingID = ownerID
}

func stampValueAddedService(v *domain.ValueAddedServiceRequest, ownerID string) {
	v.ID = uuid.NewString()
	v.BookingID = ownerID
}

func stampReference(r *domain.Reference, ownerID string) {
	r.ID = uuid.NewString()
	r.BookingID = ownerID
}

func stampRequestedEquipment(e *domain.RequestedEquipment, ownerID string) {
	e.ID = uuid.NewString()
	e.BookingID = ownerID
}

func stampDocumentParty(p *domain.DocumentParty, ownerID string) {
	p.ID = uuid.NewString()
	p.BookingID = ownerID
	if p.Party.ID == "" {
		p.Party.ID = uuid.NewString()
	}
}

// publishEvent records the transition in the audit trail and publishes it to
// the notifier. A notifier failure fails the operation: the transition is not
// durable without its event. The audit insert is best effort.
func (s *BookingService) publishEvent(ctx context.Context, booking *domain.Booking, status domain.DocumentStatus, reason string) error {
	event := domain.LifecycleEvent{
		ID:            uuid.NewString(),
		DocumentType:  domain.DocumentTypeBooking,
		DocumentID:    booking.ID,
		Reference:     booking.CarrierBookingRequestReference,
		Status:        status,
		Reason:        reason,
		EventDateTime: time.Now().UTC(),
	}

	if err := s.events.Insert(ctx, &event); err != nil {
		s.log.Warn().Err(err).Str("reference", event.Reference).Msg("failed to insert audit event")
	}

	if err := s.notifier.Notify(ctx, event); err != nil {
		s.log.Error().Err(err).Str("reference", event.Reference).Msg("event notification failed")
		return fmt.Errorf("%w: %v", domain.ErrEventNotificationFailed, err)
	}
	return nil
}

// assemble re-reads every relation of booking concurrently and builds the
// nested response tree. Object-typed relations stay nil when absent;
// list-typed collections are always non-nil.
func (s *BookingService) assemble(ctx context.Context, booking *domain.Booking) (*ports.BookingAggregate, error) {
	agg := &ports.BookingAggregate{Booking: *booking}

	g, gctx := errgroup.WithContext(ctx)

	if booking.VesselID != nil {
		g.Go(func() error {
			vessel, err := s.vessels.repo.FindByID(gctx, *booking.VesselID)
			if err != nil {
				return fmt.Errorf("assemble vessel: %w", err)
			}
			agg.Vessel = vessel
			return nil
		})
	}
	if booking.InvoicePayableAtID != nil {
		g.Go(func() error {
			detail, err := s.locations.Deep(gctx, *booking.InvoicePayableAtID)
			if err != nil {
				return err
			}
			agg.InvoicePayableAt = detail
			return nil
		})
	}
	if booking.PlaceOfIssueID != nil {
		g.Go(func() error {
			detail, err := s.locations.Deep(gctx, *booking.PlaceOfIssueID)
			if err != nil {
				return err
			}
			agg.PlaceOfIssue = detail
			return nil
		})
	}

	readChildren(g, gctx, s.stores.Commodities, booking.ID, &agg.Commodities)
	readChildren(g, gctx, s.stores.ValueAddedServices, booking.ID, &agg.ValueAddedServices)
	readChildren(g, gctx, s.stores.References, booking.ID, &agg.References)
	readChildren(g, gctx, s.stores.RequestedEquipment, booking.ID, &agg.RequestedEquipment)
	readChildren(g, gctx, s.stores.DocumentParties, booking.ID, &agg.DocumentParties)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble booking %s: %w", booking.CarrierBookingRequestReference, err)
	}
	return agg, nil
}

// readChildren schedules one child-collection read on the group, normalising
// a missing collection to an empty (non-nil) list.
func readChildren[T any](g *errgroup.Group, ctx context.Context, store ports.ChildStore[T], ownerID string, out *[]T) {
	g.Go(func() error {
		items, err := store.FindByOwner(ctx, ownerID)
		if err != nil {
			return err
		}
		if items == nil {
			items = []T{}
		}
		*out = items
		return nil
	})
}

// bookingFromRequest copies the scalar business fields of req into a fresh
// booking row. Identity, status, and timestamps are assigned by the caller.
func bookingFromRequest(req ports.BookingRequest) *domain.Booking {
	return &domain.Booking{
		ReceiptTypeAtOrigin:            req.ReceiptTypeAtOrigin,
		DeliveryTypeAtDestination:      req.DeliveryTypeAtDestination,
		CargoMovementTypeAtOrigin:      req.CargoMovementTypeAtOrigin,
		CargoMovementTypeAtDest:        req.CargoMovementTypeAtDest,
		ServiceContractReference:       req.ServiceContractReference,
		CommunicationChannelCode:       req.CommunicationChannelCode,
		PaymentTermCode:                req.PaymentTermCode,
		IsPartialLoadAllowed:           req.IsPartialLoadAllowed,
		IsExportDeclarationRequired:    req.IsExportDeclarationRequired,
		ExportDeclarationReference:     req.ExportDeclarationReference,
		IsImportLicenseRequired:        req.IsImportLicenseRequired,
		ImportLicenseReference:         req.ImportLicenseReference,
		IsAMSACIFilingRequired:         req.IsAMSACIFilingRequired,
		IsDestinationFilingRequired:    req.IsDestinationFilingRequired,
		ContractQuotationReference:     req.ContractQuotationReference,
		IncoTerms:                      req.IncoTerms,
		ExpectedDepartureDate:          req.ExpectedDepartureDate,
		ExpectedArrivalStartDate:       req.ExpectedArrivalStartDate,
		ExpectedArrivalEndDate:         req.ExpectedArrivalEndDate,
		TransportDocumentTypeCode:      req.TransportDocumentTypeCode,
		TransportDocumentReference:     req.TransportDocumentReference,
		BookingChannelReference:        req.BookingChannelReference,
		IsEquipmentSubstitutionAllowed: req.IsEquipmentSubstitutionAllowed,
		DeclaredValue:                  req.DeclaredValue,
		DeclaredValueCurrency:          req.DeclaredValueCurrency,
		ExportVoyageNumber:             req.ExportVoyageNumber,
		PreCarriageModeOfTransport:     req.PreCarriageModeOfTransport,
	}
}

// generateBookingReference returns a carrier booking request reference in the
// format OBK-XXXXXXXX.
func generateBookingReference() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("OBK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("OBK-%08X", b)
}
