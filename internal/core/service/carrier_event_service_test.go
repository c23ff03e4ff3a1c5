package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

type stubShipmentRepo struct {
	byReference map[string]*domain.Shipment
	byBookingID map[string]*domain.Shipment
	createErr   error
}

func newStubShipmentRepo() *stubShipmentRepo {
	return &stubShipmentRepo{
		byReference: make(map[string]*domain.Shipment),
		byBookingID: make(map[string]*domain.Shipment),
	}
}

func (r *stubShipmentRepo) Create(_ context.Context, s *domain.Shipment) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *s
	r.byReference[s.CarrierBookingReference] = &clone
	r.byBookingID[s.BookingID] = &clone
	return nil
}

func (r *stubShipmentRepo) FindByCarrierBookingReference(_ context.Context, reference string) (*domain.Shipment, error) {
	s, ok := r.byReference[reference]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return s, nil
}

func (r *stubShipmentRepo) FindByBookingID(_ context.Context, bookingID string) (*domain.Shipment, error) {
	s, ok := r.byBookingID[bookingID]
	if !ok {
		return nil, domain.ErrShipmentNotFound
	}
	return s, nil
}

type stubDedup struct {
	seen     map[string]bool
	checkErr error
}

func newStubDedup() *stubDedup {
	return &stubDedup{seen: make(map[string]bool)}
}

func (d *stubDedup) key(reference, status string, ts time.Time) string {
	return reference + "|" + status + "|" + ts.UTC().Format(time.RFC3339)
}

func (d *stubDedup) IsDuplicate(_ context.Context, reference, status string, ts time.Time) (bool, error) {
	if d.checkErr != nil {
		return false, d.checkErr
	}
	return d.seen[d.key(reference, status, ts)], nil
}

func (d *stubDedup) Mark(_ context.Context, reference, status string, ts time.Time) error {
	d.seen[d.key(reference, status, ts)] = true
	return nil
}

type carrierEventFixture struct {
	bookings  *stubBookingRepo
	shipments *stubShipmentRepo
	events    *stubEventRepo
	notifier  *stubNotifier
	dedup     *stubDedup
	svc       ports.CarrierEventService
}

func newCarrierEventFixture() *carrierEventFixture {
	f := &carrierEventFixture{
		bookings:  newStubBookingRepo(),
		shipments: newStubShipmentRepo(),
		events:    &stubEventRepo{},
		notifier:  &stubNotifier{},
		dedup:     newStubDedup(),
	}
	f.svc = NewCarrierEventService(f.bookings, f.shipments, f.events, f.notifier, f.dedup, discardLogger)
	return f
}

func (f *carrierEventFixture) seedBooking(reference string, status domain.DocumentStatus) {
	f.bookings.Create(context.Background(), &domain.Booking{
		ID:                             "b-" + reference,
		CarrierBookingRequestReference: reference,
		DocumentStatus:                 status,
	})
}

func confirmEvent(reference string) ports.CarrierEventInput {
	return ports.CarrierEventInput{
		Reference:               reference,
		Status:                  string(domain.StatusConfirmed),
		Source:                  "carrier-edi",
		Timestamp:               time.Now().UTC(),
		CarrierBookingReference: "CBR-001",
		TermsAndConditions:      "standard terms",
	}
}

func TestCarrierEventService_ConfirmationCreatesShipment(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV001", domain.StatusReceived)

	if err := f.svc.Process(context.Background(), confirmEvent("OBK-EV001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	booking, _ := f.bookings.FindActiveByReference(context.Background(), "OBK-EV001")
	if booking.DocumentStatus != domain.StatusConfirmed {
		t.Errorf("expected CONFIRMED, got %s", booking.DocumentStatus)
	}

	shipment, err := f.shipments.FindByCarrierBookingReference(context.Background(), "CBR-001")
	if err != nil {
		t.Fatalf("shipment not created: %v", err)
	}
	if shipment.BookingID != booking.ID {
		t.Error("shipment must link back to the confirmed booking version")
	}
	if shipment.TermsAndConditions != "standard terms" {
		t.Errorf("terms not carried over: %q", shipment.TermsAndConditions)
	}
	if len(f.notifier.notified) != 1 || f.notifier.notified[0].Status != domain.StatusConfirmed {
		t.Fatalf("confirmation event not published: %#v", f.notifier.notified)
	}
}

func TestCarrierEventService_NonConfirmationDoesNotCreateShipment(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV002", domain.StatusReceived)

	in := confirmEvent("OBK-EV002")
	in.Status = string(domain.StatusPendingConfirmation)
	if err := f.svc.Process(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.shipments.byReference) != 0 {
		t.Error("only a CONFIRMED event may create a shipment")
	}
}

func TestCarrierEventService_DuplicateIsSkipped(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV003", domain.StatusReceived)

	in := confirmEvent("OBK-EV003")
	if err := f.svc.Process(context.Background(), in); err != nil {
		t.Fatalf("first event: %v", err)
	}
	if err := f.svc.Process(context.Background(), in); err != nil {
		t.Fatalf("duplicate must be skipped silently, got %v", err)
	}
	if len(f.notifier.notified) != 1 {
		t.Errorf("duplicate must not publish again, got %d events", len(f.notifier.notified))
	}
}

func TestCarrierEventService_DedupFailureProcessesAnyway(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV004", domain.StatusReceived)
	f.dedup.checkErr = errors.New("redis down")

	if err := f.svc.Process(context.Background(), confirmEvent("OBK-EV004")); err != nil {
		t.Fatalf("dedup outage must not block processing: %v", err)
	}
	if len(f.notifier.notified) != 1 {
		t.Error("event was not processed")
	}
}

func TestCarrierEventService_InvalidTransition(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV005", domain.StatusCancelled)

	err := f.svc.Process(context.Background(), confirmEvent("OBK-EV005"))
	if !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(f.shipments.byReference) != 0 {
		t.Error("rejected event must not create a shipment")
	}
}

func TestCarrierEventService_UnknownReference(t *testing.T) {
	f := newCarrierEventFixture()

	err := f.svc.Process(context.Background(), confirmEvent("OBK-NONE"))
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Fatalf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestCarrierEventService_NotifierFailure(t *testing.T) {
	f := newCarrierEventFixture()
	f.seedBooking("OBK-EV006", domain.StatusReceived)
	f.notifier.err = errors.New("broker unavailable")

	err := f.svc.Process(context.Background(), confirmEvent("OBK-EV006"))
	if !errors.Is(err, domain.ErrEventNotificationFailed) {
		t.Fatalf("expected ErrEventNotificationFailed, got %v", err)
	}
}
