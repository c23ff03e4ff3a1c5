package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

type shipmentFixture struct {
	*bookingFixture
	shipments  *stubShipmentRepo
	transports *stubChildStore[domain.Transport]
	shipLocations *stubChildStore[domain.ShipmentLocation]
	equipment  *stubChildStore[domain.ConfirmedEquipment]
	svc        *ShipmentService
}

func newShipmentFixture(vessels ...domain.Vessel) *shipmentFixture {
	f := &shipmentFixture{
		bookingFixture: newBookingFixture(vessels...),
		shipments:      newStubShipmentRepo(),
		transports:     newStubChildStore[domain.Transport](),
		shipLocations:     newStubChildStore[domain.ShipmentLocation](),
		equipment:      newStubChildStore[domain.ConfirmedEquipment](),
	}
	stores := ports.ShipmentStores{
		Locations:          f.shipLocations,
		CutOffTimes:        newStubChildStore[domain.ShipmentCutOffTime](),
		CarrierClauses:     newStubChildStore[domain.CarrierClause](),
		Charges:            newStubChildStore[domain.Charge](),
		Transports:         f.transports,
		ConfirmedEquipment: f.equipment,
	}
	locResolver := NewLocationResolver(f.bookingFixture.locations, &stubAddressRepo{byID: map[string]*domain.Address{}}, &stubFacilityRepo{byID: map[string]*domain.Facility{}}, discardLogger)
	f.svc = NewShipmentService(f.shipments, f.bookingFixture.svc, stores, f.bookingFixture.vessels, locResolver, discardLogger)
	return f
}

func (f *shipmentFixture) seedLocation(id, name, unCode string) {
	f.bookingFixture.locations.Create(context.Background(), &domain.Location{ID: id, Name: name, UNLocationCode: unCode})
}

func TestShipmentService_Get_NotFound(t *testing.T) {
	f := newShipmentFixture()

	_, err := f.svc.GetByReference(context.Background(), "CBR-NONE")
	if !errors.Is(err, domain.ErrShipmentNotFound) {
		t.Fatalf("expected ErrShipmentNotFound, got %v", err)
	}
}

func TestShipmentService_Get_AssemblesAggregate(t *testing.T) {
	f := newShipmentFixture(domain.Vessel{ID: "v1", IMONumber: "9074729", Name: "Freedom"})

	booking, err := f.bookingFixture.svc.Create(context.Background(), minimalRequest())
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}

	f.shipments.Create(context.Background(), &domain.Shipment{
		ID:                      "sh1",
		BookingID:               booking.ID,
		CarrierBookingReference: "CBR-100",
		TermsAndConditions:      "terms",
		ShipmentCreatedDateTime: time.Now().UTC(),
	})

	f.seedLocation("loc-rot", "Rotterdam", "NLRTM")
	f.seedLocation("loc-sin", "Singapore", "SGSIN")

	vesselID := "v1"
	importVoyage := "2103W"
	exportVoyage := "2104E"
	f.transports.Replace(context.Background(), "sh1", []domain.Transport{{
		ID:                  "tr1",
		ShipmentID:          "sh1",
		PlanStage:           "MNC",
		PlanStageSequence:   1,
		ModeOfTransport:     "VESSEL",
		LoadLocationID:      "loc-rot",
		DischargeLocationID: "loc-sin",
		VesselID:            &vesselID,
		ImportVoyageNumber:  &importVoyage,
		ExportVoyageNumber:  &exportVoyage,
	}})
	f.shipLocations.Replace(context.Background(), "sh1", []domain.ShipmentLocation{{
		ID:           "sl1",
		ShipmentID:   "sh1",
		LocationID:   "loc-rot",
		LocationType: "POL",
	}})
	f.equipment.Replace(context.Background(), "sh1", []domain.ConfirmedEquipment{{
		ID:         "ce1",
		ShipmentID: "sh1",
		SizeType:   "22G1",
		Units:      3,
	}})

	agg, err := f.svc.GetByReference(context.Background(), "CBR-100")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if agg.Booking == nil || agg.Booking.ID != booking.ID {
		t.Fatal("nested booking aggregate missing or wrong")
	}
	if agg.Booking.DocumentStatus != domain.StatusReceived {
		t.Errorf("nested booking status wrong: %s", agg.Booking.DocumentStatus)
	}

	if len(agg.Transports) != 1 {
		t.Fatalf("expected 1 transport, got %d", len(agg.Transports))
	}
	tr := agg.Transports[0]
	if tr.LoadLocation == nil || tr.LoadLocation.Name != "Rotterdam" {
		t.Errorf("load location not joined: %#v", tr.LoadLocation)
	}
	if tr.DischargeLocation == nil || tr.DischargeLocation.Name != "Singapore" {
		t.Errorf("discharge location not joined: %#v", tr.DischargeLocation)
	}
	if tr.Vessel == nil || tr.Vessel.Name != "Freedom" {
		t.Errorf("vessel not joined: %#v", tr.Vessel)
	}
	if tr.ImportVoyageNumber == nil || tr.ExportVoyageNumber == nil ||
		*tr.ImportVoyageNumber != "2103W" || *tr.ExportVoyageNumber != "2104E" {
		t.Error("import and export voyage numbers must both survive")
	}

	if len(agg.ShipmentLocations) != 1 || agg.ShipmentLocations[0].Location == nil {
		t.Fatalf("shipment location not resolved deep: %#v", agg.ShipmentLocations)
	}
	if agg.ShipmentLocations[0].Location.UNLocationCode != "NLRTM" {
		t.Errorf("wrong resolved location: %#v", agg.ShipmentLocations[0].Location)
	}

	if len(agg.ConfirmedEquipment) != 1 || agg.ConfirmedEquipment[0].Units != 3 {
		t.Errorf("confirmed equipment not loaded: %#v", agg.ConfirmedEquipment)
	}
	if agg.CutOffTimes == nil || agg.CarrierClauses == nil || agg.Charges == nil {
		t.Error("empty child collections must be non-nil")
	}
}
