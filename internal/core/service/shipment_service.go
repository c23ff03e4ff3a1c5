package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/oceanbook/booking-system/internal/core/ports"
)

// ShipmentService assembles the shipment-rooted aggregate: the shipment row,
// the booking it confirms, and the carrier-owned child collections, with
// transports joined against their load/discharge locations and vessel.
type ShipmentService struct {
	shipments ports.ShipmentRepository
	bookings  *BookingService
	stores    ports.ShipmentStores
	vessels   ports.VesselRepository
	locations *LocationResolver
	log       zerolog.Logger
}

func NewShipmentService(
	shipments ports.ShipmentRepository,
	bookings *BookingService,
	stores ports.ShipmentStores,
	vessels ports.VesselRepository,
	locations *LocationResolver,
	log zerolog.Logger,
) *ShipmentService {
	return &ShipmentService{
		shipments: shipments,
		bookings:  bookings,
		stores:    stores,
		vessels:   vessels,
		locations: locations,
		log:       log,
	}
}

// GetByReference fetches the shipment for a carrier booking reference and
// progressively resolves every relation with concurrent independent reads.
func (s *ShipmentService) GetByReference(ctx context.Context, carrierBookingReference string) (*ports.ShipmentAggregate, error) {
	shipment, err := s.shipments.FindByCarrierBookingReference(ctx, carrierBookingReference)
	if err != nil {
		return nil, err
	}

	agg := &ports.ShipmentAggregate{Shipment: *shipment}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		booking, err := s.bookings.bookings.FindByID(gctx, shipment.BookingID)
		if err != nil {
			return fmt.Errorf("shipment booking: %w", err)
		}
		nested, err := s.bookings.assemble(gctx, booking)
		if err != nil {
			return err
		}
		agg.Booking = nested
		return nil
	})

	g.Go(func() error {
		return s.loadShipmentLocations(gctx, shipment.ID, &agg.ShipmentLocations)
	})
	g.Go(func() error {
		return s.loadTransports(gctx, shipment.ID, &agg.Transports)
	})

	readChildren(g, gctx, s.stores.CutOffTimes, shipment.ID, &agg.CutOffTimes)
	readChildren(g, gctx, s.stores.CarrierClauses, shipment.ID, &agg.CarrierClauses)
	readChildren(g, gctx, s.stores.Charges, shipment.ID, &agg.Charges)
	readChildren(g, gctx, s.stores.ConfirmedEquipment, shipment.ID, &agg.ConfirmedEquipment)

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("assemble shipment %s: %w", carrierBookingReference, err)
	}
	return agg, nil
}

func (s *ShipmentService) loadShipmentLocations(ctx context.Context, shipmentID string, out *[]ports.ShipmentLocationDetail) error {
	rows, err := s.stores.Locations.FindByOwner(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("shipment locations: %w", err)
	}

	details := make([]ports.ShipmentLocationDetail, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		details[i].ShipmentLocation = row
		g.Go(func() error {
			loc, err := s.locations.Deep(gctx, row.LocationID)
			if err != nil {
				return err
			}
			details[i].Location = loc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	*out = details
	return nil
}

// loadTransports joins each transport leg against its load location,
// discharge location, and vessel. Import and export voyage numbers are both
// surfaced as stored: they may legitimately differ on the same leg.
func (s *ShipmentService) loadTransports(ctx context.Context, shipmentID string, out *[]ports.TransportDetail) error {
	rows, err := s.stores.Transports.FindByOwner(ctx, shipmentID)
	if err != nil {
		return fmt.Errorf("transports: %w", err)
	}

	details := make([]ports.TransportDetail, len(rows))
	g, gctx := errgroup.WithContext(ctx)
	for i, row := range rows {
		details[i].Transport = row
		g.Go(func() error {
			loc, err := s.locations.Deep(gctx, row.LoadLocationID)
			if err != nil {
				return fmt.Errorf("transport load location: %w", err)
			}
			details[i].LoadLocation = loc
			return nil
		})
		g.Go(func() error {
			loc, err := s.locations.Deep(gctx, row.DischargeLocationID)
			if err != nil {
				return fmt.Errorf("transport discharge location: %w", err)
			}
			details[i].DischargeLocation = loc
			return nil
		})
		if row.VesselID != nil {
			g.Go(func() error {
				vessel, err := s.vessels.FindByID(gctx, *row.VesselID)
				if err != nil {
					return fmt.Errorf("transport vessel: %w", err)
				}
				details[i].Vessel = vessel
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}
	*out = details
	return nil
}
