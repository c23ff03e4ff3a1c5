package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// childRepository is the shared implementation behind every optional child
// collection: one Mongo collection per entity type, rows keyed by the owning
// aggregate id in ownerField.
type childRepository[T any] struct {
	col        *mongo.Collection
	ownerField string
}

func newChildRepository[T any](db *mongo.Database, collection, ownerField string) *childRepository[T] {
	return &childRepository[T]{col: db.Collection(collection), ownerField: ownerField}
}

// Replace drops the owner's previous rows and inserts items, giving the
// replacement semantics update paths need: an empty items clears the
// collection.
func (r *childRepository[T]) Replace(ctx context.Context, ownerID string, items []T) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{r.ownerField: ownerID}); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]any, len(items))
	for i := range items {
		docs[i] = items[i]
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

func (r *childRepository[T]) FindByOwner(ctx context.Context, ownerID string) ([]T, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{r.ownerField: ownerID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []T
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

const (
	ownerBooking  = "booking_id"
	ownerShipment = "shipment_id"
)

// NewBookingStores wires the booking-owned child collections.
func NewBookingStores(db *mongo.Database) ports.BookingStores {
	return ports.BookingStores{
		Commodities:        newChildRepository[domain.Commodity](db, "commodities", ownerBooking),
		ValueAddedServices: newChildRepository[domain.ValueAddedServiceRequest](db, "value_added_service_requests", ownerBooking),
		References:         newChildRepository[domain.Reference](db, "references", ownerBooking),
		RequestedEquipment: newChildRepository[domain.RequestedEquipment](db, "requested_equipments", ownerBooking),
		DocumentParties:    newChildRepository[domain.DocumentParty](db, "document_parties", ownerBooking),
	}
}

// NewShipmentStores wires the shipment-owned child collections.
func NewShipmentStores(db *mongo.Database) ports.ShipmentStores {
	return ports.ShipmentStores{
		Locations:          newChildRepository[domain.ShipmentLocation](db, "shipment_locations", ownerShipment),
		CutOffTimes:        newChildRepository[domain.ShipmentCutOffTime](db, "shipment_cutoff_times", ownerShipment),
		CarrierClauses:     newChildRepository[domain.CarrierClause](db, "carrier_clauses", ownerShipment),
		Charges:            newChildRepository[domain.Charge](db, "charges", ownerShipment),
		Transports:         newChildRepository[domain.Transport](db, "transports", ownerShipment),
		ConfirmedEquipment: newChildRepository[domain.ConfirmedEquipment](db, "confirmed_equipments", ownerShipment),
	}
}
