package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

const collectionBookings = "bookings"

// BookingRepository stores booking versions append-only. The active version
// of a reference is the row with valid_until == nil; the partial-uniqueness
// invariant ("at most one active row per reference") is enforced by the
// conditional updates below, not by in-process locking.
type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(collectionBookings)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, b)
	return err
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// FindActiveByReference returns the single version of reference that has not
// been superseded.
func (r *BookingRepository) FindActiveByReference(ctx context.Context, reference string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"carrier_booking_request_reference": reference,
		"valid_until":                       nil,
	}

	var b domain.Booking
	err := r.col.FindOne(ctx, filter).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

// Supersede stamps valid_until on the active version of reference. The write
// is conditioned on valid_until still being nil, so two concurrent updates
// can never both succeed.
func (r *BookingRepository) Supersede(ctx context.Context, reference string, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{
			"carrier_booking_request_reference": reference,
			"valid_until":                       nil,
		},
		bson.M{"$set": bson.M{"valid_until": at}},
	)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

func (r *BookingRepository) SetLocationLinks(ctx context.Context, id string, invoicePayableAtID, placeOfIssueID *string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{}
	if invoicePayableAtID != nil {
		set["invoice_payable_at_id"] = *invoicePayableAtID
	}
	if placeOfIssueID != nil {
		set["place_of_issue_id"] = *placeOfIssueID
	}
	if len(set) == 0 {
		return nil
	}

	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	return err
}

// ConditionalUpdateStatus is the compare-and-swap status write: it matches
// the active version of reference whose status is one of expected (or any
// status when expected is nil) and reports whether a row changed.
func (r *BookingRepository) ConditionalUpdateStatus(ctx context.Context, reference string, expected []domain.DocumentStatus, next domain.DocumentStatus, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"carrier_booking_request_reference": reference,
		"valid_until":                       nil,
	}
	if len(expected) > 0 {
		filter["document_status"] = bson.M{"$in": expected}
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": bson.M{
		"document_status": next,
		"updated_at":      at,
	}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// EnsureIndexes creates the indexes the booking queries rely on.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "carrier_booking_request_reference", Value: 1}, {Key: "valid_until", Value: 1}}},
		{Keys: bson.D{{Key: "document_status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
