package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oceanbook/booking-system/internal/core/domain"
)

const collectionVessels = "vessels"

type VesselRepository struct {
	col *mongo.Collection
}

func NewVesselRepository(db *mongo.Database) *VesselRepository {
	return &VesselRepository{col: db.Collection(collectionVessels)}
}

func (r *VesselRepository) FindByID(ctx context.Context, id string) (*domain.Vessel, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *VesselRepository) FindByIMONumber(ctx context.Context, imoNumber string) (*domain.Vessel, error) {
	return r.findOne(ctx, bson.M{"vessel_imo_number": imoNumber})
}

// FindAllByName returns every vessel named name; vessel names are not unique,
// disambiguation is the resolver's job.
func (r *VesselRepository) FindAllByName(ctx context.Context, name string) ([]domain.Vessel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"vessel_name": name})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var vessels []domain.Vessel
	if err := cur.All(ctx, &vessels); err != nil {
		return nil, err
	}
	return vessels, nil
}

func (r *VesselRepository) findOne(ctx context.Context, filter bson.M) (*domain.Vessel, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var v domain.Vessel
	err := r.col.FindOne(ctx, filter).Decode(&v)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrVesselNotFound
		}
		return nil, err
	}
	return &v, nil
}
