package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// LocationResolver implements identity-or-create semantics for locations.
// Write paths only need Ensure (they link by id); Deep is used by read paths
// to inline the Address and Facility sub-objects.
type LocationResolver struct {
	locations  ports.LocationRepository
	addresses  ports.AddressRepository
	facilities ports.FacilityRepository
	log        zerolog.Logger
}

func NewLocationResolver(
	locations ports.LocationRepository,
	addresses ports.AddressRepository,
	facilities ports.FacilityRepository,
	log zerolog.Logger,
) *LocationResolver {
	return &LocationResolver{
		locations:  locations,
		addresses:  addresses,
		facilities: facilities,
		log:        log,
	}
}

// Ensure returns a canonical stored location for candidate: an existing row
// whose identifying fields match, or a freshly created one.
func (r *LocationResolver) Ensure(ctx context.Context, candidate *domain.Location) (*domain.Location, error) {
	if candidate.ID != "" {
		existing, err := r.locations.FindByID(ctx, candidate.ID)
		if err == nil {
			return existing, nil
		}
		if !errors.Is(err, domain.ErrLocationNotFound) {
			return nil, fmt.Errorf("ensure location: %w", err)
		}
	}

	existing, err := r.locations.FindMatch(ctx, candidate)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrLocationNotFound) {
		return nil, fmt.Errorf("ensure location: %w", err)
	}

	created := *candidate
	created.ID = uuid.NewString()
	if err := r.locations.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("ensure location: create: %w", err)
	}
	r.log.Debug().Str("location_id", created.ID).Str("name", created.Name).Msg("location created")
	return &created, nil
}

// Deep loads a location by id together with its optional Address and
// Facility.
func (r *LocationResolver) Deep(ctx context.Context, id string) (*ports.LocationDetail, error) {
	loc, err := r.locations.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("deep location %s: %w", id, err)
	}

	detail := &ports.LocationDetail{Location: *loc}
	if loc.AddressID != nil {
		addr, err := r.addresses.FindByID(ctx, *loc.AddressID)
		if err != nil {
			return nil, fmt.Errorf("deep location %s: address: %w", id, err)
		}
		detail.Address = addr
	}
	if loc.FacilityID != nil {
		fac, err := r.facilities.FindByID(ctx, *loc.FacilityID)
		if err != nil {
			return nil, fmt.Errorf("deep location %s: facility: %w", id, err)
		}
		detail.Facility = fac
	}
	return detail, nil
}
