package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/oceanbook/booking-system/internal/core/domain"
	"github.com/oceanbook/booking-system/internal/core/ports"
)

// VesselResolver turns partial vessel identification (IMO number and/or
// name) into exactly one stored vessel, or fails. It never picks an
// arbitrary match.
type VesselResolver struct {
	repo ports.VesselRepository
	log  zerolog.Logger
}

func NewVesselResolver(repo ports.VesselRepository, log zerolog.Logger) *VesselResolver {
	return &VesselResolver{repo: repo, log: log}
}

// Resolve applies the disambiguation rules:
//   - IMO number given: the vessel must exist; when a name is also given it
//     must match the stored name exactly. An unknown IMO number is an error —
//     the IMO number is a lookup key, never a creation key.
//   - Only a name given: exactly one vessel with that name must exist. Zero
//     matches leave the vessel unresolved (nil, nil); two or more fail with
//     an ambiguity error.
//   - Neither given: the vessel stays unset (nil, nil).
func (r *VesselResolver) Resolve(ctx context.Context, imoNumber, name *string) (*domain.Vessel, error) {
	switch {
	case imoNumber != nil:
		vessel, err := r.repo.FindByIMONumber(ctx, *imoNumber)
		if err != nil {
			return nil, fmt.Errorf("resolve vessel %s: %w", *imoNumber, err)
		}
		if name != nil && vessel.Name != *name {
			r.log.Debug().
				Str("imo_number", *imoNumber).
				Str("given_name", *name).
				Str("stored_name", vessel.Name).
				Msg("vessel name mismatch")
			return nil, domain.ErrVesselNameMismatch
		}
		return vessel, nil

	case name != nil:
		vessels, err := r.repo.FindAllByName(ctx, *name)
		if err != nil {
			return nil, fmt.Errorf("resolve vessel by name %q: %w", *name, err)
		}
		switch len(vessels) {
		case 0:
			// Name-only creation is not supported; the booking proceeds
			// without a vessel.
			return nil, nil
		case 1:
			return &vessels[0], nil
		default:
			return nil, domain.ErrVesselAmbiguous
		}

	default:
		return nil, nil
	}
}
