package datasources

import (
	"context"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// SimilarityRepository finds zones with similar crime profiles.
type SimilarityRepository interface {
	SimilarZoneLister
}

// SimilarZoneLister lists zones closest to the given profile vector,
// excluding the zone the vector came from.
type SimilarZoneLister interface {
	ListSimilarZones(
		ctx context.Context,
		excludeZoneID string,
		vector []float32,
		count int,
	) ([]domain.SimilarZone, error)
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarZones(
	_ context.Context,
	_ string,
	_ []float32,
	_ int,
) ([]domain.SimilarZone, error) {
	return nil, nil
}
