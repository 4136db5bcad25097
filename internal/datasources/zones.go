package datasources

import (
	"context"
	"errors"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// ErrZoneNotFound is returned when a zone ID does not exist.
var ErrZoneNotFound = errors.New("zone not found")

// ZoneLister lists zones with filtering, ordering, and pagination.
type ZoneLister interface {
	ListZones(ctx context.Context, filters domain.ZoneFilters, options domain.ZoneListOptions) ([]domain.Zone, error)
}

// ZoneFetcher fetches a single zone by ID.
type ZoneFetcher interface {
	FetchZone(ctx context.Context, id string) (domain.Zone, error)
}

// ZoneRiskWriter applies trainer-produced risk levels to the zone table.
type ZoneRiskWriter interface {
	UpsertZoneRiskLevels(ctx context.Context, assignments []domain.ZoneAssignment) error
}

// ZoneUpserter inserts or replaces a zone row, profile included.
type ZoneUpserter interface {
	UpsertZone(ctx context.Context, zone domain.Zone) error
}

// ZoneRepository combines all zone operations.
type ZoneRepository interface {
	ZoneLister
	ZoneFetcher
	ZoneRiskWriter
	ZoneUpserter
}
