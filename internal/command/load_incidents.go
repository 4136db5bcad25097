package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// ErrNoIncidents is returned when a dataset load contains no incident rows.
var ErrNoIncidents = errors.New("no incidents in dataset")

// LoadIncidentsRequest is the request for the LoadIncidents command.
type LoadIncidentsRequest struct {
	Zones     []domain.Zone
	Incidents []domain.Incident
}

// LoadIncidentsResponse is the response from the LoadIncidents command.
type LoadIncidentsResponse struct {
	ZonesUpserted   int
	IncidentsStored int
}

// LoadIncidents replaces the stored incident dataset with a fresh snapshot
// and rebuilds each zone's weighted crime profile from it, so the similarity
// surface and the trainer read the same weighting of the same data.
type LoadIncidents struct {
	IncidentStore datasources.IncidentReplacer
	ZoneStore     datasources.ZoneUpserter
}

// NewLoadIncidents creates a properly initialized LoadIncidents command.
func NewLoadIncidents(
	incidentStore datasources.IncidentReplacer,
	zoneStore datasources.ZoneUpserter,
) *LoadIncidents {
	return &LoadIncidents{
		IncidentStore: incidentStore,
		ZoneStore:     zoneStore,
	}
}

// Execute stores the dataset snapshot and the recomputed zone profiles.
func (c *LoadIncidents) Execute(
	ctx context.Context, req LoadIncidentsRequest,
) (LoadIncidentsResponse, error) {
	if len(req.Incidents) == 0 {
		return LoadIncidentsResponse{}, ErrNoIncidents
	}

	if err := c.IncidentStore.ReplaceIncidents(ctx, req.Incidents); err != nil {
		return LoadIncidentsResponse{}, fmt.Errorf("replacing incidents: %w", err)
	}

	profiles := domain.BuildWeightedProfiles(req.Incidents)
	now := time.Now().UTC()

	for _, zone := range req.Zones {
		zone.Profile = profiles[zone.ID]
		if zone.Profile == nil {
			zone.Profile = map[string]float64{}
		}
		zone.UpdatedAt = now

		if err := c.ZoneStore.UpsertZone(ctx, zone); err != nil {
			return LoadIncidentsResponse{}, fmt.Errorf("upserting zone [%s]: %w", zone.ID, err)
		}
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "loaded incident dataset",
		"zones", len(req.Zones), "incidents", len(req.Incidents))

	return LoadIncidentsResponse{
		ZonesUpserted:   len(req.Zones),
		IncidentsStored: len(req.Incidents),
	}, nil
}
