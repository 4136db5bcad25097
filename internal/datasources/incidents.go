package datasources

import (
	"context"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// IncidentLister returns the raw incident counts the risk model trains on.
type IncidentLister interface {
	ListIncidents(ctx context.Context) ([]domain.Incident, error)
}

// IncidentReplacer swaps the stored incident dataset for a new snapshot.
type IncidentReplacer interface {
	ReplaceIncidents(ctx context.Context, incidents []domain.Incident) error
}

// IncidentRepository combines all incident operations.
type IncidentRepository interface {
	IncidentLister
	IncidentReplacer
}
