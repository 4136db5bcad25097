package trainlocal

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

var _ datasources.Trainer = (*Trainer)(nil)

// Trainer fits the zone risk model in-process: severity- and recency-weighted
// crime profiles are built from the raw incident counts, then a
// diagonal-covariance Gaussian mixture is fitted over the standardized
// profiles, with the component count chosen by BIC. Departments and districts
// are fitted as separate models. Cluster labels are sorted so that higher
// labels mean higher risk.
type Trainer struct {
	Incidents datasources.IncidentLister
}

func New(incidents datasources.IncidentLister) *Trainer {
	return &Trainer{Incidents: incidents}
}

func (t *Trainer) Train(
	ctx context.Context, params domain.Hyperparameters,
) (domain.TrainingResult, error) {
	incidents, err := t.Incidents.ListIncidents(ctx)
	if err != nil {
		return domain.TrainingResult{}, fmt.Errorf("listing incidents: %w", err)
	}

	// Recency weights are anchored to the earliest year across the whole
	// dataset, so profiles must be built before splitting by level.
	profiles := domain.BuildWeightedProfiles(incidents)
	if len(profiles) == 0 {
		return domain.TrainingResult{}, fmt.Errorf("no incidents available for training")
	}

	levels := make(map[string]domain.ZoneLevel, len(profiles))
	for _, incident := range incidents {
		levels[incident.ZoneID] = incident.Level
	}

	// Departments and districts form separate models; the result carries the
	// district model's metrics, the finer of the two surfaces.
	var result domain.TrainingResult
	for _, level := range []domain.ZoneLevel{domain.ZoneLevelDepartment, domain.ZoneLevelDistrict} {
		zoneIDs := make([]string, 0, len(profiles))
		for zoneID := range profiles {
			zoneLevel := levels[zoneID]
			if zoneLevel != domain.ZoneLevelDepartment {
				zoneLevel = domain.ZoneLevelDistrict
			}
			if zoneLevel == level {
				zoneIDs = append(zoneIDs, zoneID)
			}
		}
		if len(zoneIDs) == 0 {
			continue
		}
		sort.Strings(zoneIDs)

		data := make([][]float64, len(zoneIDs))
		for i, zoneID := range zoneIDs {
			row := make([]float64, len(domain.CrimeCategories))
			for d, category := range domain.CrimeCategories {
				row[d] = profiles[zoneID][category]
			}
			data[i] = row
		}
		scaled := domain.StandardizeFeatures(data)

		//nolint:gosec // weak random is fine for model fitting
		rng := rand.New(rand.NewPCG(uint64(params.RandomState), uint64(params.RandomState)))

		model, bestK, ok := domain.BestGaussianMixture(scaled, params, rng)
		if !ok {
			return domain.TrainingResult{}, fmt.Errorf(
				"no mixture could be fitted for k in [%d, %d] over %d %s zones",
				params.KMin, params.KMax, len(zoneIDs), level)
		}

		assignments := make([]int, len(scaled))
		for i, point := range scaled {
			assignments[i] = model.Predict(point)
		}
		assignments = domain.SortClustersAscending(scaled, assignments, bestK)

		for i, zoneID := range zoneIDs {
			result.Assignments = append(result.Assignments, domain.ZoneAssignment{
				ZoneID:    zoneID,
				RiskLevel: assignments[i],
			})
		}
		result.BestK = bestK
		result.BIC = model.BIC(len(scaled))
	}

	return result, nil
}
