package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

const similarZonesCount = 10

type SimilarZonesList struct {
	Fetcher     datasources.ZoneFetcher
	Similarity  datasources.SimilarZoneLister
	CacheMaxAge time.Duration
}

func (c SimilarZonesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	vars := mux.Vars(r)
	zoneID := vars["zone_id"]

	zone, err := c.Fetcher.FetchZone(ctx, zoneID)
	if err != nil {
		if errors.Is(err, datasources.ErrZoneNotFound) {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		logger.ErrorContext(ctx, "unable to fetch zone", "error", err, "zone_id", zoneID)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	similar, err := c.Similarity.ListSimilarZones(ctx, zoneID, zone.ProfileVector(), similarZonesCount)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch similar zones", "error", err, "zone_id", zoneID)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	zones := make([]domain.Zone, 0, len(similar))
	for _, s := range similar {
		z, err := c.Fetcher.FetchZone(ctx, s.ZoneID)
		if err != nil {
			// The similarity index can lag behind the zone table.
			if errors.Is(err, datasources.ErrZoneNotFound) {
				continue
			}

			logger.ErrorContext(ctx, "unable to fetch similar zone", "error", err, "zone_id", s.ZoneID)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		zones = append(zones, z)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ZonesListResponse{
		Data:     zones,
		Metadata: ZonesListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write zones to response", "error", err)
	}
}
