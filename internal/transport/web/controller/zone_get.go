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

type ZoneGet struct {
	Fetcher     datasources.ZoneFetcher
	CacheMaxAge time.Duration
}

func (c ZoneGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(zone); err != nil {
		logger.ErrorContext(ctx, "unable to write zone to response", "error", err)
	}
}
