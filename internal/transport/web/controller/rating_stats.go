package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RatingStatsResponse is the JSON response for the rating stats endpoint.
type RatingStatsResponse struct {
	Average     float64   `json:"average"`
	Count       int       `json:"count"`
	WindowStart time.Time `json:"window_start"`
}

// RatingStatsGet handles GET /v1/ratings/stats, summarising ratings over the
// current evaluation window.
type RatingStatsGet struct {
	Stats  datasources.RatingStatsGetter
	Policy domain.RetrainPolicy
}

func (c RatingStatsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	windowStart := c.Policy.WindowStart(time.Now().UTC())

	stats, err := c.Stats.GetRatingStats(ctx, windowStart, c.Policy.InclusiveLowerBound)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch rating stats", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RatingStatsResponse{
		Average:     stats.Average,
		Count:       stats.Count,
		WindowStart: windowStart,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
