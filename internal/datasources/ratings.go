package datasources

import (
	"context"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RatingAdder stores a new user rating.
type RatingAdder interface {
	AddRating(ctx context.Context, rating domain.Rating) error
}

// LowRatingCounter counts ratings at or below maxStars received since
// windowStart. When inclusive is true, ratings exactly at windowStart count.
type LowRatingCounter interface {
	CountLowRatings(ctx context.Context, maxStars int, windowStart time.Time, inclusive bool) (int, error)
}

// RatingStatsGetter summarises ratings received since windowStart.
type RatingStatsGetter interface {
	GetRatingStats(ctx context.Context, windowStart time.Time, inclusive bool) (domain.RatingStats, error)
}

// RatingRepository combines all rating operations.
type RatingRepository interface {
	RatingAdder
	LowRatingCounter
	RatingStatsGetter
}
