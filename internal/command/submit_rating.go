package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// MaxCommentLength caps the free-text comment on a rating.
const MaxCommentLength = 240

// ErrInvalidStars is returned when the star value is outside 0-5.
var ErrInvalidStars = errors.New("stars must be between 0 and 5")

// ErrCommentTooLong is returned when the comment exceeds MaxCommentLength.
var ErrCommentTooLong = errors.New("comment too long")

// SubmitRatingRequest is the request for the SubmitRating command.
type SubmitRatingRequest struct {
	Stars   int
	Comment string
}

// SubmitRatingResponse is the response from the SubmitRating command.
type SubmitRatingResponse struct {
	RatingID  string
	CreatedAt time.Time
}

// SubmitRating validates and stores one user rating. Ratings are append-only;
// nothing ever deletes them.
type SubmitRating struct {
	RatingAdder datasources.RatingAdder
}

// NewSubmitRating creates a properly initialized SubmitRating command.
func NewSubmitRating(ratingAdder datasources.RatingAdder) *SubmitRating {
	return &SubmitRating{RatingAdder: ratingAdder}
}

// Execute stores the rating.
func (c *SubmitRating) Execute(
	ctx context.Context, req SubmitRatingRequest,
) (SubmitRatingResponse, error) {
	if req.Stars < 0 || req.Stars > domain.MaxStars {
		return SubmitRatingResponse{}, ErrInvalidStars
	}
	if len(req.Comment) > MaxCommentLength {
		return SubmitRatingResponse{}, ErrCommentTooLong
	}

	rating := domain.Rating{
		ID:        uuid.NewString(),
		Stars:     req.Stars,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}

	if err := c.RatingAdder.AddRating(ctx, rating); err != nil {
		return SubmitRatingResponse{}, fmt.Errorf("storing rating: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "stored rating", "rating_id", rating.ID, "stars", rating.Stars)

	return SubmitRatingResponse{
		RatingID:  rating.ID,
		CreatedAt: rating.CreatedAt,
	}, nil
}
