package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RetrainKicker requests a retrain trigger evaluation outside the request
// path.
type RetrainKicker interface {
	Kick()
}

// RatingSubmitRequest is the JSON request body for submitting a rating.
type RatingSubmitRequest struct {
	Stars   int    `json:"stars"`
	Comment string `json:"comment,omitempty"`
}

// RatingSubmitResponse is the JSON response for a stored rating.
type RatingSubmitResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingSubmit handles POST /v1/ratings. Storing the rating kicks the
// retrain worker; the request never waits for a retraining run.
type RatingSubmit struct {
	SubmitCmd command.Command[command.SubmitRatingRequest, command.SubmitRatingResponse]
	Worker    RetrainKicker
}

func (c RatingSubmit) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var reqBody RatingSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&reqBody); err != nil {
		logger.ErrorContext(ctx, "unable to parse request body", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	result, err := c.SubmitCmd.Execute(ctx, command.SubmitRatingRequest{
		Stars:   reqBody.Stars,
		Comment: reqBody.Comment,
	})
	if err != nil {
		if errors.Is(err, command.ErrInvalidStars) || errors.Is(err, command.ErrCommentTooLong) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			if encErr := json.NewEncoder(w).Encode(map[string]string{
				"error": err.Error(),
			}); encErr != nil {
				logger.ErrorContext(ctx, "unable to write error response", "error", encErr)
			}
			return
		}

		logger.ErrorContext(ctx, "unable to store rating", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	c.Worker.Kick()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(RatingSubmitResponse{
		ID:        result.RatingID,
		CreatedAt: result.CreatedAt,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
