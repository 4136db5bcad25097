package controller

import (
	"encoding/json"
	"net/http"

	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RetrainTriggerResponse is the JSON response for a manual trigger
// evaluation.
type RetrainTriggerResponse struct {
	Fired     bool                   `json:"fired"`
	LowCount  int                    `json:"low_count"`
	AvgRating float64                `json:"avg_rating,omitempty"`
	Params    *domain.Hyperparameters `json:"params,omitempty"`
}

// RetrainTrigger handles POST /v1/retrains. It evaluates the trigger
// synchronously and, when it fires, hands the training run itself to the
// retrain worker.
type RetrainTrigger struct {
	EvaluateCmd command.Command[command.EvaluateRetrainTriggerRequest, command.RetrainDecision]
	Worker      RetrainKicker
}

func (c RetrainTrigger) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	decision, err := c.EvaluateCmd.Execute(ctx, command.EvaluateRetrainTriggerRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to evaluate retrain trigger", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	resp := RetrainTriggerResponse{
		Fired:    decision.Fire,
		LowCount: decision.LowCount,
	}

	w.Header().Set("Content-Type", "application/json")

	if decision.Fire {
		c.Worker.Kick()
		resp.AvgRating = decision.AvgRating
		resp.Params = &decision.Params
		w.WriteHeader(http.StatusAccepted)
	} else {
		w.WriteHeader(http.StatusOK)
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
