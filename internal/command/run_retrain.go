package command

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RunRetrainRequest carries the decision a trigger evaluation produced.
type RunRetrainRequest struct {
	Params    domain.Hyperparameters
	AvgRating float64
	LowCount  int
}

// RunRetrainResponse summarises a completed retraining run.
type RunRetrainResponse struct {
	LogID        string
	BestK        int
	ZonesUpdated int
}

// RunRetrain performs one retraining run and records it: it appends a pending
// retrain log entry, invokes the trainer, applies the resulting zone risk
// levels, and finalizes the entry. Failures are finalized into the log entry
// rather than swallowed, and the error is returned to the caller.
type RunRetrain struct {
	LogCreator   datasources.RetrainLogCreator
	LogFinalizer datasources.RetrainLogFinalizer
	Trainer      datasources.Trainer
	ZoneWriter   datasources.ZoneRiskWriter
}

// NewRunRetrain creates a properly initialized RunRetrain command.
func NewRunRetrain(
	logCreator datasources.RetrainLogCreator,
	logFinalizer datasources.RetrainLogFinalizer,
	trainer datasources.Trainer,
	zoneWriter datasources.ZoneRiskWriter,
) *RunRetrain {
	return &RunRetrain{
		LogCreator:   logCreator,
		LogFinalizer: logFinalizer,
		Trainer:      trainer,
		ZoneWriter:   zoneWriter,
	}
}

// Execute runs the retraining and records the attempt.
func (c *RunRetrain) Execute(
	ctx context.Context, req RunRetrainRequest,
) (RunRetrainResponse, error) {
	logger := domain.LoggerFromContext(ctx)

	entry := domain.RetrainLog{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		AvgRating: req.AvgRating,
		LowCount:  req.LowCount,
		Params:    req.Params,
	}
	if err := c.LogCreator.CreateRetrainLog(ctx, entry); err != nil {
		return RunRetrainResponse{}, fmt.Errorf("creating retrain log entry: %w", err)
	}

	logger.InfoContext(ctx, "retraining started",
		"retrain_id", entry.ID, "low_count", req.LowCount, "avg_rating", req.AvgRating)

	result, err := c.Trainer.Train(ctx, req.Params)
	if err != nil {
		c.finalize(ctx, entry.ID, false, err.Error())
		return RunRetrainResponse{}, fmt.Errorf("running training: %w", err)
	}

	if err := c.ZoneWriter.UpsertZoneRiskLevels(ctx, result.Assignments); err != nil {
		c.finalize(ctx, entry.ID, false, err.Error())
		return RunRetrainResponse{}, fmt.Errorf("applying zone risk levels: %w", err)
	}

	c.finalize(ctx, entry.ID, true, "")

	logger.InfoContext(ctx, "retraining completed",
		"retrain_id", entry.ID, "best_k", result.BestK, "zones_updated", len(result.Assignments))

	return RunRetrainResponse{
		LogID:        entry.ID,
		BestK:        result.BestK,
		ZonesUpdated: len(result.Assignments),
	}, nil
}

// finalize closes the log entry, best-effort: a finalization failure must not
// mask the training outcome.
func (c *RunRetrain) finalize(ctx context.Context, id string, success bool, errMsg string) {
	if err := c.LogFinalizer.FinalizeRetrainLog(ctx, id, time.Now().UTC(), success, errMsg); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "failed to finalize retrain log entry",
			"retrain_id", id, "error", err)
	}
}
