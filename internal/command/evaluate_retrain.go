package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// EvaluateRetrainTriggerRequest is the request for the EvaluateRetrainTrigger
// command. Now defaults to the current time when zero.
type EvaluateRetrainTriggerRequest struct {
	Now time.Time
}

// RetrainDecision is the outcome of one trigger evaluation. When Fire is
// true, Params holds the hyperparameters the retraining run should use, and
// AvgRating and LowCount describe the window that fired.
type RetrainDecision struct {
	Fire      bool
	LowCount  int
	AvgRating float64
	Params    domain.Hyperparameters
}

// EvaluateRetrainTrigger decides whether the model should be retrained now:
// enough low ratings must have arrived inside the evaluation window, and no
// successful retrain may already sit inside that window. The decision is
// read-only; RunRetrain performs and records the actual retraining.
type EvaluateRetrainTrigger struct {
	LowCounter    datasources.LowRatingCounter
	StatsGetter   datasources.RatingStatsGetter
	LatestRetrain datasources.LatestSuccessfulRetrainGetter
	Policy        domain.RetrainPolicy
}

// NewEvaluateRetrainTrigger creates a properly initialized EvaluateRetrainTrigger command.
func NewEvaluateRetrainTrigger(
	lowCounter datasources.LowRatingCounter,
	statsGetter datasources.RatingStatsGetter,
	latestRetrain datasources.LatestSuccessfulRetrainGetter,
	policy domain.RetrainPolicy,
) *EvaluateRetrainTrigger {
	return &EvaluateRetrainTrigger{
		LowCounter:    lowCounter,
		StatsGetter:   statsGetter,
		LatestRetrain: latestRetrain,
		Policy:        policy,
	}
}

// Execute evaluates the trigger condition.
func (c *EvaluateRetrainTrigger) Execute(
	ctx context.Context, req EvaluateRetrainTriggerRequest,
) (RetrainDecision, error) {
	logger := domain.LoggerFromContext(ctx)

	now := req.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	windowStart := c.Policy.WindowStart(now)

	lowCount, err := c.LowCounter.CountLowRatings(
		ctx, c.Policy.LowStarThreshold, windowStart, c.Policy.InclusiveLowerBound)
	if err != nil {
		return RetrainDecision{}, fmt.Errorf("counting low ratings: %w", err)
	}

	if lowCount < c.Policy.TriggerCount {
		logger.DebugContext(ctx, "retrain trigger not met",
			"low_count", lowCount, "trigger_count", c.Policy.TriggerCount)
		return RetrainDecision{LowCount: lowCount}, nil
	}

	latest, err := c.LatestRetrain.LatestSuccessfulRetrain(ctx)
	switch {
	case errors.Is(err, datasources.ErrNoRetrainLogs):
		// Never retrained, nothing suppresses the trigger.
	case err != nil:
		return RetrainDecision{}, fmt.Errorf("fetching latest successful retrain: %w", err)
	case c.Policy.InWindow(latest.StartedAt, now):
		logger.InfoContext(ctx, "retrain suppressed, already retrained this window",
			"low_count", lowCount, "last_retrain_at", latest.StartedAt)
		return RetrainDecision{LowCount: lowCount}, nil
	}

	stats, err := c.StatsGetter.GetRatingStats(ctx, windowStart, c.Policy.InclusiveLowerBound)
	if err != nil {
		return RetrainDecision{}, fmt.Errorf("reading rating stats: %w", err)
	}

	params := domain.DecideHyperparameters(stats.Average, lowCount)

	logger.InfoContext(ctx, "retrain trigger fired",
		"low_count", lowCount, "avg_rating", stats.Average, "k_max", params.KMax)

	return RetrainDecision{
		Fire:      true,
		LowCount:  lowCount,
		AvgRating: stats.Average,
		Params:    params,
	}, nil
}
