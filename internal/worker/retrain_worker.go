package worker

import (
	"context"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// RetrainWorker periodically evaluates the retrain trigger and runs the
// retraining when it fires. Rating submission handlers call Kick to request
// an early evaluation instead of retraining on the request path.
type RetrainWorker struct {
	EvaluateCmd command.Command[command.EvaluateRetrainTriggerRequest, command.RetrainDecision]
	RetrainCmd  command.Command[command.RunRetrainRequest, command.RunRetrainResponse]
	Interval    time.Duration

	kick chan struct{}
}

// NewRetrainWorker creates a properly initialized RetrainWorker.
func NewRetrainWorker(
	evaluateCmd command.Command[command.EvaluateRetrainTriggerRequest, command.RetrainDecision],
	retrainCmd command.Command[command.RunRetrainRequest, command.RunRetrainResponse],
	interval time.Duration,
) *RetrainWorker {
	return &RetrainWorker{
		EvaluateCmd: evaluateCmd,
		RetrainCmd:  retrainCmd,
		Interval:    interval,
		kick:        make(chan struct{}, 1),
	}
}

// Kick requests an evaluation ahead of the next tick. Never blocks; a kick
// while one is already pending coalesces into it.
func (w *RetrainWorker) Kick() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// Run evaluates the trigger on every tick or kick until the context is
// cancelled. Evaluations run one at a time; evaluation and training failures
// are logged and retried on the next cycle rather than shutting the worker
// down.
func (w *RetrainWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		case <-w.kick:
		}

		w.runOnce(ctx)
	}
}

func (w *RetrainWorker) runOnce(ctx context.Context) {
	logger := domain.LoggerFromContext(ctx)

	decision, err := w.EvaluateCmd.Execute(ctx, command.EvaluateRetrainTriggerRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "retrain trigger evaluation failed", "error", err)
		return
	}

	if !decision.Fire {
		return
	}

	resp, err := w.RetrainCmd.Execute(ctx, command.RunRetrainRequest{
		Params:    decision.Params,
		AvgRating: decision.AvgRating,
		LowCount:  decision.LowCount,
	})
	if err != nil {
		logger.ErrorContext(ctx, "retraining failed", "error", err)
		return
	}

	logger.InfoContext(ctx, "retraining run finished",
		"retrain_id", resp.LogID, "best_k", resp.BestK, "zones_updated", resp.ZonesUpdated)
}
