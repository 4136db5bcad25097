package worker

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/command"
	cmdmocks "github.com/safezone-pe/safezone-backend/internal/command/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx := domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
	return context.WithCancel(ctx)
}

func TestRetrainWorker_Run_KickTriggersRetrain(t *testing.T) {
	evaluateCmd := cmdmocks.NewMockCommand[command.EvaluateRetrainTriggerRequest, command.RetrainDecision](t)
	retrainCmd := cmdmocks.NewMockCommand[command.RunRetrainRequest, command.RunRetrainResponse](t)

	decision := command.RetrainDecision{
		Fire:      true,
		LowCount:  6,
		AvgRating: 1.5,
		Params:    domain.DecideHyperparameters(1.5, 6),
	}

	evaluateCmd.EXPECT().
		Execute(mock.Anything, command.EvaluateRetrainTriggerRequest{}).
		Return(decision, nil)

	done := make(chan struct{})
	retrainCmd.EXPECT().
		Execute(mock.Anything, command.RunRetrainRequest{
			Params:    decision.Params,
			AvgRating: decision.AvgRating,
			LowCount:  decision.LowCount,
		}).
		Return(command.RunRetrainResponse{LogID: "log1", BestK: 4, ZonesUpdated: 10}, nil).
		Run(func(_ context.Context, _ command.RunRetrainRequest) {
			close(done)
		})

	w := NewRetrainWorker(evaluateCmd, retrainCmd, time.Hour)

	ctx, cancel := testContext(t)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	w.Kick()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("retrain command never ran")
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestRetrainWorker_Run_NoFireNoRetrain(t *testing.T) {
	evaluateCmd := cmdmocks.NewMockCommand[command.EvaluateRetrainTriggerRequest, command.RetrainDecision](t)
	retrainCmd := cmdmocks.NewMockCommand[command.RunRetrainRequest, command.RunRetrainResponse](t)

	evaluated := make(chan struct{})
	evaluateCmd.EXPECT().
		Execute(mock.Anything, command.EvaluateRetrainTriggerRequest{}).
		Return(command.RetrainDecision{LowCount: 2}, nil).
		Run(func(_ context.Context, _ command.EvaluateRetrainTriggerRequest) {
			close(evaluated)
		})

	w := NewRetrainWorker(evaluateCmd, retrainCmd, time.Hour)

	ctx, cancel := testContext(t)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	w.Kick()

	select {
	case <-evaluated:
	case <-time.After(5 * time.Second):
		t.Fatal("evaluation never ran")
	}

	cancel()
	require.NoError(t, <-errCh)
	// retrainCmd expects no calls; mock assertion on cleanup enforces that.
}

func TestRetrainWorker_Run_EvaluationErrorKeepsRunning(t *testing.T) {
	evaluateCmd := cmdmocks.NewMockCommand[command.EvaluateRetrainTriggerRequest, command.RetrainDecision](t)
	retrainCmd := cmdmocks.NewMockCommand[command.RunRetrainRequest, command.RunRetrainResponse](t)

	calls := make(chan struct{}, 2)
	evaluateCmd.EXPECT().
		Execute(mock.Anything, command.EvaluateRetrainTriggerRequest{}).
		Return(command.RetrainDecision{}, errors.New("db error")).
		Run(func(_ context.Context, _ command.EvaluateRetrainTriggerRequest) {
			calls <- struct{}{}
		})

	w := NewRetrainWorker(evaluateCmd, retrainCmd, time.Hour)

	ctx, cancel := testContext(t)
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Run(ctx) }()

	w.Kick()
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("first evaluation never ran")
	}

	// The loop survives the failure and serves the next kick.
	w.Kick()
	select {
	case <-calls:
	case <-time.After(5 * time.Second):
		t.Fatal("worker stopped after evaluation failure")
	}

	cancel()
	require.NoError(t, <-errCh)
}

func TestRetrainWorker_Kick_NeverBlocks(t *testing.T) {
	w := NewRetrainWorker(nil, nil, time.Hour)

	// No Run loop is draining the channel; repeated kicks must coalesce.
	for range 10 {
		w.Kick()
	}
}
