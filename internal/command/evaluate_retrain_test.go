package command

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), testLogger())
}

func TestEvaluateRetrainTrigger_Execute(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	policy := domain.DefaultRetrainPolicy()
	windowStart := policy.WindowStart(now)

	cases := []struct {
		name           string
		lowCount       int
		latestRetrain  domain.RetrainLog
		latestErr      error
		wantLatestCall bool
		stats          domain.RatingStats
		wantStatsCall  bool
		wantFire       bool
	}{
		{
			name:           "five_low_ratings_no_prior_retrain_fires",
			lowCount:       5,
			latestErr:      datasources.ErrNoRetrainLogs,
			wantLatestCall: true,
			stats:          domain.RatingStats{Average: 1.4, Count: 5},
			wantStatsCall:  true,
			wantFire:       true,
		},
		{
			name:     "four_low_ratings_does_not_fire",
			lowCount: 4,
		},
		{
			name:     "retrain_two_days_ago_suppresses",
			lowCount: 5,
			latestRetrain: domain.RetrainLog{
				ID:        "prior",
				StartedAt: now.Add(-48 * time.Hour),
			},
			wantLatestCall: true,
		},
		{
			name:     "retrain_outside_window_does_not_suppress",
			lowCount: 6,
			latestRetrain: domain.RetrainLog{
				ID:        "old",
				StartedAt: now.Add(-8 * 24 * time.Hour),
			},
			wantLatestCall: true,
			stats:          domain.RatingStats{Average: 2.3, Count: 9},
			wantStatsCall:  true,
			wantFire:       true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lowCounter := mocks.NewMockLowRatingCounter(t)
			statsGetter := mocks.NewMockRatingStatsGetter(t)
			latestGetter := mocks.NewMockLatestSuccessfulRetrainGetter(t)

			lowCounter.EXPECT().
				CountLowRatings(mock.Anything, policy.LowStarThreshold, windowStart, true).
				Return(tc.lowCount, nil)

			if tc.wantLatestCall {
				latestGetter.EXPECT().
					LatestSuccessfulRetrain(mock.Anything).
					Return(tc.latestRetrain, tc.latestErr)
			}

			if tc.wantStatsCall {
				statsGetter.EXPECT().
					GetRatingStats(mock.Anything, windowStart, true).
					Return(tc.stats, nil)
			}

			cmd := NewEvaluateRetrainTrigger(lowCounter, statsGetter, latestGetter, policy)

			decision, err := cmd.Execute(testContext(), EvaluateRetrainTriggerRequest{Now: now})
			require.NoError(t, err)

			require.Equal(t, tc.wantFire, decision.Fire)
			require.Equal(t, tc.lowCount, decision.LowCount)
			if tc.wantFire {
				require.Equal(t, tc.stats.Average, decision.AvgRating)
				require.Equal(t, domain.DecideHyperparameters(tc.stats.Average, tc.lowCount), decision.Params)
				require.NotZero(t, decision.Params.KMax)
			}
		})
	}
}

func TestEvaluateRetrainTrigger_Execute_ParamsScaleWithSeverity(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	policy := domain.DefaultRetrainPolicy()
	windowStart := policy.WindowStart(now)

	lowCounter := mocks.NewMockLowRatingCounter(t)
	statsGetter := mocks.NewMockRatingStatsGetter(t)
	latestGetter := mocks.NewMockLatestSuccessfulRetrainGetter(t)

	lowCounter.EXPECT().
		CountLowRatings(mock.Anything, policy.LowStarThreshold, windowStart, true).
		Return(5, nil)
	latestGetter.EXPECT().
		LatestSuccessfulRetrain(mock.Anything).
		Return(domain.RetrainLog{}, datasources.ErrNoRetrainLogs)
	statsGetter.EXPECT().
		GetRatingStats(mock.Anything, windowStart, true).
		Return(domain.RatingStats{Average: 1.6, Count: 5}, nil)

	cmd := NewEvaluateRetrainTrigger(lowCounter, statsGetter, latestGetter, policy)

	decision, err := cmd.Execute(testContext(), EvaluateRetrainTriggerRequest{Now: now})
	require.NoError(t, err)
	require.True(t, decision.Fire)

	// avg <= 2.0 widens the search beyond the defaults
	base := domain.DefaultHyperparameters()
	require.Greater(t, decision.Params.KMax, base.KMax)
	require.Greater(t, decision.Params.NInit, base.NInit)
}

func TestEvaluateRetrainTrigger_Execute_CountError(t *testing.T) {
	policy := domain.DefaultRetrainPolicy()

	lowCounter := mocks.NewMockLowRatingCounter(t)
	statsGetter := mocks.NewMockRatingStatsGetter(t)
	latestGetter := mocks.NewMockLatestSuccessfulRetrainGetter(t)

	lowCounter.EXPECT().
		CountLowRatings(mock.Anything, policy.LowStarThreshold, mock.Anything, true).
		Return(0, errors.New("db error"))

	cmd := NewEvaluateRetrainTrigger(lowCounter, statsGetter, latestGetter, policy)

	_, err := cmd.Execute(testContext(), EvaluateRetrainTriggerRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "counting low ratings")
}

func TestEvaluateRetrainTrigger_Execute_LatestRetrainError(t *testing.T) {
	now := time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)
	policy := domain.DefaultRetrainPolicy()
	windowStart := policy.WindowStart(now)

	lowCounter := mocks.NewMockLowRatingCounter(t)
	statsGetter := mocks.NewMockRatingStatsGetter(t)
	latestGetter := mocks.NewMockLatestSuccessfulRetrainGetter(t)

	lowCounter.EXPECT().
		CountLowRatings(mock.Anything, policy.LowStarThreshold, windowStart, true).
		Return(7, nil)
	latestGetter.EXPECT().
		LatestSuccessfulRetrain(mock.Anything).
		Return(domain.RetrainLog{}, errors.New("db error"))

	cmd := NewEvaluateRetrainTrigger(lowCounter, statsGetter, latestGetter, policy)

	_, err := cmd.Execute(testContext(), EvaluateRetrainTriggerRequest{Now: now})
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetching latest successful retrain")
}
