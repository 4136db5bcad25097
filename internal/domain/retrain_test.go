package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetrainPolicy_WindowStart(t *testing.T) {
	now := time.Date(2024, 6, 13, 15, 30, 0, 0, time.UTC) // a Thursday

	cases := []struct {
		name   string
		policy RetrainPolicy
		want   time.Time
	}{
		{
			name:   "rolling_seven_days",
			policy: DefaultRetrainPolicy(),
			want:   time.Date(2024, 6, 6, 15, 30, 0, 0, time.UTC),
		},
		{
			name: "calendar_week_starts_monday",
			policy: RetrainPolicy{
				Window:    7 * 24 * time.Hour,
				Alignment: WindowAlignmentCalendarWeek,
			},
			want: time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.policy.WindowStart(now))
		})
	}
}

func TestRetrainPolicy_WindowStart_CalendarWeekOnSunday(t *testing.T) {
	policy := RetrainPolicy{Window: 7 * 24 * time.Hour, Alignment: WindowAlignmentCalendarWeek}
	sunday := time.Date(2024, 6, 16, 10, 0, 0, 0, time.UTC)

	// Sunday belongs to the week that started the previous Monday.
	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), policy.WindowStart(sunday))
}

func TestRetrainPolicy_InWindow(t *testing.T) {
	now := time.Date(2024, 6, 13, 12, 0, 0, 0, time.UTC)
	windowStart := now.Add(-7 * 24 * time.Hour)

	cases := []struct {
		name      string
		policy    RetrainPolicy
		timestamp time.Time
		want      bool
	}{
		{
			name:      "inside_window",
			policy:    DefaultRetrainPolicy(),
			timestamp: now.Add(-2 * 24 * time.Hour),
			want:      true,
		},
		{
			name:      "before_window",
			policy:    DefaultRetrainPolicy(),
			timestamp: now.Add(-8 * 24 * time.Hour),
			want:      false,
		},
		{
			name:      "exactly_at_boundary_inclusive",
			policy:    DefaultRetrainPolicy(),
			timestamp: windowStart,
			want:      true,
		},
		{
			name: "exactly_at_boundary_exclusive",
			policy: RetrainPolicy{
				Window:              7 * 24 * time.Hour,
				Alignment:           WindowAlignmentRolling,
				InclusiveLowerBound: false,
			},
			timestamp: windowStart,
			want:      false,
		},
		{
			name:      "after_now",
			policy:    DefaultRetrainPolicy(),
			timestamp: now.Add(time.Hour),
			want:      false,
		},
		{
			name:      "exactly_now",
			policy:    DefaultRetrainPolicy(),
			timestamp: now,
			want:      true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.policy.InWindow(tc.timestamp, now))
		})
	}
}

func TestDecideHyperparameters(t *testing.T) {
	cases := []struct {
		name      string
		avgRating float64
		lowCount  int
		want      Hyperparameters
	}{
		{
			name:      "healthy_ratings_keep_defaults",
			avgRating: 4.2,
			lowCount:  5,
			want:      DefaultHyperparameters(),
		},
		{
			name:      "very_low_average_widens_search",
			avgRating: 1.8,
			lowCount:  5,
			want: Hyperparameters{
				KMin: 2, KMax: 13, CovarianceType: "diag",
				MaxIter: 800, NInit: 20, RandomState: 42,
			},
		},
		{
			name:      "moderately_low_average",
			avgRating: 2.7,
			lowCount:  5,
			want: Hyperparameters{
				KMin: 2, KMax: 12, CovarianceType: "diag",
				MaxIter: 600, NInit: 15, RandomState: 42,
			},
		},
		{
			name:      "many_low_ratings_widen_further",
			avgRating: 1.5,
			lowCount:  25,
			want: Hyperparameters{
				KMin: 2, KMax: 15, CovarianceType: "diag",
				MaxIter: 800, NInit: 30, RandomState: 42,
			},
		},
		{
			name:      "boundary_average_of_two",
			avgRating: 2.0,
			lowCount:  0,
			want: Hyperparameters{
				KMin: 2, KMax: 13, CovarianceType: "diag",
				MaxIter: 800, NInit: 20, RandomState: 42,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecideHyperparameters(tc.avgRating, tc.lowCount))
		})
	}
}

func TestRetrainLog_Succeeded(t *testing.T) {
	success := true
	failure := false

	assert.False(t, RetrainLog{}.Succeeded())
	assert.False(t, RetrainLog{Success: &failure}.Succeeded())
	assert.True(t, RetrainLog{Success: &success}.Succeeded())
}
