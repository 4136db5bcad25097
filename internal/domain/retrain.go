package domain

import "time"

// WindowAlignment controls how the retrain window is anchored.
type WindowAlignment string

const (
	// WindowAlignmentRolling anchors the window at now minus the window length.
	WindowAlignmentRolling WindowAlignment = "rolling"
	// WindowAlignmentCalendarWeek anchors the window at the start of the
	// current ISO week (Monday 00:00 UTC).
	WindowAlignmentCalendarWeek WindowAlignment = "calendar_week"
)

// RetrainPolicy holds the parameters of the retraining trigger.
//
// Whether the window's lower bound is inclusive, and whether the window is a
// rolling period or the current calendar week, are kept configurable rather
// than hardcoded.
type RetrainPolicy struct {
	// LowStarThreshold is the highest star value still counted as a low rating.
	LowStarThreshold int

	// TriggerCount is the number of low ratings in the window needed to fire.
	TriggerCount int

	// Window is the length of the evaluation window.
	Window time.Duration

	// Alignment anchors the window, rolling or calendar week.
	Alignment WindowAlignment

	// InclusiveLowerBound counts events exactly at the window start.
	InclusiveLowerBound bool
}

// DefaultRetrainPolicy returns the policy the production deployment runs with:
// at least 5 ratings of 2 stars or fewer within a rolling 7 days, lower bound
// inclusive.
func DefaultRetrainPolicy() RetrainPolicy {
	return RetrainPolicy{
		LowStarThreshold:    2,
		TriggerCount:        5,
		Window:              7 * 24 * time.Hour,
		Alignment:           WindowAlignmentRolling,
		InclusiveLowerBound: true,
	}
}

// WindowStart returns the lower bound of the evaluation window ending at now.
func (p RetrainPolicy) WindowStart(now time.Time) time.Time {
	if p.Alignment == WindowAlignmentCalendarWeek {
		day := now.UTC()
		weekday := int(day.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		monday := day.AddDate(0, 0, -(weekday - 1))
		return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, time.UTC)
	}
	return now.Add(-p.Window)
}

// InWindow reports whether t falls inside the evaluation window ending at now.
func (p RetrainPolicy) InWindow(t, now time.Time) bool {
	start := p.WindowStart(now)
	if p.InclusiveLowerBound {
		if t.Before(start) {
			return false
		}
	} else if !t.After(start) {
		return false
	}
	return !t.After(now)
}

// Hyperparameters are the knobs passed to the Gaussian mixture trainer.
type Hyperparameters struct {
	KMin           int    `json:"k_min"`
	KMax           int    `json:"k_max"`
	CovarianceType string `json:"covariance_type"`
	MaxIter        int    `json:"max_iter"`
	NInit          int    `json:"n_init"`
	RandomState    int    `json:"random_state"`
}

// DefaultHyperparameters returns the base training configuration.
func DefaultHyperparameters() Hyperparameters {
	return Hyperparameters{
		KMin:           2,
		KMax:           11,
		CovarianceType: "diag",
		MaxIter:        500,
		NInit:          10,
		RandomState:    42,
	}
}

// DecideHyperparameters adjusts the base hyperparameters from recent rating
// statistics. Low average ratings widen the hyperparameter exploration, and a
// large number of low ratings widens it further.
func DecideHyperparameters(avgRating float64, lowCount int) Hyperparameters {
	params := DefaultHyperparameters()

	switch {
	case avgRating <= 2.0:
		params.KMax += 2
		params.NInit += 10
		params.MaxIter += 300
	case avgRating <= 3.0:
		params.KMax++
		params.NInit += 5
		params.MaxIter += 100
	}

	if lowCount >= 20 {
		params.KMax += 2
		params.NInit += 10
	}

	return params
}

// TrainingResult is the outcome of a completed training run.
type TrainingResult struct {
	BestK       int              `json:"best_k"`
	BIC         float64          `json:"bic"`
	Assignments []ZoneAssignment `json:"assignments"`
}

// RetrainLog is the persisted record of one retraining attempt.
//
// An entry is created when the attempt starts, with Success unset, and is
// finalized exactly once when the attempt finishes. Finalized entries are
// never modified again.
type RetrainLog struct {
	ID         string          `json:"id"`
	StartedAt  time.Time       `json:"started_at"`
	FinishedAt *time.Time      `json:"finished_at,omitempty"`
	AvgRating  float64         `json:"avg_rating"`
	LowCount   int             `json:"low_count"`
	Params     Hyperparameters `json:"params"`
	Success    *bool           `json:"success,omitempty"`
	Error      string          `json:"error,omitempty"`
}

// Succeeded reports whether the attempt has been finalized as successful.
func (l RetrainLog) Succeeded() bool {
	return l.Success != nil && *l.Success
}
