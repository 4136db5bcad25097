package datasources

import (
	"context"
	"errors"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// ErrNoRetrainLogs is returned when no retrain log entry matches a query.
var ErrNoRetrainLogs = errors.New("no retrain log entries")

// RetrainLogCreator appends a new pending retrain log entry.
type RetrainLogCreator interface {
	CreateRetrainLog(ctx context.Context, entry domain.RetrainLog) error
}

// RetrainLogFinalizer marks a retrain log entry as finished. Called exactly
// once per entry; the entry is immutable afterwards.
type RetrainLogFinalizer interface {
	FinalizeRetrainLog(ctx context.Context, id string, finishedAt time.Time, success bool, errMsg string) error
}

// LatestSuccessfulRetrainGetter returns the most recent retrain log entry
// finalized as successful, or ErrNoRetrainLogs.
type LatestSuccessfulRetrainGetter interface {
	LatestSuccessfulRetrain(ctx context.Context) (domain.RetrainLog, error)
}

// RetrainLogLister lists retrain log entries, newest first.
type RetrainLogLister interface {
	ListRetrainLogs(ctx context.Context, page, pageSize int) ([]domain.RetrainLog, error)
}

// RetrainLogRepository combines all retrain log operations.
type RetrainLogRepository interface {
	RetrainLogCreator
	RetrainLogFinalizer
	LatestSuccessfulRetrainGetter
	RetrainLogLister
}
