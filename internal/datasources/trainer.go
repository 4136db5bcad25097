package datasources

import (
	"context"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// Trainer fits a fresh risk model with the given hyperparameters and returns
// the resulting zone risk assignments. Implementations may run the training
// in-process or delegate to an external service.
type Trainer interface {
	Train(ctx context.Context, params domain.Hyperparameters) (domain.TrainingResult, error)
}
