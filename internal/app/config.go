package app

import (
	"context"
	"fmt"

	"github.com/safezone-pe/safezone-backend/internal/domain"
)

// SetupRetrainPolicy builds the retrain trigger policy from the environment.
func SetupRetrainPolicy(ctx context.Context) (domain.RetrainPolicy, error) {
	policy := domain.DefaultRetrainPolicy()

	policy.LowStarThreshold = MustGetEnvAsInt(ctx, "RETRAIN_LOW_STAR_THRESHOLD")
	policy.TriggerCount = MustGetEnvAsInt(ctx, "RETRAIN_TRIGGER_COUNT")
	policy.Window = MustGetEnvAsDuration(ctx, "RETRAIN_WINDOW")
	policy.InclusiveLowerBound = MustGetEnvAsBoolean(ctx, "RETRAIN_WINDOW_INCLUSIVE")

	switch alignment := domain.WindowAlignment(MustGetEnvAsString(ctx, "RETRAIN_WINDOW_ALIGNMENT")); alignment {
	case domain.WindowAlignmentRolling, domain.WindowAlignmentCalendarWeek:
		policy.Alignment = alignment
	default:
		return domain.RetrainPolicy{}, fmt.Errorf("unknown window alignment [%s]", alignment)
	}

	return policy, nil
}
