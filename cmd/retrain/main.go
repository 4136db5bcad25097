package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/safezone-pe/safezone-backend/internal/app"
	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/datasources/sqldb"
	"github.com/safezone-pe/safezone-backend/internal/datasources/trainhttp"
	"github.com/safezone-pe/safezone-backend/internal/datasources/trainlocal"
	"github.com/safezone-pe/safezone-backend/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

// One-shot retraining job for scheduled runs. Evaluates the trigger and, when
// it fires (or RETRAIN_FORCE is set), performs one retraining run.
func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "retraining job failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	db, err := sqldb.Connect(
		ctx,
		app.MustGetEnvAsString(ctx, "DATABASE_DRIVER"),
		app.MustGetEnvAsString(ctx, "DATABASE_DSN"),
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := sqldb.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating database schema: %w", err)
	}

	repo := sqldb.New(db)

	var trainer datasources.Trainer
	switch driver := app.MustGetEnvAsString(ctx, "TRAINER_DRIVER"); driver {
	case "local":
		trainer = trainlocal.New(repo)
	case "http":
		trainer = trainhttp.NewClient(app.MustGetEnvAsString(ctx, "TRAINER_BASE_URL"))
	default:
		return fmt.Errorf("unknown trainer driver [%s]", driver)
	}

	policy, err := app.SetupRetrainPolicy(ctx)
	if err != nil {
		return fmt.Errorf("setting up retrain policy: %w", err)
	}

	evaluateCmd := command.NewEvaluateRetrainTrigger(repo, repo, repo, policy)

	decision, err := evaluateCmd.Execute(ctx, command.EvaluateRetrainTriggerRequest{})
	if err != nil {
		return fmt.Errorf("evaluating retrain trigger: %w", err)
	}

	if !decision.Fire {
		if os.Getenv("RETRAIN_FORCE") != "true" {
			logger.InfoContext(ctx, "retrain trigger did not fire, nothing to do",
				"low_count", decision.LowCount)
			return nil
		}

		logger.InfoContext(ctx, "retrain trigger did not fire, retraining anyway",
			"low_count", decision.LowCount)
		decision.Params = domain.DefaultHyperparameters()
	}

	runRetrainCmd := command.NewRunRetrain(repo, repo, trainer, repo)

	resp, err := runRetrainCmd.Execute(ctx, command.RunRetrainRequest{
		Params:    decision.Params,
		AvgRating: decision.AvgRating,
		LowCount:  decision.LowCount,
	})
	if err != nil {
		return fmt.Errorf("running retraining: %w", err)
	}

	logger.InfoContext(ctx, "retraining completed successfully",
		"retrain_id", resp.LogID, "best_k", resp.BestK, "zones_updated", resp.ZonesUpdated)
	return nil
}
