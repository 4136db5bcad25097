package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/datasources/pinecone"
	"github.com/safezone-pe/safezone-backend/internal/datasources/sqldb"
	"github.com/safezone-pe/safezone-backend/internal/datasources/trainhttp"
	"github.com/safezone-pe/safezone-backend/internal/datasources/trainlocal"
	"github.com/safezone-pe/safezone-backend/internal/transport/web/router"
	"github.com/safezone-pe/safezone-backend/internal/transport/web/server"
	"github.com/safezone-pe/safezone-backend/internal/worker"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	repo, err := setupRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up repository: %w", err)
	}

	similarity, err := setupSimilarityRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up similarity repository: %w", err)
	}

	trainer, err := setupTrainer(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up trainer: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx, repo)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	policy, err := SetupRetrainPolicy(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up retrain policy: %w", err)
	}

	submitRatingCmd := command.NewSubmitRating(repo)
	evaluateCmd := command.NewEvaluateRetrainTrigger(repo, repo, repo, policy)
	runRetrainCmd := command.NewRunRetrain(repo, repo, trainer, repo)
	createAPITokenCmd := command.NewCreateAPIToken(repo, repo)

	retrainWorker := worker.NewRetrainWorker(
		evaluateCmd,
		runRetrainCmd,
		MustGetEnvAsDuration(ctx, "RETRAIN_WORKER_INTERVAL"),
	)

	httpRouter, err := router.MakeRouter(
		repo,
		similarity,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_NAME"),
		MustGetEnvAsString(ctx, "RSS_FEED_AUTHOR_EMAIL"),
		MustGetEnvAsDuration(ctx, "ZONES_CACHE_MAX_AGE"),
		authMiddleware,
		policy,
		submitRatingCmd,
		evaluateCmd,
		createAPITokenCmd,
		retrainWorker,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
		retrainWorker,
	}, nil
}

func setupRepository(ctx context.Context) (datasources.Repository, error) {
	db, err := sqldb.Connect(
		ctx,
		MustGetEnvAsString(ctx, "DATABASE_DRIVER"),
		MustGetEnvAsString(ctx, "DATABASE_DSN"),
	)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := sqldb.Migrate(ctx, db); err != nil {
		return nil, fmt.Errorf("migrating database schema: %w", err)
	}

	return sqldb.New(db), nil
}

func setupSimilarityRepository(ctx context.Context) (datasources.SimilarityRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "SIMILARITY_DRIVER"); driver {
	case "null":
		return datasources.NullSimilarityRepository{}, nil
	case "pinecone":
		client, err := pinecone.NewClient(
			ctx,
			MustGetEnvAsString(ctx, "PINECONE_API_KEY"),
			MustGetEnvAsString(ctx, "PINECONE_INDEX_NAME"),
		)
		if err != nil {
			return nil, fmt.Errorf("connecting to pinecone: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unknown similarity driver [%s]", driver)
	}
}

func setupTrainer(ctx context.Context, repo datasources.Repository) (datasources.Trainer, error) {
	switch driver := MustGetEnvAsString(ctx, "TRAINER_DRIVER"); driver {
	case "local":
		return trainlocal.New(repo), nil
	case "http":
		return trainhttp.NewClient(MustGetEnvAsString(ctx, "TRAINER_BASE_URL")), nil
	default:
		return nil, fmt.Errorf("unknown trainer driver [%s]", driver)
	}
}

func setupAuthMiddleware(
	ctx context.Context, repo datasources.Repository,
) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "api_token":
			validators = append(validators, router.NewAPITokenValidator(ctx, repo, repo))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
