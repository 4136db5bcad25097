package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/safezone-pe/safezone-backend/internal/transport/web/controller"
)

func MakeRouter(
	repo datasources.Repository,
	similarity datasources.SimilarityRepository,
	rssFeedBaseURL, rssFeedAuthorName, rssFeedAuthorEmail string,
	zonesCacheMaxAge time.Duration,
	authMiddleware func(http.Handler) http.Handler,
	retrainPolicy domain.RetrainPolicy,
	submitRatingCmd command.Command[command.SubmitRatingRequest, command.SubmitRatingResponse],
	evaluateCmd command.Command[command.EvaluateRetrainTriggerRequest, command.RetrainDecision],
	createAPITokenCmd *command.CreateAPIToken,
	retrainWorker controller.RetrainKicker,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(corsMiddleware)
	r.Use(authMiddleware)

	r.Handle("/v1/ratings", controller.RatingSubmit{
		SubmitCmd: submitRatingCmd,
		Worker:    retrainWorker,
	}).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/ratings/stats", controller.RatingStatsGet{
		Stats:  repo,
		Policy: retrainPolicy,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/zones", controller.ZonesList{
		Lister:      repo,
		CacheMaxAge: zonesCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/zones/{zone_id}", controller.ZoneGet{
		Fetcher:     repo,
		CacheMaxAge: zonesCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/zones/{zone_id}/similar", controller.SimilarZonesList{
		Fetcher:     repo,
		Similarity:  similarity,
		CacheMaxAge: 0,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/retrains", controller.RetrainLogsList{
		Lister: repo,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/retrains", requireAuthMiddleware(controller.RetrainTrigger{
		EvaluateCmd: evaluateCmd,
		Worker:      retrainWorker,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenList{
		TokenLister: repo,
	})).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/v1/tokens", requireAuthMiddleware(controller.APITokenCreate{
		CreateCmd: createAPITokenCmd,
	})).Methods(http.MethodPost, http.MethodOptions)

	r.Handle("/v1/tokens/{token_id}", requireAuthMiddleware(controller.APITokenRevoke{
		TokenRevoker: repo,
	})).Methods(http.MethodDelete, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname:    rssFeedBaseURL,
			FeedPath:        "/rss/retrains",
			FeedAuthorName:  rssFeedAuthorName,
			FeedAuthorEmail: rssFeedAuthorEmail,
			Lister:          repo,
			CacheMaxAge:     zonesCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed)
	}

	return r, nil
}
