package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

type RSS struct {
	FeedHostname    string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Lister          datasources.RetrainLogLister
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	feed := &feeds.Feed{
		Title:       "SafeZone Retraining History",
		Link:        &feeds.Link{Href: c.FeedHostname + c.FeedPath},
		Description: "Feed of zone risk model retraining runs",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logs, err := c.Lister.ListRetrainLogs(ctx, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch retrain log entries for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	for _, l := range logs {
		status := "running"
		switch {
		case l.Succeeded():
			status = "succeeded"
		case l.Success != nil:
			status = "failed"
		}

		feed.Items = append(feed.Items, &feeds.Item{
			Id:          l.ID,
			IsPermaLink: "false",
			Title:       fmt.Sprintf("Retraining run %s (%s)", l.ID, status),
			Link:        &feeds.Link{Href: c.FeedHostname + "/v1/retrains"},
			Description: fmt.Sprintf(
				"Triggered by %d low ratings at average %.2f, searching up to %d clusters",
				l.LowCount, l.AvgRating, l.Params.KMax),
			Created: l.StartedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
