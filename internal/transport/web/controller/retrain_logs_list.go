package controller

import (
	"encoding/json"
	"net/http"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

type RetrainLogsList struct {
	Lister datasources.RetrainLogLister
}

type RetrainLogsListResponse struct {
	Data []domain.RetrainLog `json:"data"`
}

func (c RetrainLogsList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	logs, err := c.Lister.ListRetrainLogs(ctx, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch retrain log entries", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(RetrainLogsListResponse{
		Data: logs,
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write retrain log entries to response", "error", err)
	}
}
