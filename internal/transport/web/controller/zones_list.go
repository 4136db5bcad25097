package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

type ZonesList struct {
	Lister      datasources.ZoneLister
	CacheMaxAge time.Duration
}

type ZonesListResponse struct {
	Data     []domain.Zone     `json:"data"`
	Metadata ZonesListMetadata `json:"metadata"`
}

type ZonesListMetadata struct{}

func (c ZonesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	filters, err := zoneFiltersFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse zone filters in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := zoneListOptionsFromQuery(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse zone list options in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	zones, err := c.Lister.ListZones(ctx, filters, options)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch zones", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ZonesListResponse{
		Data:     zones,
		Metadata: ZonesListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write zones to response", "error", err)
	}
}

func zoneFiltersFromQuery(q url.Values) (domain.ZoneFilters, error) {
	var filters domain.ZoneFilters

	if q.Has("level") {
		level := domain.ZoneLevel(q.Get("level"))
		if level != domain.ZoneLevelDistrict && level != domain.ZoneLevelDepartment {
			return domain.ZoneFilters{}, fmt.Errorf("unrecognised zone level: %s", q.Get("level"))
		}
		filters.Level = level
	}

	if q.Has("min_risk_level") {
		minRisk, err := strconv.Atoi(q.Get("min_risk_level"))
		if err != nil {
			return domain.ZoneFilters{}, fmt.Errorf("unable to parse min risk level from query: %w", err)
		}
		filters.MinRiskLevel = &minRisk
	}

	return filters, nil
}

func zoneListOptionsFromQuery(q url.Values) (domain.ZoneListOptions, error) {
	var options domain.ZoneListOptions

	page, pageSize, err := parsePagination(q)
	if err != nil {
		return domain.ZoneListOptions{}, err
	}
	options.Page = page
	options.PageSize = pageSize

	if q.Has("sort") {
		orderings := strings.Split(q.Get("sort"), ",")

		for _, ordering := range orderings {
			field := ordering
			desc := false
			if strings.HasSuffix(ordering, "_desc") {
				field = ordering[:len(ordering)-5]
				desc = true
			}

			if !slices.Contains(domain.ValidZoneOrderingFields, domain.ZoneOrderingField(field)) {
				return domain.ZoneListOptions{}, fmt.Errorf("unrecognised zone ordering field: %s", field)
			}

			options.Ordering = append(options.Ordering, domain.ZoneOrdering{
				Field: domain.ZoneOrderingField(field),
				Desc:  desc,
			})
		}
	}

	return options, nil
}
