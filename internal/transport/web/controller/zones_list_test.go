package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestZonesList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)
	minRisk := 3

	testZones := []domain.Zone{
		{ID: "lima-miraflores", Name: "Miraflores", Level: domain.ZoneLevelDistrict, RiskLevel: 1, UpdatedAt: testTime},
		{ID: "lima-callao", Name: "Callao", Level: domain.ZoneLevelDistrict, RiskLevel: 4, UpdatedAt: testTime},
	}

	cases := []struct {
		name        string
		queryString string
		wantFilters domain.ZoneFilters
		wantOptions domain.ZoneListOptions
		zones       []domain.Zone
		listErr     error
		skipList    bool
		wantStatus  int
	}{
		{
			name:        "default_list",
			wantOptions: domain.ZoneListOptions{Page: 1, PageSize: 50},
			zones:       testZones,
			wantStatus:  http.StatusOK,
		},
		{
			name:        "filtered_and_sorted",
			queryString: "?level=district&min_risk_level=3&sort=risk_level_desc&page=2&page_size=10",
			wantFilters: domain.ZoneFilters{Level: domain.ZoneLevelDistrict, MinRiskLevel: &minRisk},
			wantOptions: domain.ZoneListOptions{
				Ordering: []domain.ZoneOrdering{{Field: domain.ZoneOrderingFieldRiskLevel, Desc: true}},
				Page:     2,
				PageSize: 10,
			},
			zones:      testZones[1:],
			wantStatus: http.StatusOK,
		},
		{
			name:        "invalid_level",
			queryString: "?level=province",
			skipList:    true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "invalid_sort_field",
			queryString: "?sort=crime_rate",
			skipList:    true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "oversized_page",
			queryString: "?page_size=10000",
			skipList:    true,
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "list_error",
			wantOptions: domain.ZoneListOptions{Page: 1, PageSize: 50},
			listErr:     errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockZoneLister(t)

			if !tc.skipList {
				lister.EXPECT().
					ListZones(mock.Anything, tc.wantFilters, tc.wantOptions).
					Return(tc.zones, tc.listErr)
			}

			ctrl := ZonesList{
				Lister:      lister,
				CacheMaxAge: time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/zones"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp ZonesListResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.zones, resp.Data)
				assert.Equal(t, "max-age=60", rec.Header().Get("Cache-Control"))
			}
		})
	}
}
