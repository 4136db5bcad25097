package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestZoneGet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	testZone := domain.Zone{
		ID:        "lima-miraflores",
		Name:      "Miraflores",
		Level:     domain.ZoneLevelDistrict,
		RiskLevel: 1,
		UpdatedAt: testTime,
	}

	cases := []struct {
		name       string
		zoneID     string
		zone       domain.Zone
		fetchErr   error
		wantStatus int
	}{
		{
			name:       "found",
			zoneID:     "lima-miraflores",
			zone:       testZone,
			wantStatus: http.StatusOK,
		},
		{
			name:       "not_found",
			zoneID:     "missing",
			fetchErr:   datasources.ErrZoneNotFound,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "fetch_error",
			zoneID:     "lima-miraflores",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockZoneFetcher(t)

			fetcher.EXPECT().
				FetchZone(mock.Anything, tc.zoneID).
				Return(tc.zone, tc.fetchErr)

			ctrl := ZoneGet{
				Fetcher:     fetcher,
				CacheMaxAge: time.Minute,
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/zones/"+tc.zoneID, nil)
			req = testContext()(req)
			req = mux.SetURLVars(req, map[string]string{"zone_id": tc.zoneID})
			rec := httptest.NewRecorder()

			ctrl.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var resp domain.Zone
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tc.zone, resp)
			}
		})
	}
}

func TestSimilarZonesList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	baseZone := domain.Zone{
		ID:        "lima-callao",
		Name:      "Callao",
		Level:     domain.ZoneLevelDistrict,
		RiskLevel: 4,
		Profile:   map[string]float64{"Robo": 12},
		UpdatedAt: testTime,
	}
	similarZone := domain.Zone{
		ID:        "lima-rimac",
		Name:      "Rimac",
		Level:     domain.ZoneLevelDistrict,
		RiskLevel: 4,
		Profile:   map[string]float64{"Robo": 11},
		UpdatedAt: testTime,
	}

	fetcher := mocks.NewMockZoneFetcher(t)
	similarity := mocks.NewMockSimilarZoneLister(t)

	fetcher.EXPECT().
		FetchZone(mock.Anything, "lima-callao").
		Return(baseZone, nil)
	similarity.EXPECT().
		ListSimilarZones(mock.Anything, "lima-callao", baseZone.ProfileVector(), similarZonesCount).
		Return([]domain.SimilarZone{
			{ZoneID: "lima-rimac", Score: 0.97},
			{ZoneID: "gone", Score: 0.91},
		}, nil)
	fetcher.EXPECT().
		FetchZone(mock.Anything, "lima-rimac").
		Return(similarZone, nil)
	fetcher.EXPECT().
		FetchZone(mock.Anything, "gone").
		Return(domain.Zone{}, datasources.ErrZoneNotFound)

	ctrl := SimilarZonesList{
		Fetcher:    fetcher,
		Similarity: similarity,
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/zones/lima-callao/similar", nil)
	req = testContext()(req)
	req = mux.SetURLVars(req, map[string]string{"zone_id": "lima-callao"})
	rec := httptest.NewRecorder()

	ctrl.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ZonesListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	// Stale similarity hits are dropped rather than failing the request.
	assert.Equal(t, []domain.Zone{similarZone}, resp.Data)
}
