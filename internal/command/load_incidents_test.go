package command

import (
	"context"
	"errors"
	"testing"

	"github.com/safezone-pe/safezone-backend/internal/datasources/mocks"
	"github.com/safezone-pe/safezone-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoadIncidents_Execute(t *testing.T) {
	incidents := []domain.Incident{
		{ZoneID: "150101", Level: domain.ZoneLevelDistrict, Category: "Robo", Year: 2018, Count: 10},
		{ZoneID: "150101", Level: domain.ZoneLevelDistrict, Category: "Robo", Year: 2020, Count: 2},
		{ZoneID: "040101", Level: domain.ZoneLevelDistrict, Category: "Hurto", Year: 2021, Count: 4},
	}
	zones := []domain.Zone{
		{ID: "150101", Name: "Lima", Level: domain.ZoneLevelDistrict},
		{ID: "040101", Name: "Arequipa", Level: domain.ZoneLevelDistrict},
	}

	incidentStore := mocks.NewMockIncidentReplacer(t)
	incidentStore.EXPECT().ReplaceIncidents(mock.Anything, incidents).Return(nil)

	upserted := map[string]domain.Zone{}
	zoneStore := mocks.NewMockZoneUpserter(t)
	zoneStore.EXPECT().UpsertZone(mock.Anything, mock.Anything).
		Run(func(_ context.Context, zone domain.Zone) {
			upserted[zone.ID] = zone
		}).
		Return(nil).
		Times(2)

	cmd := NewLoadIncidents(incidentStore, zoneStore)

	resp, err := cmd.Execute(testContext(), LoadIncidentsRequest{
		Zones:     zones,
		Incidents: incidents,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ZonesUpserted)
	assert.Equal(t, 3, resp.IncidentsStored)

	// Profiles carry dataset-wide severity and recency weighting.
	lima := upserted["150101"]
	require.NotNil(t, lima.Profile)
	assert.InDelta(t, 10*5.0*1.0+2*5.0*1.4, lima.Profile["Robo"], 0.0001)
	assert.InDelta(t, 4*2.0*1.6, upserted["040101"].Profile["Hurto"], 0.0001)
	assert.False(t, lima.UpdatedAt.IsZero())
}

func TestLoadIncidents_Execute_EmptyDataset(t *testing.T) {
	cmd := NewLoadIncidents(mocks.NewMockIncidentReplacer(t), mocks.NewMockZoneUpserter(t))

	_, err := cmd.Execute(testContext(), LoadIncidentsRequest{})
	assert.ErrorIs(t, err, ErrNoIncidents)
}

func TestLoadIncidents_Execute_ReplaceError(t *testing.T) {
	incidentStore := mocks.NewMockIncidentReplacer(t)
	incidentStore.EXPECT().ReplaceIncidents(mock.Anything, mock.Anything).
		Return(errors.New("disk full"))

	cmd := NewLoadIncidents(incidentStore, mocks.NewMockZoneUpserter(t))

	_, err := cmd.Execute(testContext(), LoadIncidentsRequest{
		Incidents: []domain.Incident{{ZoneID: "150101", Category: "Robo", Year: 2020, Count: 1}},
	})
	assert.ErrorContains(t, err, "replacing incidents")
}
