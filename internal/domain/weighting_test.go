package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrimeSeverityWeight(t *testing.T) {
	cases := []struct {
		name     string
		category string
		want     float64
	}{
		{name: "homicide_heaviest", category: "Homicidio", want: 10.0},
		{name: "extortion", category: "Extorsión", want: 8.0},
		{name: "robbery", category: "Robo", want: 5.0},
		{name: "theft", category: "Hurto", want: 2.0},
		{name: "fraud", category: "Estafa", want: 1.5},
		{name: "other", category: "Otros", want: 1.0},
		{name: "unknown_defaults_to_one", category: "Secuestro", want: 1.0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CrimeSeverityWeight(tc.category))
		})
	}
}

func TestTemporalWeight(t *testing.T) {
	assert.Equal(t, 1.0, TemporalWeight(2018, 2018))
	assert.InDelta(t, 1.2, TemporalWeight(2019, 2018), 0.0001)
	assert.InDelta(t, 2.4, TemporalWeight(2025, 2018), 0.0001)
}

func TestWeightedIncidentCount(t *testing.T) {
	// 3 robberies in 2020 with dataset starting 2018: 3 * 5.0 * 1.4.
	assert.InDelta(t, 21.0, WeightedIncidentCount(3, "Robo", 2020, 2018), 0.0001)
}

func TestBuildWeightedProfiles(t *testing.T) {
	assert.Nil(t, BuildWeightedProfiles(nil))

	profiles := BuildWeightedProfiles([]Incident{
		{ZoneID: "150101", Category: "Robo", Year: 2018, Count: 10},
		{ZoneID: "150101", Category: "Robo", Year: 2020, Count: 2},
		{ZoneID: "150101", Category: "Homicidio", Year: 2019, Count: 1},
		{ZoneID: "040101", Category: "Hurto", Year: 2021, Count: 4},
	})

	require.Len(t, profiles, 2)
	// 10 * 5.0 * 1.0 + 2 * 5.0 * 1.4, both against the dataset-wide 2018 floor.
	assert.InDelta(t, 64.0, profiles["150101"]["Robo"], 0.0001)
	assert.InDelta(t, 12.0, profiles["150101"]["Homicidio"], 0.0001)
	assert.InDelta(t, 4*2.0*1.6, profiles["040101"]["Hurto"], 0.0001)
}

func TestZone_ProfileVector(t *testing.T) {
	zone := Zone{
		Profile: map[string]float64{
			"Homicidio": 12.5,
			"Robo":      40,
		},
	}

	vector := zone.ProfileVector()
	assert.Len(t, vector, len(CrimeCategories))
	assert.Equal(t, float32(12.5), vector[0])
	assert.Equal(t, float32(40), vector[2])
	assert.Equal(t, float32(0), vector[4])
}
