package domain

import "time"

// ZoneLevel is the administrative granularity of a zone.
type ZoneLevel string

const (
	ZoneLevelDistrict   ZoneLevel = "district"
	ZoneLevelDepartment ZoneLevel = "department"
)

// Zone is one geographic jurisdiction with its model-assigned risk level and
// the weighted crime counts the model was fitted on.
type Zone struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Level     ZoneLevel          `json:"level"`
	RiskLevel int                `json:"risk_level"`
	Profile   map[string]float64 `json:"profile"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// ProfileVector flattens a zone's crime profile into a fixed category order,
// suitable for vector similarity search.
func (z Zone) ProfileVector() []float32 {
	vector := make([]float32, len(CrimeCategories))
	for i, category := range CrimeCategories {
		vector[i] = float32(z.Profile[category])
	}
	return vector
}

// ZoneAssignment is a trainer-produced risk level for one zone.
type ZoneAssignment struct {
	ZoneID    string `json:"zone_id"`
	RiskLevel int    `json:"risk_level"`
}

// SimilarZone is a zone returned by similarity search, with its score.
type SimilarZone struct {
	ZoneID string  `json:"zone_id"`
	Score  float64 `json:"score"`
}

// ZoneFilters narrow a zone listing.
type ZoneFilters struct {
	Level        ZoneLevel
	MinRiskLevel *int
}

// ZoneListOptions control ordering and pagination of a zone listing.
type ZoneListOptions struct {
	Ordering       []ZoneOrdering
	Page, PageSize int
}

type ZoneOrdering struct {
	Field ZoneOrderingField
	Desc  bool
}

type ZoneOrderingField string

const ZoneOrderingFieldName ZoneOrderingField = "name"
const ZoneOrderingFieldRiskLevel ZoneOrderingField = "risk_level"
const ZoneOrderingFieldUpdatedAt ZoneOrderingField = "updated_at"

var ValidZoneOrderingFields = []ZoneOrderingField{
	ZoneOrderingFieldName,
	ZoneOrderingFieldRiskLevel,
	ZoneOrderingFieldUpdatedAt,
}
