package domain

// CrimeCategories is the fixed category order used for profile vectors.
// Names follow the national police incident dataset.
var CrimeCategories = []string{
	"Homicidio",
	"Extorsión",
	"Robo",
	"Hurto",
	"Estafa",
	"Violencia contra la mujer e integrantes",
	"Otros",
}

// crimeSeverityWeights scale incident counts by how dangerous the offence is.
var crimeSeverityWeights = map[string]float64{
	"Homicidio":  10.0,
	"Extorsión":  8.0,
	"Robo":       5.0,
	"Hurto":      2.0,
	"Estafa":     1.5,
	"Violencia contra la mujer e integrantes": 3.0,
	"Otros": 1.0,
}

const defaultSeverityWeight = 1.0

// temporalWeightPerYear is the per-year recency boost applied to incidents.
const temporalWeightPerYear = 0.2

// CrimeSeverityWeight returns the severity weight for a crime category.
// Unknown categories weigh 1.
func CrimeSeverityWeight(category string) float64 {
	if w, ok := crimeSeverityWeights[category]; ok {
		return w
	}
	return defaultSeverityWeight
}

// TemporalWeight returns the recency weight for an incident year, relative to
// the earliest year in the dataset. More recent incidents weigh more:
// weight = 1 + (year - minYear) * 0.2.
func TemporalWeight(year, minYear int) float64 {
	return 1 + float64(year-minYear)*temporalWeightPerYear
}

// WeightedIncidentCount combines raw incident count with severity and recency.
func WeightedIncidentCount(count float64, category string, year, minYear int) float64 {
	return count * CrimeSeverityWeight(category) * TemporalWeight(year, minYear)
}

// Incident is one aggregated police dataset row: the number of reported
// incidents of one category in one zone during one year.
type Incident struct {
	ZoneID   string    `json:"zone_id"`
	Level    ZoneLevel `json:"level"`
	Category string    `json:"category"`
	Year     int       `json:"year"`
	Count    float64   `json:"count"`
}

// BuildWeightedProfiles aggregates raw incidents into per-zone crime
// profiles, applying severity and recency weights. Recency is measured
// against the earliest year present across the whole dataset, so every
// zone's profile is weighted on the same scale.
func BuildWeightedProfiles(incidents []Incident) map[string]map[string]float64 {
	if len(incidents) == 0 {
		return nil
	}

	minYear := incidents[0].Year
	for _, incident := range incidents[1:] {
		if incident.Year < minYear {
			minYear = incident.Year
		}
	}

	profiles := make(map[string]map[string]float64)
	for _, incident := range incidents {
		profile, ok := profiles[incident.ZoneID]
		if !ok {
			profile = make(map[string]float64)
			profiles[incident.ZoneID] = profile
		}
		profile[incident.Category] += WeightedIncidentCount(
			incident.Count, incident.Category, incident.Year, minYear)
	}

	return profiles
}
