package datasources

// Repository combines every persistence concern of the service: ratings,
// retrain logs, zones, incidents, and API tokens.
type Repository interface {
	RatingRepository
	RetrainLogRepository
	ZoneRepository
	IncidentRepository
	APITokenRepository
}
