package sqldb

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/safezone-pe/safezone-backend/internal/datasources"
	"github.com/safezone-pe/safezone-backend/internal/domain"
)

var _ datasources.Repository = (*Repository)(nil)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) AddRating(ctx context.Context, rating domain.Rating) error {
	var comment sql.NullString
	if rating.Comment != "" {
		comment = sql.NullString{String: rating.Comment, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO ratings (id, created_at, stars, comment) VALUES (?, ?, ?, ?)`,
		rating.ID, rating.CreatedAt, rating.Stars, comment,
	)
	if err != nil {
		return fmt.Errorf("inserting rating: %w", err)
	}
	return nil
}

func (r *Repository) CountLowRatings(
	ctx context.Context, maxStars int, windowStart time.Time, inclusive bool,
) (int, error) {
	sb := sqlbuilder.Select("COUNT(*)")
	sb.From("ratings")
	sb.Where(sb.LessEqualThan("stars", maxStars))
	if inclusive {
		sb.Where(sb.GreaterEqualThan("created_at", windowStart))
	} else {
		sb.Where(sb.GreaterThan("created_at", windowStart))
	}

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting low ratings: %w", err)
	}
	return count, nil
}

func (r *Repository) GetRatingStats(
	ctx context.Context, windowStart time.Time, inclusive bool,
) (domain.RatingStats, error) {
	sb := sqlbuilder.Select("AVG(stars)", "COUNT(*)")
	sb.From("ratings")
	if inclusive {
		sb.Where(sb.GreaterEqualThan("created_at", windowStart))
	} else {
		sb.Where(sb.GreaterThan("created_at", windowStart))
	}

	query, args := sb.Build()
	row := r.db.QueryRowContext(ctx, query, args...)

	var avg sql.NullFloat64
	var count int
	if err := row.Scan(&avg, &count); err != nil {
		return domain.RatingStats{}, fmt.Errorf("reading rating stats: %w", err)
	}

	return domain.RatingStats{Average: avg.Float64, Count: count}, nil
}

func (r *Repository) CreateRetrainLog(ctx context.Context, entry domain.RetrainLog) error {
	paramsJSON, err := json.Marshal(entry.Params)
	if err != nil {
		return fmt.Errorf("serializing hyperparameters: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO retrain_logs (id, started_at, avg_rating, low_count, params_json)
		 VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.StartedAt, entry.AvgRating, entry.LowCount, string(paramsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting retrain log entry: %w", err)
	}
	return nil
}

func (r *Repository) FinalizeRetrainLog(
	ctx context.Context, id string, finishedAt time.Time, success bool, errMsg string,
) error {
	var errMessage sql.NullString
	if errMsg != "" {
		errMessage = sql.NullString{String: errMsg, Valid: true}
	}

	// The finished_at guard makes finalization idempotent: a finalized entry
	// is never modified again.
	res, err := r.db.ExecContext(ctx,
		`UPDATE retrain_logs SET finished_at = ?, success = ?, error_message = ?
		 WHERE id = ? AND finished_at IS NULL`,
		finishedAt, success, errMessage, id,
	)
	if err != nil {
		return fmt.Errorf("finalizing retrain log entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking finalized rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("retrain log entry [%s] missing or already finalized", id)
	}
	return nil
}

func (r *Repository) LatestSuccessfulRetrain(ctx context.Context) (domain.RetrainLog, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, started_at, finished_at, avg_rating, low_count, params_json, success, error_message
		 FROM retrain_logs
		 WHERE success = TRUE
		 ORDER BY started_at DESC
		 LIMIT 1`,
	)

	entry, err := scanRetrainLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.RetrainLog{}, datasources.ErrNoRetrainLogs
	}
	if err != nil {
		return domain.RetrainLog{}, fmt.Errorf("fetching latest successful retrain: %w", err)
	}
	return entry, nil
}

func (r *Repository) ListRetrainLogs(
	ctx context.Context, page, pageSize int,
) ([]domain.RetrainLog, error) {
	sb := sqlbuilder.Select(
		"id", "started_at", "finished_at", "avg_rating", "low_count",
		"params_json", "success", "error_message",
	)
	sb.From("retrain_logs")
	sb.OrderBy("started_at DESC")
	sb.Offset((page - 1) * pageSize)
	sb.Limit(pageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running retrain logs query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	entries := []domain.RetrainLog{}
	for rows.Next() {
		entry, err := scanRetrainLog(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning retrain log entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating retrain log rows: %w", err)
	}

	return entries, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRetrainLog(row rowScanner) (domain.RetrainLog, error) {
	var entry domain.RetrainLog
	var finishedAt sql.NullTime
	var paramsJSON string
	var success sql.NullBool
	var errMessage sql.NullString

	if err := row.Scan(
		&entry.ID, &entry.StartedAt, &finishedAt, &entry.AvgRating,
		&entry.LowCount, &paramsJSON, &success, &errMessage,
	); err != nil {
		return domain.RetrainLog{}, err
	}

	if finishedAt.Valid {
		entry.FinishedAt = &finishedAt.Time
	}
	if success.Valid {
		entry.Success = &success.Bool
	}
	entry.Error = errMessage.String

	if err := json.Unmarshal([]byte(paramsJSON), &entry.Params); err != nil {
		return domain.RetrainLog{}, fmt.Errorf("parsing hyperparameters: %w", err)
	}

	return entry, nil
}

func (r *Repository) ListZones(
	ctx context.Context,
	filters domain.ZoneFilters,
	options domain.ZoneListOptions,
) ([]domain.Zone, error) {
	sb := sqlbuilder.Select("id", "name", "level", "risk_level", "profile_json", "updated_at")
	sb.From("zones")

	if conds := buildZonesConditions(sb, filters); len(conds) > 0 {
		sb.Where(conds...)
	}

	orderings, err := buildZonesOrder(options)
	if err != nil {
		return nil, fmt.Errorf("building zones order by clause: %w", err)
	}
	sb.OrderBy(orderings...)
	sb.Offset((options.Page - 1) * options.PageSize)
	sb.Limit(options.PageSize)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running zones query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	zones := []domain.Zone{}
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning zone: %w", err)
		}
		zones = append(zones, zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating zone rows: %w", err)
	}

	return zones, nil
}

func (r *Repository) FetchZone(ctx context.Context, id string) (domain.Zone, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, level, risk_level, profile_json, updated_at FROM zones WHERE id = ?`,
		id,
	)

	zone, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Zone{}, datasources.ErrZoneNotFound
	}
	if err != nil {
		return domain.Zone{}, fmt.Errorf("fetching zone [%s]: %w", id, err)
	}
	return zone, nil
}

func (r *Repository) UpsertZone(ctx context.Context, zone domain.Zone) error {
	profileJSON, err := json.Marshal(zone.Profile)
	if err != nil {
		return fmt.Errorf("encoding zone profile: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE zones SET name = ?, level = ?, risk_level = ?, profile_json = ?, updated_at = ?
			WHERE id = ?`,
		zone.Name, string(zone.Level), zone.RiskLevel, string(profileJSON), zone.UpdatedAt, zone.ID,
	)
	if err != nil {
		return fmt.Errorf("updating zone [%s]: %w", zone.ID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking zone update result: %w", err)
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.db.ExecContext(ctx,
		`INSERT INTO zones (id, name, level, risk_level, profile_json, updated_at)
			VALUES (?, ?, ?, ?, ?, ?)`,
		zone.ID, zone.Name, string(zone.Level), zone.RiskLevel, string(profileJSON), zone.UpdatedAt,
	); err != nil {
		return fmt.Errorf("inserting zone [%s]: %w", zone.ID, err)
	}
	return nil
}

func (r *Repository) ListIncidents(ctx context.Context) ([]domain.Incident, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT zone_id, zone_level, category, year, count FROM incidents
			ORDER BY zone_id, category, year`,
	)
	if err != nil {
		return nil, fmt.Errorf("running incidents query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	incidents := []domain.Incident{}
	for rows.Next() {
		var incident domain.Incident
		var level string
		if err := rows.Scan(
			&incident.ZoneID, &level, &incident.Category, &incident.Year, &incident.Count,
		); err != nil {
			return nil, fmt.Errorf("scanning incident: %w", err)
		}
		incident.Level = domain.ZoneLevel(level)
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating incident rows: %w", err)
	}

	return incidents, nil
}

func (r *Repository) ReplaceIncidents(ctx context.Context, incidents []domain.Incident) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM incidents`); err != nil {
		return fmt.Errorf("clearing incidents: %w", err)
	}

	for _, incident := range incidents {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO incidents (zone_id, zone_level, category, year, count)
				VALUES (?, ?, ?, ?, ?)`,
			incident.ZoneID, string(incident.Level), incident.Category, incident.Year, incident.Count,
		); err != nil {
			return fmt.Errorf("inserting incident for zone [%s]: %w", incident.ZoneID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) UpsertZoneRiskLevels(
	ctx context.Context, assignments []domain.ZoneAssignment,
) error {
	if len(assignments) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	for _, assignment := range assignments {
		if _, err := tx.ExecContext(ctx,
			`UPDATE zones SET risk_level = ?, updated_at = ? WHERE id = ?`,
			assignment.RiskLevel, now, assignment.ZoneID,
		); err != nil {
			return fmt.Errorf("updating risk level for zone [%s]: %w", assignment.ZoneID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func scanZone(row rowScanner) (domain.Zone, error) {
	var zone domain.Zone
	var level string
	var profileJSON string

	if err := row.Scan(
		&zone.ID, &zone.Name, &level, &zone.RiskLevel, &profileJSON, &zone.UpdatedAt,
	); err != nil {
		return domain.Zone{}, err
	}
	zone.Level = domain.ZoneLevel(level)

	if err := json.Unmarshal([]byte(profileJSON), &zone.Profile); err != nil {
		return domain.Zone{}, fmt.Errorf("parsing zone profile: %w", err)
	}

	return zone, nil
}

func (r *Repository) CreateAPIToken(
	ctx context.Context,
	id, userID, tokenHash, tokenPrefix string,
	name *string,
	expiresAt *time.Time,
) error {
	var nameVal sql.NullString
	if name != nil {
		nameVal = sql.NullString{String: *name, Valid: true}
	}
	var expiresVal sql.NullTime
	if expiresAt != nil {
		expiresVal = sql.NullTime{Time: *expiresAt, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO api_tokens (id, user_id, token_hash, prefix, name, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, userID, tokenHash, tokenPrefix, nameVal, time.Now(), expiresVal,
	)
	if err != nil {
		return fmt.Errorf("inserting API token: %w", err)
	}
	return nil
}

func (r *Repository) GetAPITokenByHash(ctx context.Context, tokenHash string) (domain.APIToken, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, prefix, name, created_at, last_used_at, expires_at, revoked_at
		 FROM api_tokens WHERE token_hash = ?`,
		tokenHash,
	)

	token, err := scanAPIToken(row)
	if err != nil {
		return domain.APIToken{}, fmt.Errorf("fetching API token by hash: %w", err)
	}
	return token, nil
}

func (r *Repository) UpdateAPITokenLastUsed(ctx context.Context, tokenID string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE api_tokens SET last_used_at = ? WHERE id = ?`,
		time.Now(), tokenID,
	)
	if err != nil {
		return fmt.Errorf("updating API token last used: %w", err)
	}
	return nil
}

func (r *Repository) ListUserAPITokens(ctx context.Context, userID string) ([]domain.APIToken, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, token_hash, prefix, name, created_at, last_used_at, expires_at, revoked_at
		 FROM api_tokens WHERE user_id = ? ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("running API tokens query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	tokens := []domain.APIToken{}
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning API token: %w", err)
		}
		tokens = append(tokens, token)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating API token rows: %w", err)
	}

	return tokens, nil
}

func (r *Repository) CountUserActiveAPITokens(ctx context.Context, userID string) (int64, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM api_tokens
		 WHERE user_id = ? AND revoked_at IS NULL AND (expires_at IS NULL OR expires_at > ?)`,
		userID, time.Now(),
	)

	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting active API tokens: %w", err)
	}
	return count, nil
}

func (r *Repository) RevokeAPIToken(ctx context.Context, tokenID, userID string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE api_tokens SET revoked_at = ? WHERE id = ? AND user_id = ? AND revoked_at IS NULL`,
		time.Now(), tokenID, userID,
	)
	if err != nil {
		return fmt.Errorf("revoking API token: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking revoked rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("API token [%s] not found or already revoked", tokenID)
	}
	return nil
}

func scanAPIToken(row rowScanner) (domain.APIToken, error) {
	var token domain.APIToken
	var name sql.NullString
	var lastUsedAt, expiresAt, revokedAt sql.NullTime

	if err := row.Scan(
		&token.ID, &token.UserID, &token.TokenHash, &token.Prefix,
		&name, &token.CreatedAt, &lastUsedAt, &expiresAt, &revokedAt,
	); err != nil {
		return domain.APIToken{}, err
	}

	if name.Valid {
		token.Name = &name.String
	}
	if lastUsedAt.Valid {
		token.LastUsedAt = &lastUsedAt.Time
	}
	if expiresAt.Valid {
		token.ExpiresAt = &expiresAt.Time
	}
	if revokedAt.Valid {
		token.RevokedAt = &revokedAt.Time
	}

	return token, nil
}

func buildZonesConditions(sb *sqlbuilder.SelectBuilder, filters domain.ZoneFilters) []string {
	var conds []string

	if filters.Level != "" {
		conds = append(conds, sb.Equal("level", string(filters.Level)))
	}

	if filters.MinRiskLevel != nil {
		conds = append(conds, sb.GreaterEqualThan("risk_level", *filters.MinRiskLevel))
	}

	return conds
}

func buildZonesOrder(options domain.ZoneListOptions) ([]string, error) {
	if len(options.Ordering) == 0 {
		return []string{"name"}, nil
	}

	var orderings []string
	for _, ordering := range options.Ordering {
		var col string
		switch ordering.Field {
		case domain.ZoneOrderingFieldName:
			col = "name"
		case domain.ZoneOrderingFieldRiskLevel:
			col = "risk_level"
		case domain.ZoneOrderingFieldUpdatedAt:
			col = "updated_at"
		default:
			return nil, fmt.Errorf("unknown ordering field: %s", ordering.Field)
		}

		if ordering.Desc {
			col += " DESC"
		}
		orderings = append(orderings, col)
	}

	return orderings, nil
}
