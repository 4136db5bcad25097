package sqldb

import (
	"context"
	"database/sql"
	"fmt"
)

// schemaStatements hold the DDL for both supported drivers, so a fresh
// database file works out of the box.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS ratings (
		id VARCHAR(36) PRIMARY KEY,
		created_at TIMESTAMP NOT NULL,
		stars INTEGER NOT NULL,
		comment TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS retrain_logs (
		id VARCHAR(36) PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP,
		avg_rating DOUBLE NOT NULL,
		low_count INTEGER NOT NULL,
		params_json TEXT NOT NULL,
		success BOOLEAN,
		error_message TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS zones (
		id VARCHAR(36) PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		level VARCHAR(16) NOT NULL,
		risk_level INTEGER NOT NULL,
		profile_json TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS incidents (
		zone_id VARCHAR(36) NOT NULL,
		zone_level VARCHAR(16) NOT NULL,
		category VARCHAR(255) NOT NULL,
		year INTEGER NOT NULL,
		count DOUBLE NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS api_tokens (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(255) NOT NULL,
		token_hash VARCHAR(64) NOT NULL,
		prefix VARCHAR(16) NOT NULL,
		name VARCHAR(255),
		created_at TIMESTAMP NOT NULL,
		last_used_at TIMESTAMP,
		expires_at TIMESTAMP,
		revoked_at TIMESTAMP
	)`,
}

// Migrate creates any missing tables.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema statement: %w", err)
		}
	}
	return nil
}
