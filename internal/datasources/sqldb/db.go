package sqldb

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/go-sql-driver/mysql"
)

// Supported database drivers. DuckDB keeps everything in a single local
// database file; MySQL is for hosted deployments.
const (
	DriverDuckDB = "duckdb"
	DriverMySQL  = "mysql"
)

const mysqlParamStr string = "?parseTime=true"

// Connect opens the database and verifies the connection. For DuckDB the DSN
// is the path of the database file (empty for in-memory).
func Connect(ctx context.Context, driver, dsn string) (*sql.DB, error) {
	switch driver {
	case DriverMySQL:
		dsn += mysqlParamStr
	case DriverDuckDB:
	default:
		return nil, fmt.Errorf("unknown database driver [%s]", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("connecting to %s DB: %w", driver, err)
	}

	if driver == DriverDuckDB {
		// The database file has a single writer.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
	}

	err = db.PingContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking %s DB connection: %w", driver, err)
	}

	return db, nil
}
