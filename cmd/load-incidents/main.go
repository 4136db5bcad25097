package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/safezone-pe/safezone-backend/internal/app"
	"github.com/safezone-pe/safezone-backend/internal/command"
	"github.com/safezone-pe/safezone-backend/internal/datasources/sqldb"
	"github.com/safezone-pe/safezone-backend/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

// One-shot loader for the national police incident dataset. Parses the CSV
// snapshot, aggregates it per district and per department, and replaces the
// stored incidents and zone profiles.
func main() {
	ctx := context.Background()

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintf(os.Stderr, "invalid LOG_LEVEL: %s\n", lvl)
			os.Exit(1)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "incident load failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	db, err := sqldb.Connect(
		ctx,
		app.MustGetEnvAsString(ctx, "DATABASE_DRIVER"),
		app.MustGetEnvAsString(ctx, "DATABASE_DSN"),
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := sqldb.Migrate(ctx, db); err != nil {
		return fmt.Errorf("migrating database schema: %w", err)
	}

	path := app.MustGetEnvAsString(ctx, "DATASET_PATH")
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening dataset [%s]: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	req, err := parseDataset(file)
	if err != nil {
		return fmt.Errorf("parsing dataset [%s]: %w", path, err)
	}

	repo := sqldb.New(db)
	loadCmd := command.NewLoadIncidents(repo, repo)

	resp, err := loadCmd.Execute(ctx, req)
	if err != nil {
		return fmt.Errorf("loading incidents: %w", err)
	}

	logger.InfoContext(ctx, "incident dataset loaded",
		"zones", resp.ZonesUpserted, "incidents", resp.IncidentsStored)
	return nil
}

// datasetColumns are the CSV headers the loader consumes. Extra columns in
// the snapshot are ignored.
var datasetColumns = []string{
	"UBIGEO_HECHO", "DPTO_HECHO_NEW", "DIST_HECHO", "P_MODALIDADES", "ANIO", "cantidad",
}

type incidentKey struct {
	zoneID   string
	level    domain.ZoneLevel
	category string
	year     int
}

func parseDataset(r io.Reader) (command.LoadIncidentsRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return command.LoadIncidentsRequest{}, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, name := range datasetColumns {
		if _, ok := columns[name]; !ok {
			return command.LoadIncidentsRequest{}, fmt.Errorf("dataset is missing column [%s]", name)
		}
	}

	counts := map[incidentKey]float64{}
	zones := map[string]domain.Zone{}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return command.LoadIncidentsRequest{}, fmt.Errorf("reading line %d: %w", line, err)
		}

		districtID := strings.TrimSpace(record[columns["UBIGEO_HECHO"]])
		districtName := strings.TrimSpace(record[columns["DIST_HECHO"]])
		department := unifyDepartment(record[columns["DPTO_HECHO_NEW"]])
		category := strings.TrimSpace(record[columns["P_MODALIDADES"]])

		year, err := strconv.Atoi(strings.TrimSpace(record[columns["ANIO"]]))
		if err != nil {
			return command.LoadIncidentsRequest{}, fmt.Errorf("parsing year on line %d: %w", line, err)
		}
		count, err := strconv.ParseFloat(strings.TrimSpace(record[columns["cantidad"]]), 64)
		if err != nil {
			return command.LoadIncidentsRequest{}, fmt.Errorf("parsing count on line %d: %w", line, err)
		}

		counts[incidentKey{districtID, domain.ZoneLevelDistrict, category, year}] += count
		counts[incidentKey{department, domain.ZoneLevelDepartment, category, year}] += count

		zones[districtID] = domain.Zone{
			ID: districtID, Name: districtName, Level: domain.ZoneLevelDistrict,
		}
		zones[department] = domain.Zone{
			ID: department, Name: department, Level: domain.ZoneLevelDepartment,
		}
	}

	var req command.LoadIncidentsRequest
	for key, count := range counts {
		req.Incidents = append(req.Incidents, domain.Incident{
			ZoneID:   key.zoneID,
			Level:    key.level,
			Category: key.category,
			Year:     key.year,
			Count:    count,
		})
	}
	sort.Slice(req.Incidents, func(i, j int) bool {
		a, b := req.Incidents[i], req.Incidents[j]
		if a.ZoneID != b.ZoneID {
			return a.ZoneID < b.ZoneID
		}
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		return a.Year < b.Year
	})

	for _, zone := range zones {
		req.Zones = append(req.Zones, zone)
	}
	sort.Slice(req.Zones, func(i, j int) bool { return req.Zones[i].ID < req.Zones[j].ID })

	return req, nil
}

// unifyDepartment collapses the dataset's split department names. Lima
// province and Lima region report separately, as do Callao's rows.
func unifyDepartment(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if strings.Contains(name, "LIMA") {
		return "LIMA"
	}
	if strings.Contains(name, "CALLAO") {
		return "CALLAO"
	}
	return name
}
