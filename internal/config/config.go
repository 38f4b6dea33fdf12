package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/finpersona/seedgen/internal/domain"
)

// Sink selection values.
const (
	SinkFile     = "file"
	SinkPostgres = "postgres"
)

// Config holds application configuration
type Config struct {
	Persona   string // empty means every registered persona
	Range     domain.DateRange
	Seed      int64
	HasSeed   bool
	Sink      string
	OutputDir string
	DBConn    string
	LogLevel  string
}

// NewConfig loads configuration from environment variables
func NewConfig() (*Config, error) {
	cfg := &Config{
		Persona:   getEnv("PERSONA", ""),
		Sink:      getEnv("SINK", SinkFile),
		OutputDir: getEnv("OUTPUT_DIR", "."),
		DBConn:    getEnv("DB_CONN", "host=localhost port=5432 user=postgres password=postgres dbname=finpersona sslmode=disable"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	start, err := parseDate(getEnv("START_DATE", "2025-01-01"))
	if err != nil {
		return nil, fmt.Errorf("START_DATE: %w", err)
	}
	end, err := parseDate(getEnv("END_DATE", "2025-12-31"))
	if err != nil {
		return nil, fmt.Errorf("END_DATE: %w", err)
	}
	cfg.Range, err = domain.NewDateRange(start, end)
	if err != nil {
		return nil, err
	}

	if raw := getEnv("SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("SEED must be an integer: %w", err)
		}
		cfg.Seed = seed
		cfg.HasSeed = true
	}

	if cfg.Sink != SinkFile && cfg.Sink != SinkPostgres {
		return nil, fmt.Errorf("SINK must be %q or %q, got %q", SinkFile, SinkPostgres, cfg.Sink)
	}
	if cfg.Sink == SinkPostgres && cfg.DBConn == "" {
		return nil, fmt.Errorf("DB_CONN is required for the postgres sink")
	}

	return cfg, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("expected YYYY-MM-DD, got %q", value)
	}
	return t, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
