package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"visibility/internal/core/domain/services"
	"visibility/internal/pkg/errs"

	"github.com/caarlos0/env/v11"
)

// Shipment sources selectable with SHIPMENT_SOURCE.
const (
	SourceDocument = "document"
	SourcePostgres = "postgres"
)

// Config is the process configuration, read from the environment.
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	ShipmentSource         string        `env:"SHIPMENT_SOURCE"          envDefault:"document"`
	ShipmentDocumentPath   string        `env:"SHIPMENT_DOCUMENT_PATH"   envDefault:"data/shipments.json"`
	SnapshotReloadSchedule string        `env:"SNAPSHOT_RELOAD_SCHEDULE" envDefault:"@every 30s"`
	SnapshotReloadTimeout  time.Duration `env:"SNAPSHOT_RELOAD_TIMEOUT"  envDefault:"5s"`

	DBHost     string `env:"DB_HOST"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME"`
	DBSslMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	DBMigrate  bool   `env:"DB_MIGRATE" envDefault:"false"`

	// DBSeedDocument, when set, replaces the stored snapshot with this document at startup.
	DBSeedDocument string `env:"DB_SEED_DOCUMENT"`

	UnrecognizedStatusPolicy string `env:"UNRECOGNIZED_STATUS_POLICY" envDefault:"in_progress"`
	SegmentPairing           string `env:"SEGMENT_PAIRING"            envDefault:"id"`
}

// LoadConfig parses the environment into a Config and validates it.
func LoadConfig() (Config, error) {
	var config Config
	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate reports every invalid or missing setting at once.
func (c Config) Validate() error {
	var problems []error

	if strings.TrimSpace(c.HTTPPort) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("HTTP_PORT"))
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}

	switch c.ShipmentSource {
	case SourceDocument:
		if strings.TrimSpace(c.ShipmentDocumentPath) == "" {
			problems = append(problems, errs.NewValueIsRequiredError("SHIPMENT_DOCUMENT_PATH"))
		}
	case SourcePostgres:
		for name, value := range map[string]string{
			"DB_HOST": c.DBHost,
			"DB_PORT": c.DBPort,
			"DB_USER": c.DBUser,
			"DB_NAME": c.DBName,
		} {
			if strings.TrimSpace(value) == "" {
				problems = append(problems, errs.NewValueIsRequiredError(name))
			}
		}
	default:
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"SHIPMENT_SOURCE",
			fmt.Errorf("%q is not %s or %s", c.ShipmentSource, SourceDocument, SourcePostgres),
		))
	}

	if _, err := c.EngineOptions(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// SlogLevel parses LOG_LEVEL ("debug", "info", "warn" or "error").
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", err)
	}
	return level, nil
}

// EngineOptions converts the engine settings into options for services.NewRouteStatusEngine.
func (c Config) EngineOptions() ([]services.EngineOption, error) {
	policy, policyErr := services.ParseUnrecognizedStatusPolicy(c.UnrecognizedStatusPolicy)
	pairing, pairingErr := services.ParseSegmentPairing(c.SegmentPairing)
	if err := errors.Join(policyErr, pairingErr); err != nil {
		return nil, err
	}

	return []services.EngineOption{
		services.WithUnrecognizedStatusPolicy(policy),
		services.WithSegmentPairing(pairing),
	}, nil
}

// DSN returns the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
