// Package postgres opens the PostgreSQL connection that backs the read-only shipment
// snapshot source.
//
// Usage:
//
//	db, err := postgres.Open(ctx, cfg.DSN(), logger)
//	if err != nil {
//	    return err
//	}
//	if err = shipmentrepo.Migrate(db); err != nil {
//	    return err
//	}
//	repo := shipmentrepo.NewGormShipmentRepository(db)
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Open connects to PostgreSQL and verifies the connection within ctx.
// GORM statements are logged through logger at warn level and above.
func Open(ctx context.Context, dsn string, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.New(slog.NewLogLogger(logger.With("component", "gorm").Handler(), slog.LevelWarn), gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}

// Close releases the connection pool of db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
