package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "visibility/internal/adapters/in/http"
	"visibility/internal/adapters/out/document"
	"visibility/internal/adapters/out/postgres"
	"visibility/internal/adapters/out/postgres/shipmentrepo"
	"visibility/internal/core/application/usecases/queries"
	"visibility/internal/core/domain/services"
	"visibility/internal/core/ports"
	"visibility/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// CompositionRoot wires the configured shipment source, the engine and the use cases.
type CompositionRoot struct {
	config Config
	logger *slog.Logger
	engine services.RouteStatusEngine

	repo     ports.ShipmentRepository
	reloader ports.SnapshotReloader
	gormDB   *gorm.DB
}

// NewCompositionRoot opens the shipment source selected by config.
// The document source loads its snapshot immediately; a broken document fails startup.
func NewCompositionRoot(ctx context.Context, config Config, logger *slog.Logger) (*CompositionRoot, error) {
	options, err := config.EngineOptions()
	if err != nil {
		return nil, err
	}

	c := &CompositionRoot{
		config: config,
		logger: logger,
		engine: services.NewRouteStatusEngine(options...),
	}

	switch config.ShipmentSource {
	case SourcePostgres:
		db, err := postgres.Open(ctx, config.DSN(), logger)
		if err != nil {
			return nil, err
		}
		if config.DBMigrate {
			if err := shipmentrepo.Migrate(db); err != nil {
				_ = postgres.Close(db)
				return nil, err
			}
		}
		c.gormDB = db
		repo := shipmentrepo.NewGormShipmentRepository(db)
		if config.DBSeedDocument != "" {
			if err := seed(ctx, repo, config.DBSeedDocument, logger); err != nil {
				_ = postgres.Close(db)
				return nil, err
			}
		}
		c.repo = repo
	default:
		repo, err := document.NewRepository(ctx, config.ShipmentDocumentPath, logger)
		if err != nil {
			return nil, fmt.Errorf("load shipment document: %w", err)
		}
		c.repo = repo
		c.reloader = repo
	}

	logger.InfoContext(ctx, "Shipment source ready",
		"source", config.ShipmentSource,
		"unrecognized_status_policy", c.engine.UnrecognizedStatusPolicy().String(),
		"segment_pairing", c.engine.SegmentPairing().String(),
	)
	return c, nil
}

func seed(ctx context.Context, repo *shipmentrepo.GormShipmentRepository, path string, logger *slog.Logger) error {
	shipments, err := document.ReadFile(ctx, path)
	if err != nil {
		return fmt.Errorf("read seed document: %w", err)
	}
	if err := repo.ReplaceAll(ctx, shipments); err != nil {
		return err
	}
	logger.InfoContext(ctx, "Database seeded from document", "path", path, "shipments", len(shipments))
	return nil
}

func (c *CompositionRoot) CreateListShipmentsQueryHandler() queries.ListShipmentsQueryHandler {
	return queries.NewListShipmentsQueryHandler(c.repo, c.engine)
}

func (c *CompositionRoot) CreateGetShipmentVisibilityQueryHandler() queries.GetShipmentVisibilityQueryHandler {
	return queries.NewGetShipmentVisibilityQueryHandler(c.repo, c.engine)
}

func (c *CompositionRoot) CreateGetSegmentStatusQueryHandler() queries.GetSegmentStatusQueryHandler {
	return queries.NewGetSegmentStatusQueryHandler(c.repo, c.engine)
}

func (c *CompositionRoot) CreateSimulateOrderStatusQueryHandler() queries.SimulateOrderStatusQueryHandler {
	return queries.NewSimulateOrderStatusQueryHandler(c.repo, c.engine)
}

func (c *CompositionRoot) CreateFindShipmentsByOrderQueryHandler() queries.FindShipmentsByOrderQueryHandler {
	return queries.NewFindShipmentsByOrderQueryHandler(c.repo, c.engine)
}

// CreateRouter builds the HTTP router over every query handler.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	spec, err := httpadapter.LoadSpec(ctx)
	if err != nil {
		return nil, err
	}

	server := httpadapter.NewServer(
		spec,
		c.logger,
		c.CreateListShipmentsQueryHandler(),
		c.CreateGetShipmentVisibilityQueryHandler(),
		c.CreateGetSegmentStatusQueryHandler(),
		c.CreateSimulateOrderStatusQueryHandler(),
		c.CreateFindShipmentsByOrderQueryHandler(),
	)
	return httpadapter.NewRouter(server, spec, c.logger), nil
}

// CreateJobManager returns the scheduled jobs. Only the document source needs reloading.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.reloader,
		c.config.SnapshotReloadSchedule,
		c.config.SnapshotReloadTimeout,
		c.logger,
	)
}

// Close releases the database connection, if any.
func (c *CompositionRoot) Close() error {
	if c.gormDB == nil {
		return nil
	}
	return postgres.Close(c.gormDB)
}
