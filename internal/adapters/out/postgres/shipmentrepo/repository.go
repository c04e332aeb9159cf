package shipmentrepo

import (
	"context"
	"errors"
	"fmt"

	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/core/ports"
	"visibility/internal/pkg/errs"

	"gorm.io/gorm"
)

var _ ports.ShipmentRepository = (*GormShipmentRepository)(nil)

// GormShipmentRepository implements ShipmentRepository on PostgreSQL using GORM.
// Every call reads the current rows, so the snapshot is whatever the tables hold.
type GormShipmentRepository struct {
	db *gorm.DB
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB) *GormShipmentRepository {
	return &GormShipmentRepository{db: db}
}

// Get retrieves a shipment by ID with its route and orders.
func (r *GormShipmentRepository) Get(ctx context.Context, id string) (*shipment.Shipment, error) {
	var dto ShipmentDTO
	if err := r.withAssociations(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment ID", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// List retrieves every shipment ordered by ID.
func (r *GormShipmentRepository) List(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	if err := r.withAssociations(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// FindByOrderID retrieves the shipments with a record whose order ID, or one of whose
// underlying order IDs, equals orderID.
//
// Example:
//
//	// a record "SO-1,SO-2" is found by "SO-1,SO-2", "SO-1" and "SO-2"
//	shipments, err := repo.FindByOrderID(ctx, "SO-2")
func (r *GormShipmentRepository) FindByOrderID(ctx context.Context, orderID string) ([]*shipment.Shipment, error) {
	carrying := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Select("shipment_id").
		Where("order_id = ? OR ? = ANY(underlying_order_ids)", orderID, orderID)

	var dtos []ShipmentDTO
	if err := r.withAssociations(ctx).
		Where("id IN (?)", carrying).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// ReplaceAll swaps the stored snapshot for shipments in one transaction, so readers see
// either the previous snapshot or the new one.
func (r *GormShipmentRepository) ReplaceAll(ctx context.Context, shipments []*shipment.Shipment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&OrderDTO{}, &SegmentDTO{}, &ShipmentDTO{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clear snapshot: %w", err)
			}
		}
		if len(shipments) == 0 {
			return nil
		}

		dtos := make([]ShipmentDTO, 0, len(shipments))
		for _, s := range shipments {
			dtos = append(dtos, FromDomain(s))
		}
		if err := tx.Create(&dtos).Error; err != nil {
			return fmt.Errorf("store snapshot: %w", err)
		}
		return nil
	})
}

func (r *GormShipmentRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Segments", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Preload("Orders", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}

func toDomainList(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}
	return shipments, nil
}
