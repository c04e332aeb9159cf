// Package shipmentrepo provides data transfer objects and mapping functions for reading
// shipment snapshots from PostgreSQL.
package shipmentrepo

import (
	"errors"
	"fmt"

	"visibility/internal/core/domain/model/kernel"
	"visibility/internal/core/domain/model/order"
	"visibility/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ShipmentDTO represents the database structure of a shipment snapshot.
type ShipmentDTO struct {
	ID       string       `gorm:"type:varchar(64);primaryKey"`
	Segments []SegmentDTO `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
	Orders   []OrderDTO   `gorm:"foreignKey:ShipmentID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default "shipment_dtos".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// SegmentDTO represents one route stop. Position keeps the route order.
type SegmentDTO struct {
	ShipmentID string `gorm:"type:varchar(64);primaryKey"`
	Position   int    `gorm:"primaryKey;autoIncrement:false"`
	SegmentID  int    `gorm:"not null"`
	Type       string `gorm:"type:varchar(16);not null"`
	Location   string `gorm:"type:varchar(255);not null"`
	Distance   string `gorm:"type:varchar(64)"`
	Duration   string `gorm:"type:varchar(64)"`
}

// TableName overrides GORM's default "segment_dtos".
func (SegmentDTO) TableName() string {
	return "route_segments"
}

// OrderDTO represents one order record. Position keeps the snapshot order, which decides
// the record that speaks for a combined order. UnderlyingOrderIDs is indexed for lookups
// by any ID of a combined order.
type OrderDTO struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ShipmentID         string         `gorm:"type:varchar(64);not null;index"`
	Position           int            `gorm:"not null"`
	OrderID            string         `gorm:"type:varchar(255);not null"`
	UnderlyingOrderIDs pq.StringArray `gorm:"type:text[];index:,type:gin"`
	Type               string         `gorm:"type:char(1);not null"`
	Location           string         `gorm:"type:varchar(255);not null"`
	Status             string         `gorm:"type:varchar(64);not null"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "shipment_orders"
}

// Migrate creates or updates the snapshot tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ShipmentDTO{}, &SegmentDTO{}, &OrderDTO{})
}

// FromDomain converts a shipment into its database representation. The service never
// writes snapshots itself; this mapping is what seeds a database from a snapshot document.
func FromDomain(s *shipment.Shipment) ShipmentDTO {
	segments := s.Route().Segments()
	dto := ShipmentDTO{
		ID:       s.ID(),
		Segments: make([]SegmentDTO, 0, len(segments)),
		Orders:   make([]OrderDTO, 0, len(s.Orders())),
	}

	for i, seg := range segments {
		dto.Segments = append(dto.Segments, SegmentDTO{
			ShipmentID: s.ID(),
			Position:   i,
			SegmentID:  seg.ID(),
			Type:       seg.Type().String(),
			Location:   seg.Location().String(),
			Distance:   seg.Distance(),
			Duration:   seg.Duration(),
		})
	}

	for i, o := range s.Orders() {
		dto.Orders = append(dto.Orders, OrderDTO{
			ID:                 o.RecordID().Bytes(),
			ShipmentID:         s.ID(),
			Position:           i,
			OrderID:            o.OrderID(),
			UnderlyingOrderIDs: pq.StringArray(o.UnderlyingOrderIDs()),
			Type:               o.Type().String(),
			Location:           o.Location().String(),
			Status:             o.Status().Raw(),
		})
	}

	return dto
}

// toDomain converts a DTO with preloaded, position-ordered associations into the aggregate.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	segments := make([]shipment.Segment, 0, len(dto.Segments))
	for _, segDTO := range dto.Segments {
		seg, err := segmentToDomain(segDTO)
		if err != nil {
			return nil, fmt.Errorf("shipment %s, segment %d: %w", dto.ID, segDTO.Position, err)
		}
		segments = append(segments, seg)
	}

	route, err := shipment.NewRoute(segments)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dto.Orders))
	for _, orderDTO := range dto.Orders {
		o, orderErr := orderToDomain(orderDTO)
		if orderErr != nil {
			return nil, fmt.Errorf("shipment %s, order record %s: %w", dto.ID, orderDTO.ID, orderErr)
		}
		orders = append(orders, o)
	}

	return shipment.NewShipment(dto.ID, route, orders)
}

func segmentToDomain(dto SegmentDTO) (shipment.Segment, error) {
	segmentType, typeErr := shipment.ParseSegmentType(dto.Type)
	location, locErr := kernel.NewLocationCode(dto.Location)
	if err := errors.Join(typeErr, locErr); err != nil {
		return shipment.Segment{}, err
	}
	return shipment.NewSegment(dto.SegmentID, segmentType, location, dto.Distance, dto.Duration)
}

func orderToDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderType, typeErr := order.ParseType(dto.Type)
	location, locErr := kernel.NewLocationCode(dto.Location)
	if err = errors.Join(typeErr, locErr); err != nil {
		return nil, err
	}

	return order.NewOrder(id, dto.OrderID, orderType, location, order.NewStatus(dto.Status))
}
