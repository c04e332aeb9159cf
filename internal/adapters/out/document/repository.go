// Package document serves shipments from a static JSON snapshot document.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"visibility/internal/core/domain/model/shipment"
	"visibility/internal/core/ports"
	"visibility/internal/pkg/errs"
)

var (
	_ ports.ShipmentRepository = (*Repository)(nil)
	_ ports.SnapshotReloader   = (*Repository)(nil)
)

// Repository holds the current snapshot in memory. Readers always see one whole snapshot;
// Reload swaps in a new one only when the document decodes and validates completely.
type Repository struct {
	path   string
	logger *slog.Logger

	mu        sync.RWMutex
	shipments []*shipment.Shipment
	byID      map[string]*shipment.Shipment
}

// NewRepository creates a repository reading path and loads it once.
func NewRepository(ctx context.Context, path string, logger *slog.Logger) (*Repository, error) {
	r := &Repository{
		path:   path,
		logger: logger.With("component", "document_repository", "path", path),
		byID:   map[string]*shipment.Shipment{},
	}
	if _, err := r.Reload(ctx); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload reads the document again and swaps in its shipments.
// On any error the previous snapshot stays in place.
func (r *Repository) Reload(ctx context.Context) (int, error) {
	shipments, byID, err := readFile(ctx, r.path)
	if err != nil {
		r.logger.ErrorContext(ctx, "Snapshot document rejected", "error", err)
		return 0, err
	}

	r.mu.Lock()
	r.shipments = shipments
	r.byID = byID
	r.mu.Unlock()

	r.logger.InfoContext(ctx, "Snapshot loaded", "shipments", len(shipments))
	return len(shipments), nil
}

// Get returns the shipment with the given ID.
func (r *Repository) Get(_ context.Context, id string) (*shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("shipment ID", id)
	}
	return s, nil
}

// List returns every shipment ordered by ID.
func (r *Repository) List(_ context.Context) ([]*shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.shipments), nil
}

// FindByOrderID returns the shipments carrying orderID, ordered by ID.
func (r *Repository) FindByOrderID(_ context.Context, orderID string) ([]*shipment.Shipment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make([]*shipment.Shipment, 0)
	for _, s := range r.shipments {
		if s.CarriesOrder(orderID) {
			found = append(found, s)
		}
	}
	return found, nil
}

// ReadFile decodes the document at path into shipments ordered by ID, without keeping them.
// Used to seed other sources from a document.
func ReadFile(ctx context.Context, path string) ([]*shipment.Shipment, error) {
	shipments, _, err := readFile(ctx, path)
	return shipments, err
}

func readFile(ctx context.Context, path string) ([]*shipment.Shipment, map[string]*shipment.Shipment, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read snapshot document: %w", err)
	}

	return build(data)
}

func build(data []byte) ([]*shipment.Shipment, map[string]*shipment.Shipment, error) {
	dtos, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	shipments := make([]*shipment.Shipment, 0, len(dtos))
	byID := make(map[string]*shipment.Shipment, len(dtos))
	for i, dto := range dtos {
		s, err := dto.ToDomain()
		if err != nil {
			return nil, nil, fmt.Errorf("shipment at position %d: %w", i, err)
		}
		if _, dup := byID[s.ID()]; dup {
			return nil, nil, errs.NewValueIsInvalidErrorWithCause(
				"shipment ID",
				fmt.Errorf("%s appears more than once", s.ID()),
			)
		}
		byID[s.ID()] = s
		shipments = append(shipments, s)
	}

	slices.SortFunc(shipments, func(a, b *shipment.Shipment) int {
		return strings.Compare(a.ID(), b.ID())
	})
	return shipments, byID, nil
}
