package queries

import (
	"errors"

	"visibility/internal/pkg/guard"
)

var (
	ErrListShipmentsQueryIsNotConstructed = errors.New(
		"ListShipmentsQuery must be created via NewListShipmentsQuery constructor",
	)
)

// ListShipmentsQuery retrieves a summary of every shipment in the snapshot.
//
// Example:
//
//	query := NewListShipmentsQuery()
//	handler := NewListShipmentsQueryHandler(repo, engine)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list shipments: %w", err)
//	}
//
//	for _, s := range shipments {
//	    fmt.Printf("%s: %s (leg %d)\n", s.ID, s.Overall, s.ActiveLeg)
//	}
type ListShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewListShipmentsQuery creates a parameterless query listing every shipment.
func NewListShipmentsQuery() ListShipmentsQuery {
	return ListShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListShipmentsQueryIsNotConstructed if validation fails.
func (q ListShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrListShipmentsQueryIsNotConstructed)
}
