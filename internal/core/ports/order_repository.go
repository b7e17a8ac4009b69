package ports

import (
	"context"

	"packtrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its order number.
	Get(ctx context.Context, orderNo string) (*order.Order, error)

	// GetAll retrieves every order in the session.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
