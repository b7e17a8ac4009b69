package ports

import (
	"context"

	"packtrack/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates
// and the allocations they carry.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate.
	// The product must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its product code.
	Get(ctx context.Context, code string) (*product.Product, error)

	// GetAllByOrder retrieves every product of an order, in display order.
	GetAllByOrder(ctx context.Context, orderNo string) ([]*product.Product, error)
}
