package ports

import (
	"context"

	"packtrack/internal/core/domain/model/container"
)

// ContainerRepository defines the persistence contract for the derived
// container list. The list is replaced wholesale after every recompute;
// Remove exists only for container cancellation.
type ContainerRepository interface {
	// Get retrieves a container by its code.
	Get(ctx context.Context, code string) (*container.Container, error)

	// Update persists changes to an existing container.
	Update(ctx context.Context, aggregate *container.Container) error

	// GetAllByOrder retrieves every container of an order, in derivation order.
	GetAllByOrder(ctx context.Context, orderNo string) ([]*container.Container, error)

	// ReplaceAll swaps the order's container list for the freshly derived one.
	ReplaceAll(ctx context.Context, orderNo string, containers []*container.Container) error

	// Remove deletes a container from the order's list.
	Remove(ctx context.Context, orderNo string, code string) error
}
