package ports

import (
	"context"

	"packtrack/internal/core/domain/model/movement"
)

// MovementRepository defines the persistence contract for the movement
// ledger. There is one ledger per order; commands load it, mutate it through
// the domain services and store it back.
type MovementRepository interface {
	// Get retrieves the order's movement ledger, creating an empty one on
	// first access.
	Get(ctx context.Context, orderNo string) (*movement.Ledger, error)

	// Update persists the order's movement ledger.
	Update(ctx context.Context, orderNo string, ledger *movement.Ledger) error
}
