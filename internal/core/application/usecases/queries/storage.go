// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
//
// Handlers read a committed snapshot of the session store directly instead
// of going through the repository ports: reads never mutate and need no
// transaction, only a consistent view.
package queries

import (
	"packtrack/internal/core/domain/model/container"
	"packtrack/internal/core/domain/model/movement"
	"packtrack/internal/core/domain/model/order"
	"packtrack/internal/core/domain/model/product"
)

// Store is the read-side view of the session store. Implementations return
// defensive copies of committed state; handlers never see uncommitted
// command mutations.
type Store interface {
	// Order returns one order by number, or errs.ObjectNotFoundError.
	Order(orderNo string) (*order.Order, error)

	// Orders returns every order in the session.
	Orders() []*order.Order

	// Products returns the order's products in display order.
	Products(orderNo string) []*product.Product

	// Containers returns the order's derived container list.
	Containers(orderNo string) []*container.Container

	// Ledger returns the order's movement ledger.
	Ledger(orderNo string) *movement.Ledger
}
