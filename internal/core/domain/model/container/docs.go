// Package container provides domain entities and business logic for the
// packaging units tracked by the system. It implements the Container
// aggregate with lifecycle management and state transitions.
//
// The package includes:
//   - Container: The aggregate that carries a unit's derived content,
//     parent/child relations and lifecycle state
//   - Status: A state machine that enforces valid container status transitions
//   - DeliveryReceipt: A value object capturing proof of delivery
//
// Key business rules:
//   - Container content is derived from product allocations and replaced on
//     every recompute; lifecycle state survives recomputation
//   - A sealed container reopens automatically when its content changes
//   - Loading requires a vehicle plate; delivery requires a receipt with
//     receiver and date
//   - Delivered is a final state
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package container
