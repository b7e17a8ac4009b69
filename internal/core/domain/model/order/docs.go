// Package order provides domain entities for the manufacturing orders whose
// products are packed and shipped by the system.
//
// The package includes:
//   - Order: The aggregate that carries order identity, metadata, stations
//     and the panel's workflow stage pointer
//   - Stage: The four-step workflow pointer (Packaging, Shipment, Loading,
//     FieldDelivery)
//   - Station: A value object identifying a production station and its packer
//
// Key business rules:
//   - The stage pointer is freely navigable; completion gating lives with the
//     actions of each stage, not with navigation
//   - Stations are unique by name within an order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
