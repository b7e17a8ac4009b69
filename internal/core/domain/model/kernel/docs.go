// Package kernel provides core domain primitives and utilities for the packaging engine.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Quantity: A value object pairing a numeric quantity with its original display text
//   - ParseQuantityText: The total parser for heterogeneous quantity representations
//   - ContainerType: The container taxonomy (pallet, crate, box, bag) with code prefixes
//   - Container code helpers: formatting and type inference for generated codes
//   - UUID: A value object identifying label render requests
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
