// Package kernel provides core domain primitives for the fuel settlement system.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for account and event identifiers with validation
//     and comparison capabilities
//   - Money: A value object for amounts denominated in the settlement
//     currency's smallest unit
//
// These primitives enforce domain invariants and validation rules, ensuring
// that domain objects are always in a valid state. They are immutable and
// thread-safe, making them suitable for concurrent use.
package kernel
