// Package order provides domain entities and business logic for fuel order
// management in the settlement system. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, parties, pricing,
//     and lifecycle
//   - Status: A state machine that enforces valid settlement status transitions
//
// Key business rules:
//   - Orders carry a buyer, a distinct supplier, a positive quantity in litres,
//     and a positive per-litre price; all are immutable after creation
//   - The total amount is always derived as quantity times price
//   - Status follows the settlement workflow: Created -> Delivered -> Settled,
//     with Created -> Cancelled (buyer) and Created -> Declined (supplier)
//   - Settled, Cancelled and Declined are terminal; no order re-enters Created
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
