// Package services provides domain services for the settlement system that
// implement business rules spanning the boundary of a single aggregate.
//
// The package includes:
//   - AccessControl: A pure domain service that gates settlement actions to
//     the role (buyer or supplier) each action requires
//
// Domain services hold no state of their own, following Domain-Driven Design
// principles: they take aggregates as arguments and leave persistence and
// transaction concerns to the application layer.
package services
