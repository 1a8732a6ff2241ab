// Package services provides domain services that work across many Order
// aggregates of the canteen queue. They hold no state of their own and never
// touch storage directly: callers hand them the orders (or a narrow lookup
// interface) they need.
//
// The package includes:
//   - PickupCodeGenerator: draws short public codes and checks them for collisions
//   - QueueAnalyzer: derives queue statistics and a user's queue position from
//     the set of active orders
package services
