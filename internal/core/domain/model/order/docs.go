// Package order provides the Order aggregate of the canteen kitchen workflow.
//
// The package includes:
//   - Order: the aggregate root owning its items, pickup code and queue number
//   - Item: an immutable order line with a derived subtotal
//   - Status: the lifecycle enum and the transition table that governs it
//
// Key business rules:
//   - An order has at least one item; every item has a positive quantity
//   - TotalPrice is the sum of item subtotals, TotalEstimatedTime the
//     longest item preparation time
//   - Status follows PENDING -> CONFIRMED -> PREPARING -> READY -> COMPLETED,
//     with CANCELLED reachable from every non-terminal status except READY
//   - Items and notes may only be replaced while the order is PENDING
//   - Only PENDING or CANCELLED orders may be deleted
package order
