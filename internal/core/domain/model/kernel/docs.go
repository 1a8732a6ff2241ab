// Package kernel provides the shared value objects of the canteen domain.
//
// The package includes:
//   - UUID: identifier for aggregates, wrapping github.com/google/uuid
//   - Money: a non-negative amount held in integer cents
//
// Both are immutable and safe for concurrent use. Their zero values are
// either invalid (UUID) or meaningful (Money zero), and constructors
// validate every input.
package kernel
