package order

import (
	"fmt"
	"strings"

	"canteen/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	PENDING ──> CONFIRMED ──> PREPARING ──> READY ──> COMPLETED
//	   │            │             │
//	   └────────────┴─────────────┴──────> CANCELLED
//
// COMPLETED and CANCELLED are terminal. Legality of a change is decided only
// by CanTransition, which reads the transitions table below.
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota
	Pending
	Confirmed
	Preparing
	Ready
	Completed
	Cancelled
)

// transitions is total over the valid statuses: terminal statuses map to an
// empty set.
var transitions = map[Status][]Status{
	Pending:   {Confirmed, Cancelled},
	Confirmed: {Preparing, Cancelled},
	Preparing: {Ready, Cancelled},
	Ready:     {Completed},
	Completed: {},
	Cancelled: {},
}

var statusNames = map[Status]string{
	Pending:   "PENDING",
	Confirmed: "CONFIRMED",
	Preparing: "PREPARING",
	Ready:     "READY",
	Completed: "COMPLETED",
	Cancelled: "CANCELLED",
}

var statusDisplayNames = map[Status]string{
	Pending:   "Pending",
	Confirmed: "Confirmed",
	Preparing: "Preparing",
	Ready:     "Ready for pickup",
	Completed: "Completed",
	Cancelled: "Cancelled",
}

// CanTransition reports whether an order may move from one status to another.
// Self-transitions and transitions out of unknown statuses are never legal.
func CanTransition(from, to Status) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// NextPossible returns the statuses reachable from the given one in a single
// step. The returned slice is a copy.
func NextPossible(from Status) []Status {
	allowed := transitions[from]
	result := make([]Status, len(allowed))
	copy(result, allowed)
	return result
}

// AllStatuses returns every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, Preparing, Ready, Completed, Cancelled}
}

// ActiveStatuses returns the non-terminal statuses in lifecycle order.
func ActiveStatuses() []Status {
	active := make([]Status, 0, len(transitions))
	for _, s := range AllStatuses() {
		if s.IsActive() {
			active = append(active, s)
		}
	}
	return active
}

// ParseStatus accepts a symbolic name such as "PREPARING", case-insensitively.
func ParseStatus(name string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(name))
	for s, n := range statusNames {
		if n == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", name))
}

// Validate checks that s is one of the defined statuses.
func (s Status) Validate() error {
	if _, ok := transitions[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible from s.
func (s Status) IsTerminal() bool {
	allowed, ok := transitions[s]
	return ok && len(allowed) == 0
}

// IsActive reports whether an order in status s still occupies the queue.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}

// String returns the symbolic name used for persistence, e.g. "READY".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// DisplayName returns the customer-facing label, e.g. "Ready for pickup".
func (s Status) DisplayName() string {
	if name, ok := statusDisplayNames[s]; ok {
		return name
	}
	return "Unknown"
}
