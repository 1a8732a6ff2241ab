package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the kitchen workflow. It owns its items and
// keeps the derived totals consistent with them after every mutation.
//
// Order follows these invariants:
//   - At least one item, each with a positive quantity
//   - totalPrice equals the sum of item subtotals
//   - totalEstimatedTime equals the longest item preparation time
//   - Status changes follow the transition table (see CanTransition)
//   - Pickup code and queue number are fixed at creation
type Order struct {
	id          kernel.UUID
	userID      string
	pickupCode  string
	status      Status
	queueNumber int
	notes       string
	items       []Item

	totalPrice         kernel.Money
	totalEstimatedTime int

	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// Snapshot is the flat, exported state of an Order used by persistence and
// presentation adapters.
type Snapshot struct {
	ID                 kernel.UUID
	UserID             string
	PickupCode         string
	Status             Status
	QueueNumber        int
	Notes              string
	Items              []Item
	TotalPrice         kernel.Money
	TotalEstimatedTime int
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewOrder creates a PENDING order. The pickup code and queue number must
// already be reserved by the caller; totals are derived from items.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), "device-42", "482913", 7, "", items, time.Now())
//	if err != nil {
//	    // validation error
//	}
func NewOrder(
	id kernel.UUID,
	userID, pickupCode string,
	queueNumber int,
	notes string,
	items []Item,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		notes:         notes,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setPickupCode(pickupCode),
		o.setQueueNumber(queueNumber),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Totals are recomputed
// from the items rather than trusted from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		notes:         s.Notes,
		createdAt:     s.CreatedAt,
		updatedAt:     s.UpdatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setUserID(s.UserID),
		o.setPickupCode(s.PickupCode),
		o.setQueueNumber(s.QueueNumber),
		o.setStatus(s.Status),
		o.setItems(s.Items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was built by NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() string {
	return o.userID
}

func (o *Order) PickupCode() string {
	return o.pickupCode
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) QueueNumber() int {
	return o.queueNumber
}

func (o *Order) Notes() string {
	return o.notes
}

// Items returns a copy of the order lines in their original order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// TotalEstimatedTime is the preparation time of the slowest item, in minutes.
func (o *Order) TotalEstimatedTime() int {
	return o.totalEstimatedTime
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsActive reports whether the order still occupies the queue.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// Snapshot exports the current state.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:                 o.id,
		UserID:             o.userID,
		PickupCode:         o.pickupCode,
		Status:             o.status,
		QueueNumber:        o.queueNumber,
		Notes:              o.notes,
		Items:              o.Items(),
		TotalPrice:         o.totalPrice,
		TotalEstimatedTime: o.totalEstimatedTime,
		CreatedAt:          o.createdAt,
		UpdatedAt:          o.updatedAt,
	}
}

// ChangeStatus moves the order to target if the transition table allows it.
// Non-blank notes replace the current notes. On failure the order is left
// untouched and an *errs.InvalidTransitionError naming both statuses is returned.
func (o *Order) ChangeStatus(target Status, notes string, now time.Time) error {
	if !CanTransition(o.status, target) {
		return errs.NewInvalidTransitionError(o.status, target)
	}

	o.status = target
	if strings.TrimSpace(notes) != "" {
		o.notes = notes
	}
	o.updatedAt = now
	return nil
}

// UpdateDetails replaces notes and items of a PENDING order and recomputes
// the totals.
func (o *Order) UpdateDetails(notes string, items []Item, now time.Time) error {
	if o.status != Pending {
		return errs.NewOperationIsNotAllowedError("update", o.status)
	}

	if err := o.setItems(items); err != nil {
		return err
	}

	o.notes = notes
	o.updatedAt = now
	return nil
}

// EnsureDeletable returns an error unless the order is PENDING or CANCELLED.
func (o *Order) EnsureDeletable() error {
	if o.status != Pending && o.status != Cancelled {
		return errs.NewOperationIsNotAllowedError("delete", o.status)
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID string) error {
	if strings.TrimSpace(userID) == "" {
		return errs.NewValueIsRequiredError("user id")
	}
	o.userID = userID
	return nil
}

func (o *Order) setPickupCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return errs.NewValueIsRequiredError("pickup code")
	}
	o.pickupCode = code
	return nil
}

func (o *Order) setQueueNumber(queueNumber int) error {
	if queueNumber <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("queue number is invalid", fmt.Errorf("%d is not greater than 0", queueNumber))
	}
	o.queueNumber = queueNumber
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems replaces the lines and recomputes both derived totals.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	total := kernel.Money{}
	longest := 0
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
		total = total.Add(item.Subtotal())
		longest = max(longest, item.EstimatedMinutes())
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	o.totalPrice = total
	o.totalEstimatedTime = longest
	return nil
}
