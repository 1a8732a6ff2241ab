package commands

import (
	"errors"
	"fmt"
	"strings"

	"canteen/internal/core/domain/model/kernel"
	"canteen/internal/core/domain/model/order"
	"canteen/internal/pkg/errs"
	"canteen/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// Kitchen actions and the status each one moves an order to.
const (
	ActionConfirm  = "confirm"
	ActionStart    = "start"
	ActionReady    = "ready"
	ActionComplete = "complete"
	ActionCancel   = "cancel"
)

var actionTargets = map[string]order.Status{
	ActionConfirm:  order.Confirmed,
	ActionStart:    order.Preparing,
	ActionReady:    order.Ready,
	ActionComplete: order.Completed,
	ActionCancel:   order.Cancelled,
}

// TargetForAction resolves a kitchen action such as "start" to its target
// status. Legality is still decided by the transition table at handling time.
func TargetForAction(action string) (order.Status, error) {
	target, ok := actionTargets[strings.ToLower(strings.TrimSpace(action))]
	if !ok {
		return order.Unknown, errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a known action", action))
	}
	return target, nil
}

// ChangeOrderStatusCommand moves an order to a new status.
//
// Example:
//
//	cmd, err := NewChangeOrderStatusCommand(orderID, order.Preparing, "")
//	updated, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidTransition) {
//	    // e.g. PENDING -> READY
//	}
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status
	notes   string

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status, notes string) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

// Notes replace the order notes when not blank.
func (c ChangeOrderStatusCommand) Notes() string {
	return c.notes
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}
