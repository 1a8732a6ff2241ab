package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"canteen/internal/pkg/errs"
)

const (
	// DefaultPickupCodeAttempts bounds the number of draws per Generate call.
	DefaultPickupCodeAttempts = 10

	pickupCodeMin   = 100000
	pickupCodeRange = 900000
)

// PickupCodeChecker reports whether a code was ever handed out.
type PickupCodeChecker interface {
	PickupCodeExists(ctx context.Context, code string) (bool, error)
}

// PickupCodeGenerator draws 6-digit numeric codes in [100000, 999999].
//
// The existence check only narrows the race window: the store's unique
// constraint on the code is what actually reserves it, and a violation there
// must be reported as a conflict so the caller can retry with a fresh code.
//
// Example:
//
//	gen := services.NewPickupCodeGenerator(services.DefaultPickupCodeAttempts, nil)
//	code, err := gen.Generate(ctx, uow.OrderRepository())
//	if errors.Is(err, errs.ErrConflict) {
//	    // code space exhausted for this attempt budget
//	}
type PickupCodeGenerator struct {
	attempts int
	intN     func(n int) int
}

// NewPickupCodeGenerator creates a generator that gives up after attempts
// draws. A nil intN uses math/rand/v2.
func NewPickupCodeGenerator(attempts int, intN func(n int) int) PickupCodeGenerator {
	if attempts <= 0 {
		attempts = DefaultPickupCodeAttempts
	}
	if intN == nil {
		intN = rand.IntN
	}
	return PickupCodeGenerator{attempts: attempts, intN: intN}
}

// Generate returns an unused code or an *errs.ConflictError once every attempt
// has collided.
func (g PickupCodeGenerator) Generate(ctx context.Context, checker PickupCodeChecker) (string, error) {
	for range g.attempts {
		code := fmt.Sprintf("%06d", pickupCodeMin+g.intN(pickupCodeRange))

		exists, err := checker.PickupCodeExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}

	return "", errs.NewConflictErrorWithCause("pickup code", fmt.Errorf("no free code after %d attempts", g.attempts))
}
