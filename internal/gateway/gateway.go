package gateway

import (
	"context"
	"errors"
	"fmt"
)

// MinimumAmount is the smallest purchase the processor will open an intent for,
// in major currency units.
const MinimumAmount = 10.00

var (
	// ErrInvalidAmount means the requested amount is below MinimumAmount.
	ErrInvalidAmount = errors.New("amount below minimum purchase")
	// ErrUnavailable means the processor could not be reached. Safe for the
	// caller to retry a confirm; order creation stays idempotent either way.
	ErrUnavailable = errors.New("payment gateway unreachable")
)

// RejectedError is a processor-side validation rejection (bad parameters,
// unusable intent state). Distinct from a card decline, which is an outcome.
type RejectedError struct {
	Code string
	Msg  string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("payment gateway rejected request (%s): %s", e.Code, e.Msg)
}

// ConfirmOutcome classifies the processor's answer to a confirm attempt.
type ConfirmOutcome string

const (
	OutcomeSucceeded      ConfirmOutcome = "succeeded"
	OutcomeRequiresAction ConfirmOutcome = "requires_action"
	OutcomeFailed         ConfirmOutcome = "failed"
)

// IntentResult is the handle returned when an intent is opened with the processor.
type IntentResult struct {
	Reference    string // processor-assigned id, the order idempotency key
	ClientSecret string // handed to the client for browser-side authorization
}

// ConfirmResult reports the terminal state of a confirm call. A card decline
// is OutcomeFailed here, not an error: declines are valid terminal outcomes.
type ConfirmResult struct {
	Outcome       ConfirmOutcome
	ChargeRef     string // settled charge id, set when Outcome is succeeded
	DeclineReason string // processor decline code, set when Outcome is failed
}

// Gateway wraps the external card processor's intent operations.
type Gateway interface {
	// CreateIntent opens one intent with the processor. No local state change.
	CreateIntent(ctx context.Context, amount float64, email, cardName string) (IntentResult, error)
	// ConfirmIntent charges the payment method against an existing intent,
	// requesting automatic strong-authentication step-up.
	ConfirmIntent(ctx context.Context, reference, paymentMethodToken string) (ConfirmResult, error)
}

// MinorUnits converts a major-unit decimal amount to the processor's integer
// minor-unit representation (x100, rounded to nearest).
func MinorUnits(amount float64) int64 {
	if amount >= 0 {
		return int64(amount*100 + 0.5)
	}
	return int64(amount*100 - 0.5)
}
