package gateway

import (
	"errors"
	"testing"

	"github.com/stripe/stripe-go/v79"
)

func TestMinorUnits(t *testing.T) {
	if got := MinorUnits(25.00); got != 2500 {
		t.Fatalf("25.00 -> %d, want 2500", got)
	}
	if got := MinorUnits(10.005); got != 1001 {
		t.Fatalf("10.005 -> %d, want 1001 (round to nearest)", got)
	}
	if got := MinorUnits(19.999); got != 2000 {
		t.Fatalf("19.999 -> %d, want 2000", got)
	}
}

func TestResultFromIntent_Succeeded(t *testing.T) {
	pi := &stripe.PaymentIntent{
		ID:           "pi_123",
		Status:       stripe.PaymentIntentStatusSucceeded,
		LatestCharge: &stripe.Charge{ID: "ch_456"},
	}
	res := resultFromIntent(pi)
	if res.Outcome != OutcomeSucceeded {
		t.Fatalf("expected succeeded, got %s", res.Outcome)
	}
	if res.ChargeRef != "ch_456" {
		t.Fatalf("charge ref mismatch: %s", res.ChargeRef)
	}
}

func TestResultFromIntent_RequiresAction(t *testing.T) {
	pi := &stripe.PaymentIntent{Status: stripe.PaymentIntentStatusRequiresAction}
	res := resultFromIntent(pi)
	if res.Outcome != OutcomeRequiresAction {
		t.Fatalf("expected requires_action, got %s", res.Outcome)
	}
	if res.ChargeRef != "" {
		t.Fatalf("no charge ref expected before settlement")
	}
}

func TestTranslateConfirmErr_CardDeclineIsOutcome(t *testing.T) {
	sErr := &stripe.Error{
		Type: stripe.ErrorTypeCard,
		Code: stripe.ErrorCodeCardDeclined,
	}
	res, err := translateConfirmErr(sErr)
	if err != nil {
		t.Fatalf("decline must not be an error, got %v", err)
	}
	if res.Outcome != OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", res.Outcome)
	}
	if res.DeclineReason != string(stripe.ErrorCodeCardDeclined) {
		t.Fatalf("decline reason missing, got %q", res.DeclineReason)
	}
}

func TestTranslateConfirmErr_InvalidRequestIsRejected(t *testing.T) {
	sErr := &stripe.Error{
		Type: stripe.ErrorTypeInvalidRequest,
		Code: "payment_intent_unexpected_state",
		Msg:  "intent already captured",
	}
	_, err := translateConfirmErr(sErr)
	var rej *RejectedError
	if !errors.As(err, &rej) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
}

func TestTranslateConfirmErr_TransportIsUnavailable(t *testing.T) {
	_, err := translateConfirmErr(errors.New("dial tcp: i/o timeout"))
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestTranslateCreateErr(t *testing.T) {
	if err := translateCreateErr(errors.New("connection reset")); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("transport error should map to ErrUnavailable, got %v", err)
	}
	sErr := &stripe.Error{Type: stripe.ErrorTypeInvalidRequest, Code: "parameter_invalid_integer"}
	var rej *RejectedError
	if err := translateCreateErr(sErr); !errors.As(err, &rej) {
		t.Fatalf("expected RejectedError, got %v", err)
	}
}
