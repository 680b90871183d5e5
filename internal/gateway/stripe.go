package gateway

import (
	"context"
	"errors"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	stripeclient "github.com/stripe/stripe-go/v79/client"
)

// StripeGateway implements Gateway against the Stripe PaymentIntents API.
type StripeGateway struct {
	api *stripeclient.API
}

// NewStripeGateway builds a gateway from a secret key.
func NewStripeGateway(secretKey string) *StripeGateway {
	api := &stripeclient.API{}
	api.Init(secretKey, nil)
	return &StripeGateway{api: api}
}

// CreateIntent opens a PaymentIntent in USD for the given major-unit amount.
func (g *StripeGateway) CreateIntent(ctx context.Context, amount float64, email, cardName string) (IntentResult, error) {
	if amount < MinimumAmount {
		return IntentResult{}, ErrInvalidAmount
	}

	params := &stripe.PaymentIntentParams{
		Params:       stripe.Params{Context: ctx},
		Amount:       stripe.Int64(MinorUnits(amount)),
		Currency:     stripe.String(string(stripe.CurrencyUSD)),
		ReceiptEmail: stripe.String(email),
		Description:  stripe.String(fmt.Sprintf("FloundeRx coin pre-order for %s", cardName)),
	}
	params.AddMetadata("cardholder_name", cardName)

	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return IntentResult{}, translateCreateErr(err)
	}
	return IntentResult{
		Reference:    pi.ID,
		ClientSecret: pi.ClientSecret,
	}, nil
}

// ConfirmIntent confirms the intent with the supplied payment method token,
// asking Stripe for automatic 3-D Secure step-up rather than skipping it.
func (g *StripeGateway) ConfirmIntent(ctx context.Context, reference, paymentMethodToken string) (ConfirmResult, error) {
	params := &stripe.PaymentIntentConfirmParams{
		Params:        stripe.Params{Context: ctx},
		PaymentMethod: stripe.String(paymentMethodToken),
		PaymentMethodOptions: &stripe.PaymentIntentPaymentMethodOptionsParams{
			Card: &stripe.PaymentIntentPaymentMethodOptionsCardParams{
				RequestThreeDSecure: stripe.String("automatic"),
			},
		},
	}

	pi, err := g.api.PaymentIntents.Confirm(reference, params)
	if err != nil {
		return translateConfirmErr(err)
	}
	return resultFromIntent(pi), nil
}

// resultFromIntent maps a PaymentIntent status onto a local outcome.
func resultFromIntent(pi *stripe.PaymentIntent) ConfirmResult {
	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		res := ConfirmResult{Outcome: OutcomeSucceeded}
		if pi.LatestCharge != nil {
			res.ChargeRef = pi.LatestCharge.ID
		}
		return res
	case stripe.PaymentIntentStatusRequiresAction:
		return ConfirmResult{Outcome: OutcomeRequiresAction}
	default:
		return ConfirmResult{Outcome: OutcomeFailed, DeclineReason: string(pi.Status)}
	}
}

func translateCreateErr(err error) error {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch sErr.Type {
	case stripe.ErrorTypeInvalidRequest, stripe.ErrorTypeCard:
		return &RejectedError{Code: string(sErr.Code), Msg: sErr.Msg}
	default:
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}

// translateConfirmErr separates business declines from transport failures:
// a card error is a terminal failed outcome, everything else is an error.
func translateConfirmErr(err error) (ConfirmResult, error) {
	var sErr *stripe.Error
	if !errors.As(err, &sErr) {
		return ConfirmResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch sErr.Type {
	case stripe.ErrorTypeCard:
		return ConfirmResult{
			Outcome:       OutcomeFailed,
			DeclineReason: string(sErr.Code),
		}, nil
	case stripe.ErrorTypeInvalidRequest:
		return ConfirmResult{}, &RejectedError{Code: string(sErr.Code), Msg: sErr.Msg}
	default:
		return ConfirmResult{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
}
