package validation

import (
	validatorv10 "github.com/go-playground/validator/v10"
)

// MinimumPurchase is the smallest accepted pre-order, in major units.
const MinimumPurchase = 10.00

// New returns a configured validator with custom struct-level validation registered.
func New() *validatorv10.Validate {
	v := validatorv10.New()

	// intent creation and confirmation both carry a purchase amount that must
	// meet the minimum
	v.RegisterStructValidation(minimumAmountValidation, CreateIntentRequest{}, ConfirmPaymentRequest{})

	return v
}

// minimumAmountValidation rejects purchases below MinimumPurchase.
func minimumAmountValidation(sl validatorv10.StructLevel) {
	var amount float64
	switch req := sl.Current().Interface().(type) {
	case CreateIntentRequest:
		amount = req.Amount
	case ConfirmPaymentRequest:
		amount = req.Amount
	default:
		return
	}

	if amount != 0 && amount < MinimumPurchase {
		sl.ReportError(amount, "amount", "Amount", "min_purchase", "")
	}
}
