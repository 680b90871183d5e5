package validation

// CreateIntentRequest is the payload for POST /api/create-payment-intent.
type CreateIntentRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	Amount   float64 `json:"amount" validate:"required"` // minimum enforced by struct-level rule
	CardName string  `json:"cardName" validate:"required"`
}

// ConfirmPaymentRequest is the payload for POST /api/confirm-payment.
// Email, amount and card name are echoed from intent creation.
type ConfirmPaymentRequest struct {
	PaymentIntentID string  `json:"paymentIntentId" validate:"required"`
	CardToken       string  `json:"cardToken" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Amount          float64 `json:"amount" validate:"required"`
	CardName        string  `json:"cardName" validate:"required"`
}

// GiveawayRequest is the payload for POST /api/giveaway. Only email and
// username are required; the rest are display values echoed into the mail.
type GiveawayRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Username       string `json:"username" validate:"required"`
	Amount         string `json:"amount,omitempty"`
	BaseCoins      int64  `json:"baseCoins,omitempty"`
	BonusCoins     int64  `json:"bonusCoins,omitempty"`
	TotalCoins     int64  `json:"totalCoins,omitempty"`
	EstimatedValue string `json:"estimatedValue,omitempty"`
}
