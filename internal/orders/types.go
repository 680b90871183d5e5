package orders

import "time"

// StatusCompleted is the only status the ledger accepts. Failed confirmations
// never produce an order, so there is nothing else to record.
const StatusCompleted = "completed"

// BonusRate is the pre-order bonus: 20% of the purchase amount, fixed at
// intent-creation time.
const BonusRate = 0.20

// Order is a finalized, paid purchase as stored in the orders DynamoDB table.
// Its ID equals the processor-assigned payment intent reference; that equality
// is the idempotency key guaranteeing at most one order per settled payment.
type Order struct {
	ID         string    `json:"id" dynamodbav:"order_id"` // PK, = payment intent reference
	Email      string    `json:"email" dynamodbav:"email"`
	CardName   string    `json:"cardName" dynamodbav:"cardholder_name"`
	Amount     float64   `json:"amount" dynamodbav:"amount"`           // major units
	Bonus      float64   `json:"bonus" dynamodbav:"bonus"`             // Amount * BonusRate
	TotalValue float64   `json:"totalValue" dynamodbav:"total_value"`  // Amount + Bonus
	Status     string    `json:"status" dynamodbav:"status"`           // always "completed"
	ChargeRef  string    `json:"chargeRef" dynamodbav:"charge_ref"`    // processor charge id
	CreatedAt  time.Time `json:"createdAt" dynamodbav:"created_at"`
}

// New builds a completed order for a settled payment. Bonus and total are
// derived here, once, and never recomputed afterwards.
func New(reference, email, cardName string, amount float64, chargeRef string, now time.Time) Order {
	bonus := amount * BonusRate
	return Order{
		ID:         reference,
		Email:      email,
		CardName:   cardName,
		Amount:     amount,
		Bonus:      bonus,
		TotalValue: amount + bonus,
		Status:     StatusCompleted,
		ChargeRef:  chargeRef,
		CreatedAt:  now,
	}
}
