package notify

import "context"

// Outcome is the ephemeral result of a single notification attempt. It shapes
// the caller's response at most; it never blocks or reverses an order.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// Message is a fully rendered notification ready for transport.
type Message struct {
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	OrderID  string `json:"order_id,omitempty"` // for log correlation
}

// Notifier delivers a message to an address. Implementations must not fail in
// a way that propagates to the caller's critical path: failure is a returned
// Outcome, not an error, and never aborts the enclosing request.
type Notifier interface {
	Send(ctx context.Context, msg Message) Outcome
}
