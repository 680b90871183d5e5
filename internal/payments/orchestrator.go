package payments

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/flounderx/presale-backend/internal/aws"
	"github.com/flounderx/presale-backend/internal/gateway"
	"github.com/flounderx/presale-backend/internal/notify"
	"github.com/flounderx/presale-backend/internal/orders"
)

var (
	// ErrMissingFields means email, amount or cardholder name was absent.
	ErrMissingFields = errors.New("email, amount and card name are required")
	// ErrBelowMinimum means the amount is under the minimum purchase.
	ErrBelowMinimum = errors.New("minimum purchase is $10.00")
	// ErrMissingPaymentDetails means reference or payment method token was absent.
	ErrMissingPaymentDetails = errors.New("payment intent id and card token are required")
)

// Ledger is the slice of the order store the orchestrator needs.
type Ledger interface {
	InsertIfAbsent(ctx context.Context, order orders.Order) (bool, *orders.Order, error)
	ListAll(ctx context.Context) ([]orders.Order, error)
}

// IntentRequest carries the fields for opening a payment intent.
type IntentRequest struct {
	Email    string
	Amount   float64
	CardName string
}

// ConfirmRequest carries the fields for confirming a payment. Email, Amount
// and CardName are echoed from intent creation; the processor fixed the
// charged amount when the intent was opened.
type ConfirmRequest struct {
	Reference string
	CardToken string
	Email     string
	Amount    float64
	CardName  string
}

// ConfirmResult is the terminal answer of a confirm. Settled is true only
// when an order exists in the ledger for the reference; on a decline the
// gateway outcome and reason are carried instead.
type ConfirmResult struct {
	Settled       bool
	Order         *orders.Order
	Outcome       gateway.ConfirmOutcome
	DeclineReason string
}

// Orchestrator drives a purchase through confirm -> record -> notify.
// It holds no per-purchase state between calls; requests are correlated only
// by the processor-assigned reference.
type Orchestrator struct {
	gateway  gateway.Gateway
	ledger   Ledger
	notifier notify.Notifier
	metrics  *aws.MetricsEmitter
	nowFunc  func() time.Time
}

// NewOrchestrator wires the orchestrator. metrics may be nil.
func NewOrchestrator(gw gateway.Gateway, ledger Ledger, notifier notify.Notifier, metrics *aws.MetricsEmitter) *Orchestrator {
	return &Orchestrator{
		gateway:  gw,
		ledger:   ledger,
		notifier: notifier,
		metrics:  metrics,
		nowFunc:  time.Now,
	}
}

// RequestIntent validates the purchase and opens an intent with the processor.
// Validation failures never reach the gateway; gateway failures surface as-is
// and leave no local state behind.
func (o *Orchestrator) RequestIntent(ctx context.Context, req IntentRequest) (gateway.IntentResult, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.CardName) == "" || req.Amount == 0 {
		return gateway.IntentResult{}, ErrMissingFields
	}
	if req.Amount < gateway.MinimumAmount {
		return gateway.IntentResult{}, ErrBelowMinimum
	}

	return o.gateway.CreateIntent(ctx, req.Amount, req.Email, req.CardName)
}

// ConfirmPayment confirms the intent with the processor and, on settlement,
// records the order exactly once and attempts the confirmation notification
// exactly once. A repeated confirm for an already-settled reference returns
// the existing order as success, with no second notification.
func (o *Orchestrator) ConfirmPayment(ctx context.Context, req ConfirmRequest) (ConfirmResult, error) {
	if strings.TrimSpace(req.Reference) == "" || strings.TrimSpace(req.CardToken) == "" {
		return ConfirmResult{}, ErrMissingPaymentDetails
	}

	res, err := o.gateway.ConfirmIntent(ctx, req.Reference, req.CardToken)
	if err != nil {
		// ERRORED: no order was written, so the caller can retry without
		// risking a duplicate; the eventual retry lands on InsertIfAbsent.
		return ConfirmResult{}, err
	}

	if res.Outcome != gateway.OutcomeSucceeded {
		o.metrics.Count(ctx, aws.MetricPaymentsDeclined)
		return ConfirmResult{
			Outcome:       res.Outcome,
			DeclineReason: res.DeclineReason,
		}, nil
	}

	order := orders.New(req.Reference, req.Email, req.CardName, req.Amount, res.ChargeRef, o.nowFunc())

	inserted, record, err := o.ledger.InsertIfAbsent(ctx, order)
	if err != nil {
		return ConfirmResult{}, err
	}

	if inserted {
		o.metrics.Count(ctx, aws.MetricOrdersSettled)
		// The money already moved: a failed notification is logged and
		// absorbed, never surfaced as a payment failure.
		if outcome := o.notifier.Send(ctx, notify.ConfirmationMessage(*record)); outcome == notify.OutcomeFailed {
			log.Printf("confirmation notification failed for order=%s", record.ID)
			o.metrics.Count(ctx, aws.MetricNotificationFailures)
		}
	} else {
		log.Printf("duplicate confirm for order=%s, returning existing record", record.ID)
	}

	return ConfirmResult{
		Settled: true,
		Order:   record,
		Outcome: gateway.OutcomeSucceeded,
	}, nil
}

// ListOrders returns the full ledger in insertion order. Read-only.
func (o *Orchestrator) ListOrders(ctx context.Context) ([]orders.Order, error) {
	return o.ledger.ListAll(ctx)
}
