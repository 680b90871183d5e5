package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"

	"github.com/flounderx/presale-backend/internal/notify"
)

// Processor delivers queued notification jobs over the mail transport.
type Processor struct {
	notifier notify.Notifier
}

// NewProcessor creates a worker processor with the mail transport injected.
func NewProcessor(notifier notify.Notifier) *Processor {
	return &Processor{notifier: notifier}
}

// Handle receives an SQS batch event and delivers each job. Each order gets
// exactly one delivery attempt: a failed send is logged and swallowed, never
// returned, so the queue does not redrive it into a duplicate email.
func (p *Processor) Handle(ctx context.Context, ev events.SQSEvent) error {
	log.Printf("[worker] received %d notification jobs", len(ev.Records))
	for _, rec := range ev.Records {
		p.deliver(ctx, rec)
	}
	return nil
}

func (p *Processor) deliver(ctx context.Context, rec events.SQSMessage) {
	var msg notify.Message
	if err := json.Unmarshal([]byte(rec.Body), &msg); err != nil {
		// a malformed job can never succeed; drop it rather than loop
		log.Printf("[worker] invalid job body, dropping: %v, body: %s", err, rec.Body)
		return
	}

	log.Printf("[worker] delivering notification order=%s to=%s", msg.OrderID, msg.To)

	if outcome := p.notifier.Send(ctx, msg); outcome == notify.OutcomeFailed {
		log.Printf("[worker] delivery failed order=%s to=%s", msg.OrderID, msg.To)
		return
	}
	log.Printf("[worker] delivered order=%s", msg.OrderID)
}
