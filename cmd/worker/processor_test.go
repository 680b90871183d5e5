package main

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/aws/aws-lambda-go/events"

	"github.com/flounderx/presale-backend/internal/notify"
)

// fakeNotifier records deliveries and can simulate transport failure.
type fakeNotifier struct {
	sends []notify.Message
	fail  bool
}

func (n *fakeNotifier) Send(ctx context.Context, msg notify.Message) notify.Outcome {
	n.sends = append(n.sends, msg)
	if n.fail {
		return notify.OutcomeFailed
	}
	return notify.OutcomeSent
}

func sqsEvent(t *testing.T, msgs ...notify.Message) events.SQSEvent {
	t.Helper()
	ev := events.SQSEvent{}
	for _, m := range msgs {
		body, err := json.Marshal(m)
		if err != nil {
			t.Fatalf("marshal job: %v", err)
		}
		ev.Records = append(ev.Records, events.SQSMessage{Body: string(body)})
	}
	return ev
}

func TestHandle_DeliversEachJob(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewProcessor(notifier)

	ev := sqsEvent(t,
		notify.Message{To: "a@b.com", Subject: "s1", HTMLBody: "<p>1</p>", OrderID: "pi_1"},
		notify.Message{To: "c@d.com", Subject: "s2", HTMLBody: "<p>2</p>", OrderID: "pi_2"},
	)

	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("unexpected worker error: %v", err)
	}
	if len(notifier.sends) != 2 {
		t.Fatalf("expected 2 deliveries, got %d", len(notifier.sends))
	}
	if notifier.sends[0].OrderID != "pi_1" || notifier.sends[1].OrderID != "pi_2" {
		t.Fatalf("jobs delivered out of order: %+v", notifier.sends)
	}
}

func TestHandle_DeliveryFailureIsSwallowed(t *testing.T) {
	notifier := &fakeNotifier{fail: true}
	p := NewProcessor(notifier)

	ev := sqsEvent(t, notify.Message{To: "a@b.com", Subject: "s", HTMLBody: "b", OrderID: "pi_1"})

	// exactly-once attempt: the handler must not return an error that would
	// make the queue redeliver and duplicate the email
	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("delivery failure must not bubble up: %v", err)
	}
	if len(notifier.sends) != 1 {
		t.Fatalf("expected a single attempt, got %d", len(notifier.sends))
	}
}

func TestHandle_MalformedJobIsDropped(t *testing.T) {
	notifier := &fakeNotifier{}
	p := NewProcessor(notifier)

	ev := events.SQSEvent{Records: []events.SQSMessage{{Body: "not-json"}}}

	if err := p.Handle(context.Background(), ev); err != nil {
		t.Fatalf("malformed job must be dropped, not retried: %v", err)
	}
	if len(notifier.sends) != 0 {
		t.Fatalf("no delivery expected for malformed job")
	}
}
