package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"github.com/flounderx/presale-backend/internal/aws"
)

// QueueNotifier hands messages to SQS for out-of-band delivery by the worker.
// Send returns as soon as the job is enqueued, so the HTTP response is never
// coupled to SMTP latency. An enqueue failure is the notification's failure:
// it is reported as an outcome and the committed order stays untouched.
type QueueNotifier struct {
	publisher *aws.Publisher
}

// NewQueueNotifier wraps an SQS publisher.
func NewQueueNotifier(publisher *aws.Publisher) *QueueNotifier {
	return &QueueNotifier{publisher: publisher}
}

// Send enqueues the rendered message as a delivery job.
func (n *QueueNotifier) Send(ctx context.Context, msg Message) Outcome {
	body, err := json.Marshal(msg)
	if err != nil {
		log.Printf("notify: marshal job for %s: %v", msg.To, err)
		return OutcomeFailed
	}

	attrs := map[string]string{
		"job_id": uuid.NewString(),
	}
	if msg.OrderID != "" {
		attrs["order_id"] = msg.OrderID
	}

	if err := n.publisher.SendNotificationMessage(ctx, string(body), attrs); err != nil {
		log.Printf("notify: enqueue for %s failed: %v", msg.To, err)
		return OutcomeFailed
	}
	return OutcomeSent
}
