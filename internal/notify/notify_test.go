package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"github.com/flounderx/presale-backend/internal/aws"
	"github.com/flounderx/presale-backend/internal/orders"
)

// mockSQS records sent messages and can be told to fail.
type mockSQS struct {
	sent []string
	fail bool
}

func (m *mockSQS) SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	if m.fail {
		return nil, errors.New("queue unavailable")
	}
	m.sent = append(m.sent, *params.MessageBody)
	return &sqs.SendMessageOutput{}, nil
}

func TestConfirmationMessage_Render(t *testing.T) {
	order := orders.New("pi_123", "a@b.com", "Ada Lovelace", 25.00, "ch_1", time.Now())
	msg := ConfirmationMessage(order)

	if msg.To != "a@b.com" {
		t.Fatalf("to: %s", msg.To)
	}
	if msg.OrderID != "pi_123" {
		t.Fatalf("order id: %s", msg.OrderID)
	}
	for _, want := range []string{"pi_123", "$25.00", "$5.00", "$30.00", "Ada Lovelace"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestGiveawayMessage_Render(t *testing.T) {
	msg := GiveawayMessage(GiveawayEntry{
		Email:      "a@b.com",
		Username:   "flounder42",
		BaseCoins:  100,
		BonusCoins: 20,
		TotalCoins: 120,
	})
	for _, want := range []string{"flounder42", "100", "120", "N/A"} {
		if !strings.Contains(msg.HTMLBody, want) {
			t.Fatalf("body missing %q", want)
		}
	}
}

func TestQueueNotifier_SendEnqueuesJob(t *testing.T) {
	mock := &mockSQS{}
	n := NewQueueNotifier(aws.NewPublisher(mock, "https://queue.test/notify"))

	order := orders.New("pi_9", "a@b.com", "Ada Lovelace", 25.00, "ch_1", time.Now())
	if outcome := n.Send(context.Background(), ConfirmationMessage(order)); outcome != OutcomeSent {
		t.Fatalf("expected sent, got %s", outcome)
	}
	if len(mock.sent) != 1 {
		t.Fatalf("expected 1 enqueued job, got %d", len(mock.sent))
	}

	var job Message
	if err := json.Unmarshal([]byte(mock.sent[0]), &job); err != nil {
		t.Fatalf("job is not valid JSON: %v", err)
	}
	if job.OrderID != "pi_9" || job.To != "a@b.com" {
		t.Fatalf("job fields mismatch: %+v", job)
	}
}

func TestQueueNotifier_FailureIsOutcomeNotError(t *testing.T) {
	mock := &mockSQS{fail: true}
	n := NewQueueNotifier(aws.NewPublisher(mock, "https://queue.test/notify"))

	outcome := n.Send(context.Background(), Message{To: "a@b.com", Subject: "s", HTMLBody: "b"})
	if outcome != OutcomeFailed {
		t.Fatalf("expected failed outcome, got %s", outcome)
	}
}
