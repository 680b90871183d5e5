package notify

import (
	"context"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// SMTPNotifier delivers mail directly over SMTP. Used by the worker for
// queued jobs and by the giveaway flow, which has no ledger to protect.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier builds a notifier for the configured SMTP account.
func NewSMTPNotifier(host string, port int, user, password string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   FromHeader(user),
	}
}

// Send delivers the message. Transport errors are logged and reported as a
// failed outcome; they never propagate.
func (n *SMTPNotifier) Send(ctx context.Context, msg Message) Outcome {
	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTMLBody)

	if err := n.dialer.DialAndSend(m); err != nil {
		log.Printf("notify: smtp send to %s failed: %v", msg.To, err)
		return OutcomeFailed
	}
	return OutcomeSent
}
