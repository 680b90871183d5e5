package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/flounderx/presale-backend/internal/orders"
)

const confirmationSubject = "FloundeRx Pre-Order Confirmed!"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #111; color: #fff; padding: 30px;">
    <div style="max-width: 600px; margin: auto; background: #1a1a1a; border-radius: 12px; padding: 20px;">
      <h1 style="text-align: center; color: #4FC3F7;">Thank you, {{.CardName}}!</h1>
      <p style="text-align: center; font-size: 1.1em;">Your FloundeRx coin pre-order is confirmed.</p>
      <hr style="border: 1px solid #333; margin: 20px 0;">
      <div style="padding: 10px 0; font-size: 1em; line-height: 1.6;">
        <p><strong>Order Details:</strong></p>
        <ul>
          <li>Order ID: <strong>{{.ID}}</strong></li>
          <li>Purchase Amount: <strong>${{printf "%.2f" .Amount}}</strong></li>
          <li>Bonus Coins (20%): <strong>${{printf "%.2f" .Bonus}}</strong></li>
          <li>Total Value: <strong>${{printf "%.2f" .TotalValue}}</strong></li>
        </ul>
        <p style="margin-top: 10px;">Your coins will be delivered to your account at launch.
        Keep playing. Keep floundering.</p>
      </div>
      <hr style="border: 1px solid #333; margin: 20px 0;">
      <p style="text-align: center; color: #aaa;">This email confirms your FloundeRx pre-order.<br>
      Visit <a href="https://flounderx.io" style="color: #4FC3F7; text-decoration: none;">FloundeRx.io</a> for updates.</p>
      <div style="text-align: center; margin-top: 25px;">
        <p style="color: #4FC3F7; font-weight: bold;">The FloundeRx Team</p>
      </div>
    </div>
  </body>
</html>
`))

// ConfirmationMessage renders the order-confirmation email for a settled order.
func ConfirmationMessage(order orders.Order) Message {
	var buf bytes.Buffer
	// the template is static and the data struct matches; a render error here
	// would be a programming bug, surfaced as an empty body and caught in tests
	_ = confirmationTmpl.Execute(&buf, order)
	return Message{
		To:       order.Email,
		Subject:  confirmationSubject,
		HTMLBody: buf.String(),
		OrderID:  order.ID,
	}
}

// GiveawayEntry holds the display fields for a giveaway confirmation mail.
// Numeric fields arrive as client display values and are echoed verbatim.
type GiveawayEntry struct {
	Email          string
	Username       string
	Amount         string
	BaseCoins      int64
	BonusCoins     int64
	TotalCoins     int64
	EstimatedValue string
}

const giveawaySubject = "FloundeRx Giveaway Entry Confirmed!"

var giveawayTmpl = template.Must(template.New("giveaway").Parse(`
<html>
  <body style="font-family: Arial, sans-serif; background-color: #111; color: #fff; padding: 30px;">
    <div style="max-width: 600px; margin: auto; background: #1a1a1a; border-radius: 12px; padding: 20px;">
      <h1 style="text-align: center; color: #4FC3F7;">Welcome to FloundeRx, {{.Username}}!</h1>
      <p style="text-align: center; font-size: 1.1em;">You're officially entered into our <strong>Massive Giveaway Event</strong>!<br>
      <em>50% of the company. 50% of the coins. 5 Lucky Winners.</em></p>
      <hr style="border: 1px solid #333; margin: 20px 0;">
      <div style="padding: 10px 0; font-size: 1em; line-height: 1.6;">
        <p><strong>Entry Details:</strong></p>
        <ul>
          <li>Purchase Amount: <strong>{{if .Amount}}{{.Amount}}{{else}}N/A{{end}}</strong></li>
          <li>Base Coins: <strong>{{.BaseCoins}}</strong></li>
          <li>Bonus Coins: <strong>{{.BonusCoins}}</strong></li>
          <li>Total Coins: <strong>{{.TotalCoins}}</strong></li>
          <li>Estimated Value: <strong>{{if .EstimatedValue}}{{.EstimatedValue}}{{else}}N/A{{end}}</strong></li>
        </ul>
        <p style="margin-top: 10px;">You're officially part of the revolution. At any given moment,
        someone could be chosen to win BIG. Keep playing. Keep floundering.</p>
      </div>
      <hr style="border: 1px solid #333; margin: 20px 0;">
      <p style="text-align: center; color: #aaa;">This email confirms your FloundeRx entry.<br>
      Visit <a href="https://flounderx.io" style="color: #4FC3F7; text-decoration: none;">FloundeRx.io</a> to track updates.</p>
      <div style="text-align: center; margin-top: 25px;">
        <p style="color: #4FC3F7; font-weight: bold;">The FloundeRx Team</p>
      </div>
    </div>
  </body>
</html>
`))

// GiveawayMessage renders the giveaway entry-confirmation email.
func GiveawayMessage(entry GiveawayEntry) Message {
	var buf bytes.Buffer
	_ = giveawayTmpl.Execute(&buf, entry)
	return Message{
		To:       entry.Email,
		Subject:  giveawaySubject,
		HTMLBody: buf.String(),
	}
}

// FromHeader formats the sender for outgoing mail.
func FromHeader(user string) string {
	return fmt.Sprintf("\"FloundeRx\" <%s>", user)
}
