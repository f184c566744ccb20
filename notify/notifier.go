// Package notify sends client-facing notifications. Transports are injected
// at construction so the computation engine and its tests never touch the
// network.
package notify

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Notifier delivers order lifecycle notifications.
type Notifier interface {
	OrderConfirmation(toEmail, clientName, reference string, totalAmount float64) error
}

// SendGridNotifier delivers notifications over SendGrid.
type SendGridNotifier struct {
	client *sendgrid.Client
	from   string
}

// NewSendGridNotifier builds a notifier for the given API key and sender.
func NewSendGridNotifier(apiKey, fromEmail string) *SendGridNotifier {
	return &SendGridNotifier{
		client: sendgrid.NewSendClient(apiKey),
		from:   fromEmail,
	}
}

func (n *SendGridNotifier) OrderConfirmation(toEmail, clientName, reference string, totalAmount float64) error {
	from := mail.NewEmail("WealthDesk Orders", n.from)
	to := mail.NewEmail(clientName, toEmail)
	subject := fmt.Sprintf("Order %s received", reference)

	plain := fmt.Sprintf("Hi %s,\n\nYour order %s for INR %.2f has been received and is being processed.\n\nWealthDesk",
		clientName, reference, totalAmount)
	html := fmt.Sprintf(`<p>Hi %s,</p><p>Your order <strong>%s</strong> for INR %.2f has been received and is being processed.</p><p>WealthDesk</p>`,
		clientName, reference, totalAmount)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	resp, err := n.client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected order confirmation: status %d", resp.StatusCode)
	}
	return nil
}

// LogNotifier writes notifications to the application log. Used when no
// SendGrid key is configured and in tests.
type LogNotifier struct{}

func (LogNotifier) OrderConfirmation(toEmail, clientName, reference string, totalAmount float64) error {
	log.Printf("[NOTIFY] order confirmation to %s (%s): ref=%s amount=%.2f", clientName, toEmail, reference, totalAmount)
	return nil
}
