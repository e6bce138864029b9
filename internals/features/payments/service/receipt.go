package service

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// ReceiptMailer sends the purchase receipt once a checkout session
// completes. Best-effort: a failed send is logged and never retried here
// (Stripe's own receipt is the customer's canonical record).
type ReceiptMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewReceiptMailer(client *sendgrid.Client, fromAddress string) *ReceiptMailer {
	if client == nil {
		return nil
	}
	return &ReceiptMailer{
		client: client,
		from:   sgmail.NewEmail("Studio E", fromAddress),
	}
}

func (m *ReceiptMailer) SendReceipt(toEmail string, product Product, amount int64) {
	if toEmail == "" {
		return
	}
	subject := "[Studio E] Thanks for your purchase"
	body := fmt.Sprintf(
		"Thanks for purchasing %s ($%.2f).\n\nYour purchase is now available on your dashboard.\n\n- Studio E",
		product.Name, float64(amount)/100,
	)
	to := sgmail.NewEmail("", toEmail)

	go func() {
		msg := sgmail.NewSingleEmail(m.from, subject, to, body, "")
		if _, err := m.client.Send(msg); err != nil {
			log.Printf("[ERROR] receipt mail send: %v", err)
		}
	}()
}
