// utils/email.go
package utils

import (
	"fmt"
	"os"

	"github.com/keighl/postmark"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/earnhalal/Lasercurrencystore/models"
)

// EasypaisaIBAN receives advance payments and the signup verification fee
const EasypaisaIBAN = "PK76TMFB0000000040888058"

// SignupFee is the amount a new account sends to unlock the dashboard
const SignupFee = 20.0

// mailProvider abstracts the transactional mail vendor
type mailProvider interface {
	send(from, to, subject, htmlBody string) error
}

type postmarkProvider struct {
	client *postmark.Client
}

func (p *postmarkProvider) send(from, to, subject, htmlBody string) error {
	_, err := p.client.SendEmail(postmark.Email{
		From:     from,
		To:       to,
		Subject:  subject,
		HtmlBody: htmlBody,
		TextBody: htmlBody,
	})
	return err
}

type sendgridProvider struct {
	client *sendgrid.Client
}

func (p *sendgridProvider) send(from, to, subject, htmlBody string) error {
	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("", from),
		subject,
		sgmail.NewEmail("", to),
		htmlBody,
		htmlBody,
	)
	_, err := p.client.Send(message)
	return err
}

// EmailService sends transactional mail through the configured provider
type EmailService struct {
	sender   string
	provider mailProvider
}

// NewEmailService builds a service from EMAIL_PROVIDER ("sendgrid" or
// "postmark") and the matching API token. Returns nil when no provider is
// configured; callers treat a nil service as mail disabled.
func NewEmailService() *EmailService {
	sender := os.Getenv("EMAIL_SENDER")
	switch os.Getenv("EMAIL_PROVIDER") {
	case "postmark":
		token := os.Getenv("POSTMARK_API_TOKEN")
		if token == "" {
			return nil
		}
		return &EmailService{
			sender:   sender,
			provider: &postmarkProvider{client: postmark.NewClient(token, "")},
		}
	case "sendgrid":
		key := os.Getenv("SENDGRID_API_KEY")
		if key == "" {
			return nil
		}
		return &EmailService{
			sender:   sender,
			provider: &sendgridProvider{client: sendgrid.NewSendClient(key)},
		}
	}
	return nil
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if err := es.provider.send(es.sender, toEmail, subject, htmlContent); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPaymentInstructions tells a new signup how to pay the signup fee
func (es *EmailService) SendPaymentInstructions(toEmail string) error {
	subject := "Unlock Your Dashboard"
	htmlContent := fmt.Sprintf(
		"<strong>Send ₨%.0f to verify your account.</strong><br>Easypaisa IBAN: <code>%s</code><br>Upload your payment screenshot to complete signup.",
		SignupFee, EasypaisaIBAN,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendOrderConfirmationEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderConfirmationEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Thank you! Your order has been received.</strong><br><br>Order: %s<br>Total: Rs. %.2f<br>Advance paid: Rs. %.2f<br>Courier: %s<br><br>Apka order process me hai. Advance receive hone ke baad dispatch kiya jaye ga.",
		order.ID,
		order.TotalAmount,
		order.AdvancePaid,
		order.DeliveryCompany,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
