// Package email sends transactional mail over SMTP.
package email

import (
	"bytes"
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	gomail "gopkg.in/gomail.v2"

	"github.com/web-dev-boy/Nexteria/internal/application/ports"
	"github.com/web-dev-boy/Nexteria/pkg/config"
)

var _ ports.Mailer = (*SMTPMailer)(nil)

// SMTPMailer implements the Mailer port with gomail.
type SMTPMailer struct {
	dialer  *gomail.Dialer
	from    string
	appName string
}

// NewSMTPMailer builds the mailer, or nil when no SMTP host is configured so
// callers can treat email as disabled.
func NewSMTPMailer(cfg config.SMTPConfig, appName string) *SMTPMailer {
	if cfg.Host == "" {
		return nil
	}
	return &SMTPMailer{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    cfg.From,
		appName: appName,
	}
}

// SendWelcome greets a newly registered seller.
func (m *SMTPMailer) SendWelcome(ctx context.Context, toEmail, sellerName string) error {
	var body bytes.Buffer
	err := welcomeTmpl.Execute(&body, map[string]string{
		"AppName":    m.appName,
		"SellerName": sellerName,
	})
	if err != nil {
		return fmt.Errorf("render welcome email: %w", err)
	}
	return m.send(ctx, toEmail, "Welcome to "+m.appName+"!", body.String())
}

// SendSaleNotification tells the seller about a settled sale.
func (m *SMTPMailer) SendSaleNotification(ctx context.Context, toEmail, productName, buyerEmail string,
	saleAmount, sellerAmount, commissionAmount decimal.Decimal) error {
	var body bytes.Buffer
	err := saleTmpl.Execute(&body, map[string]string{
		"AppName":          m.appName,
		"ProductName":      productName,
		"BuyerEmail":       buyerEmail,
		"SaleAmount":       saleAmount.StringFixed(2),
		"SellerAmount":     sellerAmount.StringFixed(2),
		"CommissionAmount": commissionAmount.StringFixed(2),
	})
	if err != nil {
		return fmt.Errorf("render sale email: %w", err)
	}
	return m.send(ctx, toEmail, "You made a sale: "+productName, body.String())
}

// send delivers one message, honoring ctx cancellation. gomail's DialAndSend
// has no context support, so it runs in a goroutine and the caller's timeout
// just stops the wait.
func (m *SMTPMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	done := make(chan error, 1)
	go func() { done <- m.dialer.DialAndSend(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send email to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
