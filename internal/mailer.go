package internal

import (
	"context"
	"time"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

type InvoiceMail struct {
	To      string
	ToName  string
	Bcc     string
	Subject string
	Text    string
	HTML    string
}

type IMailer interface {
	SendInvoice(context.Context, InvoiceMail) error
}

type Mailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	timeout  time.Duration
	logger   *zap.SugaredLogger
}

func NewMailer(host string, port int, user, password, from, fromName string, timeout time.Duration, logger *zap.SugaredLogger) *Mailer {
	return &Mailer{
		dialer:   gomail.NewDialer(host, port, user, password),
		from:     from,
		fromName: fromName,
		timeout:  timeout,
		logger:   logger,
	}
}

// SendInvoice delivers one invoice. The send is bounded by the configured
// timeout so an unreachable mail server fails one member instead of
// stalling the whole billing run.
func (m *Mailer) SendInvoice(ctx context.Context, im InvoiceMail) error {
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetAddressHeader("To", im.To, im.ToName)
	if im.Bcc != "" {
		msg.SetHeader("Bcc", im.Bcc)
	}
	msg.SetHeader("Subject", im.Subject)
	msg.SetBody("text/plain", im.Text)
	msg.AddAlternative("text/html", im.HTML)

	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		m.logger.Errorf("SendInvoice to %s timed out: %s", im.To, ctx.Err())
		return ctx.Err()
	}
}
