package utils

import (
	"context"

	"gopkg.in/gomail.v2"
)

// Mailer sends HTML mail through an SMTP relay.
type Mailer struct {
	from   string
	dialer *gomail.Dialer
}

func NewMailer(host string, port int, user, pass string) *Mailer {
	return &Mailer{
		from:   user,
		dialer: gomail.NewDialer(host, port, user, pass),
	}
}

func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}
