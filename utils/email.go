package utils

import (
	"gopkg.in/gomail.v2"

	"github.com/meinhoongagan/handyhub/config"
)

// Mailer sends a single HTML email.
type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer returns an SMTP mailer, or a NopMailer when SMTP_HOST is unset.
func NewMailer(cfg config.MailConfig) Mailer {
	if !cfg.Enabled() {
		return NopMailer{}
	}
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.User,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

type NopMailer struct{}

func (NopMailer) Send(to, subject, body string) error { return nil }
