// Package mailer sends admin notification emails over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
)

// SMTPSender delivers mail through a plain SMTP relay.
type SMTPSender struct {
	host string
	port int
	user string
	pass string
	to   string
}

// New creates an SMTPSender. Returns nil when host or recipient are unset,
// which callers treat as "notifications disabled".
func New(host string, port int, user, pass, to string) *SMTPSender {
	if host == "" || to == "" {
		return nil
	}
	return &SMTPSender{host: host, port: port, user: user, pass: pass, to: to}
}

// Send delivers one message to the configured recipient.
func (s *SMTPSender) Send(subject, body string) error {
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s\r\nSubject: %s\r\n\r\n%s\r\n", s.to, s.user, subject, body))

	var auth smtp.Auth
	if s.user != "" {
		auth = smtp.PlainAuth("", s.user, s.pass, s.host)
	}

	if err := smtp.SendMail(addr, auth, s.user, []string{s.to}, msg); err != nil {
		return fmt.Errorf("sending mail via %s: %w", addr, err)
	}
	return nil
}
