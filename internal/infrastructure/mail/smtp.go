// Package mail sends plain-text notification email over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	addr string // host:port
	host string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(addr, host, user, pass, from string) *SMTPMailer {
	m := &SMTPMailer{addr: addr, host: host, from: from}
	if user != "" {
		m.auth = smtp.PlainAuth("", user, pass, host)
	}
	return m
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/plain; charset="utf-8"`,
		"",
		body,
	}, "\r\n")
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp: send to %s: %w", to, err)
	}
	return nil
}
