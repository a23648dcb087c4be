package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

type SMTPSender struct {
	host string
	port string
	user string
	pass string
	from string
}

func NewSMTPSender(host, port, user, pass, from string) (*SMTPSender, error) {
	if host == "" {
		return nil, fmt.Errorf("SMTP_HOST not set")
	}
	if port == "" {
		return nil, fmt.Errorf("SMTP_PORT not set")
	}
	if user == "" {
		return nil, fmt.Errorf("SMTP_USER not set")
	}
	if pass == "" {
		return nil, fmt.Errorf("SMTP_PASS not set")
	}
	if from == "" {
		from = user
	}
	return &SMTPSender{host: host, port: port, user: user, pass: pass, from: from}, nil
}

func (s *SMTPSender) SendEmail(ctx context.Context, to string, subject string, html string) (SendResult, error) {
	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	auth := smtp.PlainAuth("", s.user, s.pass, s.host)

	msg := []byte(
		"From: " + s.from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			html,
	)

	if err := smtp.SendMail(addr, auth, s.from, []string{to}, msg); err != nil {
		return SendResult{}, fmt.Errorf("smtp send failed: %w", err)
	}

	return SendResult{
		MessageID: fmt.Sprintf("smtp-%d", time.Now().UnixNano()),
		SentAt:    time.Now(),
	}, nil
}
