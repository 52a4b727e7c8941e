// Package notify provides the outbound delivery adapters: SMTP email and the
// WhatsApp HTTP webhook.
package notify

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
)

// SMTPSender delivers email through a plain SMTP relay.
type SMTPSender struct {
	cfg    config.SMTPConfig
	logger *slog.Logger

	// send is swappable in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

var _ core.EmailSender = (*SMTPSender)(nil)

// NewSMTPSender creates an email sender from SMTP configuration.
func NewSMTPSender(cfg config.SMTPConfig, logger *slog.Logger) (*SMTPSender, error) {
	if strings.TrimSpace(cfg.Host) == "" {
		return nil, errors.New("SMTP host is required")
	}
	if strings.TrimSpace(cfg.From) == "" {
		return nil, errors.New("SMTP from address is required")
	}

	if logger != nil {
		logger = logger.With("component", "smtp_sender")
	}

	return &SMTPSender{
		cfg:    cfg,
		logger: logger,
		send:   smtp.SendMail,
	}, nil
}

// SendEmail delivers one message. The context is honoured only up front;
// net/smtp has no per-call cancellation.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	msg := buildMessage(s.cfg.From, to, subject, body)

	if err := s.send(addr, auth, s.cfg.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "email delivered", "to", to)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
