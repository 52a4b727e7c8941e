package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// NotifyServiceOptions groups dependencies for NotifyService.
type NotifyServiceOptions struct {
	Email    core.EmailSender    // Required: outbound email sender
	WhatsApp core.WhatsAppSender // Required: outbound WhatsApp sender
	Logger   *slog.Logger        // Optional: structured logger
}

// NotifyService fans requests out to the configured outbound senders. Senders
// are fire-and-forget from the ERP's perspective, but a delivery error still
// fails the request so the client can retry.
type NotifyService struct {
	email    core.EmailSender
	whatsapp core.WhatsAppSender
	logger   *slog.Logger
}

// NewNotifyService constructs a new NotifyService.
func NewNotifyService(opts NotifyServiceOptions) (*NotifyService, error) {
	if opts.Email == nil {
		return nil, errors.New("EmailSender is required")
	}
	if opts.WhatsApp == nil {
		return nil, errors.New("WhatsAppSender is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "notify_service")
	}

	return &NotifyService{
		email:    opts.Email,
		whatsapp: opts.WhatsApp,
		logger:   logger,
	}, nil
}

// SendEmail delivers one email notification.
func (s *NotifyService) SendEmail(ctx context.Context, req *model.NotifyEmailRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.email.SendEmail(ctx, req.To, req.Subject, req.Body); err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "email send failed", "to", req.To, "error", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "email sent", "to", req.To, "subject", req.Subject)
	}
	return nil
}

// SendWhatsApp delivers one WhatsApp notification.
func (s *NotifyService) SendWhatsApp(ctx context.Context, req *model.NotifyWhatsAppRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.whatsapp.SendWhatsApp(ctx, req.To, req.Text); err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "whatsapp send failed", "to", req.To, "error", err)
		}
		return err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "whatsapp sent", "to", req.To)
	}
	return nil
}
