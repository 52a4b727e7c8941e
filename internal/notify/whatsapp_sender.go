package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
)

// WhatsAppSender delivers text messages through an HTTP webhook. The webhook
// contract is a JSON POST; any non-2xx response is a delivery failure.
type WhatsAppSender struct {
	url    string
	token  string
	client *http.Client
	logger *slog.Logger
}

var _ core.WhatsAppSender = (*WhatsAppSender)(nil)

// NewWhatsAppSender creates a webhook sender from WhatsApp configuration.
func NewWhatsAppSender(cfg config.WhatsAppConfig, logger *slog.Logger) (*WhatsAppSender, error) {
	if strings.TrimSpace(cfg.WebhookURL) == "" {
		return nil, errors.New("WhatsApp webhook URL is required")
	}

	if logger != nil {
		logger = logger.With("component", "whatsapp_sender")
	}

	return &WhatsAppSender{
		url:    cfg.WebhookURL,
		token:  cfg.Token,
		client: &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}, nil
}

type whatsAppPayload struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// SendWhatsApp posts one message to the webhook.
func (s *WhatsAppSender) SendWhatsApp(ctx context.Context, to, text string) error {
	payload, err := json.Marshal(whatsAppPayload{To: to, Text: text})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close failure is not actionable

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Keep a slice of the body for diagnostics without trusting its size.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "whatsapp delivered", "to", to)
	}
	return nil
}
