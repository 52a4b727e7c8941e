package model

import (
	"errors"
	"strings"
)

// NotifyEmailRequest sends a rendered email to one recipient.
type NotifyEmailRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Validate validates the NotifyEmailRequest fields.
func (r *NotifyEmailRequest) Validate() error {
	if strings.TrimSpace(r.To) == "" {
		return errors.New("to is required")
	}
	if !strings.Contains(r.To, "@") {
		return errors.New("to must be an email address")
	}
	if strings.TrimSpace(r.Subject) == "" {
		return errors.New("subject is required")
	}
	return nil
}

// NotifyWhatsAppRequest sends a rendered text to one WhatsApp recipient.
type NotifyWhatsAppRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Validate validates the NotifyWhatsAppRequest fields.
func (r *NotifyWhatsAppRequest) Validate() error {
	if strings.TrimSpace(r.To) == "" {
		return errors.New("to is required")
	}
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("text is required")
	}
	return nil
}
