package config

import "time"

// SMTPConfig contains outbound email settings.
type SMTPConfig struct {
	Host     string `env:"HOST"     envDefault:"localhost"`
	Port     int    `env:"PORT"     envDefault:"25"`
	Username string `env:"USERNAME" envDefault:""`
	Password string `env:"PASSWORD" envDefault:""`
	From     string `env:"FROM"     envDefault:"noreply@example.com"`
}

// WhatsAppConfig contains the WhatsApp webhook sender settings.
type WhatsAppConfig struct {
	// WebhookURL is the HTTP endpoint messages are posted to.
	WebhookURL string `env:"WEBHOOK_URL" envDefault:""`

	// Token is sent as a bearer token when non-empty.
	Token string `env:"TOKEN" envDefault:""`

	// Timeout bounds a single webhook request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
}

// QRDecoderConfig contains the remote QR decode service settings.
type QRDecoderConfig struct {
	// Endpoint is the decode service URL; image bytes are posted as-is.
	Endpoint string `env:"ENDPOINT" envDefault:""`

	// Timeout bounds a single decode request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// NotifyConfig groups outbound notification and decoder configuration.
type NotifyConfig struct {
	SMTP     SMTPConfig      `envPrefix:"SMTP_"`
	WhatsApp WhatsAppConfig  `envPrefix:"WHATSAPP_"`
	QR       QRDecoderConfig `envPrefix:"QR_"`
}

// Sanitize applies guardrails to notification configuration values.
func (n *NotifyConfig) Sanitize() {
	if n.WhatsApp.Timeout < time.Second {
		n.WhatsApp.Timeout = time.Second
	}
	if n.QR.Timeout < time.Second {
		n.QR.Timeout = time.Second
	}
	if n.SMTP.Port <= 0 {
		n.SMTP.Port = 25
	}
}
