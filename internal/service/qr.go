package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/erp-gateway/internal/core"
)

// QRServiceOptions groups dependencies for QRService.
type QRServiceOptions struct {
	Decoder core.QRDecoder // Required: QR decoder
	Logger  *slog.Logger   // Optional: structured logger
}

// QRService extracts job card references from uploaded QR images.
type QRService struct {
	decoder core.QRDecoder
	logger  *slog.Logger
}

// NewQRService constructs a new QRService.
func NewQRService(opts QRServiceOptions) (*QRService, error) {
	if opts.Decoder == nil {
		return nil, errors.New("QRDecoder is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "qr_service")
	}

	return &QRService{
		decoder: opts.Decoder,
		logger:  logger,
	}, nil
}

// Decode returns the text of the QR code in the image, or core.ErrQRNotFound.
func (s *QRService) Decode(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("image is required")
	}

	text, err := s.decoder.Decode(ctx, image)
	if err != nil {
		if s.logger != nil && !errors.Is(err, core.ErrQRNotFound) {
			s.logger.ErrorContext(ctx, "qr decode failed", "error", err)
		}
		return "", err
	}

	if s.logger != nil {
		s.logger.DebugContext(ctx, "qr decoded", "length", len(text))
	}
	return text, nil
}
