// Package qrdecoder calls the remote QR decode service. The decoding library
// itself lives behind that service; the gateway only moves bytes.
package qrdecoder

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
)

// Client posts raw image bytes to the decode endpoint and returns the text.
type Client struct {
	endpoint string
	client   *http.Client
}

var _ core.QRDecoder = (*Client)(nil)

// NewClient creates a decoder client from configuration.
func NewClient(cfg config.QRDecoderConfig) (*Client, error) {
	if strings.TrimSpace(cfg.Endpoint) == "" {
		return nil, errors.New("QR decoder endpoint is required")
	}

	return &Client{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type decodeResponse struct {
	Text  string `json:"text"`
	Found bool   `json:"found"`
}

// Decode sends the image and returns the decoded text. A well-formed "not
// found" answer maps to core.ErrQRNotFound; anything else non-2xx is a hard
// failure.
func (c *Client) Decode(ctx context.Context, image []byte) (string, error) {
	if len(image) == 0 {
		return "", errors.New("image is required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(image))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("decode request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // response body close failure is not actionable

	if resp.StatusCode == http.StatusNotFound {
		return "", core.ErrQRNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("decode service returned %d", resp.StatusCode)
	}

	var out decodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if !out.Found || out.Text == "" {
		return "", core.ErrQRNotFound
	}
	return out.Text, nil
}
