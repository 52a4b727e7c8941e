package qrdecoder

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, func()) {
	t.Helper()
	srv := httptest.NewServer(handler)
	client, err := NewClient(config.QRDecoderConfig{Endpoint: srv.URL, Timeout: 5 * time.Second})
	require.NoError(t, err)
	return client, srv.Close
}

func TestClient_DecodeSuccess(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/octet-stream", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text": "JC-100", "found": true}`))
	})
	defer done()

	text, err := client.Decode(context.Background(), []byte{0x89, 0x50, 0x4e, 0x47})
	require.NoError(t, err)
	assert.Equal(t, "JC-100", text)
}

func TestClient_DecodeNotFound(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"404 status", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}},
		{"found false", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"text": "", "found": false}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, done := newTestClient(t, tt.handler)
			defer done()

			_, err := client.Decode(context.Background(), []byte{1})
			require.ErrorIs(t, err, core.ErrQRNotFound)
		})
	}
}

func TestClient_DecodeServiceError(t *testing.T) {
	client, done := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer done()

	_, err := client.Decode(context.Background(), []byte{1})
	require.Error(t, err)
	assert.NotErrorIs(t, err, core.ErrQRNotFound)
}

func TestClient_RequiresImage(t *testing.T) {
	client, done := newTestClient(t, func(http.ResponseWriter, *http.Request) {})
	defer done()

	_, err := client.Decode(context.Background(), nil)
	require.Error(t, err)
}
