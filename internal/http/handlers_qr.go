package httpx

import (
	"errors"
	"io"
	"net/http"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/service"
)

// QRHandlers provides HTTP handlers for QR decode uploads.
type QRHandlers struct {
	Svc *service.QRService

	// MaxUploadBytes caps the image payload size.
	MaxUploadBytes int64
}

// Decode handles HTTP requests to decode a QR image into its text.
func (h *QRHandlers) Decode(w http.ResponseWriter, r *http.Request) {
	limit := h.MaxUploadBytes
	if limit <= 0 {
		limit = 5 << 20
	}

	image, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusRequestEntityTooLarge, ErrCode: "image_too_large", Err: err})
		return
	}
	if len(image) == 0 {
		WriteError(w, ErrorParams{
			Code: http.StatusBadRequest, ErrCode: "invalid_request",
			Err: errors.New("image is required"),
		})
		return
	}

	text, err := h.Svc.Decode(r.Context(), image)
	if err != nil {
		if errors.Is(err, core.ErrQRNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "qr_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "decode_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"text": text})
}
