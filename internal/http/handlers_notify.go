package httpx

import (
	"net/http"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// NotifyHandlers provides HTTP handlers for outbound notifications.
type NotifyHandlers struct {
	Svc *service.NotifyService
}

// SendEmail handles HTTP requests to deliver an email notification.
func (h *NotifyHandlers) SendEmail(w http.ResponseWriter, r *http.Request) {
	var req model.NotifyEmailRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_request", Err: err})
		return
	}

	if err := h.Svc.SendEmail(r.Context(), &req); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "email_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"sent": true})
}

// SendWhatsApp handles HTTP requests to deliver a WhatsApp notification.
func (h *NotifyHandlers) SendWhatsApp(w http.ResponseWriter, r *http.Request) {
	var req model.NotifyWhatsAppRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if err := req.Validate(); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_request", Err: err})
		return
	}

	if err := h.Svc.SendWhatsApp(r.Context(), &req); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "whatsapp_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"sent": true})
}
