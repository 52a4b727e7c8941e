package httpx

import (
	"net/http"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// GRNHandlers provides HTTP handlers for goods-received-note postings.
type GRNHandlers struct {
	Svc *service.GRNService
}

// Post handles HTTP requests to post a GRN or delivery note.
func (h *GRNHandlers) Post(w http.ResponseWriter, r *http.Request) {
	var req model.GRNRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	resp, err := h.Svc.Post(r.Context(), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "grn_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
