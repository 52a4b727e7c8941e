package httpx

import (
	"net/http"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// ArtworkHandlers provides HTTP handlers for artwork approvals.
type ArtworkHandlers struct {
	Svc *service.ArtworkService
}

// Pending handles HTTP requests to list artwork awaiting approval on both sites.
func (h *ArtworkHandlers) Pending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.Svc.Pending(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadGateway, ErrCode: "pending_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, pending)
}

// approveArtworkRequest is the approval payload.
type approveArtworkRequest struct {
	ArtworkRef string         `json:"ArtworkRef"`
	UserID     *model.ProcInt `json:"UserID"`
}

// Approve handles HTTP requests to record an artwork approval.
func (h *ArtworkHandlers) Approve(w http.ResponseWriter, r *http.Request) {
	var req approveArtworkRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	var userID int64
	if req.UserID != nil {
		userID = req.UserID.Int64()
	}

	if err := h.Svc.Approve(r.Context(), req.ArtworkRef, userID); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "approve_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"approved": true})
}
