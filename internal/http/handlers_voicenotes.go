package httpx

import (
	"errors"
	"net/http"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// VoiceNoteHandlers provides HTTP handlers for voice note capture.
type VoiceNoteHandlers struct {
	Svc *service.VoiceNoteService
}

// Create handles HTTP requests to record a voice note against a job card.
func (h *VoiceNoteHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateVoiceNoteRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	note, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, note)
}

// ListByJobCard handles HTTP requests to list the notes for one job card.
func (h *VoiceNoteHandlers) ListByJobCard(w http.ResponseWriter, r *http.Request) {
	jobCardNo := r.PathValue("jobCard")
	if jobCardNo == "" {
		WriteError(w, ErrorParams{
			Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("job card number is required"),
		})
		return
	}

	notes, err := h.Svc.ListByJobCard(r.Context(), jobCardNo)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, notes)
}
