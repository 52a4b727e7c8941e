// Package httpx provides the HTTP handlers and router for the ERP gateway API.
package httpx

import (
	"errors"
	"net/http"

	"github.com/inkpress/erp-gateway/internal/data"
	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// ProductionHandlers provides HTTP handlers for the async production operations.
type ProductionHandlers struct {
	Svc *service.ProductionService
}

// Start handles HTTP requests to start a production run.
func (h *ProductionHandlers) Start(w http.ResponseWriter, r *http.Request) {
	var req model.StartProductionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	jobID, err := h.Svc.Start(r.Context(), &req)
	if err != nil {
		WriteRejected(w, err)
		return
	}
	WriteAccepted(w, jobID)
}

// Complete handles HTTP requests to close out a production run.
func (h *ProductionHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	var req model.CompleteProductionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	jobID, err := h.Svc.Complete(r.Context(), &req)
	if err != nil {
		WriteRejected(w, err)
		return
	}
	WriteAccepted(w, jobID)
}

// Cancel handles HTTP requests to cancel a production run.
func (h *ProductionHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	var req model.CancelProductionRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	jobID, err := h.Svc.Cancel(r.Context(), &req)
	if err != nil {
		WriteRejected(w, err)
		return
	}
	WriteAccepted(w, jobID)
}

// JobStatus handles HTTP requests to poll a submitted job.
func (h *ProductionHandlers) JobStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("job id is required"),
		})
		return
	}

	view, err := h.Svc.JobStatus(id)
	if err != nil {
		if errors.Is(err, data.ErrJobNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "job_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "status_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, view)
}
