package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/inkpress/erp-gateway/internal/data"
	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// ContractorHandlers provides HTTP handlers for contractor purchase orders.
type ContractorHandlers struct {
	Svc *service.ContractorService
}

// Create handles HTTP requests to open a contractor purchase order.
func (h *ContractorHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContractorPORequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	po, err := h.Svc.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "create_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusCreated, po)
}

// List handles HTTP requests to list purchase orders, optionally filtered by
// the contractorId query parameter.
func (h *ContractorHandlers) List(w http.ResponseWriter, r *http.Request) {
	var contractorID int64
	if raw := r.URL.Query().Get("contractorId"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			WriteError(w, ErrorParams{
				Code: http.StatusBadRequest, ErrCode: "invalid_query",
				Err: errors.New("contractorId must be a positive integer"),
			})
			return
		}
		contractorID = parsed
	}

	pos, err := h.Svc.List(r.Context(), contractorID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "list_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, pos)
}

// MarkBilled handles HTTP requests to flag a purchase order as billed.
func (h *ContractorHandlers) MarkBilled(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteError(w, ErrorParams{
			Code: http.StatusBadRequest, ErrCode: "invalid_path",
			Err: errors.New("purchase order id is required"),
		})
		return
	}

	po, err := h.Svc.MarkBilled(r.Context(), id)
	if err != nil {
		if errors.Is(err, data.ErrDocumentNotFound) {
			WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "po_not_found", Err: err})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "bill_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, po)
}
