package httpx

import (
	"errors"
	"net/http"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// AuthHandlers provides HTTP handlers for credential checks.
type AuthHandlers struct {
	Svc *service.LoginService
}

// Login handles HTTP requests to check credentials against a partition.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.Svc.Login(r.Context(), &req)
	if err != nil {
		var rejected *service.LoginRejectedError
		if errors.As(err, &rejected) {
			WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "login_rejected", Err: rejected})
			return
		}
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "login_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, user)
}
