package httpx

import (
	"net/http"

	"github.com/inkpress/erp-gateway/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Production  *service.ProductionService
	Login       *service.LoginService
	GRN         *service.GRNService
	Notify      *service.NotifyService
	Contractors *service.ContractorService
	VoiceNotes  *service.VoiceNoteService
	Artwork     *service.ArtworkService
	QR          *service.QRService

	// MaxUploadBytes caps binary uploads (QR images).
	MaxUploadBytes int64
}

// NewRouter creates and configures the gateway's HTTP router. Optional
// feature services (nil entries) simply leave their routes unregistered.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	if services.Production != nil {
		registerProductionRoutes(mux, &ProductionHandlers{Svc: services.Production})
	}
	if services.Login != nil {
		registerAuthRoutes(mux, &AuthHandlers{Svc: services.Login})
	}
	if services.GRN != nil {
		registerGRNRoutes(mux, &GRNHandlers{Svc: services.GRN})
	}
	if services.Notify != nil {
		registerNotifyRoutes(mux, &NotifyHandlers{Svc: services.Notify})
	}
	if services.Contractors != nil {
		registerContractorRoutes(mux, &ContractorHandlers{Svc: services.Contractors})
	}
	if services.VoiceNotes != nil {
		registerVoiceNoteRoutes(mux, &VoiceNoteHandlers{Svc: services.VoiceNotes})
	}
	if services.Artwork != nil {
		registerArtworkRoutes(mux, &ArtworkHandlers{Svc: services.Artwork})
	}
	if services.QR != nil {
		registerQRRoutes(mux, &QRHandlers{Svc: services.QR, MaxUploadBytes: services.MaxUploadBytes})
	}

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	return mux
}

func registerProductionRoutes(mux *http.ServeMux, h *ProductionHandlers) {
	mux.HandleFunc("POST /api/production/start", h.Start)
	mux.HandleFunc("POST /api/production/complete", h.Complete)
	mux.HandleFunc("POST /api/production/cancel", h.Cancel)
	mux.HandleFunc("GET /api/jobs/{id}", h.JobStatus)
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /api/auth/login", h.Login)
}

func registerGRNRoutes(mux *http.ServeMux, h *GRNHandlers) {
	mux.HandleFunc("POST /api/grn", h.Post)
}

func registerNotifyRoutes(mux *http.ServeMux, h *NotifyHandlers) {
	mux.HandleFunc("POST /api/notifications/email", h.SendEmail)
	mux.HandleFunc("POST /api/notifications/whatsapp", h.SendWhatsApp)
}

func registerContractorRoutes(mux *http.ServeMux, h *ContractorHandlers) {
	mux.HandleFunc("POST /api/contractor-pos", h.Create)
	mux.HandleFunc("GET /api/contractor-pos", h.List)
	mux.HandleFunc("POST /api/contractor-pos/{id}/bill", h.MarkBilled)
}

func registerVoiceNoteRoutes(mux *http.ServeMux, h *VoiceNoteHandlers) {
	mux.HandleFunc("POST /api/voice-notes", h.Create)
	mux.HandleFunc("GET /api/voice-notes/{jobCard}", h.ListByJobCard)
}

func registerArtworkRoutes(mux *http.ServeMux, h *ArtworkHandlers) {
	mux.HandleFunc("GET /api/artwork/pending", h.Pending)
	mux.HandleFunc("POST /api/artwork/approve", h.Approve)
}

func registerQRRoutes(mux *http.ServeMux, h *QRHandlers) {
	mux.HandleFunc("POST /api/qr/decode", h.Decode)
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
