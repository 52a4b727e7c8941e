package bootstrap

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/adapters/qrdecoder"
	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/data"
	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/notify"
	"github.com/inkpress/erp-gateway/internal/observability/statsd"
	"github.com/inkpress/erp-gateway/internal/service"
)

// ServiceDeps contains shared dependencies for constructing services.
type ServiceDeps struct {
	Config     *config.AppConfig
	Partitions map[model.Partition]*sql.DB
	Redis      redis.UniversalClient
	Logger     *slog.Logger
}

// ServiceContainer holds the constructed service instances. Optional
// integrations (notifications, QR decode) are nil when unconfigured and
// their HTTP routes stay unregistered.
type ServiceContainer struct {
	Tracker     *service.TrackerService
	Production  *service.ProductionService
	Login       *service.LoginService
	GRN         *service.GRNService
	Notify      *service.NotifyService
	Contractors *service.ContractorService
	VoiceNotes  *service.VoiceNoteService
	Artwork     *service.ArtworkService
	QR          *service.QRService

	Metrics *statsd.Client
}

// NewServices constructs the full service container.
func NewServices(deps *ServiceDeps) (*ServiceContainer, error) {
	cfg := deps.Config
	logger := deps.Logger

	invoker, err := data.NewSQLProcedureInvoker(deps.Partitions)
	if err != nil {
		return nil, fmt.Errorf("procedure invoker: %w", err)
	}
	documents := data.NewRedisDocumentStore(deps.Redis)
	jobStore := data.NewMemoryJobStore()

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.StatsdEnabled,
		Address: cfg.Observability.StatsdAddr,
		Prefix:  cfg.Observability.StatsdPrefix,
		Logger:  logger,
	})
	if err != nil {
		// Metrics are advisory; a dead sink shouldn't stop the gateway.
		if logger != nil {
			logger.Warn("statsd client unavailable", "error", err)
		}
		metrics = nil
	}

	var sink statsd.Sink
	if metrics != nil {
		sink = metrics
	}

	tracker, err := service.NewTrackerService(service.TrackerServiceOptions{
		Store:   jobStore,
		Invoker: invoker,
		Config:  cfg.Tracker,
		Logger:  logger,
		Metrics: sink,
	})
	if err != nil {
		return nil, fmt.Errorf("tracker service: %w", err)
	}

	production, err := service.NewProductionService(service.ProductionServiceOptions{
		Tracker: tracker,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("production service: %w", err)
	}

	login, err := service.NewLoginService(service.LoginServiceOptions{
		Invoker:   invoker,
		Directory: documents,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("login service: %w", err)
	}

	grn, err := service.NewGRNService(service.GRNServiceOptions{
		Invoker: invoker,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("grn service: %w", err)
	}

	contractors, err := service.NewContractorService(service.ContractorServiceOptions{
		Documents: documents,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("contractor service: %w", err)
	}

	voiceNotes, err := service.NewVoiceNoteService(service.VoiceNoteServiceOptions{
		Documents: documents,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("voice note service: %w", err)
	}

	artwork, err := service.NewArtworkService(service.ArtworkServiceOptions{
		Invoker:   invoker,
		Documents: documents,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("artwork service: %w", err)
	}

	container := &ServiceContainer{
		Tracker:     tracker,
		Production:  production,
		Login:       login,
		GRN:         grn,
		Contractors: contractors,
		VoiceNotes:  voiceNotes,
		Artwork:     artwork,
		Metrics:     metrics,
	}

	container.Notify = buildNotifyService(cfg, logger)
	container.QR = buildQRService(cfg, logger)

	return container, nil
}

// buildNotifyService wires the outbound senders when both are configured.
func buildNotifyService(cfg *config.AppConfig, logger *slog.Logger) *service.NotifyService {
	email, err := notify.NewSMTPSender(cfg.Notify.SMTP, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("email sender disabled", "reason", err)
		}
		return nil
	}

	var whatsapp core.WhatsAppSender
	whatsapp, err = notify.NewWhatsAppSender(cfg.Notify.WhatsApp, logger)
	if err != nil {
		if logger != nil {
			logger.Warn("notifications disabled", "reason", err)
		}
		return nil
	}

	svc, err := service.NewNotifyService(service.NotifyServiceOptions{
		Email:    email,
		WhatsApp: whatsapp,
		Logger:   logger,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("notifications disabled", "reason", err)
		}
		return nil
	}
	return svc
}

// buildQRService wires the decode client when an endpoint is configured.
func buildQRService(cfg *config.AppConfig, logger *slog.Logger) *service.QRService {
	decoder, err := qrdecoder.NewClient(cfg.Notify.QR)
	if err != nil {
		if logger != nil {
			logger.Warn("qr decode disabled", "reason", err)
		}
		return nil
	}

	svc, err := service.NewQRService(service.QRServiceOptions{
		Decoder: decoder,
		Logger:  logger,
	})
	if err != nil {
		if logger != nil {
			logger.Warn("qr decode disabled", "reason", err)
		}
		return nil
	}
	return svc
}
