package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/domain/production"
)

// ProductionServiceOptions groups dependencies for ProductionService.
type ProductionServiceOptions struct {
	Tracker *TrackerService // Required: background job tracker
	Logger  *slog.Logger    // Optional: structured logger
}

// ProductionService is the front door for the asynchronous production
// operations. It validates the request, binds the operation descriptor for
// the target partition, and hands the resolved operation to the tracker.
// Validation failures never create a job.
type ProductionService struct {
	tracker *TrackerService
	logger  *slog.Logger
}

// NewProductionService constructs a new ProductionService.
func NewProductionService(opts ProductionServiceOptions) (*ProductionService, error) {
	if opts.Tracker == nil {
		return nil, errors.New("TrackerService is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "production_service")
	}

	return &ProductionService{
		tracker: opts.Tracker,
		logger:  logger,
	}, nil
}

// Start submits a production start job and returns its id.
func (s *ProductionService) Start(ctx context.Context, req *model.StartProductionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.submit(ctx, model.JobKindStart, req.Database, req.Fields())
}

// Complete submits a production complete job and returns its id.
func (s *ProductionService) Complete(ctx context.Context, req *model.CompleteProductionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.submit(ctx, model.JobKindComplete, req.Database, req.Fields())
}

// Cancel submits a production cancel job and returns its id.
func (s *ProductionService) Cancel(ctx context.Context, req *model.CancelProductionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.submit(ctx, model.JobKindCancel, req.Database, req.Fields())
}

// JobStatus returns the polling snapshot for a submitted job.
func (s *ProductionService) JobStatus(id string) (model.JobView, error) {
	return s.tracker.Status(id)
}

func (s *ProductionService) submit(
	ctx context.Context,
	kind model.JobKind,
	target model.Partition,
	fields map[string]any,
) (string, error) {
	op, err := production.Bind(kind, target, fields)
	if err != nil {
		return "", err
	}

	id, err := s.tracker.Submit(ctx, kind, target, op)
	if err != nil {
		return "", err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "production job accepted",
			"job_id", id, "kind", kind, "target", target)
	}
	return id, nil
}
