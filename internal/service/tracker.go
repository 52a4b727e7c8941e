// Package service provides the business logic layer for the ERP gateway.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/observability/metrics"
	"github.com/inkpress/erp-gateway/internal/observability/statsd"
)

// TrackerServiceOptions groups dependencies for TrackerService.
type TrackerServiceOptions struct {
	Store   core.JobStore         // Required: job store
	Invoker core.ProcedureInvoker // Required: procedure invoker
	Config  config.TrackerConfig  // Required: retention configuration
	Logger  *slog.Logger          // Optional: structured logger
	Metrics statsd.Sink           // Optional: metrics sink (StatsD-compatible)
	NewID   func() string         // Optional: job id generator override
}

// TrackerService owns the background job lifecycle: it creates jobs, runs
// each one's external operation to completion, serves status polls, and
// expires terminal jobs after the retention window.
//
// Execution is fire-and-forget: Submit returns before the external call
// starts, and the only way a caller learns the outcome is by polling. There
// is no concurrency cap and no ordering across jobs; the partition's
// connection pool is the only limiter. The executor puts no timeout on the
// external call, so a call that never returns leaves its job in processing
// until the process restarts.
type TrackerService struct {
	store   core.JobStore
	invoker core.ProcedureInvoker
	cfg     config.TrackerConfig
	logger  *slog.Logger
	metrics statsd.Sink
	newID   func() string
}

// NewTrackerService constructs a new TrackerService.
func NewTrackerService(opts TrackerServiceOptions) (*TrackerService, error) {
	if opts.Store == nil {
		return nil, errors.New("JobStore is required")
	}
	if opts.Invoker == nil {
		return nil, errors.New("ProcedureInvoker is required")
	}
	if opts.Config.Retention <= 0 {
		return nil, errors.New("retention must be positive")
	}

	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "tracker_service")
		logger.Debug("TrackerService initialized",
			"retention", opts.Config.Retention,
			"sweep_interval", opts.Config.SweepInterval,
		)
	}

	return &TrackerService{
		store:   opts.Store,
		invoker: opts.Invoker,
		cfg:     opts.Config,
		logger:  logger,
		metrics: opts.Metrics,
		newID:   newID,
	}, nil
}

// MustNewTrackerService constructs a new TrackerService and panics on error.
// Use this when you're certain the options are valid (e.g., in main.go).
func MustNewTrackerService(opts TrackerServiceOptions) *TrackerService {
	svc, err := NewTrackerService(opts)
	if err != nil {
		//nolint:forbidigo // Must constructor fails fast when dependencies are invalid during startup
		panic(fmt.Sprintf("failed to create TrackerService: %v", err))
	}
	return svc
}

// Submit creates a pending job for the resolved operation, schedules its
// execution, and returns the fresh job id immediately. Requests are expected
// to be validated before submission; no validation error ever creates a job.
func (s *TrackerService) Submit(
	ctx context.Context,
	kind model.JobKind,
	target model.Partition,
	op model.Operation,
) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("invalid job kind %q", kind)
	}
	if !target.Valid() {
		return "", model.ErrInvalidPartition
	}

	job := &model.Job{
		ID:        s.newID(),
		Kind:      kind,
		Target:    target,
		State:     model.JobStatePending,
		Operation: op,
		CreatedAt: time.Now(),
	}
	s.store.Put(job)

	if s.logger != nil {
		s.logger.DebugContext(ctx, "job submitted",
			"id", job.ID, "kind", job.Kind, "target", job.Target, "proc", op.Proc)
	}

	// Execution is detached from the request context: the HTTP response is
	// sent before the external call begins, and cancelling the request must
	// not cancel the job.
	go s.execute(context.Background(), job.Clone())

	return job.ID, nil
}

// Status returns a snapshot of the job or data.ErrJobNotFound (surfaced from
// the store) whether the job expired or never existed.
func (s *TrackerService) Status(id string) (model.JobView, error) {
	job, err := s.store.Get(id)
	if err != nil {
		return model.JobView{}, err
	}
	return job.View(), nil
}

// execute performs exactly one external operation for the job and writes the
// terminal state back into the store before returning.
func (s *TrackerService) execute(ctx context.Context, job *model.Job) {
	started := time.Now()
	job.State = model.JobStateProcessing
	job.StartedAt = &started
	s.store.Put(job)

	result, err := s.invoker.Invoke(ctx, job.Target, job.Operation)

	completed := time.Now()
	job.CompletedAt = &completed

	if err != nil {
		// Hard external failure: message captured verbatim, never retried.
		job.State = model.JobStateFailed
		job.Error = err.Error()
		s.store.Put(job)

		if s.logger != nil {
			s.logger.ErrorContext(ctx, "job failed",
				"id", job.ID, "kind", job.Kind, "target", job.Target, "error", err)
		}
		s.emit(job, "failed", metrics.ResultError, completed.Sub(started))
		return
	}

	job.State = model.JobStateCompleted
	job.Result = buildJobResult(job.Kind, result.Rows)
	s.store.Put(job)

	outcome := metrics.ResultSuccess
	if job.Result.StatusWarning != nil {
		outcome = metrics.ResultWarning
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "job completed",
			"id", job.ID, "kind", job.Kind, "target", job.Target,
			"rows", len(result.Rows), "status_warning", job.Result.StatusWarning != nil)
	}
	s.emit(job, "completed", outcome, completed.Sub(started))
}

func (s *TrackerService) emit(job *model.Job, transition, result string, d time.Duration) {
	metrics.EmitJobLifecycle(s.metrics, metrics.JobMetric{
		Kind:       string(job.Kind),
		Target:     string(job.Target),
		Transition: transition,
		Result:     result,
		Duration:   d,
	})
}

// buildJobResult reshapes procedure rows into the job result, deriving the
// production id for start jobs and detecting the status-only soft failure.
func buildJobResult(kind model.JobKind, rows []model.Row) *model.JobResult {
	result := &model.JobResult{Rows: rows}

	if warning, ok := detectStatusOnly(rows); ok {
		result.StatusWarning = warning
		return result
	}

	if kind == model.JobKindStart && len(rows) > 0 {
		if id, ok := extractProductionID(rows[0]); ok {
			result.ProductionID = &id
		}
	}
	return result
}

// detectStatusOnly checks for the soft-failure contract: exactly one row with
// exactly one column whose name lowercases to "status". Some procedures
// signal conditions like "no eligible rows" this way instead of raising, so
// the shape is surfaced as a warning on a completed job, never as a failure.
// The contract is deliberately not generalized beyond this exact shape.
func detectStatusOnly(rows []model.Row) (*model.StatusWarning, bool) {
	if len(rows) != 1 || len(rows[0]) != 1 {
		return nil, false
	}
	for col, v := range rows[0] {
		if strings.ToLower(col) != "status" {
			return nil, false
		}
		value := fmt.Sprint(v)
		return &model.StatusWarning{
			Message:     "Status: " + value,
			StatusValue: value,
		}, true
	}
	return nil, false
}

// extractProductionID pulls a numeric ProductionID column from the first
// result row when the procedure returns one.
func extractProductionID(row model.Row) (int64, bool) {
	for col, v := range row {
		if strings.ToLower(col) != "productionid" {
			continue
		}
		return coerceInt64(v)
	}
	return 0, false
}

func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		parsed, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

// Run starts the retention reaper loop and runs until the context is
// cancelled. Terminal jobs are removed on the first sweep at or after their
// completion time plus the retention window, whether or not they were ever
// polled. Returns nil on graceful shutdown (context.Canceled).
func (s *TrackerService) Run(ctx context.Context) error {
	if s.logger != nil {
		s.logger.InfoContext(ctx, "starting tracker reaper",
			"retention", s.cfg.Retention, "sweep_interval", s.cfg.SweepInterval)
	}

	interval := s.cfg.SweepInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s.logger != nil {
				s.logger.InfoContext(ctx, "tracker reaper stopping", "reason", ctx.Err())
			}
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

// sweep removes every terminal job past the retention window.
func (s *TrackerService) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.Retention)
	removed := s.store.RemoveTerminalBefore(cutoff)
	if removed > 0 && s.logger != nil {
		s.logger.InfoContext(ctx, "expired terminal jobs",
			"count", removed, "retention", s.cfg.Retention)
	}
	if removed > 0 && s.metrics != nil {
		s.metrics.Count("tracker.expired", int64(removed), nil)
	}
}
