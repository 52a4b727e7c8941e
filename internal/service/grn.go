package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// grnProcs maps each partition to its goods-received-note posting procedure.
var grnProcs = map[model.Partition]string{
	model.PartitionKOL: "usp_grn_post_v2",
	model.PartitionAHM: "usp_GRNPost",
}

// GRNServiceOptions groups dependencies for GRNService.
type GRNServiceOptions struct {
	Invoker core.ProcedureInvoker // Required: procedure invoker
	Logger  *slog.Logger          // Optional: structured logger
}

// GRNService posts goods-received-note and delivery-note transactions. Unlike
// production operations this is synchronous: the caller waits for the
// procedure and gets the reshaped outcome in the response.
type GRNService struct {
	invoker core.ProcedureInvoker
	logger  *slog.Logger
}

// NewGRNService constructs a new GRNService.
func NewGRNService(opts GRNServiceOptions) (*GRNService, error) {
	if opts.Invoker == nil {
		return nil, errors.New("ProcedureInvoker is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "grn_service")
	}

	return &GRNService{
		invoker: opts.Invoker,
		logger:  logger,
	}, nil
}

// Post runs the GRN procedure and reshapes its result.
func (s *GRNService) Post(ctx context.Context, req *model.GRNRequest) (*model.GRNResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The procedure takes the line items as one JSON parameter and explodes
	// them server-side.
	items, err := json.Marshal(req.Items)
	if err != nil {
		return nil, fmt.Errorf("marshal items: %w", err)
	}

	op := model.Operation{
		Proc: grnProcs[req.Database],
		Params: []model.NamedParam{
			{Name: "UserID", Value: req.UserID.Int64()},
			{Name: "SupplierID", Value: req.SupplierID.Int64()},
			{Name: "DocumentNo", Value: req.DocumentNo},
			{Name: "Items", Value: string(items)},
		},
	}

	result, err := s.invoker.Invoke(ctx, req.Database, op)
	if err != nil {
		return nil, err
	}

	resp := &model.GRNResponse{
		Status:       true,
		RowsAffected: result.RowsAffected,
		Rows:         result.Rows,
	}

	// A status-only row is the procedure declining the posting.
	if _, ok := detectStatusOnly(result.Rows); ok {
		resp.Status = false
	} else if len(result.Rows) > 0 {
		if no, ok := rowString(result.Rows[0], "GRNNo", "grn_no"); ok {
			resp.GRNNo = no
		}
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "grn posted",
			"document_no", req.DocumentNo, "target", req.Database,
			"rows_affected", resp.RowsAffected, "accepted", resp.Status)
	}
	return resp, nil
}
