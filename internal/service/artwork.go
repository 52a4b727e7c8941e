package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

const artworkApprovalCollection = "artwork_approvals"

// artworkProcs maps each partition to its pending-artwork listing procedure.
var artworkProcs = map[model.Partition]string{
	model.PartitionKOL: "usp_artwork_pending_v2",
	model.PartitionAHM: "usp_ArtworkPending",
}

// ArtworkServiceOptions groups dependencies for ArtworkService.
type ArtworkServiceOptions struct {
	Invoker   core.ProcedureInvoker // Required: procedure invoker
	Documents core.DocumentStore    // Required: approval state store
	Logger    *slog.Logger          // Optional: structured logger
	Now       func() time.Time      // Optional: clock override
}

// ArtworkService aggregates pending artwork across both partitions and merges
// in the approval state the gateway keeps in the document store. The ERP only
// knows which artwork is awaiting approval; who approved what, and when, is
// gateway-side state.
type ArtworkService struct {
	invoker core.ProcedureInvoker
	docs    core.DocumentStore
	logger  *slog.Logger
	now     func() time.Time
}

// NewArtworkService constructs a new ArtworkService.
func NewArtworkService(opts ArtworkServiceOptions) (*ArtworkService, error) {
	if opts.Invoker == nil {
		return nil, errors.New("ProcedureInvoker is required")
	}
	if opts.Documents == nil {
		return nil, errors.New("DocumentStore is required")
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "artwork_service")
	}

	return &ArtworkService{
		invoker: opts.Invoker,
		docs:    opts.Documents,
		logger:  logger,
		now:     now,
	}, nil
}

// approvalDoc is the stored approval state for one artwork reference.
type approvalDoc struct {
	ArtworkRef string    `json:"artwork_ref"`
	ApprovedBy int64     `json:"approved_by"`
	ApprovedAt time.Time `json:"approved_at"`
}

// Pending lists artwork awaiting approval on both partitions, merged with any
// recorded approvals. Both procedures run concurrently; either failing fails
// the whole listing.
func (s *ArtworkService) Pending(ctx context.Context) ([]model.ArtworkApproval, error) {
	var (
		mu      sync.Mutex
		pending []model.ArtworkApproval
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, target := range []model.Partition{model.PartitionKOL, model.PartitionAHM} {
		g.Go(func() error {
			result, err := s.invoker.Invoke(gctx, target, model.Operation{Proc: artworkProcs[target]})
			if err != nil {
				return err
			}
			rows := reshapeArtworkRows(target, result.Rows)

			mu.Lock()
			pending = append(pending, rows...)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.mergeApprovals(ctx, pending); err != nil {
		return nil, err
	}

	sort.Slice(pending, func(i, j int) bool {
		if pending[i].Partition != pending[j].Partition {
			return pending[i].Partition < pending[j].Partition
		}
		return pending[i].JobCardNo < pending[j].JobCardNo
	})

	if s.logger != nil {
		s.logger.DebugContext(ctx, "pending artwork listed", "count", len(pending))
	}
	return pending, nil
}

// Approve records that a user approved one artwork reference.
func (s *ArtworkService) Approve(ctx context.Context, artworkRef string, userID int64) error {
	if artworkRef == "" {
		return errors.New("artwork reference is required")
	}
	if userID <= 0 {
		return errors.New("user id is required")
	}

	doc, err := toDocument(approvalDoc{
		ArtworkRef: artworkRef,
		ApprovedBy: userID,
		ApprovedAt: s.now(),
	})
	if err != nil {
		return err
	}
	if err := s.docs.Upsert(ctx, artworkApprovalCollection, artworkRef, doc); err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "artwork approved",
			"artwork_ref", artworkRef, "user_id", userID)
	}
	return nil
}

func (s *ArtworkService) mergeApprovals(ctx context.Context, pending []model.ArtworkApproval) error {
	docs, err := s.docs.Find(ctx, artworkApprovalCollection)
	if err != nil {
		return err
	}

	approvals := make(map[string]approvalDoc, len(docs))
	for _, doc := range docs {
		var a approvalDoc
		if err := fromDocument(doc, &a); err != nil {
			return err
		}
		approvals[a.ArtworkRef] = a
	}

	for i := range pending {
		a, ok := approvals[pending[i].ArtworkRef]
		if !ok {
			continue
		}
		approvedAt := a.ApprovedAt
		approvedBy := a.ApprovedBy
		pending[i].Approved = true
		pending[i].ApprovedBy = &approvedBy
		pending[i].ApprovedAt = &approvedAt
	}
	return nil
}

func reshapeArtworkRows(target model.Partition, rows []model.Row) []model.ArtworkApproval {
	out := make([]model.ArtworkApproval, 0, len(rows))
	for _, row := range rows {
		item := model.ArtworkApproval{Partition: target}
		if v, ok := rowString(row, "JobCardNo", "job_card_no"); ok {
			item.JobCardNo = v
		}
		if v, ok := rowString(row, "ClientName", "client_name"); ok {
			item.ClientName = v
		}
		if v, ok := rowString(row, "ArtworkRef", "artwork_ref"); ok {
			item.ArtworkRef = v
		}
		out = append(out, item)
	}
	return out
}
