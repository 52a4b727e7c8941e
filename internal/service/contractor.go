package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

const (
	contractorPOCollection = "contractor_pos"
	contractorPOSequence   = "contractor_po"
)

// ContractorServiceOptions groups dependencies for ContractorService.
type ContractorServiceOptions struct {
	Documents core.DocumentStore // Required: document store
	Logger    *slog.Logger       // Optional: structured logger
	NewID     func() string      // Optional: document id generator override
	Now       func() time.Time   // Optional: clock override
}

// ContractorService manages contractor purchase orders in the document store.
// PO numbers come from an atomic sequence so they stay unique and monotonic
// across gateway instances.
type ContractorService struct {
	docs   core.DocumentStore
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// NewContractorService constructs a new ContractorService.
func NewContractorService(opts ContractorServiceOptions) (*ContractorService, error) {
	if opts.Documents == nil {
		return nil, errors.New("DocumentStore is required")
	}

	newID := opts.NewID
	if newID == nil {
		newID = uuid.NewString
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "contractor_service")
	}

	return &ContractorService{
		docs:   opts.Documents,
		logger: logger,
		newID:  newID,
		now:    now,
	}, nil
}

// Create opens a new contractor purchase order.
func (s *ContractorService) Create(
	ctx context.Context,
	req *model.CreateContractorPORequest,
) (*model.ContractorPO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	seq, err := s.docs.Increment(ctx, contractorPOSequence, 1)
	if err != nil {
		return nil, err
	}

	po := &model.ContractorPO{
		ID:           s.newID(),
		PONumber:     seq,
		ContractorID: req.ContractorID.Int64(),
		JobCardNo:    req.JobCardNo,
		Description:  req.Description,
		Amount:       req.Amount.Int64(),
		CreatedAt:    s.now(),
	}

	doc, err := toDocument(po)
	if err != nil {
		return nil, err
	}
	if err := s.docs.Insert(ctx, contractorPOCollection, po.ID, doc); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "contractor PO created",
			"po_id", po.ID, "po_number", po.PONumber, "contractor_id", po.ContractorID)
	}
	return po, nil
}

// List returns purchase orders ordered by PO number, optionally filtered to
// one contractor. A zero contractorID means no filter.
func (s *ContractorService) List(ctx context.Context, contractorID int64) ([]model.ContractorPO, error) {
	docs, err := s.docs.Find(ctx, contractorPOCollection)
	if err != nil {
		return nil, err
	}

	out := make([]model.ContractorPO, 0, len(docs))
	for _, doc := range docs {
		var po model.ContractorPO
		if err := fromDocument(doc, &po); err != nil {
			return nil, err
		}
		if contractorID > 0 && po.ContractorID != contractorID {
			continue
		}
		out = append(out, po)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PONumber < out[j].PONumber })
	return out, nil
}

// MarkBilled flags a purchase order as billed. Marking an already billed PO
// is a no-op that returns the stored record unchanged.
func (s *ContractorService) MarkBilled(ctx context.Context, id string) (*model.ContractorPO, error) {
	doc, err := s.docs.FindOne(ctx, contractorPOCollection, id)
	if err != nil {
		return nil, err
	}

	var po model.ContractorPO
	if err := fromDocument(doc, &po); err != nil {
		return nil, err
	}
	if po.Billed {
		return &po, nil
	}

	billedAt := s.now()
	po.Billed = true
	po.BilledAt = &billedAt

	updated, err := toDocument(&po)
	if err != nil {
		return nil, err
	}
	if err := s.docs.Upsert(ctx, contractorPOCollection, id, updated); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "contractor PO billed",
			"po_id", po.ID, "po_number", po.PONumber)
	}
	return &po, nil
}
