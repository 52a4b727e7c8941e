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

const voiceNoteCollection = "voice_notes"

// VoiceNoteServiceOptions groups dependencies for VoiceNoteService.
type VoiceNoteServiceOptions struct {
	Documents core.DocumentStore // Required: document store
	Logger    *slog.Logger       // Optional: structured logger
	NewID     func() string      // Optional: document id generator override
	Now       func() time.Time   // Optional: clock override
}

// VoiceNoteService stores voice note metadata against job cards. Only the
// reference to the audio is kept; the recording lives in object storage.
type VoiceNoteService struct {
	docs   core.DocumentStore
	logger *slog.Logger
	newID  func() string
	now    func() time.Time
}

// NewVoiceNoteService constructs a new VoiceNoteService.
func NewVoiceNoteService(opts VoiceNoteServiceOptions) (*VoiceNoteService, error) {
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
		logger = opts.Logger.With("component", "voice_note_service")
	}

	return &VoiceNoteService{
		docs:   opts.Documents,
		logger: logger,
		newID:  newID,
		now:    now,
	}, nil
}

// Create records one voice note.
func (s *VoiceNoteService) Create(
	ctx context.Context,
	req *model.CreateVoiceNoteRequest,
) (*model.VoiceNote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	note := &model.VoiceNote{
		ID:          s.newID(),
		JobCardNo:   req.JobCardNo,
		RecordedBy:  req.RecordedBy.Int64(),
		DurationSec: req.DurationSec.Int64(),
		AudioRef:    req.AudioRef,
		CreatedAt:   s.now(),
	}

	doc, err := toDocument(note)
	if err != nil {
		return nil, err
	}
	if err := s.docs.Insert(ctx, voiceNoteCollection, note.ID, doc); err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.InfoContext(ctx, "voice note recorded",
			"note_id", note.ID, "job_card_no", note.JobCardNo)
	}
	return note, nil
}

// ListByJobCard returns the notes for one job card, oldest first.
func (s *VoiceNoteService) ListByJobCard(ctx context.Context, jobCardNo string) ([]model.VoiceNote, error) {
	if jobCardNo == "" {
		return nil, errors.New("job card number is required")
	}

	docs, err := s.docs.Find(ctx, voiceNoteCollection)
	if err != nil {
		return nil, err
	}

	out := make([]model.VoiceNote, 0, len(docs))
	for _, doc := range docs {
		var note model.VoiceNote
		if err := fromDocument(doc, &note); err != nil {
			return nil, err
		}
		if note.JobCardNo != jobCardNo {
			continue
		}
		out = append(out, note)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
