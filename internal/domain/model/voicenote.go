package model

import (
	"errors"
	"strings"
	"time"
)

// VoiceNote is the stored metadata for one captured voice note. The audio
// itself lives in external object storage; only the reference is kept.
type VoiceNote struct {
	ID          string    `json:"id"`
	JobCardNo   string    `json:"job_card_no"`
	RecordedBy  int64     `json:"recorded_by"`
	DurationSec int64     `json:"duration_sec"`
	AudioRef    string    `json:"audio_ref"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateVoiceNoteRequest captures a voice note against a job card.
type CreateVoiceNoteRequest struct {
	JobCardNo   string   `json:"JobCardNo"`
	RecordedBy  *ProcInt `json:"RecordedBy"`
	DurationSec *ProcInt `json:"DurationSec"`
	AudioRef    string   `json:"AudioRef"`
}

// Validate validates the CreateVoiceNoteRequest fields.
func (r *CreateVoiceNoteRequest) Validate() error {
	if strings.TrimSpace(r.JobCardNo) == "" {
		return errors.New("JobCardNo is required")
	}
	if err := requireNonNegative("RecordedBy", r.RecordedBy); err != nil {
		return err
	}
	if err := requireNonNegative("DurationSec", r.DurationSec); err != nil {
		return err
	}
	if strings.TrimSpace(r.AudioRef) == "" {
		return errors.New("AudioRef is required")
	}
	return nil
}
