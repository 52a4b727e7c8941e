package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

func newTestVoiceNoteService(t *testing.T) *VoiceNoteService {
	t.Helper()
	var n int
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	svc, err := NewVoiceNoteService(VoiceNoteServiceOptions{
		Documents: newFakeDocStore(),
		NewID: func() string {
			n++
			return fmt.Sprintf("vn-%d", n)
		},
		Now: func() time.Time {
			n2 := n
			return base.Add(time.Duration(n2) * time.Minute)
		},
	})
	require.NoError(t, err)
	return svc
}

func voiceNoteRequest(jobCard string) *model.CreateVoiceNoteRequest {
	recordedBy := model.ProcInt(7)
	duration := model.ProcInt(32)
	return &model.CreateVoiceNoteRequest{
		JobCardNo:   jobCard,
		RecordedBy:  &recordedBy,
		DurationSec: &duration,
		AudioRef:    "s3://notes/" + jobCard + ".ogg",
	}
}

func TestVoiceNoteService_CreateAndList(t *testing.T) {
	svc := newTestVoiceNoteService(t)

	first, err := svc.Create(context.Background(), voiceNoteRequest("JC-1"))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), voiceNoteRequest("JC-2"))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), voiceNoteRequest("JC-1"))
	require.NoError(t, err)

	notes, err := svc.ListByJobCard(context.Background(), "JC-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)

	// Oldest first.
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)
	assert.Equal(t, int64(7), notes[0].RecordedBy)
	assert.Equal(t, "s3://notes/JC-1.ogg", notes[0].AudioRef)
}

func TestVoiceNoteService_ListUnknownJobCardIsEmpty(t *testing.T) {
	svc := newTestVoiceNoteService(t)

	notes, err := svc.ListByJobCard(context.Background(), "JC-404")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestVoiceNoteService_Validation(t *testing.T) {
	svc := newTestVoiceNoteService(t)

	req := voiceNoteRequest("JC-1")
	req.AudioRef = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	req = voiceNoteRequest("JC-1")
	req.RecordedBy = nil
	_, err = svc.Create(context.Background(), req)
	require.Error(t, err)

	_, err = svc.ListByJobCard(context.Background(), "")
	require.Error(t, err)
}
