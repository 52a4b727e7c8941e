package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// partitionedInvoker answers per partition, for the cross-site aggregation.
type partitionedInvoker struct {
	results map[model.Partition]*core.ProcResult
	errs    map[model.Partition]error
}

func (p *partitionedInvoker) Invoke(
	_ context.Context,
	target model.Partition,
	_ model.Operation,
) (*core.ProcResult, error) {
	if err := p.errs[target]; err != nil {
		return nil, err
	}
	return p.results[target], nil
}

func artworkRow(jobCard, ref string) model.Row {
	return model.Row{"JobCardNo": jobCard, "ClientName": "Acme Prints", "ArtworkRef": ref}
}

func TestArtworkService_PendingMergesBothPartitions(t *testing.T) {
	invoker := &partitionedInvoker{results: map[model.Partition]*core.ProcResult{
		model.PartitionKOL: {Rows: []model.Row{artworkRow("JC-1", "ART-1")}},
		model.PartitionAHM: {Rows: []model.Row{artworkRow("JC-2", "ART-2")}},
	}}
	docs := newFakeDocStore()
	svc, err := NewArtworkService(ArtworkServiceOptions{
		Invoker:   invoker,
		Documents: docs,
		Now:       func() time.Time { return time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	// Approve one of the two before listing.
	require.NoError(t, svc.Approve(context.Background(), "ART-2", 42))

	pending, err := svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// Sorted by partition, then job card.
	assert.Equal(t, model.PartitionAHM, pending[0].Partition)
	assert.Equal(t, "ART-2", pending[0].ArtworkRef)
	assert.True(t, pending[0].Approved)
	require.NotNil(t, pending[0].ApprovedBy)
	assert.Equal(t, int64(42), *pending[0].ApprovedBy)
	require.NotNil(t, pending[0].ApprovedAt)

	assert.Equal(t, model.PartitionKOL, pending[1].Partition)
	assert.False(t, pending[1].Approved)
	assert.Nil(t, pending[1].ApprovedBy)
}

func TestArtworkService_PendingFailsWhenEitherSiteFails(t *testing.T) {
	invoker := &partitionedInvoker{
		results: map[model.Partition]*core.ProcResult{
			model.PartitionKOL: {Rows: []model.Row{artworkRow("JC-1", "ART-1")}},
		},
		errs: map[model.Partition]error{
			model.PartitionAHM: errors.New("site unreachable"),
		},
	}
	svc, err := NewArtworkService(ArtworkServiceOptions{
		Invoker:   invoker,
		Documents: newFakeDocStore(),
	})
	require.NoError(t, err)

	_, err = svc.Pending(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "site unreachable")
}

func TestArtworkService_ApproveValidates(t *testing.T) {
	svc, err := NewArtworkService(ArtworkServiceOptions{
		Invoker:   &partitionedInvoker{},
		Documents: newFakeDocStore(),
	})
	require.NoError(t, err)

	require.Error(t, svc.Approve(context.Background(), "", 1))
	require.Error(t, svc.Approve(context.Background(), "ART-1", 0))
}
