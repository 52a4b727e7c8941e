package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/data"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

func newTestContractorService(t *testing.T, docs *fakeDocStore) *ContractorService {
	t.Helper()
	var n int
	svc, err := NewContractorService(ContractorServiceOptions{
		Documents: docs,
		NewID: func() string {
			n++
			return fmt.Sprintf("po-%d", n)
		},
		Now: func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) },
	})
	require.NoError(t, err)
	return svc
}

func createPORequest(contractorID int64) *model.CreateContractorPORequest {
	cid := model.ProcInt(contractorID)
	amount := model.ProcInt(5000)
	return &model.CreateContractorPORequest{
		ContractorID: &cid,
		JobCardNo:    "JC-100",
		Description:  "lamination",
		Amount:       &amount,
	}
}

func TestContractorService_CreateAssignsSequentialNumbers(t *testing.T) {
	docs := newFakeDocStore()
	svc := newTestContractorService(t, docs)

	first, err := svc.Create(context.Background(), createPORequest(9))
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), createPORequest(9))
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.PONumber)
	assert.Equal(t, int64(2), second.PONumber)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.Billed)
}

func TestContractorService_CreateValidates(t *testing.T) {
	svc := newTestContractorService(t, newFakeDocStore())

	req := createPORequest(9)
	req.JobCardNo = ""
	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)

	req = createPORequest(9)
	req.Amount = nil
	_, err = svc.Create(context.Background(), req)
	require.Error(t, err)
}

func TestContractorService_ListFiltersByContractor(t *testing.T) {
	docs := newFakeDocStore()
	svc := newTestContractorService(t, docs)

	_, err := svc.Create(context.Background(), createPORequest(1))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), createPORequest(2))
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), createPORequest(1))
	require.NoError(t, err)

	all, err := svc.List(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Ordered by PO number.
	assert.Equal(t, int64(1), all[0].PONumber)
	assert.Equal(t, int64(3), all[2].PONumber)

	one, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, one, 2)
	for _, po := range one {
		assert.Equal(t, int64(1), po.ContractorID)
	}
}

func TestContractorService_MarkBilled(t *testing.T) {
	docs := newFakeDocStore()
	svc := newTestContractorService(t, docs)

	po, err := svc.Create(context.Background(), createPORequest(1))
	require.NoError(t, err)

	billed, err := svc.MarkBilled(context.Background(), po.ID)
	require.NoError(t, err)
	assert.True(t, billed.Billed)
	require.NotNil(t, billed.BilledAt)

	// Billing twice is a no-op.
	again, err := svc.MarkBilled(context.Background(), po.ID)
	require.NoError(t, err)
	assert.Equal(t, billed.BilledAt, again.BilledAt)
}

func TestContractorService_MarkBilledUnknown(t *testing.T) {
	svc := newTestContractorService(t, newFakeDocStore())

	_, err := svc.MarkBilled(context.Background(), "no-such-po")
	require.ErrorIs(t, err, data.ErrDocumentNotFound)
}

func TestContractorService_CreatePropagatesStoreErrors(t *testing.T) {
	docs := newFakeDocStore()
	docs.failNext = errors.New("redis down")
	svc := newTestContractorService(t, docs)

	_, err := svc.Create(context.Background(), createPORequest(1))
	require.Error(t, err)
}
