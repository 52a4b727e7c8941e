package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/domain/model"
)

func grnRequest() *model.GRNRequest {
	userID := model.ProcInt(1)
	supplierID := model.ProcInt(2)
	itemID := model.ProcInt(10)
	qty := model.ProcInt(5)
	return &model.GRNRequest{
		UserID:     &userID,
		SupplierID: &supplierID,
		DocumentNo: "DN-55",
		Items:      []model.GRNItem{{ItemID: &itemID, Quantity: &qty}},
		Database:   model.PartitionKOL,
	}
}

func TestGRNService_PostSuccess(t *testing.T) {
	invoker := &mockInvoker{result: &core.ProcResult{
		Rows:         []model.Row{{"GRNNo": "GRN-2026-001", "Posted": int64(1)}},
		RowsAffected: 1,
	}}
	svc, err := NewGRNService(GRNServiceOptions{Invoker: invoker})
	require.NoError(t, err)

	resp, err := svc.Post(context.Background(), grnRequest())
	require.NoError(t, err)
	assert.True(t, resp.Status)
	assert.Equal(t, "GRN-2026-001", resp.GRNNo)
	assert.Equal(t, int64(1), resp.RowsAffected)

	// Items travel as a single JSON parameter.
	require.Equal(t, 1, invoker.callCount())
	op := invoker.calls[0]
	assert.Equal(t, "usp_grn_post_v2", op.Proc)
	require.Len(t, op.Params, 4)
	assert.Equal(t, "Items", op.Params[3].Name)
	assert.Contains(t, op.Params[3].Value.(string), `"Quantity":5`)
}

func TestGRNService_StatusOnlyRowDeclines(t *testing.T) {
	invoker := &mockInvoker{result: &core.ProcResult{
		Rows:         []model.Row{{"Status": "Supplier blocked"}},
		RowsAffected: 1,
	}}
	svc, err := NewGRNService(GRNServiceOptions{Invoker: invoker})
	require.NoError(t, err)

	resp, err := svc.Post(context.Background(), grnRequest())
	require.NoError(t, err)
	assert.False(t, resp.Status)
	assert.Empty(t, resp.GRNNo)
	assert.NotEmpty(t, resp.Rows)
}

func TestGRNService_Validation(t *testing.T) {
	svc, err := NewGRNService(GRNServiceOptions{Invoker: &mockInvoker{}})
	require.NoError(t, err)

	t.Run("zero quantity", func(t *testing.T) {
		req := grnRequest()
		zero := model.ProcInt(0)
		req.Items[0].Quantity = &zero
		_, err := svc.Post(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("no items", func(t *testing.T) {
		req := grnRequest()
		req.Items = nil
		_, err := svc.Post(context.Background(), req)
		require.Error(t, err)
	})

	t.Run("missing document number", func(t *testing.T) {
		req := grnRequest()
		req.DocumentNo = ""
		_, err := svc.Post(context.Background(), req)
		require.Error(t, err)
	})
}
