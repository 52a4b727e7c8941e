package data

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

func TestBuildProcCall(t *testing.T) {
	op := model.Operation{
		Proc: "usp_production_start_v2",
		Params: []model.NamedParam{
			{Name: "UserID", Value: int64(1)},
			{Name: "EmployeeID", Value: int64(2)},
			{Name: "JobCardFormNo", Value: "F100"},
		},
	}

	query, args := buildProcCall(op)
	assert.Equal(t, "SELECT * FROM usp_production_start_v2($1, $2, $3)", query)
	assert.Equal(t, []any{int64(1), int64(2), "F100"}, args)
}

func TestBuildProcCall_NoParams(t *testing.T) {
	query, args := buildProcCall(model.Operation{Proc: "usp_artwork_pending_v2"})
	assert.Equal(t, "SELECT * FROM usp_artwork_pending_v2()", query)
	assert.Empty(t, args)
}

func TestNormalizeValue(t *testing.T) {
	assert.Equal(t, "text", normalizeValue([]byte("text")))
	assert.Equal(t, int64(5), normalizeValue(int64(5)))
	assert.Nil(t, normalizeValue(nil))
}

func TestNewSQLProcedureInvoker_RequiresPartitions(t *testing.T) {
	_, err := NewSQLProcedureInvoker(nil)
	require.Error(t, err)
}

func TestInvoke_UnknownPartition(t *testing.T) {
	invoker, err := NewSQLProcedureInvoker(map[model.Partition]*sql.DB{
		model.PartitionKOL: {},
	})
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), model.PartitionAHM, model.Operation{Proc: "usp_x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "AHM")
}

func TestInvoke_RequiresProcName(t *testing.T) {
	invoker, err := NewSQLProcedureInvoker(map[model.Partition]*sql.DB{
		model.PartitionKOL: {},
	})
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), model.PartitionKOL, model.Operation{})
	require.Error(t, err)
}
