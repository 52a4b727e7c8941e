package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{"json number", `42`, 42, false},
		{"numeric string", `"42"`, 42, false},
		{"padded string", `" 7 "`, 7, false},
		{"zero", `0`, 0, false},
		{"negative number", `-3`, -3, false},
		{"empty string", `""`, 0, true},
		{"null", `null`, 0, true},
		{"word", `"seven"`, 0, true},
		{"float", `1.5`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p ProcInt
			err := json.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Int64())
		})
	}
}

func procInt(v int64) *ProcInt {
	p := ProcInt(v)
	return &p
}

func TestStartProductionRequest_Validate(t *testing.T) {
	valid := func() StartProductionRequest {
		return StartProductionRequest{
			UserID:                      procInt(1),
			EmployeeID:                  procInt(2),
			ProcessID:                   procInt(3),
			JobBookingJobCardContentsID: procInt(4),
			MachineID:                   procInt(5),
			JobCardFormNo:               "F100",
			Database:                    PartitionKOL,
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		require.NoError(t, req.Validate())
	})

	t.Run("missing numeric field", func(t *testing.T) {
		req := valid()
		req.MachineID = nil
		err := req.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "MachineID")
	})

	t.Run("negative numeric field", func(t *testing.T) {
		req := valid()
		req.ProcessID = procInt(-1)
		require.Error(t, req.Validate())
	})

	t.Run("missing job card form", func(t *testing.T) {
		req := valid()
		req.JobCardFormNo = "  "
		require.Error(t, req.Validate())
	})

	t.Run("unknown partition", func(t *testing.T) {
		req := valid()
		req.Database = Partition("DEL")
		require.ErrorIs(t, req.Validate(), ErrInvalidPartition)
	})
}

func TestCompleteProductionRequest_WastageDefaultsToZero(t *testing.T) {
	req := CompleteProductionRequest{
		UserID:       procInt(1),
		EmployeeID:   procInt(2),
		ProductionID: procInt(3),
		ProducedQty:  procInt(100),
		Database:     PartitionAHM,
	}
	require.NoError(t, req.Validate())

	fields := req.Fields()
	assert.Equal(t, int64(0), fields["WastageQty"])

	req.WastageQty = procInt(4)
	assert.Equal(t, int64(4), req.Fields()["WastageQty"])
}

func TestCancelProductionRequest_RemarksOptional(t *testing.T) {
	req := CancelProductionRequest{
		UserID:       procInt(1),
		EmployeeID:   procInt(2),
		ProductionID: procInt(3),
		Database:     PartitionKOL,
	}
	require.NoError(t, req.Validate())
	assert.Equal(t, "", req.Fields()["Remarks"])
}

func TestPartition_UnmarshalText(t *testing.T) {
	var p Partition
	require.NoError(t, p.UnmarshalText([]byte("kol")))
	assert.Equal(t, PartitionKOL, p)

	require.Error(t, p.UnmarshalText([]byte("BLR")))
}
