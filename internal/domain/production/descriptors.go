// Package production holds the operation descriptor table that maps a job
// kind and target partition to the procedure each site's schema expects.
// The two sites run different schema generations (KOL on v2, AHM on the
// legacy procedures), so the same business operation binds to different
// procedure names and parameter orders per partition.
package production

import (
	"fmt"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// Descriptor names one procedure and the ordered parameters it takes.
// Parameter names double as the keys into the request's field map.
type Descriptor struct {
	Proc   string
	Params []string
}

// descriptor table, kind by partition. Legacy procedures take the same
// business fields as v2 but under the old names and orderings.
var descriptors = map[model.JobKind]map[model.Partition]Descriptor{
	model.JobKindStart: {
		model.PartitionKOL: {
			Proc: "usp_production_start_v2",
			Params: []string{
				"UserID", "EmployeeID", "ProcessID",
				"JobBookingJobCardContentsID", "MachineID", "JobCardFormNo",
			},
		},
		model.PartitionAHM: {
			Proc: "usp_ProductionSlipStart",
			Params: []string{
				"EmployeeID", "UserID", "ProcessID",
				"JobBookingJobCardContentsID", "MachineID", "JobCardFormNo",
			},
		},
	},
	model.JobKindComplete: {
		model.PartitionKOL: {
			Proc: "usp_production_complete_v2",
			Params: []string{
				"UserID", "EmployeeID", "ProductionID", "ProducedQty", "WastageQty",
			},
		},
		model.PartitionAHM: {
			Proc: "usp_ProductionSlipComplete",
			Params: []string{
				"ProductionID", "EmployeeID", "UserID", "ProducedQty", "WastageQty",
			},
		},
	},
	model.JobKindCancel: {
		model.PartitionKOL: {
			Proc:   "usp_production_cancel_v2",
			Params: []string{"UserID", "EmployeeID", "ProductionID", "Remarks"},
		},
		model.PartitionAHM: {
			Proc:   "usp_ProductionSlipCancel",
			Params: []string{"ProductionID", "EmployeeID", "UserID", "Remarks"},
		},
	},
}

// Resolve returns the descriptor for a kind and partition.
func Resolve(kind model.JobKind, target model.Partition) (Descriptor, error) {
	byPartition, ok := descriptors[kind]
	if !ok {
		return Descriptor{}, fmt.Errorf("no descriptor for job kind %q", kind)
	}
	d, ok := byPartition[target]
	if !ok {
		return Descriptor{}, fmt.Errorf("no descriptor for partition %q", target)
	}
	return d, nil
}

// Bind resolves the descriptor and binds request fields to its parameter
// order, producing the operation the invoker executes.
func Bind(kind model.JobKind, target model.Partition, fields map[string]any) (model.Operation, error) {
	d, err := Resolve(kind, target)
	if err != nil {
		return model.Operation{}, err
	}

	params := make([]model.NamedParam, 0, len(d.Params))
	for _, name := range d.Params {
		v, ok := fields[name]
		if !ok {
			return model.Operation{}, fmt.Errorf("missing parameter %q for %s", name, d.Proc)
		}
		params = append(params, model.NamedParam{Name: name, Value: v})
	}
	return model.Operation{Proc: d.Proc, Params: params}, nil
}
