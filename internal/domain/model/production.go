package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ProcInt is a procedure parameter that must coerce to an integer. The ERP
// mobile clients send these interchangeably as JSON numbers or numeric
// strings, so both are accepted.
type ProcInt int64

// UnmarshalJSON implements json.Unmarshaler for ProcInt.
func (p *ProcInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) >= 2 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		s = strings.TrimSpace(str)
	}
	if s == "" || s == "null" {
		return errors.New("empty integer value")
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("value %q does not coerce to an integer", s)
	}
	*p = ProcInt(v)
	return nil
}

// Int64 returns the underlying value.
func (p ProcInt) Int64() int64 { return int64(p) }

// requireNonNegative validates one required coercible field.
func requireNonNegative(name string, v *ProcInt) error {
	if v == nil {
		return fmt.Errorf("%s is required", name)
	}
	if *v < 0 {
		return fmt.Errorf("%s must be a non-negative integer", name)
	}
	return nil
}

// StartProductionRequest carries the fields required to start a production run.
type StartProductionRequest struct {
	UserID                      *ProcInt  `json:"UserID"`
	EmployeeID                  *ProcInt  `json:"EmployeeID"`
	ProcessID                   *ProcInt  `json:"ProcessID"`
	JobBookingJobCardContentsID *ProcInt  `json:"JobBookingJobCardContentsID"`
	MachineID                   *ProcInt  `json:"MachineID"`
	JobCardFormNo               string    `json:"JobCardFormNo"`
	Database                    Partition `json:"database"`
}

// Validate validates the StartProductionRequest fields.
func (r *StartProductionRequest) Validate() error {
	checks := []struct {
		name string
		v    *ProcInt
	}{
		{"UserID", r.UserID},
		{"EmployeeID", r.EmployeeID},
		{"ProcessID", r.ProcessID},
		{"JobBookingJobCardContentsID", r.JobBookingJobCardContentsID},
		{"MachineID", r.MachineID},
	}
	for _, c := range checks {
		if err := requireNonNegative(c.name, c.v); err != nil {
			return err
		}
	}
	if strings.TrimSpace(r.JobCardFormNo) == "" {
		return errors.New("JobCardFormNo is required")
	}
	if !r.Database.Valid() {
		return ErrInvalidPartition
	}
	return nil
}

// Fields returns the parameter values keyed by field name for descriptor binding.
func (r *StartProductionRequest) Fields() map[string]any {
	return map[string]any{
		"UserID":                      r.UserID.Int64(),
		"EmployeeID":                  r.EmployeeID.Int64(),
		"ProcessID":                   r.ProcessID.Int64(),
		"JobBookingJobCardContentsID": r.JobBookingJobCardContentsID.Int64(),
		"MachineID":                   r.MachineID.Int64(),
		"JobCardFormNo":               r.JobCardFormNo,
	}
}

// CompleteProductionRequest carries the fields required to close a production run.
type CompleteProductionRequest struct {
	UserID       *ProcInt  `json:"UserID"`
	EmployeeID   *ProcInt  `json:"EmployeeID"`
	ProductionID *ProcInt  `json:"ProductionID"`
	ProducedQty  *ProcInt  `json:"ProducedQty"`
	WastageQty   *ProcInt  `json:"WastageQty"`
	Database     Partition `json:"database"`
}

// Validate validates the CompleteProductionRequest fields.
func (r *CompleteProductionRequest) Validate() error {
	checks := []struct {
		name string
		v    *ProcInt
	}{
		{"UserID", r.UserID},
		{"EmployeeID", r.EmployeeID},
		{"ProductionID", r.ProductionID},
		{"ProducedQty", r.ProducedQty},
	}
	for _, c := range checks {
		if err := requireNonNegative(c.name, c.v); err != nil {
			return err
		}
	}
	// WastageQty defaults to zero when omitted.
	if r.WastageQty != nil && *r.WastageQty < 0 {
		return errors.New("WastageQty must be a non-negative integer")
	}
	if !r.Database.Valid() {
		return ErrInvalidPartition
	}
	return nil
}

// Fields returns the parameter values keyed by field name for descriptor binding.
func (r *CompleteProductionRequest) Fields() map[string]any {
	wastage := int64(0)
	if r.WastageQty != nil {
		wastage = r.WastageQty.Int64()
	}
	return map[string]any{
		"UserID":       r.UserID.Int64(),
		"EmployeeID":   r.EmployeeID.Int64(),
		"ProductionID": r.ProductionID.Int64(),
		"ProducedQty":  r.ProducedQty.Int64(),
		"WastageQty":   wastage,
	}
}

// CancelProductionRequest carries the fields required to cancel a production run.
type CancelProductionRequest struct {
	UserID       *ProcInt  `json:"UserID"`
	EmployeeID   *ProcInt  `json:"EmployeeID"`
	ProductionID *ProcInt  `json:"ProductionID"`
	Remarks      string    `json:"Remarks"`
	Database     Partition `json:"database"`
}

// Validate validates the CancelProductionRequest fields.
func (r *CancelProductionRequest) Validate() error {
	checks := []struct {
		name string
		v    *ProcInt
	}{
		{"UserID", r.UserID},
		{"EmployeeID", r.EmployeeID},
		{"ProductionID", r.ProductionID},
	}
	for _, c := range checks {
		if err := requireNonNegative(c.name, c.v); err != nil {
			return err
		}
	}
	if !r.Database.Valid() {
		return ErrInvalidPartition
	}
	return nil
}

// Fields returns the parameter values keyed by field name for descriptor binding.
func (r *CancelProductionRequest) Fields() map[string]any {
	return map[string]any{
		"UserID":       r.UserID.Int64(),
		"EmployeeID":   r.EmployeeID.Int64(),
		"ProductionID": r.ProductionID.Int64(),
		"Remarks":      r.Remarks,
	}
}
