package model

import (
	"errors"
	"strings"
	"time"
)

// ContractorPO is one contractor purchase order in the billing subsystem.
type ContractorPO struct {
	ID           string     `json:"id"`
	PONumber     int64      `json:"po_number"`
	ContractorID int64      `json:"contractor_id"`
	JobCardNo    string     `json:"job_card_no"`
	Description  string     `json:"description,omitempty"`
	Amount       int64      `json:"amount"`
	Billed       bool       `json:"billed"`
	BilledAt     *time.Time `json:"billed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateContractorPORequest opens a new contractor purchase order.
type CreateContractorPORequest struct {
	ContractorID *ProcInt `json:"ContractorID"`
	JobCardNo    string   `json:"JobCardNo"`
	Description  string   `json:"Description"`
	Amount       *ProcInt `json:"Amount"`
}

// Validate validates the CreateContractorPORequest fields.
func (r *CreateContractorPORequest) Validate() error {
	if err := requireNonNegative("ContractorID", r.ContractorID); err != nil {
		return err
	}
	if err := requireNonNegative("Amount", r.Amount); err != nil {
		return err
	}
	if strings.TrimSpace(r.JobCardNo) == "" {
		return errors.New("JobCardNo is required")
	}
	return nil
}
