package model

import (
	"errors"
	"strings"
)

// GRNItem is one line of a goods-received-note or delivery-note posting.
type GRNItem struct {
	ItemID   *ProcInt `json:"ItemID"`
	Quantity *ProcInt `json:"Quantity"`
	Rate     *ProcInt `json:"Rate"`
}

// GRNRequest posts a goods-received-note (or delivery note) transaction.
type GRNRequest struct {
	UserID     *ProcInt  `json:"UserID"`
	SupplierID *ProcInt  `json:"SupplierID"`
	DocumentNo string    `json:"DocumentNo"`
	Items      []GRNItem `json:"Items"`
	Database   Partition `json:"database"`
}

// Validate validates the GRNRequest fields.
func (r *GRNRequest) Validate() error {
	if err := requireNonNegative("UserID", r.UserID); err != nil {
		return err
	}
	if err := requireNonNegative("SupplierID", r.SupplierID); err != nil {
		return err
	}
	if strings.TrimSpace(r.DocumentNo) == "" {
		return errors.New("DocumentNo is required")
	}
	if len(r.Items) == 0 {
		return errors.New("at least one item is required")
	}
	for i := range r.Items {
		if err := requireNonNegative("ItemID", r.Items[i].ItemID); err != nil {
			return err
		}
		if err := requireNonNegative("Quantity", r.Items[i].Quantity); err != nil {
			return err
		}
		if r.Items[i].Quantity.Int64() == 0 {
			return errors.New("Quantity must be greater than zero")
		}
		if r.Items[i].Rate != nil && *r.Items[i].Rate < 0 {
			return errors.New("Rate must be a non-negative integer")
		}
	}
	if !r.Database.Valid() {
		return ErrInvalidPartition
	}
	return nil
}

// GRNResponse is the reshaped outcome of a GRN posting.
type GRNResponse struct {
	Status       bool   `json:"status"`
	RowsAffected int64  `json:"rows_affected"`
	GRNNo        string `json:"grn_no,omitempty"`
	Rows         []Row  `json:"rows,omitempty"`
}
