package model

import "time"

// ArtworkApproval is one pending artwork row merged from a partition's
// procedure result and the approval state kept in the document store.
type ArtworkApproval struct {
	Partition  Partition  `json:"partition"`
	JobCardNo  string     `json:"job_card_no"`
	ClientName string     `json:"client_name,omitempty"`
	ArtworkRef string     `json:"artwork_ref"`
	Approved   bool       `json:"approved"`
	ApprovedBy *int64     `json:"approved_by,omitempty"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}
