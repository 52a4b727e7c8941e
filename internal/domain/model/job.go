// Package model defines the core data types and structures used throughout the ERP gateway.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// JobKind represents the production operation a background job performs.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type JobKind string

// JobState represents the current state of a background job.
type JobState string

const (
	// JobKindStart starts a production run.
	JobKindStart JobKind = "start"
	// JobKindComplete closes out a production run.
	JobKindComplete JobKind = "complete"
	// JobKindCancel cancels a production run. This is a business-level
	// cancellation executed against the ERP, not cancellation of the job itself.
	JobKindCancel JobKind = "cancel"

	// JobStatePending indicates a job is stored but execution has not begun.
	JobStatePending JobState = "pending"
	// JobStateProcessing indicates the external call is in flight.
	JobStateProcessing JobState = "processing"
	// JobStateCompleted indicates the external call returned without error.
	JobStateCompleted JobState = "completed"
	// JobStateFailed indicates the external call raised an error.
	JobStateFailed JobState = "failed"
)

// UnmarshalText implements encoding.TextUnmarshaler for JobKind.
func (k *JobKind) UnmarshalText(text []byte) error {
	v := strings.ToLower(strings.TrimSpace(string(text)))
	jk := JobKind(v)
	if jk.Valid() {
		*k = jk
		return nil
	}
	return fmt.Errorf("invalid JobKind: %q", v)
}

// Valid returns true if the JobKind is valid.
func (k JobKind) Valid() bool {
	return k == JobKindStart || k == JobKindComplete || k == JobKindCancel
}

// Valid returns true if the JobState is valid.
func (s JobState) Valid() bool {
	return s == JobStatePending || s == JobStateProcessing || s == JobStateCompleted ||
		s == JobStateFailed
}

// Terminal returns true once the state can no longer change.
func (s JobState) Terminal() bool {
	return s == JobStateCompleted || s == JobStateFailed
}

// Partition identifies which of the two ERP database sites an operation
// targets.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid needs value receiver
type Partition string

const (
	// PartitionKOL is the Kolkata site (v2 procedure schema).
	PartitionKOL Partition = "KOL"
	// PartitionAHM is the Ahmedabad site (legacy procedure schema).
	PartitionAHM Partition = "AHM"
)

// Valid returns true if the Partition is one of the two known sites.
func (p Partition) Valid() bool {
	return p == PartitionKOL || p == PartitionAHM
}

// UnmarshalText implements encoding.TextUnmarshaler for Partition.
func (p *Partition) UnmarshalText(text []byte) error {
	v := Partition(strings.ToUpper(strings.TrimSpace(string(text))))
	if v.Valid() {
		*p = v
		return nil
	}
	return fmt.Errorf("invalid database partition: %q", string(text))
}

// ErrInvalidPartition is returned when a request names an unknown partition.
var ErrInvalidPartition = errors.New("invalid database partition")

// Row is one result row from an external procedure, column name to value.
type Row map[string]any

// StatusWarning is the soft-failure signal some procedures emit: a result set
// of exactly one row with exactly one column named "status" (case-insensitive).
// It accompanies a completed job and must be inspected by the caller to
// distinguish a true success from a soft failure.
type StatusWarning struct {
	Message     string `json:"message"`
	StatusValue string `json:"statusValue"`
}

// JobResult holds the outcome of a successfully executed job.
type JobResult struct {
	Rows []Row `json:"rows"`

	// ProductionID is derived from the first result row of a start job when
	// the procedure returns one.
	ProductionID *int64 `json:"productionId,omitempty"`

	// StatusWarning is set when the result matched the status-only shape.
	StatusWarning *StatusWarning `json:"statusWarning,omitempty"`
}

// Job represents one asynchronous production operation tracked in memory.
// Exactly one of Result/Error is set once State is terminal; neither is set
// before that.
type Job struct {
	ID     string    `json:"id"`
	Kind   JobKind   `json:"kind"`
	Target Partition `json:"target"`
	State  JobState  `json:"state"`

	// Operation carries the resolved procedure name and bound parameters.
	Operation Operation `json:"-"`

	Result *JobResult `json:"result,omitempty"`
	Error  string     `json:"error,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Clone returns a deep-enough copy for handing snapshots across goroutines.
// Result rows are shared; they are never mutated after the executor writes them.
func (j *Job) Clone() *Job {
	cp := *j
	if j.StartedAt != nil {
		t := *j.StartedAt
		cp.StartedAt = &t
	}
	if j.CompletedAt != nil {
		t := *j.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}

// View returns the polling snapshot of the job.
func (j *Job) View() JobView {
	return JobView{
		ID:          j.ID,
		Kind:        j.Kind,
		Target:      j.Target,
		State:       j.State,
		Result:      j.Result,
		Error:       j.Error,
		CreatedAt:   j.CreatedAt,
		StartedAt:   j.StartedAt,
		CompletedAt: j.CompletedAt,
	}
}

// JobView is the read-only snapshot returned by the polling API.
type JobView struct {
	ID          string     `json:"id"`
	Kind        JobKind    `json:"kind"`
	Target      Partition  `json:"target"`
	State       JobState   `json:"state"`
	Result      *JobResult `json:"result,omitempty"`
	Error       string     `json:"error,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// NamedParam is one named procedure parameter. Order matters: procedures are
// invoked positionally in the order the descriptor lists parameters.
type NamedParam struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Operation is a resolved procedure call: name plus bound parameters.
type Operation struct {
	Proc   string       `json:"proc"`
	Params []NamedParam `json:"params"`
}
