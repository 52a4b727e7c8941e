// Package core defines the ports between the gateway's services and its
// external collaborators: the ERP procedure layer, the document store, the
// outbound senders, and the in-memory job store.
package core

import (
	"context"
	"time"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// ProcResult is the outcome of one named procedure invocation: an ordered
// list of rows plus the driver-level metadata the ERP procedures use.
type ProcResult struct {
	Rows         []model.Row
	RowsAffected int64
	ReturnValue  int64
}

// ProcedureInvoker executes a named database operation with bound parameters
// against one partition. Connection pooling, timeouts and retries are the
// collaborator's concern; errors are returned verbatim and never interpreted.
type ProcedureInvoker interface {
	Invoke(ctx context.Context, target model.Partition, op model.Operation) (*ProcResult, error)
}

// Document is one record in a named collection of the document store.
type Document map[string]any

// DocumentStore is the collection-oriented store used by the contractor
// billing, voice note, artwork aggregation and user directory features.
type DocumentStore interface {
	Insert(ctx context.Context, collection, id string, doc Document) error
	FindOne(ctx context.Context, collection, id string) (Document, error)
	Find(ctx context.Context, collection string) ([]Document, error)
	Upsert(ctx context.Context, collection, id string, doc Document) error
	// Increment atomically adds delta to a named counter and returns the new value.
	Increment(ctx context.Context, counter string, delta int64) (int64, error)
}

// EmailSender delivers one rendered email. Fire-and-forget from the caller's
// perspective; a returned error propagates as a request failure.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// WhatsAppSender delivers one rendered text over the WhatsApp webhook.
type WhatsAppSender interface {
	SendWhatsApp(ctx context.Context, to, text string) error
}

// QRDecoder extracts text from raw image bytes. Implementations report
// ErrQRNotFound when no code is present.
type QRDecoder interface {
	Decode(ctx context.Context, image []byte) (string, error)
}

// JobStore is the thread-safe storage for background job records. Put inserts
// or overwrites; Get returns the stored snapshot or a not-found error that is
// indistinguishable between "expired" and "never existed"; Remove is
// idempotent.
type JobStore interface {
	Put(job *model.Job)
	Get(id string) (*model.Job, error)
	Remove(id string)
	// RemoveTerminalBefore removes every terminal job whose completion time is
	// at or before the cutoff, returning how many were removed.
	RemoveTerminalBefore(cutoff time.Time) int
}
