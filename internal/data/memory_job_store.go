package data

import (
	"sync"
	"time"

	"github.com/inkpress/erp-gateway/internal/domain/model"
)

// MemoryJobStore is the process-local job store backing the tracker. Records
// do not survive a restart; retention-based removal is driven externally by
// the tracker's reaper sweep.
type MemoryJobStore struct {
	mu   sync.RWMutex
	jobs map[string]*model.Job
}

// NewMemoryJobStore creates an empty in-memory job store.
func NewMemoryJobStore() *MemoryJobStore {
	return &MemoryJobStore{jobs: make(map[string]*model.Job)}
}

// Put inserts or overwrites a job record by id. Ids are generator-produced,
// so overwrite only ever happens for state transitions of the same job.
func (s *MemoryJobStore) Put(job *model.Job) {
	if job == nil || job.ID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job.Clone()
}

// Get returns a snapshot of the job or ErrJobNotFound.
func (s *MemoryJobStore) Get(id string) (*model.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	job, ok := s.jobs[id]
	if !ok {
		return nil, ErrJobNotFound
	}
	return job.Clone(), nil
}

// Remove deletes the record; removing an absent id is a no-op.
func (s *MemoryJobStore) Remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.jobs, id)
}

// RemoveTerminalBefore removes every terminal job whose completion time is at
// or before the cutoff and returns the number removed.
func (s *MemoryJobStore) RemoveTerminalBefore(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, job := range s.jobs {
		if !job.State.Terminal() || job.CompletedAt == nil {
			continue
		}
		if job.CompletedAt.After(cutoff) {
			continue
		}
		delete(s.jobs, id)
		removed++
	}
	return removed
}

// Len reports how many jobs are currently retained.
func (s *MemoryJobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.jobs)
}
