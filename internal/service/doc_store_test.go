package service

import (
	"context"
	"sync"

	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/data"
)

// fakeDocStore is an in-memory DocumentStore for service tests.
type fakeDocStore struct {
	mu          sync.Mutex
	collections map[string]map[string]core.Document
	counters    map[string]int64

	failNext error
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{
		collections: make(map[string]map[string]core.Document),
		counters:    make(map[string]int64),
	}
}

func (f *fakeDocStore) takeFailure() error {
	err := f.failNext
	f.failNext = nil
	return err
}

func (f *fakeDocStore) Insert(_ context.Context, collection, id string, doc core.Document) error {
	return f.Upsert(context.Background(), collection, id, doc)
}

func (f *fakeDocStore) Upsert(_ context.Context, collection, id string, doc core.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return err
	}
	if f.collections[collection] == nil {
		f.collections[collection] = make(map[string]core.Document)
	}
	f.collections[collection][id] = doc
	return nil
}

func (f *fakeDocStore) FindOne(_ context.Context, collection, id string) (core.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	doc, ok := f.collections[collection][id]
	if !ok {
		return nil, data.ErrDocumentNotFound
	}
	return doc, nil
}

func (f *fakeDocStore) Find(_ context.Context, collection string) ([]core.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return nil, err
	}
	docs := make([]core.Document, 0, len(f.collections[collection]))
	for _, doc := range f.collections[collection] {
		docs = append(docs, doc)
	}
	return docs, nil
}

func (f *fakeDocStore) Increment(_ context.Context, counter string, delta int64) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.takeFailure(); err != nil {
		return 0, err
	}
	f.counters[counter] += delta
	return f.counters[counter], nil
}
